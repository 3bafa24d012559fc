package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"pawfectfind/internal/auth"
	"pawfectfind/internal/http/middleware"
	"pawfectfind/internal/service"
)

// Dependencies bundles everything the HTTP routes need.
type Dependencies struct {
	Auth     service.AuthService
	Pets     service.PetService
	Vendors  service.VendorService
	Bookings service.BookingService
	Tokens   *auth.TokenManager
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; business logic lives in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, deps Dependencies) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Simple liveness probe with no dependencies
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	api.Get("/health", HealthCheck(db))

	// Public marketplace reads
	api.Get("/services", ListServices())
	api.Get("/vendors", ListVendors(deps.Vendors))
	api.Get("/vendors/:id/availability/:date", VendorAvailability(deps.Vendors))

	// Account
	api.Post("/auth/register", Register(deps.Auth))
	api.Post("/auth/login", Login(deps.Auth))

	// Everything below requires a Bearer token
	authed := api.Group("", middleware.RequireAuth(deps.Tokens))

	authed.Get("/auth/me", Me(deps.Auth))

	authed.Get("/pets", ListPets(deps.Pets))
	authed.Post("/pets", CreatePet(deps.Pets))
	authed.Get("/pets/:id", GetPet(deps.Pets))
	authed.Delete("/pets/:id", DeletePet(deps.Pets))
	authed.Post("/pets/:id/photo", UploadPetPhoto(deps.Pets))
	authed.Get("/pets/:id/photo", GetPetPhoto(deps.Pets))

	authed.Post("/bookings", CreateBooking(deps.Bookings))
	authed.Get("/bookings", ListBookings(deps.Bookings))
}
