package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pawfectfind/docs"
	"pawfectfind/internal/auth"
	"pawfectfind/internal/config"
	"pawfectfind/internal/database"
	"pawfectfind/internal/database/migration"
	handlers "pawfectfind/internal/http/handler"
	"pawfectfind/internal/http/middleware"
	"pawfectfind/internal/otel"
	"pawfectfind/internal/queue"
	"pawfectfind/internal/repository/sqlserver"
	"pawfectfind/internal/service"
	"pawfectfind/internal/storage"
)

// @title PawfectFind API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc := time.UTC

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize OpenTelemetry tracing (no-op when disabled or misconfigured)
	shutdownTracing, err := otel.Init(ctx, loc, "pawfectfind-api")
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	// Initialize Azure SQL connection (with pooling via database/sql)
	db, err := database.NewSQLServer(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Create missing tables and indexes on startup
	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Server); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Initialize the booking queue publisher
	publisher, err := queue.NewServiceBusPublisher(cfg.ServiceBus.ConnectionString, cfg.ServiceBus.QueueName)
	if err != nil {
		log.Fatalf("failed to initialize queue publisher: %v", err)
	}
	defer publisher.Close(context.Background())

	// Initialize repositories and services
	tokens := auth.NewTokenManager(cfg.JWT.SecretKey, time.Duration(cfg.JWT.AccessTTLHrs)*time.Hour)
	userRepo := sqlserver.NewUserSQLServer(db)
	petRepo := sqlserver.NewPetSQLServer(db)
	bookingRepo := sqlserver.NewBookingSQLServer(db)
	vendorRepo := sqlserver.NewVendorSQLServer(db)

	deps := handlers.Dependencies{
		Auth:     service.NewAuthService(userRepo, tokens),
		Pets:     service.NewPetService(objStore, petRepo),
		Vendors:  service.NewVendorService(vendorRepo),
		Bookings: service.NewBookingService(bookingRepo, petRepo, publisher),
		Tokens:   tokens,
	}

	requestTimeout := time.Duration(cfg.RequestTimeoutSec) * time.Second

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		ReadTimeout:  requestTimeout,
		WriteTimeout: requestTimeout,
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	// Trace incoming requests
	app.Use(otelfiber.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, deps)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownTimeout := time.Duration(cfg.ShutdownTimeoutSec) * time.Second
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Printf("server shutdown: %v", err)
		os.Exit(1)
	}
}
