package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"pawfectfind/internal/service"
)

// ListVendors returns the vendor catalog. It never fails: a database outage
// degrades to a static fallback inside the service.
func ListVendors(svc service.VendorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.UserContext()))
	}
}

// VendorAvailability returns the open slots of a vendor on a date
// (path parameter date, format YYYY-MM-DD).
func VendorAvailability(svc service.VendorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		date := c.Params("date")
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
		}

		return c.JSON(svc.Availability(c.UserContext(), id, date))
	}
}

// ListServices returns the static service catalog.
func ListServices() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(service.ServiceCatalog())
	}
}
