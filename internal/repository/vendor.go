package repository

import (
	"context"

	"pawfectfind/internal/model"
)

// VendorRepository defines read access to the vendor marketplace tables.
type VendorRepository interface {
	// List returns all vendors ordered by rating descending.
	List(ctx context.Context) ([]model.Vendor, error)

	// AvailabilityForDate returns the open slots of a vendor on a date
	// (YYYY-MM-DD). When no row exists the slice is empty and err is nil.
	AvailabilityForDate(ctx context.Context, vendorID int, date string) ([]string, error)
}
