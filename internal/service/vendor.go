package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"pawfectfind/internal/model"
	"pawfectfind/internal/repository"
)

// VendorService defines the marketplace read-side use cases. Listing never
// fails the request: a database outage degrades to a minimal static catalog
// so the storefront keeps rendering.
type VendorService interface {
	// List returns all vendors by rating, or the fallback list on DB error.
	List(ctx context.Context) []model.Vendor

	// Availability returns the open slots of a vendor on a date
	// (date must already be validated as YYYY-MM-DD). On DB error it
	// degrades to a generated hourly slot grid.
	Availability(ctx context.Context, vendorID int, date string) *model.VendorAvailability
}

type vendorService struct {
	repo repository.VendorRepository
}

// NewVendorService constructs a new VendorService.
func NewVendorService(repo repository.VendorRepository) VendorService {
	return &vendorService{repo: repo}
}

// fallbackVendors is served when the vendors table is unreachable.
var fallbackVendors = []model.Vendor{
	{
		ID:       1,
		Name:     "Paws & Claws Grooming",
		Rating:   4.8,
		Price:    "From $45",
		Services: []string{"Grooming", "Bathing", "Nail Trimming"},
	},
}

func (s *vendorService) List(ctx context.Context) []model.Vendor {
	vendors, err := s.repo.List(ctx)
	if err != nil {
		logVendorEvent(map[string]any{
			"event":         "vendor_list_fallback",
			"level":         "error",
			"error_message": err.Error(),
		})
		return fallbackVendors
	}
	return vendors
}

func (s *vendorService) Availability(ctx context.Context, vendorID int, date string) *model.VendorAvailability {
	slots, err := s.repo.AvailabilityForDate(ctx, vendorID, date)
	if err != nil {
		logVendorEvent(map[string]any{
			"event":         "vendor_availability_fallback",
			"level":         "error",
			"vendor_id":     vendorID,
			"date":          date,
			"error_message": err.Error(),
		})
		slots = fallbackSlots()
	}
	return &model.VendorAvailability{
		VendorID:       vendorID,
		Date:           date,
		AvailableSlots: slots,
	}
}

// fallbackSlots generates a deterministic hourly grid from 09:00 to 17:00.
func fallbackSlots() []string {
	slots := make([]string, 0, 9)
	for h := 9; h <= 17; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

func logVendorEvent(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	data["component"] = "vendor"
	if _, ok := data["level"]; !ok {
		data["level"] = "info"
	}
	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal vendor log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
