package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"pawfectfind/internal/model"
	"pawfectfind/internal/queue"
	"pawfectfind/internal/repository"
)

var ErrInvalidBooking = errors.New("pet_id, service_type, vendor_id, booking_date, and booking_time are required")

// BookingInput carries the fields of a booking create request.
type BookingInput struct {
	PetID       int    `json:"pet_id"`
	ServiceType string `json:"service_type"`
	VendorID    string `json:"vendor_id"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
}

// BookingListResult is the service-level DTO for paginated bookings.
type BookingListResult struct {
	Items []model.Booking `json:"data"`
	Total int             `json:"total"`
}

// BookingService defines the booking use cases.
type BookingService interface {
	// Create stores a pending booking, then enqueues it for the worker.
	// A publish failure leaves the booking pending and is logged, not
	// returned: the row is the source of truth and can be re-driven.
	Create(ctx context.Context, userID int, in BookingInput) (*model.Booking, error)

	// List returns the caller's bookings using limit/offset and a total count.
	List(ctx context.Context, userID, limit, offset int) (*BookingListResult, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	pets      repository.PetRepository
	publisher queue.Publisher
}

// NewBookingService constructs a new BookingService.
func NewBookingService(repo repository.BookingRepository, pets repository.PetRepository, publisher queue.Publisher) BookingService {
	return &bookingService{repo: repo, pets: pets, publisher: publisher}
}

func (s *bookingService) Create(ctx context.Context, userID int, in BookingInput) (*model.Booking, error) {
	if in.PetID == 0 || in.ServiceType == "" || in.VendorID == "" || in.BookingDate == "" || in.BookingTime == "" {
		return nil, ErrInvalidBooking
	}
	if _, err := time.Parse("2006-01-02", in.BookingDate); err != nil {
		return nil, ErrInvalidBooking
	}

	// The pet must belong to the caller.
	if _, err := s.pets.FindByID(ctx, in.PetID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	booking, err := s.repo.Create(ctx, &model.Booking{
		UserID:      userID,
		PetID:       in.PetID,
		ServiceType: in.ServiceType,
		VendorID:    in.VendorID,
		BookingDate: in.BookingDate,
		BookingTime: in.BookingTime,
		Status:      model.BookingStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	msg := model.BookingMessage{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		PetID:       booking.PetID,
		ServiceType: booking.ServiceType,
		VendorID:    booking.VendorID,
		BookingDate: booking.BookingDate,
		BookingTime: booking.BookingTime,
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		logBookingEvent(map[string]any{
			"event":         "booking_publish_failed",
			"level":         "error",
			"booking_id":    booking.ID,
			"error_message": err.Error(),
		})
	}

	return booking, nil
}

func (s *bookingService) List(ctx context.Context, userID, limit, offset int) (*BookingListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.ListByUser(ctx, userID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &BookingListResult{Items: res.Items, Total: res.Total}, nil
}

// BookingProcessor handles booking messages on the worker side.
type BookingProcessor struct {
	repo repository.BookingRepository
}

// NewBookingProcessor constructs a BookingProcessor.
func NewBookingProcessor(repo repository.BookingRepository) *BookingProcessor {
	return &BookingProcessor{repo: repo}
}

// Process confirms the booking referenced by a queue message. Errors are
// returned so the consumer abandons the message and the broker redelivers.
func (p *BookingProcessor) Process(ctx context.Context, body []byte) error {
	var msg model.BookingMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("decode booking message: %w", err)
	}
	if msg.BookingID == 0 {
		return fmt.Errorf("booking message missing booking_id")
	}

	logBookingEvent(map[string]any{
		"event":        "booking_processing",
		"booking_id":   msg.BookingID,
		"service_type": msg.ServiceType,
		"vendor_id":    msg.VendorID,
	})

	if err := p.repo.UpdateStatus(ctx, msg.BookingID, model.BookingStatusConfirmed); err != nil {
		return fmt.Errorf("confirm booking %d: %w", msg.BookingID, err)
	}

	logBookingEvent(map[string]any{
		"event":      "booking_confirmed",
		"booking_id": msg.BookingID,
	})
	return nil
}

func logBookingEvent(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	data["component"] = "booking"
	if _, ok := data["level"]; !ok {
		data["level"] = "info"
	}
	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal booking log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
