package repository

import (
	"context"

	"pawfectfind/internal/model"
)

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	// Create inserts a new booking row (status defaults handled by caller)
	// and returns the stored record with DB-assigned fields.
	Create(ctx context.Context, b *model.Booking) (*model.Booking, error)

	// ListByUser returns a page of the user's bookings, newest first,
	// plus the total row count.
	ListByUser(ctx context.Context, userID int, pq PageQuery) (*PageResult[model.Booking], error)

	// UpdateStatus sets the status of a booking.
	// Returns sql.ErrNoRows when the booking does not exist.
	UpdateStatus(ctx context.Context, id int, status string) error
}
