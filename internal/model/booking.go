package model

import "time"

// Booking statuses. A booking starts out pending and is confirmed by the
// queue consumer once the message is processed.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
)

// Booking represents a service booking made by a user for one of their pets.
// BookingDate is a plain YYYY-MM-DD string; BookingTime is a free-form slot
// label such as "10:00". VendorID is stored as text in the bookings table.
type Booking struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	PetID       int       `json:"pet_id"`
	ServiceType string    `json:"service_type"`
	VendorID    string    `json:"vendor_id"`
	BookingDate string    `json:"booking_date"`
	BookingTime string    `json:"booking_time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingMessage is the payload published to the booking queue and consumed
// by the worker. Field names are part of the wire contract.
type BookingMessage struct {
	BookingID   int    `json:"booking_id"`
	UserID      int    `json:"user_id"`
	PetID       int    `json:"pet_id"`
	ServiceType string `json:"service_type"`
	VendorID    string `json:"vendor_id"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
}
