package queue

import (
	"context"

	"pawfectfind/internal/model"
)

// Package queue contains the booking queue transport: a publisher used by
// the API to enqueue new bookings and a consumer loop used by the worker.

// Publisher enqueues booking messages for asynchronous processing.
type Publisher interface {
	// Publish sends one booking message to the queue.
	Publish(ctx context.Context, msg model.BookingMessage) error
	// Close releases the underlying transport.
	Close(ctx context.Context) error
}
