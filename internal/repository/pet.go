package repository

import (
	"context"

	"pawfectfind/internal/model"
)

// PetRepository defines data access for pets. Every operation except Create
// is scoped to the owning user so one user can never see another's pets.
type PetRepository interface {
	// Create inserts a new pet row and returns the stored record.
	Create(ctx context.Context, p *model.Pet) (*model.Pet, error)

	// FindByID returns the pet only when it belongs to userID.
	// Returns sql.ErrNoRows otherwise.
	FindByID(ctx context.Context, id, userID int) (*model.Pet, error)

	// ListByUser returns all pets of a user, newest first.
	ListByUser(ctx context.Context, userID int) ([]model.Pet, error)

	// Delete removes the pet when it belongs to userID.
	// Returns sql.ErrNoRows when no row was deleted.
	Delete(ctx context.Context, id, userID int) error

	// SetPhotoPath records the storage key of the pet's photo.
	// Returns sql.ErrNoRows when the pet does not exist for userID.
	SetPhotoPath(ctx context.Context, id, userID int, path string) error
}
