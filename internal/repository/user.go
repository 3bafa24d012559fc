package repository

import (
	"context"

	"pawfectfind/internal/model"
)

// UserRepository defines data access for user accounts using SQL queries only.
// No business logic here — strictly persistence operations.
type UserRepository interface {
	// Create inserts a new user record and returns it with DB-assigned fields
	// (identity id, created_at).
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByEmail returns a user by email. Returns sql.ErrNoRows when absent.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByID returns a user by id. Returns sql.ErrNoRows when absent.
	FindByID(ctx context.Context, id int) (*model.User, error)
}
