package model

import "time"

// User represents a registered account.
// This is a pure domain model with no database-specific dependencies or tags.
// PasswordHash is never serialized in API responses.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
