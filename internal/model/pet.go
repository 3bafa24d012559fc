package model

import "time"

// Pet belongs to exactly one user; all reads and writes are owner-scoped.
type Pet struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Breed     string    `json:"breed,omitempty"`
	Age       int       `json:"age,omitempty"`
	PhotoPath string    `json:"photo_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
