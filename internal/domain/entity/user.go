// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can own wishlists.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name         string    // The user's display name.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash; never leaves the service layer.
	CreatedAt    time.Time // Timestamp of when this user account was created.
}

// UserSummary is the public projection of a User shown next to wishlists.
type UserSummary struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

// Summary returns the public fields of the user.
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}

	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}
