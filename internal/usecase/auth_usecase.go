// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"wishlist/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput carries the issued identity token and the authenticated user.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the account operations.
type AuthUsecase interface {
	// Register creates the account and signs the new user in.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies credentials. Unknown email and wrong password fail identically.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Me resolves the caller's account. A vanished account is reported as unauthenticated.
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
