package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for identity tokens.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and validates identity tokens.
type TokenService interface {
	// IssueToken creates a signed token bound to userID.
	IssueToken(userID uuid.UUID) (string, error)

	// ValidateToken returns the embedded user id when the token is authentic and unexpired.
	// Every failure is reported as ok == false.
	ValidateToken(tokenString string) (userID uuid.UUID, ok bool)
}
