package context

import (
	"context"

	"wishlist/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyCallerID holds the user id resolved from the bearer token.
	KeyCallerID ContextKey = "caller_id"

	// KeyCaller holds the authenticated user loaded for REST routes.
	KeyCaller ContextKey = "caller"
)

// WithCallerID stores the resolved caller id.
func WithCallerID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyCallerID, userID)
}

// CallerIDFromContext returns the caller id, or nil for anonymous requests.
func CallerIDFromContext(ctx context.Context) *uuid.UUID {
	if id, ok := ctx.Value(KeyCallerID).(uuid.UUID); ok {
		return &id
	}

	return nil
}

// SetCallerID stores the caller id on both the echo and the request context.
func SetCallerID(c echo.Context, userID uuid.UUID) {
	c.Set(string(KeyCallerID), userID)
	c.SetRequest(c.Request().WithContext(WithCallerID(c.Request().Context(), userID)))
}

// GetCallerID returns the caller id resolved for this request.
func GetCallerID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyCallerID)).(uuid.UUID)

	return id, ok
}

// SetCaller stores the authenticated user.
func SetCaller(c echo.Context, user *entity.User) {
	c.Set(string(KeyCaller), user)
}

// GetCaller returns the authenticated user set by the Authenticate middleware.
func GetCaller(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyCaller)).(*entity.User)

	return user, ok && user != nil
}
