package handler

import (
	"net/http"
	"time"

	"wishlist/internal/delivery/api/response"
	deliverycontext "wishlist/internal/delivery/context"
	domainerrors "wishlist/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TestHandler handles diagnostic endpoints
type TestHandler struct {
	now func() time.Time
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{now: time.Now}
}

// APIInfo handles GET /api/test and lists the REST endpoints.
func (h *TestHandler) APIInfo(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message":   "Wishlist API is running",
		"timestamp": h.now().UTC(),
		"endpoints": []string{
			"POST /api/register",
			"POST /api/login",
			"GET /api/me",
			"GET /api/wishlists",
			"POST /api/wishlists",
			"GET /api/wishlists/:id",
			"GET /api/wishlists/:id/items",
			"POST /api/wishlists/:id/items",
			"GET /api/wishlists/:id/qr",
			"GET /api/users/:userId/wishlists",
		},
	})
}

// TestAuthMiddleware tests the authentication middleware
// This endpoint requires a valid token in the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	user, ok := deliverycontext.GetCaller(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Authentication middleware test successful",
		"userID":  user.ID,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
