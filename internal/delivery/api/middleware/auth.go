package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "wishlist/internal/delivery/context"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/service"
	"wishlist/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves caller identity from the Authorization header.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authUC   usecase.AuthUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authUC usecase.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authUC: authUC, logger: logger}
}

// Identify runs on every request and never rejects one.
// A valid token leaves the caller id on the echo and request contexts.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), bearerPrefix)
		if userID, ok := m.tokenSvc.ValidateToken(strings.TrimSpace(token)); ok {
			deliverycontext.SetCallerID(c, userID)
		}

		return next(c)
	}
}

// Authenticate rejects requests whose caller could not be resolved to an existing user.
// It must run after Identify.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := deliverycontext.GetCallerID(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		user, err := m.authUC.Me(c.Request().Context(), userID)
		if err != nil {
			return errors.WithStack(err)
		}
		deliverycontext.SetCaller(c, user)

		return next(c)
	}
}
