package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "wishlist/internal/delivery/context"
	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	mockSvc "wishlist/internal/mocks/service"
	mockUsecase "wishlist/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type errorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details"`
	Meta    struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "app error",
			err:     domainerrors.ErrWishlistNotFound,
			status:  http.StatusNotFound,
			code:    "WISHLIST_NOT_FOUND",
			message: "wishlist does not exist",
		},
		{
			name:    "wrapped app error keeps its message",
			err:     errors.Wrap(domainerrors.ErrWishlistOwnershipViolation, "create item"),
			status:  http.StatusForbidden,
			code:    "WISHLIST_OWNERSHIP_VIOLATION",
			message: "you can only add items to your own wishlists",
		},
		{
			name:    "validation message override",
			err:     errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("title is required")),
			status:  http.StatusBadRequest,
			code:    "VALIDATION_FAILED",
			message: "title is required",
		},
		{
			name:    "echo http error",
			err:     echo.ErrNotFound,
			status:  http.StatusNotFound,
			code:    "HTTP_ERROR",
			message: "Not Found",
		},
		{
			name:    "unknown error is hidden",
			err:     errors.New("connection reset by peer"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_ERROR",
			message: domainerrors.ErrInternalError.Message(),
		},
	}

	m := NewErrorMiddleware(newDiscardLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			deliverycontext.SetRequestID(c, "req-1")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)

			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Error)
			assert.Equal(t, "req-1", body.Meta.RequestID)
		})
	}
}

func TestErrorMiddleware_DropsDetailsOnServerErrors(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(domainerrors.ErrQRCodeFailed.WithDetails("encoder exploded"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "encoder exploded")
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusTeapot, "done"))

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

type authFixture struct {
	tokens *mockSvc.MockTokenService
	authUC *mockUsecase.MockAuthUsecase
	m      *AuthMiddleware
}

func newAuthFixture(t *testing.T) *authFixture {
	tokens := mockSvc.NewMockTokenService(t)
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return &authFixture{
		tokens: tokens,
		authUC: authUC,
		m:      NewAuthMiddleware(tokens, authUC, newDiscardLogger()),
	}
}

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddleware_Identify(t *testing.T) {
	userID := uuid.New()

	t.Run("valid bearer token", func(t *testing.T) {
		fx := newAuthFixture(t)
		fx.tokens.EXPECT().ValidateToken("good").Return(userID, true)
		c, _ := newAuthContext("Bearer good")

		var seenRequestCtx *uuid.UUID
		err := fx.m.Identify(func(c echo.Context) error {
			seenRequestCtx = deliverycontext.CallerIDFromContext(c.Request().Context())

			return nil
		})(c)

		require.NoError(t, err)
		id, ok := deliverycontext.GetCallerID(c)
		assert.True(t, ok)
		assert.Equal(t, userID, id)
		require.NotNil(t, seenRequestCtx)
		assert.Equal(t, userID, *seenRequestCtx)
	})

	t.Run("raw token without prefix", func(t *testing.T) {
		fx := newAuthFixture(t)
		fx.tokens.EXPECT().ValidateToken("good").Return(userID, true)
		c, _ := newAuthContext("good")

		require.NoError(t, fx.m.Identify(func(echo.Context) error { return nil })(c))

		_, ok := deliverycontext.GetCallerID(c)
		assert.True(t, ok)
	})

	t.Run("invalid token passes through anonymously", func(t *testing.T) {
		fx := newAuthFixture(t)
		fx.tokens.EXPECT().ValidateToken("bad").Return(uuid.Nil, false)
		c, _ := newAuthContext("Bearer bad")

		called := false
		require.NoError(t, fx.m.Identify(func(echo.Context) error {
			called = true

			return nil
		})(c))

		assert.True(t, called)
		_, ok := deliverycontext.GetCallerID(c)
		assert.False(t, ok)
		assert.Nil(t, deliverycontext.CallerIDFromContext(c.Request().Context()))
	})

	t.Run("missing header", func(t *testing.T) {
		fx := newAuthFixture(t)
		fx.tokens.EXPECT().ValidateToken("").Return(uuid.Nil, false)
		c, _ := newAuthContext("")

		require.NoError(t, fx.m.Identify(func(echo.Context) error { return nil })(c))

		_, ok := deliverycontext.GetCallerID(c)
		assert.False(t, ok)
	})
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	t.Run("no identity", func(t *testing.T) {
		fx := newAuthFixture(t)
		c, _ := newAuthContext("")

		err := fx.m.Authenticate(next)(c)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
		fx.authUC.AssertNotCalled(t, "Me", mock.Anything, mock.Anything)
	})

	t.Run("user no longer exists", func(t *testing.T) {
		fx := newAuthFixture(t)
		fx.authUC.EXPECT().Me(mock.Anything, userID).Return(nil, errors.WithStack(domainerrors.ErrUnauthenticated))
		c, _ := newAuthContext("")
		deliverycontext.SetCallerID(c, userID)

		err := fx.m.Authenticate(next)(c)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("loads the caller", func(t *testing.T) {
		fx := newAuthFixture(t)
		user := &entity.User{ID: userID, Name: "Ana"}
		fx.authUC.EXPECT().Me(mock.Anything, userID).Return(user, nil)
		c, rec := newAuthContext("")
		deliverycontext.SetCallerID(c, userID)

		require.NoError(t, fx.m.Authenticate(next)(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		caller, ok := deliverycontext.GetCaller(c)
		require.True(t, ok)
		assert.Equal(t, "Ana", caller.Name)
	})
}
