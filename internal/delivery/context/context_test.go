package context

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"wishlist/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestCallerID(t *testing.T) {
	c := newEchoContext()

	_, ok := GetCallerID(c)
	assert.False(t, ok)
	assert.Nil(t, CallerIDFromContext(c.Request().Context()))

	id := uuid.Must(uuid.NewV7())
	SetCallerID(c, id)

	got, ok := GetCallerID(c)
	require.True(t, ok)
	assert.Equal(t, id, got)

	fromCtx := CallerIDFromContext(c.Request().Context())
	require.NotNil(t, fromCtx)
	assert.Equal(t, id, *fromCtx)
}

func TestCaller(t *testing.T) {
	c := newEchoContext()

	_, ok := GetCaller(c)
	assert.False(t, ok)

	user := &entity.User{ID: uuid.Must(uuid.NewV7()), Name: "Alice"}
	SetCaller(c, user)

	got, ok := GetCaller(c)
	require.True(t, ok)
	assert.Same(t, user, got)
}
