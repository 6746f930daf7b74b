package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wishlist/config"
	deliverycontext "wishlist/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(NewRequestIDMiddleware(newTestLogger(&buf)).Process)
	e.GET("/", func(c echo.Context) error {
		ctx := c.Request().Context()
		deliverycontext.GetLoggerOrDefault(ctx, nil).InfoContext(ctx, "inside")

		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(ctx))
	})

	t.Run("propagates client id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "client-id", rec.Body.String())
		assert.Contains(t, buf.String(), "request_id=client-id")
	})

	t.Run("generates id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		id := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})
}

func TestLoggerMiddleware(t *testing.T) {
	newServer := func(debug bool, buf *bytes.Buffer) *echo.Echo {
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		e.Use(NewLoggerMiddleware(newTestLogger(buf), cfg).Handle)
		e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		e.GET("/fail", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "short and stout") })

		return e
	}

	t.Run("debug logs status", func(t *testing.T) {
		var buf bytes.Buffer
		e := newServer(true, &buf)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail?x=1", nil))

		require.Equal(t, http.StatusTeapot, rec.Code)
		assert.Contains(t, buf.String(), "status=418")
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), `query="x=1"`)
	})

	t.Run("quiet without debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newServer(false, &buf)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, buf.String())
	})
}
