// Package apitest assembles the full HTTP stack over an in-memory database for tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"wishlist/config"
	"wishlist/internal/delivery/api"
	"wishlist/internal/delivery/api/graphql"
	apimiddleware "wishlist/internal/delivery/api/middleware"
	"wishlist/internal/delivery/api/router"
	"wishlist/internal/delivery/api/router/handler"
	"wishlist/internal/infra/auth"
	"wishlist/internal/infra/persistence/postgres"
	"wishlist/internal/infra/persistence/testdb"
	"wishlist/internal/infra/qrcode"
	"wishlist/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Stack is a wired echo instance plus the database behind it.
type Stack struct {
	Echo   *echo.Echo
	DB     *gorm.DB
	Config *config.Config
}

// NewConfig returns the configuration used by New.
func NewConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "wishlist-test"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = time.Hour
	cfg.TestRoutes = &config.TestRoutesConfig{Enabled: true}
	cfg.QRCode = &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M", BaseURL: "https://wishlist.test"}
	cfg.GraphQL = &config.GraphQLConfig{MaxDepth: 6}

	return cfg
}

// New wires repositories, services, handlers and middleware exactly as the binary does.
func New(t testing.TB) *Stack {
	t.Helper()

	cfg := NewConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := testdb.New(t)

	userRepo := postgres.NewUserRepository(db)
	wishlistRepo := postgres.NewWishlistRepository(db)
	itemRepo := postgres.NewWishlistItemRepository(db)

	tokenSvc := auth.NewJWTService(cfg, logger)
	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokenSvc,
		Logger:       logger,
	})
	wishlistUC := impl.NewWishlistService(impl.WishlistServiceParams{
		UserRepo:     userRepo,
		WishlistRepo: wishlistRepo,
		ItemRepo:     itemRepo,
		QRCode:       qrcode.NewQRCodeService(cfg),
		Logger:       logger,
	})

	graphqlHandler, err := graphql.NewHandler(graphql.HandlerParams{
		AuthUC:     authUC,
		WishlistUC: wishlistUC,
		Config:     cfg,
		Logger:     logger,
	})
	require.NoError(t, err)

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenSvc, authUC, logger)
	e := api.NewEcho(cfg, logger, authMiddleware, router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
		WishlistHandler: handler.NewWishlistHandler(handler.WishlistHandlerParams{WishlistUC: wishlistUC, Logger: logger}),
		TestHandler:     handler.NewTestHandler(),
		GraphQLHandler:  graphqlHandler,
		AuthMiddleware:  authMiddleware,
		Config:          cfg,
	})

	return &Stack{Echo: e, DB: db, Config: cfg}
}

// Do sends a request through the stack. body is JSON encoded when not nil.
func (s *Stack) Do(t testing.TB, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	return rec
}

// Decode unmarshals a recorded JSON body into out.
func Decode(t testing.TB, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

// Envelope is the REST success body.
type Envelope[T any] struct {
	Data T `json:"data"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

// ErrorBody is the REST failure body.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// MustStatus fails the test when the response status differs.
func MustStatus(t testing.TB, rec *httptest.ResponseRecorder, status int) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
}
