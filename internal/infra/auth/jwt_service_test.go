package auth

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"wishlist/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := NewJWTService(&config.Config{JWT: config.JWTConfig{Secret: testSecret, TTL: time.Hour}}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	userID := uuid.Must(uuid.NewV7())
	token, err := svc.IssueToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, ok := svc.ValidateToken(token)
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestJWTService_Expiry(t *testing.T) {
	// exp is a whole-second NumericDate, so a token issued mid-second expires
	// at the truncated issue time plus the TTL.
	issuedAt := time.Date(2026, 1, 2, 15, 4, 5, 900_000_000, time.UTC)
	expiresAt := issuedAt.Truncate(time.Second).Add(time.Hour)
	clock := &fakeClock{now: issuedAt}
	svc := newJWTService(testSecret, time.Hour, clock.Now)

	userID := uuid.Must(uuid.NewV7())
	token, err := svc.IssueToken(userID)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())

	tests := []struct {
		name   string
		at     time.Time
		wantOK bool
	}{
		{name: "at issuance", at: issuedAt, wantOK: true},
		{name: "last millisecond", at: expiresAt.Add(-time.Millisecond), wantOK: true},
		{name: "at exp", at: expiresAt, wantOK: false},
		{name: "inside the truncated fraction", at: issuedAt.Add(time.Hour - time.Millisecond), wantOK: false},
		{name: "after expiry", at: issuedAt.Add(time.Hour + time.Second), wantOK: false},
		{name: "a day later", at: issuedAt.Add(24 * time.Hour), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.now = tt.at
			got, ok := svc.ValidateToken(token)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, userID, got)
			}
		})
	}
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc := newJWTService(testSecret, time.Hour, time.Now)
	userID := uuid.Must(uuid.NewV7())

	otherKey := newJWTService("another_secret", time.Hour, time.Now)
	foreign, err := otherKey.IssueToken(userID)
	require.NoError(t, err)

	noneSigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"userId": userID.String(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"userId": userID.String(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID.String(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":         "",
		"garbage":       "clearly-not-a-jwt-token-format",
		"wrong secret":  foreign,
		"alg none":      noneSigned,
		"other hmac":    hs512,
		"missing exp":   noExpiry,
		"missing claim": noUser,
	} {
		t.Run(name, func(t *testing.T) {
			got, ok := svc.ValidateToken(token)
			assert.False(t, ok)
			assert.Equal(t, uuid.Nil, got)
		})
	}
}

func TestNewJWTService_DevelopmentSecret(t *testing.T) {
	svc := NewJWTService(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	assert.Equal(t, []byte(developmentSecret), impl.secret)
	assert.Equal(t, time.Hour, impl.ttl)
}
