package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"wishlist/config"
	"wishlist/internal/domain/service"
)

// developmentSecret signs tokens when no secret is configured. Never rely on it outside local development.
const developmentSecret = "wishlist-development-secret"

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, logger *slog.Logger) service.TokenService {
	secret := cfg.JWT.Secret
	if secret == "" {
		logger.Warn("jwt secret is not configured, using the development default")
		secret = developmentSecret
	}

	return newJWTService(secret, cfg.JWT.TTL, time.Now)
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) *jwtService {
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

// IssueToken signs a token carrying userID that expires after the configured TTL.
func (s *jwtService) IssueToken(userID uuid.UUID) (string, error) {
	issuedAt := s.now()
	claims := service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// ValidateToken checks signature and expiry. Failures never leave this method as errors.
func (s *jwtService) ValidateToken(tokenString string) (uuid.UUID, bool) {
	if tokenString == "" {
		return uuid.Nil, false
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, false
	}

	if claims.UserID == uuid.Nil {
		return uuid.Nil, false
	}

	return claims.UserID, true
}
