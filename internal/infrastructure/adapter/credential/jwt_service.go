package credential

import (
	"errors"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v4"
)

// DefaultTokenTTL is used when no lifetime is configured
const DefaultTokenTTL = 12 * time.Hour

// claims carried by every bearer token
type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 bearer tokens
type JWTService struct {
	secret       []byte
	ttl          time.Duration
	timeProvider core.TimeProvider
}

// NewJWTService creates a token service signing with secret
func NewJWTService(secret string, ttl time.Duration, timeProvider core.TimeProvider) (core.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// Issue signs a token for email
func (s *JWTService) Issue(email string) (string, error) {
	now := s.timeProvider.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the email claim
func (s *JWTService) Verify(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errs.ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.Email == "" {
		return "", errs.ErrInvalidToken
	}
	return c.Email, nil
}
