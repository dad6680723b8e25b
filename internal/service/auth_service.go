//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and validates the bearer tokens that guard the API
// when an auth secret is configured. With no secret the API stays open.
type AuthService interface {
	Enabled() bool
	GenerateToken(ttl time.Duration) (string, error)
	ValidateToken(token string) (bool, error)
}

type authService struct {
	secret []byte
}

func NewAuthService(secret string) AuthService {
	return &authService{secret: []byte(secret)}
}

func (s *authService) Enabled() bool {
	return len(s.secret) > 0
}

func (s *authService) GenerateToken(ttl time.Duration) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("%w: auth secret not configured", ErrInvalid)
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "summarizer",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *authService) ValidateToken(token string) (bool, error) {
	if !s.Enabled() {
		return false, nil
	}
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return false, err
	}
	return parsed.Valid, nil
}
