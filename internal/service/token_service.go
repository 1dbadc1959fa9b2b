package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
)

// TokenService issues and verifies stateless session tokens.
// Tokens are HS256-signed JWTs carrying the user ID as subject.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string

	// now is swappable in tests
	now func() time.Time
}

// NewTokenService creates a TokenService with the given signing secret and TTL
func NewTokenService(secret string, ttl time.Duration, issuer string) *TokenService {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
}

// TTL returns the configured token lifetime
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed token for the given user ID
func (s *TokenService) Issue(userID string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	if s.issuer != "" {
		claims["iss"] = s.issuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. It returns ErrTokenExpired for
// structurally valid but expired tokens, and ErrTokenMalformed for anything
// else that fails parsing or signature verification.
func (s *TokenService) Verify(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, ErrTokenMalformed
	}

	iat, err := claims.GetIssuedAt()
	if err != nil || iat == nil {
		return nil, ErrTokenMalformed
	}

	return &domain.TokenClaims{
		UserID:   sub,
		IssuedAt: iat.Time,
	}, nil
}
