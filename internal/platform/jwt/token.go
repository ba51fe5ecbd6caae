// Package jwtmw provides JWT issuance, verification and the Gin
// middleware that guards protected routes.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid is returned for tokens that are malformed, carry a
	// bad signature, or use an unexpected signing algorithm.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired is returned for well-formed tokens whose expiry has
	// passed.
	ErrTokenExpired = errors.New("token expired")
)

// Claims carries the verified identity facts embedded in a token.
type Claims struct {
	UserID uint
	Email  string
	Role   string
}

// Service signs and verifies HS256 tokens. The secret and TTL are fixed
// at construction; rotating the secret invalidates every outstanding
// token.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service with the provided signing secret
// and token lifetime.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken creates a signed JWT carrying the user's id, email and
// role, expiring after the service's TTL.
func (s *Service) GenerateToken(userID uint, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry of a token string and
// returns its claims. Expired tokens yield ErrTokenExpired; every other
// failure, including malformed input, yields ErrTokenInvalid.
func (s *Service) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is a forgery attempt.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	sub, ok := mc["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return nil, ErrTokenInvalid
	}

	claims := &Claims{UserID: uint(sub)}
	if email, ok := mc["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mc["role"].(string); ok {
		claims.Role = role
	}
	return claims, nil
}
