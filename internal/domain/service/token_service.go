package service

import (
	"bazaar/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens. Subject holds
// the username, UserID the numeric identity, Role the single closed role.
type Claims struct {
	UserID int64
	Role   entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and decoding bearer
// credentials. Decoding is a pure operation: no storage lookups, the identity
// is reconstructed entirely from the token payload.
type TokenService interface {
	// GenerateToken creates a signed access token for a user.
	GenerateToken(user *entity.User) (string, error)

	// DecodeIdentity validates a token string and reconstructs the caller's
	// identity. Missing, expired or badly signed tokens fail with
	// ErrUnauthenticated; tokens whose signature verifies but whose required
	// claims (sub, id) are absent fail with ErrMalformedCredential.
	DecodeIdentity(tokenString string) (*entity.Identity, error)
}
