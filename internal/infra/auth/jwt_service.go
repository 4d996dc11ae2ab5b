// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const defaultAccessTTL = 20 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string
	accessTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	accessTTL := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		accessTTL = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: accessTTL,
	}, nil
}

// GenerateToken creates a signed access token carrying the user's identity
// and role claims. Role changes take effect at the next issuance; the short
// TTL bounds how long stale role claims survive.
func (s *jwtService) GenerateToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"id":   user.ID,
		"role": user.Role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// DecodeIdentity validates a token string and reconstructs the caller's
// identity. It is a pure decode: no storage lookups.
func (s *jwtService) DecodeIdentity(tokenString string) (*entity.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("token rejected")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("unexpected claims type")
	}

	// The signature verified; from here on a missing required claim is a
	// structurally incomplete credential, not a bad one.
	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return nil, domainerrors.ErrMalformedCredential.WrapMessage("sub claim missing")
	}

	userIDValue, ok := claims["id"].(float64)
	if !ok {
		return nil, domainerrors.ErrMalformedCredential.WrapMessage("id claim missing")
	}

	roleValue, _ := claims["role"].(string)
	role, valid := entity.RoleFromString(roleValue)
	if !valid {
		return nil, domainerrors.ErrMalformedCredential.WrapMessage("role claim missing or unknown")
	}

	return &entity.Identity{
		UserID:   int64(userIDValue),
		Username: username,
		Role:     role,
	}, nil
}
