// Package middleware contains the Echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// identityContextKey is the Echo context key the decoded identity is stored under.
const identityContextKey = "identity"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
// The decoded identity is set on the Echo context for handlers to read back via
// IdentityFromContext.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthenticated.WrapMessage("invalid token format, must be Bearer token")
		}

		identity, err := m.tokenSvc.DecodeIdentity(tokenString)
		if err != nil {
			// DecodeIdentity already distinguishes bad tokens from
			// well-signed tokens missing claims.
			return err
		}

		c.Set(identityContextKey, *identity)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller holds a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFromContext(c)
			if !ok {
				return domainerrors.ErrForbidden.WrapMessage("role information missing")
			}

			if identity.Role != requiredRole {
				return domainerrors.ErrForbidden.WrapMessage("require '" + string(requiredRole) + "' role")
			}

			return next(c)
		}
	}
}

// IdentityFromContext reads back the identity Authenticate stored on the context.
func IdentityFromContext(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(entity.Identity)

	return identity, ok
}
