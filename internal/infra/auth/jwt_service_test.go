package auth

import (
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		SecretKey: struct {
			Access string `json:"access" yaml:"access"`
		}{
			Access: "test_access_secret_key_very_long_for_testing",
		},
	}
}

func TestJWTService_GenerateAndDecode(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	user := &entity.User{
		ID:       42,
		Username: "ada",
		Role:     entity.RoleSupplier,
	}

	token, err := jwtService.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := jwtService.DecodeIdentity(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, user.Username, identity.Username)
	assert.Equal(t, entity.RoleSupplier, identity.Role)
}

func TestJWTService_MissingSecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_GarbageToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	identity, err := jwtService.DecodeIdentity("clearly-not-a-jwt-token-format")

	assert.Nil(t, identity)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: -time.Minute}
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(&entity.User{ID: 42, Username: "ada", Role: entity.RoleCustomer})
	require.NoError(t, err)

	identity, err := jwtService.DecodeIdentity(token)

	assert.Nil(t, identity)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_material"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := otherService.GenerateToken(&entity.User{ID: 42, Username: "ada", Role: entity.RoleCustomer})
	require.NoError(t, err)

	identity, err := jwtService.DecodeIdentity(token)

	assert.Nil(t, identity)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

// Tokens whose signature verifies but whose identity claims are incomplete
// are malformed, not merely unauthenticated.
func TestJWTService_IncompleteClaims(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	sign := func(claims jwt.MapClaims) string {
		claims["iat"] = time.Now().Unix()
		claims["exp"] = time.Now().Add(time.Hour).Unix()
		token, signErr := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, signErr)

		return token
	}

	cases := map[string]jwt.MapClaims{
		"missing sub":  {"id": 42, "role": "customer"},
		"missing id":   {"sub": "ada", "role": "customer"},
		"missing role": {"sub": "ada", "id": 42},
		"unknown role": {"sub": "ada", "id": 42, "role": "auditor"},
	}

	for name, claims := range cases {
		t.Run(name, func(t *testing.T) {
			identity, decodeErr := jwtService.DecodeIdentity(sign(claims))

			assert.Nil(t, identity)
			assert.True(t, errors.Is(decodeErr, domainerrors.ErrMalformedCredential))
		})
	}
}
