package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(userRepo, hasher, tokenService, logger)

	return accountServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, input.Username, user.Username)
			assert.Equal(t, "hashed_password", user.HashedPassword)
			assert.Equal(t, entity.RoleCustomer, user.Role)
			assert.True(t, user.IsActive)
			user.ID = 42
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(42), output.User.ID)
	assert.Equal(t, input.Email, output.User.Email)
}

func TestAccountService_Register_DuplicateUser(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_Register_HashError(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Username: "ada", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to hash password")
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "ada", Password: "Password123!"}
	user := &entity.User{
		ID:             42,
		Username:       "ada",
		HashedPassword: "hashed_password",
		Role:           entity.RoleCustomer,
		IsActive:       true,
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.HashedPassword).Return(true)
	fx.tokenService.EXPECT().GenerateToken(user).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
}

// Unknown usernames, wrong passwords and deactivated accounts must be
// indistinguishable to the caller.
func TestAccountService_Login_UniformFailure(t *testing.T) {
	ctx := context.Background()
	input := &usecase.LoginInput{Username: "ada", Password: "Password123!"}

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.userRepo.EXPECT().
			FindByUsername(ctx, input.Username).
			Return(nil, repository.ErrUserNotFound)

		output, err := fx.service.Login(ctx, input)

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)

		user := &entity.User{ID: 42, Username: "ada", HashedPassword: "hashed_password", IsActive: true}
		fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(user, nil)
		fx.hasher.EXPECT().Check(input.Password, user.HashedPassword).Return(false)

		output, err := fx.service.Login(ctx, input)

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("deactivated account", func(t *testing.T) {
		fx := createTestAccountService(t)

		user := &entity.User{ID: 42, Username: "ada", HashedPassword: "hashed_password", IsActive: false}
		fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(user, nil)

		output, err := fx.service.Login(ctx, input)

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAccountService_Login_TokenError(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "ada", Password: "Password123!"}
	user := &entity.User{ID: 42, Username: "ada", HashedPassword: "hashed_password", IsActive: true}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.HashedPassword).Return(true)
	fx.tokenService.EXPECT().GenerateToken(user).Return("", errors.New("signing error"))

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to generate access token")
}
