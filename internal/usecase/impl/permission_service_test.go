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
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// permissionServiceFixtures holds all test dependencies for permission service tests.
type permissionServiceFixtures struct {
	service  usecase.PermissionUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestPermissionService(t *testing.T) permissionServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPermissionService(userRepo, logger)

	return permissionServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestPermissionService_ToggleSupplier_CustomerBecomesSupplier(t *testing.T) {
	fx := createTestPermissionService(t)

	ctx := context.Background()
	target := &entity.User{ID: 7, Username: "vendor", Role: entity.RoleCustomer, IsActive: true}

	fx.userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.userRepo.EXPECT().UpdateRole(ctx, target.ID, entity.RoleSupplier).Return(nil)

	output, err := fx.service.ToggleSupplier(ctx, adminIdentity(), target.ID)

	require.NoError(t, err)
	assert.Equal(t, target.ID, output.UserID)
	assert.Equal(t, entity.RoleSupplier, output.Role)
}

func TestPermissionService_ToggleSupplier_SupplierBecomesCustomer(t *testing.T) {
	fx := createTestPermissionService(t)

	ctx := context.Background()
	target := &entity.User{ID: 7, Username: "vendor", Role: entity.RoleSupplier, IsActive: true}

	fx.userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.userRepo.EXPECT().UpdateRole(ctx, target.ID, entity.RoleCustomer).Return(nil)

	output, err := fx.service.ToggleSupplier(ctx, adminIdentity(), target.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, output.Role)
}

func TestPermissionService_ToggleSupplier_NonAdminForbidden(t *testing.T) {
	fx := createTestPermissionService(t)

	ctx := context.Background()

	output, err := fx.service.ToggleSupplier(ctx, customerIdentity(), 7)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPermissionService_ToggleSupplier_AdminTargetForbidden(t *testing.T) {
	fx := createTestPermissionService(t)

	ctx := context.Background()
	target := &entity.User{ID: 2, Username: "other-admin", Role: entity.RoleAdmin, IsActive: true}

	fx.userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

	output, err := fx.service.ToggleSupplier(ctx, adminIdentity(), target.ID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPermissionService_ToggleSupplier_TargetNotFound(t *testing.T) {
	ctx := context.Background()

	t.Run("missing user", func(t *testing.T) {
		fx := createTestPermissionService(t)

		fx.userRepo.EXPECT().
			FindByID(ctx, int64(404)).
			Return(nil, repository.ErrUserNotFound)

		output, err := fx.service.ToggleSupplier(ctx, adminIdentity(), 404)

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})

	t.Run("deactivated user", func(t *testing.T) {
		fx := createTestPermissionService(t)

		target := &entity.User{ID: 7, Username: "gone", Role: entity.RoleCustomer, IsActive: false}
		fx.userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

		output, err := fx.service.ToggleSupplier(ctx, adminIdentity(), target.ID)

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}

func TestPermissionService_DeactivateUser_Success(t *testing.T) {
	fx := createTestPermissionService(t)

	ctx := context.Background()
	target := &entity.User{ID: 7, Username: "vendor", Role: entity.RoleSupplier, IsActive: true}

	fx.userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.userRepo.EXPECT().Deactivate(ctx, target.ID).Return(nil)

	err := fx.service.DeactivateUser(ctx, adminIdentity(), target.ID)

	require.NoError(t, err)
}

func TestPermissionService_DeactivateUser_NonAdminForbidden(t *testing.T) {
	fx := createTestPermissionService(t)

	ctx := context.Background()

	err := fx.service.DeactivateUser(ctx, customerIdentity(), 7)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPermissionService_DeactivateUser_AdminTargetForbidden(t *testing.T) {
	fx := createTestPermissionService(t)

	ctx := context.Background()
	target := &entity.User{ID: 2, Username: "other-admin", Role: entity.RoleAdmin, IsActive: true}

	fx.userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

	err := fx.service.DeactivateUser(ctx, adminIdentity(), target.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPermissionService_DeactivateUser_UpdateError(t *testing.T) {
	fx := createTestPermissionService(t)

	ctx := context.Background()
	target := &entity.User{ID: 7, Username: "vendor", Role: entity.RoleCustomer, IsActive: true}

	fx.userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.userRepo.EXPECT().Deactivate(ctx, target.ID).Return(errors.New("db error"))

	err := fx.service.DeactivateUser(ctx, adminIdentity(), target.ID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to deactivate user")
}
