package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
)

// permissionService implements the PermissionUsecase interface.
type permissionService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewPermissionService is the constructor for permissionService.
func NewPermissionService(userRepo repository.UserRepository, logger *slog.Logger) usecase.PermissionUsecase {
	return &permissionService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ToggleSupplier flips a user between customer and supplier roles.
func (srv *permissionService) ToggleSupplier(ctx context.Context, caller entity.Identity, userID int64) (*usecase.ToggleSupplierOutput, error) {
	if !caller.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only admin can change permissions")
	}

	user, err := srv.findActiveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var next entity.Role
	switch user.Role {
	case entity.RoleSupplier:
		next = entity.RoleCustomer
	case entity.RoleCustomer:
		next = entity.RoleSupplier
	case entity.RoleAdmin:
		return nil, domainerrors.ErrForbidden.WrapMessage("admin role cannot be toggled")
	default:
		return nil, domainerrors.ErrInternalError.WrapMessage("user holds an unknown role")
	}

	if err := srv.userRepo.UpdateRole(ctx, user.ID, next); err != nil {
		return nil, errors.Wrap(err, "failed to update role")
	}

	srv.logger.Info("User role toggled",
		slog.Int64("userID", user.ID),
		slog.String("role", next.String()),
	)

	return &usecase.ToggleSupplierOutput{UserID: user.ID, Role: next}, nil
}

// DeactivateUser soft-deletes a user account.
func (srv *permissionService) DeactivateUser(ctx context.Context, caller entity.Identity, userID int64) error {
	if !caller.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("only admin can deactivate users")
	}

	user, err := srv.findActiveUser(ctx, userID)
	if err != nil {
		return err
	}

	if user.Role == entity.RoleAdmin {
		return domainerrors.ErrForbidden.WrapMessage("admin users cannot be deactivated")
	}

	if err := srv.userRepo.Deactivate(ctx, user.ID); err != nil {
		return errors.Wrap(err, "failed to deactivate user")
	}

	srv.logger.Info("User deactivated", slog.Int64("userID", user.ID))

	return nil
}

// findActiveUser resolves a target user; missing and already-deactivated
// targets both surface as NotFound.
func (srv *permissionService) findActiveUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("target user missing")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("target user is deactivated")
	}

	return user, nil
}
