package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// ToggleSupplierOutput reports the role a target user holds after toggling.
type ToggleSupplierOutput struct {
	UserID int64
	Role   entity.Role
}

// PermissionUsecase defines admin-only role and lifecycle operations on users.
type PermissionUsecase interface {
	// ToggleSupplier flips a user between customer and supplier.
	// Administrators cannot be toggled.
	ToggleSupplier(ctx context.Context, caller entity.Identity, userID int64) (*ToggleSupplierOutput, error)

	// DeactivateUser soft-deletes a user. Administrators cannot be deactivated.
	DeactivateUser(ctx context.Context, caller entity.Identity, userID int64) error
}
