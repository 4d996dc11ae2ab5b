package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PermissionHandler holds dependencies for admin user-management handlers.
type PermissionHandler struct {
	uc     usecase.PermissionUsecase
	logger *slog.Logger
}

// NewPermissionHandler is the constructor for PermissionHandler, injected by Fx.
func NewPermissionHandler(uc usecase.PermissionUsecase, logger *slog.Logger) *PermissionHandler {
	return &PermissionHandler{
		uc:     uc,
		logger: logger,
	}
}

// ToggleSupplier flips a user between customer and supplier. Admin only.
func (h *PermissionHandler) ToggleSupplier(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	output, err := h.uc.ToggleSupplier(c.Request().Context(), identity, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "User role updated successfully")
}

// DeactivateUser soft-deletes a user. Admin only.
func (h *PermissionHandler) DeactivateUser(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if err := h.uc.DeactivateUser(c.Request().Context(), identity, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"user_id": userID}, "User deactivated successfully")
}
