// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// Domain-specific errors for category persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found or inactive.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned when a category slug is already taken.
	ErrDuplicateCategory = errors.New("category already exists")
)

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// FindActiveByID retrieves an active category by its unique ID.
	FindActiveByID(ctx context.Context, id int64) (*entity.Category, error)

	// FindActiveBySlug retrieves an active category by its slug.
	FindActiveBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// ListActive retrieves all active categories.
	ListActive(ctx context.Context) ([]*entity.Category, error)

	// ListChildren retrieves the IDs of the direct children of a category.
	ListChildren(ctx context.Context, parentID int64) ([]int64, error)

	// Create persists a new category and fills in the generated ID.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Deactivate soft-deletes a category. Idempotent.
	Deactivate(ctx context.Context, id int64) error
}
