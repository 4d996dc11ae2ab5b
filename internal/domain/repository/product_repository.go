// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found or inactive.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProduct is returned when a product slug is already taken.
	ErrDuplicateProduct = errors.New("product already exists")
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// FindActiveByID retrieves an active product by its unique ID.
	FindActiveByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindBySlug retrieves a product by its slug, inactive products included.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// ListAvailable retrieves active products with stock remaining.
	ListAvailable(ctx context.Context) ([]*entity.Product, error)

	// ListByCategories retrieves available products belonging to any of the given categories.
	ListByCategories(ctx context.Context, categoryIDs []int64) ([]*entity.Product, error)

	// Create persists a new product and fills in the generated ID.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// UpdateRating writes the derived aggregate rating onto the product row.
	// Callers decide the value explicitly; the 0.0 sentinel is written when no
	// active ratings remain, never left stale.
	UpdateRating(ctx context.Context, id int64, rating float64) error

	// Deactivate soft-deletes a product. Idempotent.
	Deactivate(ctx context.Context, id int64) error
}
