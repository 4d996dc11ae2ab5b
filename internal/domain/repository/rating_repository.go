// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// Domain-specific errors for the rating ledger.
var (
	// ErrRatingNotFound is returned when a rating is not found.
	ErrRatingNotFound = errors.New("rating not found")
	// ErrDuplicateRating is returned when an active rating for the same
	// (user, product) pair already exists. Uniqueness is enforced at the
	// ledger boundary: a pre-check plus a partial unique index on the table.
	ErrDuplicateRating = errors.New("active rating already exists for this user and product")
)

// RatingRepository is the append-only-ish ledger of individual grade
// submissions. Rows are soft-deleted, never removed.
type RatingRepository interface {
	// Create persists a new active rating and fills in the generated ID.
	// Returns ErrDuplicateRating when an active rating for the same
	// (user, product) pair exists.
	Create(ctx context.Context, rating *entity.Rating) error

	// FindByID retrieves a rating by ID, inactive ratings included.
	FindByID(ctx context.Context, id int64) (*entity.Rating, error)

	// FindActiveByUserAndProduct retrieves the active rating one user holds
	// for one product, or ErrRatingNotFound.
	FindActiveByUserAndProduct(ctx context.Context, userID, productID int64) (*entity.Rating, error)

	// Deactivate soft-deletes a rating. Deactivating an already-inactive
	// rating is a no-op, not an error.
	Deactivate(ctx context.Context, id int64) error

	// AverageForProduct computes the mean grade over active ratings for the
	// product. Returns nil, not zero, when no active ratings exist.
	AverageForProduct(ctx context.Context, productID int64) (*float64, error)
}
