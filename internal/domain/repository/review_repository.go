// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// ErrReviewNotFound is returned when a review is not found or inactive.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository stores textual comments, each linked 1:1 to a rating
// ledger entry.
type ReviewRepository interface {
	// Create persists a new active review and fills in the generated ID.
	Create(ctx context.Context, review *entity.Review) error

	// FindActiveByID retrieves an active review by its unique ID.
	// Already-retracted reviews surface as ErrReviewNotFound.
	FindActiveByID(ctx context.Context, id int64) (*entity.Review, error)

	// ListActive retrieves all active reviews, newest first.
	ListActive(ctx context.Context) ([]*entity.Review, error)

	// ListActiveByProduct retrieves active reviews for a product, newest first.
	ListActiveByProduct(ctx context.Context, productID int64) ([]*entity.Review, error)

	// DeactivateByRating soft-deletes any active reviews linked to a rating.
	// Used when a resubmission replaces an earlier rating.
	DeactivateByRating(ctx context.Context, ratingID int64) error

	// Deactivate soft-deletes a review. Idempotent.
	Deactivate(ctx context.Context, id int64) error
}
