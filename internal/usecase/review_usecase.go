// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// SubmitReviewInput defines the data required to submit a review.
type SubmitReviewInput struct {
	ProductID int64
	Grade     int
	Comment   string
}

// SubmitReviewOutput returns the identifiers created by a submit-review workflow.
type SubmitReviewOutput struct {
	ReviewID      int64
	RatingID      int64
	ProductRating float64
}

// ReviewUsecase defines the interface for the review lifecycle workflows.
// Submit and retract are transactional: either every ledger mutation and the
// aggregate recomputation commit together, or none of them do.
type ReviewUsecase interface {
	// SubmitReview runs the submit-review workflow for the calling customer.
	SubmitReview(ctx context.Context, caller entity.Identity, input SubmitReviewInput) (*SubmitReviewOutput, error)

	// RetractReview runs the retract-review workflow. Admin only.
	RetractReview(ctx context.Context, caller entity.Identity, reviewID int64) error

	// ListReviews retrieves all active reviews.
	ListReviews(ctx context.Context) ([]*entity.Review, error)

	// ListProductReviews retrieves active reviews for one product.
	ListProductReviews(ctx context.Context, productID int64) ([]*entity.Review, error)
}
