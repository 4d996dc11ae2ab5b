// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface. It is the only writer
// of Review/Rating pairs, which is what keeps the cross-table invariant
// (review and rating agree on user and product) intact.
type reviewService struct {
	txManager         repository.TransactionManager
	reviewRepo        repository.ReviewRepository
	publisher         service.EventPublisher
	allowResubmission bool
	logger            *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	reviewRepo repository.ReviewRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	allowResubmission := false
	if cfg != nil && cfg.Review != nil {
		allowResubmission = cfg.Review.AllowResubmission
	}

	return &reviewService{
		txManager:         txManager,
		reviewRepo:        reviewRepo,
		publisher:         publisher,
		allowResubmission: allowResubmission,
		logger:            logger,
	}
}

// SubmitReview runs the submit-review workflow: authorize, check the product,
// insert the rating and its review, recompute the product's aggregate rating.
// All mutations commit as one unit; a failure at any step leaves no partial effect.
func (srv *reviewService) SubmitReview(ctx context.Context, caller entity.Identity, input usecase.SubmitReviewInput) (*usecase.SubmitReviewOutput, error) {
	switch caller.Role {
	case entity.RoleCustomer:
		// Only plain customers may submit reviews.
	case entity.RoleAdmin, entity.RoleSupplier:
		return nil, domainerrors.ErrForbidden.WrapMessage("only customers can add reviews")
	default:
		return nil, domainerrors.ErrForbidden.WrapMessage("unknown role")
	}

	if !entity.GradeInRange(input.Grade) {
		return nil, domainerrors.ErrGradeOutOfRange.WrapMessage("grade rejected")
	}

	var out usecase.SubmitReviewOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		ratingRepo := repoFactory.RatingRepo()
		reviewRepo := repoFactory.ReviewRepo()

		product, err := productRepo.FindActiveByID(ctx, input.ProductID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product missing or inactive")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find product")
		}

		if srv.allowResubmission {
			if err := srv.retirePriorRating(ctx, ratingRepo, reviewRepo, caller.UserID, product.ID); err != nil {
				return err
			}
		}

		rating := &entity.Rating{
			Grade:     input.Grade,
			UserID:    caller.UserID,
			ProductID: product.ID,
			IsActive:  true,
		}
		if err := ratingRepo.Create(ctx, rating); err != nil {
			if errors.Is(err, repository.ErrDuplicateRating) {
				return domainerrors.ErrDuplicateRating.WrapMessage("resubmission is disabled")
			}

			return errors.Wrap(err, "failed to create rating")
		}

		review := &entity.Review{
			UserID:      caller.UserID,
			ProductID:   product.ID,
			RatingID:    rating.ID,
			Comment:     input.Comment,
			CommentDate: time.Now().UTC(),
			IsActive:    true,
		}
		if err := reviewRepo.Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		aggregate, err := recomputeProductRating(ctx, ratingRepo, productRepo, product.ID)
		if err != nil {
			return err
		}

		out = usecase.SubmitReviewOutput{
			ReviewID:      review.ID,
			RatingID:      rating.ID,
			ProductRating: aggregate,
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Submit-review workflow failed",
			slog.Int64("userID", caller.UserID),
			slog.Int64("productID", input.ProductID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.publishEvent(ctx, &service.ReviewEvent{
		EventType:     constants.ReviewEventSubmitted,
		ReviewID:      out.ReviewID,
		RatingID:      out.RatingID,
		ProductID:     input.ProductID,
		UserID:        caller.UserID,
		Grade:         input.Grade,
		ProductRating: out.ProductRating,
		OccurredAt:    time.Now().UTC(),
	})

	return &out, nil
}

// RetractReview runs the retract-review workflow: deactivate the review, its
// linked rating, and recompute the product's aggregate, in one transaction.
// Retracting an already-inactive review is consistently NotFound.
func (srv *reviewService) RetractReview(ctx context.Context, caller entity.Identity, reviewID int64) error {
	if !caller.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("only admin can delete reviews")
	}

	var event service.ReviewEvent
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()
		ratingRepo := repoFactory.RatingRepo()
		productRepo := repoFactory.ProductRepo()

		review, err := reviewRepo.FindActiveByID(ctx, reviewID)
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound.WrapMessage("review missing or already retracted")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find review")
		}

		rating, err := ratingRepo.FindByID(ctx, review.RatingID)
		if err != nil {
			return errors.Wrap(err, "failed to find linked rating")
		}

		if err := reviewRepo.Deactivate(ctx, review.ID); err != nil {
			return errors.Wrap(err, "failed to deactivate review")
		}
		if err := ratingRepo.Deactivate(ctx, rating.ID); err != nil {
			return errors.Wrap(err, "failed to deactivate rating")
		}

		// The aggregate is recomputed from the rating's product, not the
		// review's; the pair must agree by invariant.
		aggregate, err := recomputeProductRating(ctx, ratingRepo, productRepo, rating.ProductID)
		if err != nil {
			return err
		}

		event = service.ReviewEvent{
			EventType:     constants.ReviewEventRetracted,
			ReviewID:      review.ID,
			RatingID:      rating.ID,
			ProductID:     rating.ProductID,
			UserID:        review.UserID,
			ProductRating: aggregate,
			OccurredAt:    time.Now().UTC(),
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Retract-review workflow failed",
			slog.Int64("reviewID", reviewID),
			slog.Any("error", err),
		)

		return err
	}

	srv.publishEvent(ctx, &event)

	return nil
}

// ListReviews retrieves all active reviews.
func (srv *reviewService) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// ListProductReviews retrieves active reviews for a product.
func (srv *reviewService) ListProductReviews(ctx context.Context, productID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListActiveByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	return reviews, nil
}

// retirePriorRating deactivates an earlier active rating for (user, product)
// and its reviews, so a resubmission replaces rather than duplicates.
func (srv *reviewService) retirePriorRating(
	ctx context.Context,
	ratingRepo repository.RatingRepository,
	reviewRepo repository.ReviewRepository,
	userID, productID int64,
) error {
	prior, err := ratingRepo.FindActiveByUserAndProduct(ctx, userID, productID)
	if errors.Is(err, repository.ErrRatingNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find prior rating")
	}

	if err := reviewRepo.DeactivateByRating(ctx, prior.ID); err != nil {
		return errors.Wrap(err, "failed to retire prior reviews")
	}
	if err := ratingRepo.Deactivate(ctx, prior.ID); err != nil {
		return errors.Wrap(err, "failed to retire prior rating")
	}

	return nil
}

// recomputeProductRating derives the product's displayed rating from the
// active ratings ledger and persists it. When no active ratings remain the
// 0.0 sentinel is written explicitly, never left stale or null.
func recomputeProductRating(
	ctx context.Context,
	ratingRepo repository.RatingRepository,
	productRepo repository.ProductRepository,
	productID int64,
) (float64, error) {
	average, err := ratingRepo.AverageForProduct(ctx, productID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to compute rating average")
	}

	value := 0.0
	if average != nil {
		value = *average
	}

	if err := productRepo.UpdateRating(ctx, productID, value); err != nil {
		return 0, errors.Wrap(err, "failed to persist aggregate rating")
	}

	return value, nil
}

// publishEvent emits a review lifecycle event after the transaction has
// committed. Publishing is best-effort: a failure is logged, never surfaced.
func (srv *reviewService) publishEvent(ctx context.Context, event *service.ReviewEvent) {
	if srv.publisher == nil {
		return
	}

	if event.RequestID == "" {
		event.RequestID = uuid.NewString()
	}

	if err := srv.publisher.PublishReviewEvent(context.WithoutCancel(ctx), event); err != nil {
		srv.logger.Warn("Failed to publish review event",
			slog.String("eventType", event.EventType),
			slog.Int64("reviewID", event.ReviewID),
			slog.Any("error", err),
		)
	}
}
