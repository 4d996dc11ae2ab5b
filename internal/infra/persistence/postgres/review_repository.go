package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the domain.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new active review and fills in the generated ID.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRatingNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID

	return nil
}

// FindActiveByID retrieves an active review by its unique ID.
// Already-retracted reviews surface as ErrReviewNotFound.
func (repo *reviewRepository) FindActiveByID(ctx context.Context, id int64) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// ListActive retrieves all active reviews, newest first.
func (repo *reviewRepository) ListActive(ctx context.Context) ([]*entity.Review, error) {
	var reviewMs []*model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("comment_date DESC").
		Find(&reviewMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return toReviewDomainSlice(reviewMs), nil
}

// ListActiveByProduct retrieves active reviews for a product, newest first.
func (repo *reviewRepository) ListActiveByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	var reviewMs []*model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("product_id = ? AND is_active = ?", productID, true).
		Order("comment_date DESC").
		Find(&reviewMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by product")
	}

	return toReviewDomainSlice(reviewMs), nil
}

// DeactivateByRating soft-deletes any active reviews linked to a rating.
func (repo *reviewRepository) DeactivateByRating(ctx context.Context, ratingID int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("rating_id = ? AND is_active = ?", ratingID, true).
		Update("is_active", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate reviews by rating")
	}

	return nil
}

// Deactivate soft-deletes a review. Idempotent.
func (repo *reviewRepository) Deactivate(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Update("is_active", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate review")
	}

	return nil
}

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:          data.ID,
		UserID:      data.UserID,
		ProductID:   data.ProductID,
		RatingID:    data.RatingID,
		Comment:     data.Comment,
		CommentDate: data.CommentDate,
		IsActive:    data.IsActive,
	}
}

func toReviewDomainSlice(data []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(data))
	for _, reviewM := range data {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:          data.ID,
		UserID:      data.UserID,
		ProductID:   data.ProductID,
		RatingID:    data.RatingID,
		Comment:     data.Comment,
		CommentDate: data.CommentDate,
		IsActive:    data.IsActive,
	}
}
