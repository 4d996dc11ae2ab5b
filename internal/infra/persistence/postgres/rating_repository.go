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

// ratingRepository implements the domain.RatingRepository interface using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Create persists a new active rating and fills in the generated ID.
// The partial unique index on (user_id, product_id) where is_active catches
// the race two concurrent submissions can produce; the violation is mapped
// to ErrDuplicateRating so callers see one error either way.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRating
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrGradeOutOfRange
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID

	return nil
}

// FindByID retrieves a rating by ID, inactive ratings included.
func (repo *ratingRepository) FindByID(ctx context.Context, id int64) (*entity.Rating, error) {
	var ratingM model.RatingModel
	if err := repo.db.WithContext(ctx).First(&ratingM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating by id")
	}

	return toRatingDomain(&ratingM), nil
}

// FindActiveByUserAndProduct retrieves the active rating one user holds for
// one product, or ErrRatingNotFound.
func (repo *ratingRepository) FindActiveByUserAndProduct(ctx context.Context, userID, productID int64) (*entity.Rating, error) {
	var ratingM model.RatingModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND is_active = ?", userID, productID, true).
		First(&ratingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating by user and product")
	}

	return toRatingDomain(&ratingM), nil
}

// Deactivate soft-deletes a rating. Deactivating an already-inactive rating
// is a no-op, not an error.
func (repo *ratingRepository) Deactivate(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("id = ?", id).
		Update("is_active", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate rating")
	}

	return nil
}

// AverageForProduct computes the mean grade over active ratings for the
// product. Returns nil when no active ratings exist, so callers can
// distinguish "no ratings" from a genuine 0 and write the sentinel explicitly.
func (repo *ratingRepository) AverageForProduct(ctx context.Context, productID int64) (*float64, error) {
	var average *float64
	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("AVG(grade)").
		Where("product_id = ? AND is_active = ?", productID, true).
		Scan(&average).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute average rating")
	}

	return average, nil
}

// toRatingDomain converts a GORM RatingModel to a domain Rating entity.
func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:        data.ID,
		Grade:     data.Grade,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		IsActive:  data.IsActive,
	}
}

// fromRatingDomain converts a domain Rating entity to a GORM RatingModel.
func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		ID:        data.ID,
		Grade:     data.Grade,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		IsActive:  data.IsActive,
	}
}
