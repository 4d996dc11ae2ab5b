package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	t          *testing.T
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	reviewRepo *mockRepo.MockReviewRepository
	publisher  *mockSvc.MockEventPublisher
}

func createTestReviewService(t *testing.T, allowResubmission bool) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Review: &config.ReviewConfig{AllowResubmission: allowResubmission},
	}

	service := NewReviewService(txManager, reviewRepo, publisher, cfg, logger)

	return reviewServiceFixtures{
		t:          t,
		service:    service,
		txManager:  txManager,
		reviewRepo: reviewRepo,
		publisher:  publisher,
	}
}

// onExecute wires the transaction manager to hand the workflow a factory
// configured by setup, returning expectedErr the way a failed transaction would.
func (fx reviewServiceFixtures) onExecute(ctx context.Context, expectedErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(mockFactory)
			_ = fn(mockFactory)
		}).
		Return(expectedErr)
}

func customerIdentity() entity.Identity {
	return entity.Identity{UserID: 42, Username: "shopper", Role: entity.RoleCustomer}
}

func adminIdentity() entity.Identity {
	return entity.Identity{UserID: 1, Username: "root", Role: entity.RoleAdmin}
}

func TestReviewService_SubmitReview_Success(t *testing.T) {
	fx := createTestReviewService(t, false)

	ctx := context.Background()
	caller := customerIdentity()
	input := usecase.SubmitReviewInput{
		ProductID: 7,
		Grade:     4,
		Comment:   "Solid build quality",
	}
	average := 4.5

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockRatingRepo := mockRepo.NewMockRatingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().RatingRepo().Return(mockRatingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)

		mockProductRepo.EXPECT().
			FindActiveByID(ctx, input.ProductID).
			Return(&entity.Product{ID: input.ProductID, Name: "Kettle", IsActive: true}, nil)

		mockRatingRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Rating")).
			Run(func(ctx context.Context, rating *entity.Rating) {
				assert.Equal(t, caller.UserID, rating.UserID)
				assert.Equal(t, input.ProductID, rating.ProductID)
				assert.Equal(t, input.Grade, rating.Grade)
				assert.True(t, rating.IsActive)
				rating.ID = 11
			}).
			Return(nil)

		mockReviewRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Review")).
			Run(func(ctx context.Context, review *entity.Review) {
				assert.Equal(t, int64(11), review.RatingID)
				assert.Equal(t, input.Comment, review.Comment)
				assert.False(t, review.CommentDate.IsZero())
				review.ID = 23
			}).
			Return(nil)

		mockRatingRepo.EXPECT().
			AverageForProduct(ctx, input.ProductID).
			Return(&average, nil)
		mockProductRepo.EXPECT().
			UpdateRating(ctx, input.ProductID, average).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishReviewEvent(mock.Anything, mock.AnythingOfType("*service.ReviewEvent")).
		Run(func(ctx context.Context, event *service.ReviewEvent) {
			assert.Equal(t, "review.submitted", event.EventType)
			assert.Equal(t, int64(23), event.ReviewID)
			assert.Equal(t, average, event.ProductRating)
		}).
		Return(nil)

	output, err := fx.service.SubmitReview(ctx, caller, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(23), output.ReviewID)
	assert.Equal(t, int64(11), output.RatingID)
	assert.Equal(t, average, output.ProductRating)
}

func TestReviewService_SubmitReview_NonCustomerForbidden(t *testing.T) {
	callers := map[string]entity.Identity{
		"admin":    adminIdentity(),
		"supplier": {UserID: 9, Username: "vendor", Role: entity.RoleSupplier},
		"unknown":  {UserID: 9, Username: "ghost", Role: entity.Role("auditor")},
	}

	for name, caller := range callers {
		t.Run(name, func(t *testing.T) {
			fx := createTestReviewService(t, false)

			ctx := context.Background()
			input := usecase.SubmitReviewInput{ProductID: 7, Grade: 4, Comment: "nope"}

			// No transaction expectation: the role check must reject the
			// caller before any storage is touched.
			output, err := fx.service.SubmitReview(ctx, caller, input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
		})
	}
}

func TestReviewService_SubmitReview_GradeOutOfRange(t *testing.T) {
	for _, grade := range []int{0, -1, 6, 100} {
		fx := createTestReviewService(t, false)

		ctx := context.Background()
		input := usecase.SubmitReviewInput{ProductID: 7, Grade: grade, Comment: "meh"}

		output, err := fx.service.SubmitReview(ctx, customerIdentity(), input)

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrGradeOutOfRange))
	}
}

func TestReviewService_SubmitReview_ProductNotFound(t *testing.T) {
	fx := createTestReviewService(t, false)

	ctx := context.Background()
	input := usecase.SubmitReviewInput{ProductID: 404, Grade: 3, Comment: "where is it"}

	fx.onExecute(ctx, domainerrors.ErrProductNotFound.WrapMessage("product missing or inactive"), func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockRatingRepo := mockRepo.NewMockRatingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().RatingRepo().Return(mockRatingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)

		mockProductRepo.EXPECT().
			FindActiveByID(ctx, input.ProductID).
			Return(nil, repository.ErrProductNotFound)
	})

	output, err := fx.service.SubmitReview(ctx, customerIdentity(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestReviewService_SubmitReview_DuplicateRejected(t *testing.T) {
	fx := createTestReviewService(t, false)

	ctx := context.Background()
	input := usecase.SubmitReviewInput{ProductID: 7, Grade: 5, Comment: "again"}

	fx.onExecute(ctx, domainerrors.ErrDuplicateRating.WrapMessage("resubmission is disabled"), func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockRatingRepo := mockRepo.NewMockRatingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().RatingRepo().Return(mockRatingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)

		mockProductRepo.EXPECT().
			FindActiveByID(ctx, input.ProductID).
			Return(&entity.Product{ID: input.ProductID, IsActive: true}, nil)

		mockRatingRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Rating")).
			Return(repository.ErrDuplicateRating)
	})

	output, err := fx.service.SubmitReview(ctx, customerIdentity(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateRating))
}

func TestReviewService_SubmitReview_ResubmissionReplacesPrior(t *testing.T) {
	fx := createTestReviewService(t, true)

	ctx := context.Background()
	caller := customerIdentity()
	input := usecase.SubmitReviewInput{ProductID: 7, Grade: 2, Comment: "changed my mind"}
	average := 2.0

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockRatingRepo := mockRepo.NewMockRatingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().RatingRepo().Return(mockRatingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)

		mockProductRepo.EXPECT().
			FindActiveByID(ctx, input.ProductID).
			Return(&entity.Product{ID: input.ProductID, IsActive: true}, nil)

		prior := &entity.Rating{ID: 5, Grade: 5, UserID: caller.UserID, ProductID: input.ProductID, IsActive: true}
		mockRatingRepo.EXPECT().
			FindActiveByUserAndProduct(ctx, caller.UserID, input.ProductID).
			Return(prior, nil)
		mockReviewRepo.EXPECT().DeactivateByRating(ctx, prior.ID).Return(nil)
		mockRatingRepo.EXPECT().Deactivate(ctx, prior.ID).Return(nil)

		mockRatingRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Rating")).
			Run(func(ctx context.Context, rating *entity.Rating) {
				rating.ID = 6
			}).
			Return(nil)
		mockReviewRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Review")).
			Run(func(ctx context.Context, review *entity.Review) {
				review.ID = 31
			}).
			Return(nil)

		mockRatingRepo.EXPECT().
			AverageForProduct(ctx, input.ProductID).
			Return(&average, nil)
		mockProductRepo.EXPECT().
			UpdateRating(ctx, input.ProductID, average).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishReviewEvent(mock.Anything, mock.AnythingOfType("*service.ReviewEvent")).
		Return(nil)

	output, err := fx.service.SubmitReview(ctx, caller, input)

	require.NoError(t, err)
	assert.Equal(t, int64(6), output.RatingID)
	assert.Equal(t, average, output.ProductRating)
}

func TestReviewService_SubmitReview_ResubmissionWithoutPrior(t *testing.T) {
	fx := createTestReviewService(t, true)

	ctx := context.Background()
	caller := customerIdentity()
	input := usecase.SubmitReviewInput{ProductID: 7, Grade: 3, Comment: "first take"}
	average := 3.0

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockRatingRepo := mockRepo.NewMockRatingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().RatingRepo().Return(mockRatingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)

		mockProductRepo.EXPECT().
			FindActiveByID(ctx, input.ProductID).
			Return(&entity.Product{ID: input.ProductID, IsActive: true}, nil)

		mockRatingRepo.EXPECT().
			FindActiveByUserAndProduct(ctx, caller.UserID, input.ProductID).
			Return(nil, repository.ErrRatingNotFound)

		mockRatingRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Rating")).
			Run(func(ctx context.Context, rating *entity.Rating) {
				rating.ID = 12
			}).
			Return(nil)
		mockReviewRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Review")).
			Run(func(ctx context.Context, review *entity.Review) {
				review.ID = 40
			}).
			Return(nil)

		mockRatingRepo.EXPECT().
			AverageForProduct(ctx, input.ProductID).
			Return(&average, nil)
		mockProductRepo.EXPECT().
			UpdateRating(ctx, input.ProductID, average).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishReviewEvent(mock.Anything, mock.AnythingOfType("*service.ReviewEvent")).
		Return(nil)

	output, err := fx.service.SubmitReview(ctx, caller, input)

	require.NoError(t, err)
	assert.Equal(t, int64(40), output.ReviewID)
}

func TestReviewService_SubmitReview_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestReviewService(t, false)

	ctx := context.Background()
	input := usecase.SubmitReviewInput{ProductID: 7, Grade: 4, Comment: "fine"}
	average := 4.0

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockRatingRepo := mockRepo.NewMockRatingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().RatingRepo().Return(mockRatingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)

		mockProductRepo.EXPECT().
			FindActiveByID(ctx, input.ProductID).
			Return(&entity.Product{ID: input.ProductID, IsActive: true}, nil)
		mockRatingRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Rating")).
			Run(func(ctx context.Context, rating *entity.Rating) {
				rating.ID = 11
			}).
			Return(nil)
		mockReviewRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Review")).
			Run(func(ctx context.Context, review *entity.Review) {
				review.ID = 23
			}).
			Return(nil)
		mockRatingRepo.EXPECT().
			AverageForProduct(ctx, input.ProductID).
			Return(&average, nil)
		mockProductRepo.EXPECT().
			UpdateRating(ctx, input.ProductID, average).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishReviewEvent(mock.Anything, mock.AnythingOfType("*service.ReviewEvent")).
		Return(errors.New("broker unavailable"))

	output, err := fx.service.SubmitReview(ctx, customerIdentity(), input)

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestReviewService_RetractReview_Success(t *testing.T) {
	fx := createTestReviewService(t, false)

	ctx := context.Background()
	reviewID := int64(23)
	average := 3.5

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockRatingRepo := mockRepo.NewMockRatingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().RatingRepo().Return(mockRatingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)

		review := &entity.Review{ID: reviewID, UserID: 42, ProductID: 7, RatingID: 11, IsActive: true}
		rating := &entity.Rating{ID: 11, Grade: 5, UserID: 42, ProductID: 7, IsActive: true}

		mockReviewRepo.EXPECT().FindActiveByID(ctx, reviewID).Return(review, nil)
		mockRatingRepo.EXPECT().FindByID(ctx, review.RatingID).Return(rating, nil)
		mockReviewRepo.EXPECT().Deactivate(ctx, review.ID).Return(nil)
		mockRatingRepo.EXPECT().Deactivate(ctx, rating.ID).Return(nil)
		mockRatingRepo.EXPECT().
			AverageForProduct(ctx, rating.ProductID).
			Return(&average, nil)
		mockProductRepo.EXPECT().
			UpdateRating(ctx, rating.ProductID, average).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishReviewEvent(mock.Anything, mock.AnythingOfType("*service.ReviewEvent")).
		Run(func(ctx context.Context, event *service.ReviewEvent) {
			assert.Equal(t, "review.retracted", event.EventType)
			assert.Equal(t, reviewID, event.ReviewID)
			assert.Equal(t, average, event.ProductRating)
		}).
		Return(nil)

	err := fx.service.RetractReview(ctx, adminIdentity(), reviewID)

	require.NoError(t, err)
}

func TestReviewService_RetractReview_LastRatingWritesSentinel(t *testing.T) {
	fx := createTestReviewService(t, false)

	ctx := context.Background()
	reviewID := int64(23)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockRatingRepo := mockRepo.NewMockRatingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().RatingRepo().Return(mockRatingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)

		review := &entity.Review{ID: reviewID, UserID: 42, ProductID: 7, RatingID: 11, IsActive: true}
		rating := &entity.Rating{ID: 11, Grade: 5, UserID: 42, ProductID: 7, IsActive: true}

		mockReviewRepo.EXPECT().FindActiveByID(ctx, reviewID).Return(review, nil)
		mockRatingRepo.EXPECT().FindByID(ctx, review.RatingID).Return(rating, nil)
		mockReviewRepo.EXPECT().Deactivate(ctx, review.ID).Return(nil)
		mockRatingRepo.EXPECT().Deactivate(ctx, rating.ID).Return(nil)

		// No active ratings left: the average is nil and the product must
		// be reset to the 0.0 sentinel, not left at its previous value.
		mockRatingRepo.EXPECT().
			AverageForProduct(ctx, rating.ProductID).
			Return(nil, nil)
		mockProductRepo.EXPECT().
			UpdateRating(ctx, rating.ProductID, 0.0).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishReviewEvent(mock.Anything, mock.AnythingOfType("*service.ReviewEvent")).
		Return(nil)

	err := fx.service.RetractReview(ctx, adminIdentity(), reviewID)

	require.NoError(t, err)
}

func TestReviewService_RetractReview_NonAdminForbidden(t *testing.T) {
	fx := createTestReviewService(t, false)

	ctx := context.Background()

	err := fx.service.RetractReview(ctx, customerIdentity(), 23)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReviewService_RetractReview_AlreadyRetracted(t *testing.T) {
	fx := createTestReviewService(t, false)

	ctx := context.Background()
	reviewID := int64(23)

	fx.onExecute(ctx, domainerrors.ErrReviewNotFound.WrapMessage("review missing or already retracted"), func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockRatingRepo := mockRepo.NewMockRatingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().RatingRepo().Return(mockRatingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)

		mockReviewRepo.EXPECT().
			FindActiveByID(ctx, reviewID).
			Return(nil, repository.ErrReviewNotFound)
	})

	err := fx.service.RetractReview(ctx, adminIdentity(), reviewID)

	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

func TestReviewService_ListReviews(t *testing.T) {
	fx := createTestReviewService(t, false)

	ctx := context.Background()
	expected := []*entity.Review{
		{ID: 1, Comment: "good"},
		{ID: 2, Comment: "bad"},
	}

	fx.reviewRepo.EXPECT().ListActive(ctx).Return(expected, nil)

	reviews, err := fx.service.ListReviews(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, reviews)
}

func TestReviewService_ListProductReviews_Error(t *testing.T) {
	fx := createTestReviewService(t, false)

	ctx := context.Background()

	fx.reviewRepo.EXPECT().
		ListActiveByProduct(ctx, int64(7)).
		Return(nil, errors.New("db error"))

	reviews, err := fx.service.ListProductReviews(ctx, 7)

	assert.Error(t, err)
	assert.Nil(t, reviews)
	assert.Contains(t, err.Error(), "failed to list product reviews")
}
