package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ledgerStore is an in-memory stand-in for the rating/review tables, shared by
// the fake repositories so a whole submit/retract sequence can run against one
// consistent state. It exists to verify the derived aggregate over time, which
// per-call mocks cannot express.
type ledgerStore struct {
	products map[int64]*entity.Product
	ratings  map[int64]*entity.Rating
	reviews  map[int64]*entity.Review
	nextID   int64
}

func newLedgerStore(products ...*entity.Product) *ledgerStore {
	store := &ledgerStore{
		products: make(map[int64]*entity.Product),
		ratings:  make(map[int64]*entity.Rating),
		reviews:  make(map[int64]*entity.Review),
		nextID:   1,
	}
	for _, product := range products {
		store.products[product.ID] = product
	}

	return store
}

func (s *ledgerStore) allocID() int64 {
	id := s.nextID
	s.nextID++

	return id
}

type ledgerTxManager struct {
	store *ledgerStore
}

func (tm *ledgerTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(ledgerFactory{store: tm.store})
}

type ledgerFactory struct {
	store *ledgerStore
}

func (f ledgerFactory) UserRepo() repository.UserRepository       { return nil }
func (f ledgerFactory) ProductRepo() repository.ProductRepository { return ledgerProductRepo{f.store} }
func (f ledgerFactory) RatingRepo() repository.RatingRepository   { return ledgerRatingRepo{f.store} }
func (f ledgerFactory) ReviewRepo() repository.ReviewRepository   { return ledgerReviewRepo{f.store} }

type ledgerProductRepo struct{ store *ledgerStore }

func (r ledgerProductRepo) FindActiveByID(_ context.Context, id int64) (*entity.Product, error) {
	product, ok := r.store.products[id]
	if !ok || !product.IsActive {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

func (r ledgerProductRepo) FindBySlug(context.Context, string) (*entity.Product, error) {
	return nil, errors.New("not used in this test")
}

func (r ledgerProductRepo) ListAvailable(context.Context) ([]*entity.Product, error) {
	return nil, errors.New("not used in this test")
}

func (r ledgerProductRepo) ListByCategories(context.Context, []int64) ([]*entity.Product, error) {
	return nil, errors.New("not used in this test")
}

func (r ledgerProductRepo) Create(context.Context, *entity.Product) error {
	return errors.New("not used in this test")
}

func (r ledgerProductRepo) Update(context.Context, *entity.Product) error {
	return errors.New("not used in this test")
}

func (r ledgerProductRepo) UpdateRating(_ context.Context, id int64, rating float64) error {
	product, ok := r.store.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	product.Rating = rating

	return nil
}

func (r ledgerProductRepo) Deactivate(context.Context, int64) error {
	return errors.New("not used in this test")
}

type ledgerRatingRepo struct{ store *ledgerStore }

func (r ledgerRatingRepo) Create(_ context.Context, rating *entity.Rating) error {
	for _, existing := range r.store.ratings {
		if existing.IsActive && existing.UserID == rating.UserID && existing.ProductID == rating.ProductID {
			return repository.ErrDuplicateRating
		}
	}

	stored := *rating
	stored.ID = r.store.allocID()
	r.store.ratings[stored.ID] = &stored
	rating.ID = stored.ID

	return nil
}

func (r ledgerRatingRepo) FindByID(_ context.Context, id int64) (*entity.Rating, error) {
	rating, ok := r.store.ratings[id]
	if !ok {
		return nil, repository.ErrRatingNotFound
	}

	return rating, nil
}

func (r ledgerRatingRepo) FindActiveByUserAndProduct(_ context.Context, userID, productID int64) (*entity.Rating, error) {
	for _, rating := range r.store.ratings {
		if rating.IsActive && rating.UserID == userID && rating.ProductID == productID {
			return rating, nil
		}
	}

	return nil, repository.ErrRatingNotFound
}

func (r ledgerRatingRepo) Deactivate(_ context.Context, id int64) error {
	if rating, ok := r.store.ratings[id]; ok {
		rating.IsActive = false
	}

	return nil
}

func (r ledgerRatingRepo) AverageForProduct(_ context.Context, productID int64) (*float64, error) {
	sum, count := 0, 0
	for _, rating := range r.store.ratings {
		if rating.IsActive && rating.ProductID == productID {
			sum += rating.Grade
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}

	average := float64(sum) / float64(count)

	return &average, nil
}

type ledgerReviewRepo struct{ store *ledgerStore }

func (r ledgerReviewRepo) Create(_ context.Context, review *entity.Review) error {
	stored := *review
	stored.ID = r.store.allocID()
	r.store.reviews[stored.ID] = &stored
	review.ID = stored.ID

	return nil
}

func (r ledgerReviewRepo) FindActiveByID(_ context.Context, id int64) (*entity.Review, error) {
	review, ok := r.store.reviews[id]
	if !ok || !review.IsActive {
		return nil, repository.ErrReviewNotFound
	}

	return review, nil
}

func (r ledgerReviewRepo) ListActive(context.Context) ([]*entity.Review, error) {
	return nil, errors.New("not used in this test")
}

func (r ledgerReviewRepo) ListActiveByProduct(context.Context, int64) ([]*entity.Review, error) {
	return nil, errors.New("not used in this test")
}

func (r ledgerReviewRepo) DeactivateByRating(_ context.Context, ratingID int64) error {
	for _, review := range r.store.reviews {
		if review.IsActive && review.RatingID == ratingID {
			review.IsActive = false
		}
	}

	return nil
}

func (r ledgerReviewRepo) Deactivate(_ context.Context, id int64) error {
	if review, ok := r.store.reviews[id]; ok {
		review.IsActive = false
	}

	return nil
}

func newLedgerReviewService(store *ledgerStore, allowResubmission bool) usecase.ReviewUsecase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Review: &config.ReviewConfig{AllowResubmission: allowResubmission},
	}

	return NewReviewService(&ledgerTxManager{store: store}, ledgerReviewRepo{store}, nil, cfg, logger)
}

// The displayed product rating must track the active ratings ledger through a
// full submit/retract sequence and fall back to the 0.0 sentinel when the last
// rating is retracted.
func TestReviewService_AggregateFollowsLedger(t *testing.T) {
	ctx := context.Background()
	product := &entity.Product{ID: 7, Name: "Kettle", IsActive: true}
	store := newLedgerStore(product)
	service := newLedgerReviewService(store, false)

	alice := entity.Identity{UserID: 1, Username: "alice", Role: entity.RoleCustomer}
	bob := entity.Identity{UserID: 2, Username: "bob", Role: entity.RoleCustomer}
	admin := entity.Identity{UserID: 99, Username: "root", Role: entity.RoleAdmin}

	first, err := service.SubmitReview(ctx, alice, usecase.SubmitReviewInput{ProductID: 7, Grade: 5, Comment: "excellent"})
	require.NoError(t, err)
	assert.Equal(t, 5.0, first.ProductRating)
	assert.Equal(t, 5.0, product.Rating)

	second, err := service.SubmitReview(ctx, bob, usecase.SubmitReviewInput{ProductID: 7, Grade: 3, Comment: "average"})
	require.NoError(t, err)
	assert.Equal(t, 4.0, second.ProductRating)
	assert.Equal(t, 4.0, product.Rating)

	require.NoError(t, service.RetractReview(ctx, admin, first.ReviewID))
	assert.Equal(t, 3.0, product.Rating)

	require.NoError(t, service.RetractReview(ctx, admin, second.ReviewID))
	assert.Equal(t, 0.0, product.Rating)
}

// A rejected resubmission must leave both the ledger and the aggregate as
// they were: no new rows, no recomputation side effects.
func TestReviewService_DuplicateLeavesLedgerUntouched(t *testing.T) {
	ctx := context.Background()
	product := &entity.Product{ID: 7, Name: "Kettle", IsActive: true}
	store := newLedgerStore(product)
	service := newLedgerReviewService(store, false)

	alice := entity.Identity{UserID: 1, Username: "alice", Role: entity.RoleCustomer}

	_, err := service.SubmitReview(ctx, alice, usecase.SubmitReviewInput{ProductID: 7, Grade: 5, Comment: "excellent"})
	require.NoError(t, err)
	require.Equal(t, 5.0, product.Rating)

	_, err = service.SubmitReview(ctx, alice, usecase.SubmitReviewInput{ProductID: 7, Grade: 1, Comment: "regret"})
	require.Error(t, err)

	assert.Len(t, store.ratings, 1)
	assert.Len(t, store.reviews, 1)
	assert.Equal(t, 5.0, product.Rating)
}

// With resubmission enabled a second submission replaces the prior rating and
// review instead of stacking a duplicate.
func TestReviewService_ResubmissionReplacesInLedger(t *testing.T) {
	ctx := context.Background()
	product := &entity.Product{ID: 7, Name: "Kettle", IsActive: true}
	store := newLedgerStore(product)
	service := newLedgerReviewService(store, true)

	alice := entity.Identity{UserID: 1, Username: "alice", Role: entity.RoleCustomer}

	_, err := service.SubmitReview(ctx, alice, usecase.SubmitReviewInput{ProductID: 7, Grade: 5, Comment: "excellent"})
	require.NoError(t, err)

	output, err := service.SubmitReview(ctx, alice, usecase.SubmitReviewInput{ProductID: 7, Grade: 2, Comment: "broke after a week"})
	require.NoError(t, err)
	assert.Equal(t, 2.0, output.ProductRating)
	assert.Equal(t, 2.0, product.Rating)

	active := 0
	for _, rating := range store.ratings {
		if rating.IsActive {
			active++
		}
	}
	assert.Equal(t, 1, active)
}
