package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ListProducts retrieves active products with stock remaining.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListAvailable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ProductsByCategory retrieves available products in a category and its direct children.
func (srv *catalogService) ProductsByCategory(ctx context.Context, categorySlug string) ([]*entity.Product, error) {
	category, err := srv.categoryRepo.FindActiveBySlug(ctx, categorySlug)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound.WrapMessage("unknown category slug")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	children, err := srv.categoryRepo.ListChildren(ctx, category.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subcategories")
	}

	categoryIDs := append([]int64{category.ID}, children...)
	products, err := srv.productRepo.ListByCategories(ctx, categoryIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

// ProductDetail retrieves one product by slug.
func (srv *catalogService) ProductDetail(ctx context.Context, productSlug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, productSlug)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("unknown product slug")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// CreateProduct creates a product owned by the calling supplier.
func (srv *catalogService) CreateProduct(ctx context.Context, caller entity.Identity, input *usecase.ProductInput) (*entity.Product, error) {
	if !caller.IsAdmin() && !caller.IsSupplier() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only suppliers and admins can create products")
	}

	if _, err := srv.categoryRepo.FindActiveByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("unknown category")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	product := &entity.Product{
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
		Rating:      0.0,
		IsActive:    true,
		CategoryID:  input.CategoryID,
		SupplierID:  caller.UserID,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateProduct) {
			return nil, domainerrors.ErrConstraintViolation.WrapMessage("product slug already taken")
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Product created",
		slog.Int64("productID", product.ID),
		slog.Int64("supplierID", caller.UserID),
	)

	return product, nil
}

// UpdateProduct modifies a product. Owning supplier or admin only.
func (srv *catalogService) UpdateProduct(ctx context.Context, caller entity.Identity, productSlug string, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.authorizeProductWrite(ctx, caller, productSlug)
	if err != nil {
		return nil, err
	}

	if _, err := srv.categoryRepo.FindActiveByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("unknown category")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	product.Name = input.Name
	product.Slug = slug.Make(input.Name)
	product.Description = input.Description
	product.Price = input.Price
	product.ImageURL = input.ImageURL
	product.Stock = input.Stock
	product.CategoryID = input.CategoryID

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct soft-deletes a product. Owning supplier or admin only.
func (srv *catalogService) DeleteProduct(ctx context.Context, caller entity.Identity, productSlug string) error {
	product, err := srv.authorizeProductWrite(ctx, caller, productSlug)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Deactivate(ctx, product.ID); err != nil {
		return errors.Wrap(err, "failed to deactivate product")
	}

	srv.logger.Info("Product deactivated", slog.Int64("productID", product.ID))

	return nil
}

// ListCategories retrieves all active categories.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateCategory creates a category. Admin only.
func (srv *catalogService) CreateCategory(ctx context.Context, caller entity.Identity, input *usecase.CategoryInput) (*entity.Category, error) {
	if !caller.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only admin can create categories")
	}

	if input.ParentID != nil {
		if _, err := srv.categoryRepo.FindActiveByID(ctx, *input.ParentID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound.WrapMessage("unknown parent category")
			}

			return nil, errors.Wrap(err, "failed to find parent category")
		}
	}

	category := &entity.Category{
		Name:     input.Name,
		Slug:     slug.Make(input.Name),
		ParentID: input.ParentID,
		IsActive: true,
	}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, domainerrors.ErrConstraintViolation.WrapMessage("category slug already taken")
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// UpdateCategory modifies a category. Admin only.
func (srv *catalogService) UpdateCategory(ctx context.Context, caller entity.Identity, id int64, input *usecase.CategoryInput) (*entity.Category, error) {
	if !caller.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only admin can update categories")
	}

	category, err := srv.categoryRepo.FindActiveByID(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound.WrapMessage("unknown category")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	category.Name = input.Name
	category.Slug = slug.Make(input.Name)
	category.ParentID = input.ParentID

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// DeleteCategory soft-deletes a category. Admin only.
func (srv *catalogService) DeleteCategory(ctx context.Context, caller entity.Identity, id int64) error {
	if !caller.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("only admin can delete categories")
	}

	if _, err := srv.categoryRepo.FindActiveByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("unknown category")
		}

		return errors.Wrap(err, "failed to find category")
	}

	if err := srv.categoryRepo.Deactivate(ctx, id); err != nil {
		return errors.Wrap(err, "failed to deactivate category")
	}

	return nil
}

// authorizeProductWrite resolves a product and checks write permission:
// admins always, suppliers only for their own products.
func (srv *catalogService) authorizeProductWrite(ctx context.Context, caller entity.Identity, productSlug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, productSlug)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("unknown product slug")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	switch caller.Role {
	case entity.RoleAdmin:
		return product, nil
	case entity.RoleSupplier:
		if product.SupplierID == caller.UserID {
			return product, nil
		}

		return nil, domainerrors.ErrForbidden.WrapMessage("product belongs to another supplier")
	default:
		return nil, domainerrors.ErrForbidden.WrapMessage("customers cannot modify products")
	}
}
