package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// ProductInput defines the data required to create or update a product.
type ProductInput struct {
	Name        string
	Description string
	Price       int
	ImageURL    string
	Stock       int
	CategoryID  int64
}

// CategoryInput defines the data required to create or update a category.
type CategoryInput struct {
	Name     string
	ParentID *int64
}

// CatalogUsecase defines the product and category catalog operations.
type CatalogUsecase interface {
	// ListProducts retrieves active products with stock remaining.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ProductsByCategory retrieves available products in a category and its direct children.
	ProductsByCategory(ctx context.Context, categorySlug string) ([]*entity.Product, error)

	// ProductDetail retrieves one product by slug.
	ProductDetail(ctx context.Context, slug string) (*entity.Product, error)

	// CreateProduct creates a product owned by the calling supplier. Suppliers and admins only.
	CreateProduct(ctx context.Context, caller entity.Identity, input *ProductInput) (*entity.Product, error)

	// UpdateProduct modifies a product. Owning supplier or admin only.
	UpdateProduct(ctx context.Context, caller entity.Identity, slug string, input *ProductInput) (*entity.Product, error)

	// DeleteProduct soft-deletes a product. Owning supplier or admin only.
	DeleteProduct(ctx context.Context, caller entity.Identity, slug string) error

	// ListCategories retrieves all active categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory creates a category. Admin only.
	CreateCategory(ctx context.Context, caller entity.Identity, input *CategoryInput) (*entity.Category, error)

	// UpdateCategory modifies a category. Admin only.
	UpdateCategory(ctx context.Context, caller entity.Identity, id int64, input *CategoryInput) (*entity.Category, error)

	// DeleteCategory soft-deletes a category. Admin only.
	DeleteCategory(ctx context.Context, caller entity.Identity, id int64) error
}
