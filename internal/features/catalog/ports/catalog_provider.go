package ports

import (
	"context"

	"parts-admin/internal/features/catalog/domain"
)

// CatalogProvider abstracts the storefront backend's catalog endpoints.
type CatalogProvider interface {
	// ListCategories returns all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)
	// CreateCategory creates a new category.
	CreateCategory(ctx context.Context, input domain.CategoryInput) error
	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, id string, input domain.CategoryInput) error
	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, id string) error

	// ListProducts returns all products.
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// CreateProduct creates a new product.
	CreateProduct(ctx context.Context, input domain.ProductInput) error
	// UpdateProduct updates an existing product.
	UpdateProduct(ctx context.Context, id string, input domain.ProductInput) error
	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, id string) error
	// DeleteProductImage removes a single hosted image from a product.
	DeleteProductImage(ctx context.Context, productID, publicID string) error
}
