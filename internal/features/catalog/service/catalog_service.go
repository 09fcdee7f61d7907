package service

import (
	"context"
	"errors"
	"strings"

	"parts-admin/internal/features/catalog/domain"
	"parts-admin/internal/features/catalog/ports"
)

// ErrNameRequired is returned when a category is saved without a name.
var ErrNameRequired = errors.New("category name must not be empty")

// ErrTitleRequired is returned when a product is saved without a title.
var ErrTitleRequired = errors.New("product title must not be empty")

// ErrCategoryRequired is returned when a product is saved without a category.
var ErrCategoryRequired = errors.New("product category must not be empty")

// ErrInvalidPrice is returned when the price is not positive or the discount
// price does not undercut it.
var ErrInvalidPrice = errors.New("invalid product price")

// ErrNoImages is returned when a product is saved without any image.
var ErrNoImages = errors.New("product needs at least one image")

// CatalogService orchestrates category and product management. Every
// successful mutation is followed by a re-fetch of the affected listing,
// so callers always see the backend's view rather than a local echo.
type CatalogService struct {
	provider ports.CatalogProvider
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(provider ports.CatalogProvider) *CatalogService {
	return &CatalogService{provider: provider}
}

// ListCategories returns all categories sorted by name.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.provider.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SortCategories(categories), nil
}

// CreateCategory validates and creates a category, returning the refreshed
// category list.
func (s *CatalogService) CreateCategory(ctx context.Context, input domain.CategoryInput) ([]domain.Category, error) {
	input, err := normalizeCategory(input)
	if err != nil {
		return nil, err
	}
	if err := s.provider.CreateCategory(ctx, input); err != nil {
		return nil, err
	}
	return s.ListCategories(ctx)
}

// UpdateCategory validates and updates a category, returning the refreshed
// category list.
func (s *CatalogService) UpdateCategory(ctx context.Context, id string, input domain.CategoryInput) ([]domain.Category, error) {
	input, err := normalizeCategory(input)
	if err != nil {
		return nil, err
	}
	if err := s.provider.UpdateCategory(ctx, id, input); err != nil {
		return nil, err
	}
	return s.ListCategories(ctx)
}

// DeleteCategory removes a category and returns the refreshed category list.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) ([]domain.Category, error) {
	if err := s.provider.DeleteCategory(ctx, id); err != nil {
		return nil, err
	}
	return s.ListCategories(ctx)
}

// ListProducts returns the product listing with the given filter applied.
// Filtering and sorting happen here; the backend always returns the full set.
func (s *CatalogService) ListProducts(ctx context.Context, filter domain.Filter) ([]domain.Product, error) {
	products, err := s.provider.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(products), nil
}

// CreateProduct validates and creates a product, returning the refreshed
// unfiltered product list.
func (s *CatalogService) CreateProduct(ctx context.Context, input domain.ProductInput) ([]domain.Product, error) {
	input, err := normalizeProduct(input)
	if err != nil {
		return nil, err
	}
	if err := s.provider.CreateProduct(ctx, input); err != nil {
		return nil, err
	}
	return s.ListProducts(ctx, domain.Filter{})
}

// UpdateProduct validates and updates a product, returning the refreshed
// unfiltered product list.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input domain.ProductInput) ([]domain.Product, error) {
	input, err := normalizeProduct(input)
	if err != nil {
		return nil, err
	}
	if err := s.provider.UpdateProduct(ctx, id, input); err != nil {
		return nil, err
	}
	return s.ListProducts(ctx, domain.Filter{})
}

// DeleteProduct removes a product and returns the refreshed product list.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) ([]domain.Product, error) {
	if err := s.provider.DeleteProduct(ctx, id); err != nil {
		return nil, err
	}
	return s.ListProducts(ctx, domain.Filter{})
}

// DeleteProductImage removes one hosted image from a product and returns
// the refreshed product list.
func (s *CatalogService) DeleteProductImage(ctx context.Context, productID, publicID string) ([]domain.Product, error) {
	if err := s.provider.DeleteProductImage(ctx, productID, publicID); err != nil {
		return nil, err
	}
	return s.ListProducts(ctx, domain.Filter{})
}

func normalizeCategory(input domain.CategoryInput) (domain.CategoryInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if input.Name == "" {
		return input, ErrNameRequired
	}
	return input, nil
}

func normalizeProduct(input domain.ProductInput) (domain.ProductInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Brand = strings.TrimSpace(input.Brand)
	input.Category = strings.TrimSpace(input.Category)

	switch {
	case input.Title == "":
		return input, ErrTitleRequired
	case input.Category == "":
		return input, ErrCategoryRequired
	case input.Price <= 0:
		return input, ErrInvalidPrice
	case input.DiscountPrice != nil && (*input.DiscountPrice < 0 || *input.DiscountPrice >= input.Price):
		return input, ErrInvalidPrice
	case len(input.Images) == 0:
		return input, ErrNoImages
	}
	return input, nil
}
