package adapter

import (
	"context"
	"fmt"

	"parts-admin/internal/core/storeapi"
	"parts-admin/internal/features/catalog/domain"
)

// StoreAPIAdapter implements ports.CatalogProvider against the storefront
// backend's REST API.
type StoreAPIAdapter struct {
	client *storeapi.Client
}

// NewStoreAPIAdapter creates a catalog adapter over the given client.
func NewStoreAPIAdapter(client *storeapi.Client) *StoreAPIAdapter {
	return &StoreAPIAdapter{client: client}
}

func (a *StoreAPIAdapter) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := a.client.Get(ctx, "/categories", &categories); err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

func (a *StoreAPIAdapter) CreateCategory(ctx context.Context, input domain.CategoryInput) error {
	if err := a.client.Post(ctx, "/categories", input, nil); err != nil {
		return fmt.Errorf("creating category: %w", err)
	}
	return nil
}

func (a *StoreAPIAdapter) UpdateCategory(ctx context.Context, id string, input domain.CategoryInput) error {
	if err := a.client.Put(ctx, "/categories/"+id, input, nil); err != nil {
		return fmt.Errorf("updating category %s: %w", id, err)
	}
	return nil
}

func (a *StoreAPIAdapter) DeleteCategory(ctx context.Context, id string) error {
	if err := a.client.Delete(ctx, "/categories/"+id, nil); err != nil {
		return fmt.Errorf("deleting category %s: %w", id, err)
	}
	return nil
}

func (a *StoreAPIAdapter) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var list struct {
		Products []domain.Product `json:"products"`
	}
	if err := a.client.Get(ctx, "/products", &list); err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return list.Products, nil
}

func (a *StoreAPIAdapter) CreateProduct(ctx context.Context, input domain.ProductInput) error {
	if err := a.client.Post(ctx, "/products", input, nil); err != nil {
		return fmt.Errorf("creating product: %w", err)
	}
	return nil
}

func (a *StoreAPIAdapter) UpdateProduct(ctx context.Context, id string, input domain.ProductInput) error {
	if err := a.client.Put(ctx, "/products/"+id, input, nil); err != nil {
		return fmt.Errorf("updating product %s: %w", id, err)
	}
	return nil
}

func (a *StoreAPIAdapter) DeleteProduct(ctx context.Context, id string) error {
	if err := a.client.Delete(ctx, "/products/"+id, nil); err != nil {
		return fmt.Errorf("deleting product %s: %w", id, err)
	}
	return nil
}

type imageDeletePayload struct {
	PublicID string `json:"public_id"`
}

func (a *StoreAPIAdapter) DeleteProductImage(ctx context.Context, productID, publicID string) error {
	payload := imageDeletePayload{PublicID: publicID}
	if err := a.client.Delete(ctx, "/products/"+productID+"/image", payload); err != nil {
		return fmt.Errorf("deleting image from product %s: %w", productID, err)
	}
	return nil
}
