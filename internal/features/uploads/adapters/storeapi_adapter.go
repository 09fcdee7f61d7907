package adapter

import (
	"context"
	"fmt"

	"parts-admin/internal/core/storeapi"
	"parts-admin/internal/features/uploads/domain"
)

// StoreAPIAdapter implements ports.UploadProvider against the storefront
// backend's upload endpoints.
type StoreAPIAdapter struct {
	client *storeapi.Client
}

// NewStoreAPIAdapter creates an upload adapter over the given client.
func NewStoreAPIAdapter(client *storeapi.Client) *StoreAPIAdapter {
	return &StoreAPIAdapter{client: client}
}

// uploadedImage tolerates both field spellings the backend has used for
// the hosted URL.
type uploadedImage struct {
	ImageURL string `json:"imageUrl"`
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

func (u uploadedImage) toDomain() domain.Image {
	url := u.ImageURL
	if url == "" {
		url = u.URL
	}
	return domain.Image{URL: url, PublicID: u.PublicID}
}

func (a *StoreAPIAdapter) UploadImage(ctx context.Context, file domain.File, folder string) (domain.Image, error) {
	files := []storeapi.FilePart{{Field: "image", Name: file.Name, Content: file.Content}}
	fields := map[string]string{"folder": folder}

	var out uploadedImage
	if err := a.client.PostMultipart(ctx, "/uploads/image", files, fields, &out); err != nil {
		return domain.Image{}, fmt.Errorf("uploading image: %w", err)
	}
	return out.toDomain(), nil
}

func (a *StoreAPIAdapter) UploadImages(ctx context.Context, files []domain.File, folder string) ([]domain.Image, error) {
	parts := make([]storeapi.FilePart, 0, len(files))
	for _, f := range files {
		parts = append(parts, storeapi.FilePart{Field: "images", Name: f.Name, Content: f.Content})
	}
	fields := map[string]string{"folder": folder}

	var out struct {
		Images []uploadedImage `json:"images"`
	}
	if err := a.client.PostMultipart(ctx, "/uploads/images", parts, fields, &out); err != nil {
		return nil, fmt.Errorf("uploading images: %w", err)
	}

	images := make([]domain.Image, 0, len(out.Images))
	for _, img := range out.Images {
		images = append(images, img.toDomain())
	}
	return images, nil
}
