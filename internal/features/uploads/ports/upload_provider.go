package ports

import (
	"context"

	"parts-admin/internal/features/uploads/domain"
)

// UploadProvider abstracts the storefront backend's image upload endpoints.
type UploadProvider interface {
	// UploadImage uploads a single image into the given folder.
	UploadImage(ctx context.Context, file domain.File, folder string) (domain.Image, error)
	// UploadImages uploads several images into the given folder.
	UploadImages(ctx context.Context, files []domain.File, folder string) ([]domain.Image, error)
}
