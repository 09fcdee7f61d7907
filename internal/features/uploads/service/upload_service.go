package service

import (
	"context"
	"errors"
	"strings"

	"parts-admin/internal/features/uploads/domain"
	"parts-admin/internal/features/uploads/ports"
)

// ErrNoFiles is returned when an upload request carries no files.
var ErrNoFiles = errors.New("no files to upload")

// UploadService forwards image uploads to the storefront backend, which
// owns the hosting provider credentials.
type UploadService struct {
	provider ports.UploadProvider
}

// NewUploadService creates a new UploadService.
func NewUploadService(provider ports.UploadProvider) *UploadService {
	return &UploadService{provider: provider}
}

// UploadImage uploads a single image. An empty folder falls back to the
// product image folder.
func (s *UploadService) UploadImage(ctx context.Context, file domain.File, folder string) (domain.Image, error) {
	if file.Content == nil {
		return domain.Image{}, ErrNoFiles
	}
	return s.provider.UploadImage(ctx, file, normalizeFolder(folder))
}

// UploadImages uploads several images in one request.
func (s *UploadService) UploadImages(ctx context.Context, files []domain.File, folder string) ([]domain.Image, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	return s.provider.UploadImages(ctx, files, normalizeFolder(folder))
}

func normalizeFolder(folder string) string {
	folder = strings.TrimSpace(folder)
	if folder == "" {
		return domain.DefaultFolder
	}
	return folder
}
