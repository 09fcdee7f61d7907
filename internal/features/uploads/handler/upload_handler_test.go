package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"parts-admin/internal/features/uploads/domain"
	"parts-admin/internal/features/uploads/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockUploadProvider is a minimal UploadProvider for handler tests.
type mockUploadProvider struct {
	lastFolder string
	lastNames  []string
}

func (m *mockUploadProvider) UploadImage(ctx context.Context, file domain.File, folder string) (domain.Image, error) {
	m.lastFolder = folder
	m.lastNames = []string{file.Name}
	io.Copy(io.Discard, file.Content)
	return domain.Image{URL: "https://cdn.example/" + file.Name, PublicID: folder + "/" + file.Name}, nil
}

func (m *mockUploadProvider) UploadImages(ctx context.Context, files []domain.File, folder string) ([]domain.Image, error) {
	m.lastFolder = folder
	m.lastNames = nil
	images := make([]domain.Image, len(files))
	for i, f := range files {
		m.lastNames = append(m.lastNames, f.Name)
		io.Copy(io.Discard, f.Content)
		images[i] = domain.Image{URL: "https://cdn.example/" + f.Name}
	}
	return images, nil
}

func newTestApp(provider *mockUploadProvider) *fiber.App {
	h := NewUploadHandler(service.NewUploadService(provider))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Post("/admin/uploads/image", h.UploadImage)
	app.Post("/admin/uploads/images", h.UploadImages)
	return app
}

func multipartBody(t *testing.T, field string, names []string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, name := range names {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		part.Write([]byte("jpeg-bytes"))
	}
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadHandler_SingleImage(t *testing.T) {
	provider := &mockUploadProvider{}
	app := newTestApp(provider)

	body, contentType := multipartBody(t, "image", []string{"4070.jpg"}, nil)
	req := httptest.NewRequest("POST", "/admin/uploads/image", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result ImageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Image uploaded", result.Message)
	assert.Equal(t, "https://cdn.example/4070.jpg", result.Image.URL)
	assert.Equal(t, "pc-parts-shop/products", provider.lastFolder)
}

func TestUploadHandler_SingleImage_CustomFolder(t *testing.T) {
	provider := &mockUploadProvider{}
	app := newTestApp(provider)

	body, contentType := multipartBody(t, "image", []string{"hero.jpg"}, map[string]string{"folder": "pc-parts-shop/banners"})
	req := httptest.NewRequest("POST", "/admin/uploads/image", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "pc-parts-shop/banners", provider.lastFolder)
}

func TestUploadHandler_SingleImage_MissingFile(t *testing.T) {
	app := newTestApp(&mockUploadProvider{})

	body, contentType := multipartBody(t, "other", []string{"4070.jpg"}, nil)
	req := httptest.NewRequest("POST", "/admin/uploads/image", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var result ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "An image file is required", result.Message)
	assert.Equal(t, "test-ray-id", result.RayID)
}

func TestUploadHandler_MultipleImages(t *testing.T) {
	provider := &mockUploadProvider{}
	app := newTestApp(provider)

	body, contentType := multipartBody(t, "images", []string{"front.jpg", "back.jpg"}, nil)
	req := httptest.NewRequest("POST", "/admin/uploads/images", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result ImagesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, []string{"front.jpg", "back.jpg"}, provider.lastNames)
}

func TestUploadHandler_MultipleImages_Empty(t *testing.T) {
	app := newTestApp(&mockUploadProvider{})

	body, contentType := multipartBody(t, "images", nil, map[string]string{"folder": "x"})
	req := httptest.NewRequest("POST", "/admin/uploads/images", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var result ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "no files to upload", result.Message)
}
