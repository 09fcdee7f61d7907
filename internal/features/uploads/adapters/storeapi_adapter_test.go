package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"parts-admin/internal/core/config"
	"parts-admin/internal/core/httpclient"
	"parts-admin/internal/core/storeapi"
	"parts-admin/internal/features/uploads/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(url string) *StoreAPIAdapter {
	client := storeapi.New(config.StoreAPIConfig{URL: url}, httpclient.StaticToken("admin-token"))
	return NewStoreAPIAdapter(client)
}

func TestUploadImage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/uploads/image", r.URL.Path)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1 << 20))
		assert.Equal(t, "pc-parts-shop/products", r.FormValue("folder"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "4070.jpg", header.Filename)

		content, _ := io.ReadAll(file)
		assert.Equal(t, "jpeg-bytes", string(content))

		w.Write([]byte(`{"imageUrl": "https://cdn.example/4070.jpg", "public_id": "pc-parts-shop/products/4070"}`))
	}))
	defer ts.Close()

	image, err := newAdapter(ts.URL).UploadImage(context.Background(), domain.File{
		Name:    "4070.jpg",
		Content: strings.NewReader("jpeg-bytes"),
	}, domain.DefaultFolder)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/4070.jpg", image.URL)
	assert.Equal(t, "pc-parts-shop/products/4070", image.PublicID)
}

// TestUploadImage_URLFallback covers responses using "url" instead of
// "imageUrl".
func TestUploadImage_URLFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"url": "https://cdn.example/case.jpg", "public_id": "pc-parts-shop/products/case"}`))
	}))
	defer ts.Close()

	image, err := newAdapter(ts.URL).UploadImage(context.Background(), domain.File{
		Name:    "case.jpg",
		Content: strings.NewReader("x"),
	}, domain.DefaultFolder)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/case.jpg", image.URL)
}

func TestUploadImages(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/uploads/images", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1 << 20))
		require.Len(t, r.MultipartForm.File["images"], 2)
		assert.Equal(t, "front.jpg", r.MultipartForm.File["images"][0].Filename)
		assert.Equal(t, "back.jpg", r.MultipartForm.File["images"][1].Filename)

		w.Write([]byte(`{"images": [
			{"imageUrl": "https://cdn.example/front.jpg", "public_id": "pc-parts-shop/products/front"},
			{"url": "https://cdn.example/back.jpg", "public_id": "pc-parts-shop/products/back"}
		]}`))
	}))
	defer ts.Close()

	images, err := newAdapter(ts.URL).UploadImages(context.Background(), []domain.File{
		{Name: "front.jpg", Content: strings.NewReader("a")},
		{Name: "back.jpg", Content: strings.NewReader("b")},
	}, domain.DefaultFolder)

	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "https://cdn.example/front.jpg", images[0].URL)
	assert.Equal(t, "https://cdn.example/back.jpg", images[1].URL)
}

func TestUploadImage_BackendError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write([]byte(`{"message": "Image exceeds the size limit"}`))
	}))
	defer ts.Close()

	_, err := newAdapter(ts.URL).UploadImage(context.Background(), domain.File{
		Name:    "huge.jpg",
		Content: strings.NewReader("x"),
	}, domain.DefaultFolder)

	require.Error(t, err)
	assert.Equal(t, "Image exceeds the size limit", storeapi.UserMessage(err, "fallback"))
}
