package handler

import (
	"errors"
	"net/http"

	"parts-admin/internal/core/logger"
	"parts-admin/internal/core/storeapi"
	"parts-admin/internal/features/uploads/domain"
	"parts-admin/internal/features/uploads/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UploadHandler handles HTTP requests for image uploads.
type UploadHandler struct {
	// service is the UploadService instance.
	service *service.UploadService
}

// NewUploadHandler creates a new instance of UploadHandler.
func NewUploadHandler(s *service.UploadService) *UploadHandler {
	return &UploadHandler{
		service: s,
	}
}

// ImageResponse is returned after a single image upload.
type ImageResponse struct {
	// Image is the hosted image.
	Image domain.Image `json:"image"`
	// Message is a human-readable notice for the completed action.
	Message string `json:"message"`
}

// ImagesResponse is returned after a multi-image upload.
type ImagesResponse struct {
	// Images are the hosted images, in submission order.
	Images []domain.Image `json:"images"`
	// Total is the number of uploaded images.
	Total int `json:"total"`
	// Message is a human-readable notice for the completed action.
	Message string `json:"message"`
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// UploadImage handles a single image upload.
// @Summary Upload one product image
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Param folder formData string false "Target folder, defaults to the product image folder"
// @Success 201 {object} ImageResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/uploads/image [post]
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	header, err := c.FormFile("image")
	if err != nil {
		return h.badRequest(c, "An image file is required")
	}

	f, err := header.Open()
	if err != nil {
		return h.badRequest(c, "Could not read the uploaded file")
	}
	defer f.Close()

	image, err := h.service.UploadImage(c.Context(), domain.File{Name: header.Filename, Content: f}, c.FormValue("folder"))
	if err != nil {
		return h.fail(c, err, "Failed to upload image")
	}
	return c.Status(http.StatusCreated).JSON(ImageResponse{
		Image:   image,
		Message: "Image uploaded",
	})
}

// UploadImages handles a multi-image upload.
// @Summary Upload several product images
// @Accept multipart/form-data
// @Produce json
// @Param images formData file true "Image files"
// @Param folder formData string false "Target folder, defaults to the product image folder"
// @Success 201 {object} ImagesResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/uploads/images [post]
func (h *UploadHandler) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return h.badRequest(c, "A multipart form with image files is required")
	}

	headers := form.File["images"]
	files := make([]domain.File, 0, len(headers))
	closers := make([]func() error, 0, len(headers))
	defer func() {
		for _, closeFile := range closers {
			closeFile()
		}
	}()

	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return h.badRequest(c, "Could not read an uploaded file")
		}
		closers = append(closers, f.Close)
		files = append(files, domain.File{Name: header.Filename, Content: f})
	}

	images, err := h.service.UploadImages(c.Context(), files, c.FormValue("folder"))
	if err != nil {
		return h.fail(c, err, "Failed to upload images")
	}
	return c.Status(http.StatusCreated).JSON(ImagesResponse{
		Images:  images,
		Total:   len(images),
		Message: "Images uploaded",
	})
}

// fail maps a service error to an HTTP response.
func (h *UploadHandler) fail(c *fiber.Ctx, err error, fallback string) error {
	logger.Get().Error("Upload failed",
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)

	status := storeapi.HTTPStatus(err)
	msg := storeapi.UserMessage(err, fallback)

	switch {
	case storeapi.IsUnauthorized(err):
		msg = "Session is no longer valid"
	case errors.Is(err, service.ErrNoFiles):
		status = http.StatusBadRequest
		msg = err.Error()
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}

func (h *UploadHandler) badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}

// rayID extracts the request id set by the requestid middleware.
func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}
