package handler

import (
	"errors"
	"net/http"

	"parts-admin/internal/core/logger"
	"parts-admin/internal/core/storeapi"
	"parts-admin/internal/features/catalog/domain"
	"parts-admin/internal/features/catalog/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for category and product management.
type CatalogHandler struct {
	// service is the CatalogService instance.
	service *service.CatalogService
}

// NewCatalogHandler creates a new instance of CatalogHandler.
func NewCatalogHandler(s *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: s,
	}
}

// CategoryListResponse is returned by every category endpoint.
type CategoryListResponse struct {
	// Categories is the category list, sorted by name.
	Categories []domain.Category `json:"categories"`
	// Total is the number of categories.
	Total int `json:"total"`
	// Message is a human-readable notice for the completed action, if any.
	Message string `json:"message,omitempty"`
}

// ProductListResponse is returned by every product endpoint.
type ProductListResponse struct {
	// Products is the product list after filtering and sorting.
	Products []ProductView `json:"products"`
	// Total is the number of products after filtering.
	Total int `json:"total"`
	// Message is a human-readable notice for the completed action, if any.
	Message string `json:"message,omitempty"`
}

// ProductView is a product enriched with derived pricing and stock fields.
type ProductView struct {
	domain.Product
	// FinalPrice is the effective customer price.
	FinalPrice float64 `json:"finalPrice"`
	// DiscountPercent is the rounded discount percentage, zero when none.
	DiscountPercent int `json:"discountPercent"`
	// InStock reports whether any units are available.
	InStock bool `json:"inStock"`
	// LowStock reports whether the stock level needs attention.
	LowStock bool `json:"lowStock"`
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// imageDeleteRequest is the body accepted by the image deletion endpoint.
type imageDeleteRequest struct {
	PublicID string `json:"public_id"`
}

// ListCategories handles the request to fetch all categories.
// @Summary List categories
// @Produce json
// @Success 200 {object} CategoryListResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.Context())
	if err != nil {
		return h.fail(c, err, "Failed to load categories")
	}
	return c.Status(http.StatusOK).JSON(categoryResponse(categories, ""))
}

// CreateCategory handles category creation.
// @Summary Create a category
// @Accept json
// @Produce json
// @Param request body domain.CategoryInput true "Category fields"
// @Success 201 {object} CategoryListResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var input domain.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return h.badRequest(c, "Invalid category payload")
	}

	categories, err := h.service.CreateCategory(c.Context(), input)
	if err != nil {
		return h.fail(c, err, "Failed to create category")
	}
	return c.Status(http.StatusCreated).JSON(categoryResponse(categories, "Category created"))
}

// UpdateCategory handles category updates.
// @Summary Update a category
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body domain.CategoryInput true "Category fields"
// @Success 200 {object} CategoryListResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	var input domain.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return h.badRequest(c, "Invalid category payload")
	}

	categories, err := h.service.UpdateCategory(c.Context(), c.Params("id"), input)
	if err != nil {
		return h.fail(c, err, "Failed to update category")
	}
	return c.Status(http.StatusOK).JSON(categoryResponse(categories, "Category updated"))
}

// DeleteCategory handles category deletion.
// @Summary Delete a category
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} CategoryListResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	categories, err := h.service.DeleteCategory(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Failed to delete category")
	}
	return c.Status(http.StatusOK).JSON(categoryResponse(categories, "Category deleted"))
}

// ListProducts handles the request to fetch the product listing.
// @Summary List products
// @Produce json
// @Param search query string false "Match against title and brand"
// @Param category query string false "Category ID"
// @Param availability query string false "in or out"
// @Param sort query string false "price-asc, price-desc or discount-desc"
// @Success 200 {object} ProductListResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	filter := domain.Filter{
		Search:       c.Query("search"),
		CategoryID:   c.Query("category"),
		Availability: c.Query("availability"),
		Sort:         c.Query("sort"),
	}

	products, err := h.service.ListProducts(c.Context(), filter)
	if err != nil {
		return h.fail(c, err, "Failed to load products")
	}
	return c.Status(http.StatusOK).JSON(productResponse(products, ""))
}

// CreateProduct handles product creation.
// @Summary Create a product
// @Accept json
// @Produce json
// @Param request body domain.ProductInput true "Product fields"
// @Success 201 {object} ProductListResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var input domain.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return h.badRequest(c, "Invalid product payload")
	}

	products, err := h.service.CreateProduct(c.Context(), input)
	if err != nil {
		return h.fail(c, err, "Failed to create product")
	}
	return c.Status(http.StatusCreated).JSON(productResponse(products, "Product created"))
}

// UpdateProduct handles product updates.
// @Summary Update a product
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body domain.ProductInput true "Product fields"
// @Success 200 {object} ProductListResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var input domain.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return h.badRequest(c, "Invalid product payload")
	}

	products, err := h.service.UpdateProduct(c.Context(), c.Params("id"), input)
	if err != nil {
		return h.fail(c, err, "Failed to update product")
	}
	return c.Status(http.StatusOK).JSON(productResponse(products, "Product updated"))
}

// DeleteProduct handles product deletion.
// @Summary Delete a product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductListResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	products, err := h.service.DeleteProduct(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Failed to delete product")
	}
	return c.Status(http.StatusOK).JSON(productResponse(products, "Product deleted"))
}

// DeleteProductImage handles removal of a single hosted product image.
// @Summary Delete a product image
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body imageDeleteRequest true "Hosted image public id"
// @Success 200 {object} ProductListResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/products/{id}/image [delete]
func (h *CatalogHandler) DeleteProductImage(c *fiber.Ctx) error {
	var req imageDeleteRequest
	if err := c.BodyParser(&req); err != nil || req.PublicID == "" {
		return h.badRequest(c, "Image public_id is required")
	}

	products, err := h.service.DeleteProductImage(c.Context(), c.Params("id"), req.PublicID)
	if err != nil {
		return h.fail(c, err, "Failed to delete image")
	}
	return c.Status(http.StatusOK).JSON(productResponse(products, "Image deleted"))
}

// fail maps a service error to an HTTP response.
func (h *CatalogHandler) fail(c *fiber.Ctx, err error, fallback string) error {
	logger.Get().Error("Catalog action failed",
		zap.String("path", c.Path()),
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)

	status := storeapi.HTTPStatus(err)
	msg := storeapi.UserMessage(err, fallback)

	switch {
	case storeapi.IsUnauthorized(err):
		msg = "Session is no longer valid"
	case isValidation(err):
		status = http.StatusBadRequest
		msg = err.Error()
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}

func (h *CatalogHandler) badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}

func isValidation(err error) bool {
	return errors.Is(err, service.ErrNameRequired) ||
		errors.Is(err, service.ErrTitleRequired) ||
		errors.Is(err, service.ErrCategoryRequired) ||
		errors.Is(err, service.ErrInvalidPrice) ||
		errors.Is(err, service.ErrNoImages)
}

// categoryResponse assembles the category payload.
func categoryResponse(categories []domain.Category, message string) CategoryListResponse {
	if categories == nil {
		categories = []domain.Category{}
	}
	return CategoryListResponse{
		Categories: categories,
		Total:      len(categories),
		Message:    message,
	}
}

// productResponse assembles the product payload with derived fields.
func productResponse(products []domain.Product, message string) ProductListResponse {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			Product:         p,
			FinalPrice:      p.FinalPrice(),
			DiscountPercent: p.DiscountPercent(),
			InStock:         p.InStock(),
			LowStock:        p.LowStock(),
		})
	}
	return ProductListResponse{
		Products: views,
		Total:    len(views),
		Message:  message,
	}
}

// rayID extracts the request id set by the requestid middleware.
func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}
