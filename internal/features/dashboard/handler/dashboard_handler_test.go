package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	catalogdomain "parts-admin/internal/features/catalog/domain"
	"parts-admin/internal/features/dashboard/domain"
	"parts-admin/internal/features/dashboard/service"
	ordersdomain "parts-admin/internal/features/orders/domain"
	supportdomain "parts-admin/internal/features/support/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrders struct {
	orders []ordersdomain.Order
	err    error
}

func (s *stubOrders) ListOrders(ctx context.Context) ([]ordersdomain.Order, error) {
	return s.orders, s.err
}

func (s *stubOrders) UpdateStatus(ctx context.Context, orderID string, status ordersdomain.OrderStatus, note string) error {
	return nil
}

func (s *stubOrders) Refund(ctx context.Context, orderID string) error { return nil }

func (s *stubOrders) DecideReturn(ctx context.Context, orderID string, action ordersdomain.RRAction, adminNote string) error {
	return nil
}

func (s *stubOrders) CompleteReturn(ctx context.Context, orderID string, adminNote string) error {
	return nil
}

type stubCatalog struct {
	products []catalogdomain.Product
}

func (s *stubCatalog) ListCategories(ctx context.Context) ([]catalogdomain.Category, error) {
	return nil, nil
}

func (s *stubCatalog) CreateCategory(ctx context.Context, input catalogdomain.CategoryInput) error {
	return nil
}

func (s *stubCatalog) UpdateCategory(ctx context.Context, id string, input catalogdomain.CategoryInput) error {
	return nil
}

func (s *stubCatalog) DeleteCategory(ctx context.Context, id string) error { return nil }

func (s *stubCatalog) ListProducts(ctx context.Context) ([]catalogdomain.Product, error) {
	return s.products, nil
}

func (s *stubCatalog) CreateProduct(ctx context.Context, input catalogdomain.ProductInput) error {
	return nil
}

func (s *stubCatalog) UpdateProduct(ctx context.Context, id string, input catalogdomain.ProductInput) error {
	return nil
}

func (s *stubCatalog) DeleteProduct(ctx context.Context, id string) error { return nil }

func (s *stubCatalog) DeleteProductImage(ctx context.Context, productID, publicID string) error {
	return nil
}

type stubTickets struct {
	tickets []supportdomain.Ticket
}

func (s *stubTickets) ListTickets(ctx context.Context) ([]supportdomain.Ticket, error) {
	return s.tickets, nil
}

func (s *stubTickets) UpdateStatus(ctx context.Context, ticketID string, status supportdomain.TicketStatus) error {
	return nil
}

func (s *stubTickets) AddMessage(ctx context.Context, ticketID string, text string) error {
	return nil
}

func newTestApp(orders *stubOrders, catalog *stubCatalog, tickets *stubTickets) *fiber.App {
	h := NewDashboardHandler(service.NewDashboardService(orders, catalog, tickets))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/admin/dashboard", h.Summary)
	return app
}

func TestDashboardHandler_Summary(t *testing.T) {
	app := newTestApp(
		&stubOrders{orders: []ordersdomain.Order{{ID: "o1"}, {ID: "o2"}}},
		&stubCatalog{products: []catalogdomain.Product{{ID: "p1", Stock: 2}}},
		&stubTickets{tickets: []supportdomain.Ticket{{ID: "t1", Status: supportdomain.TicketStatusOpen}}},
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary domain.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 1, summary.TotalProducts)
	assert.Equal(t, 1, summary.LowStock)
	assert.Equal(t, 1, summary.OpenTickets)
}

func TestDashboardHandler_Summary_BackendDown(t *testing.T) {
	app := newTestApp(&stubOrders{err: errors.New("connection refused")}, &stubCatalog{}, &stubTickets{})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var result ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "test-ray-id", result.RayID)
}
