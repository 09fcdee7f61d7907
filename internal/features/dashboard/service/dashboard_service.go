package service

import (
	"context"
	"fmt"

	catalogports "parts-admin/internal/features/catalog/ports"
	"parts-admin/internal/features/dashboard/domain"
	ordersports "parts-admin/internal/features/orders/ports"
	supportdomain "parts-admin/internal/features/support/domain"
	supportports "parts-admin/internal/features/support/ports"
)

// DashboardService aggregates the counters for the admin landing page from
// the other feature providers.
type DashboardService struct {
	orders  ordersports.OrderProvider
	catalog catalogports.CatalogProvider
	tickets supportports.TicketProvider
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(orders ordersports.OrderProvider, catalog catalogports.CatalogProvider, tickets supportports.TicketProvider) *DashboardService {
	return &DashboardService{
		orders:  orders,
		catalog: catalog,
		tickets: tickets,
	}
}

// Summary fetches orders, products and tickets and reduces them to the
// dashboard counters. Any backend failure fails the whole summary.
func (s *DashboardService) Summary(ctx context.Context) (domain.Summary, error) {
	var summary domain.Summary

	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return summary, fmt.Errorf("loading orders: %w", err)
	}
	summary.TotalOrders = len(orders)
	for _, o := range orders {
		if o.RRCanDecide() {
			summary.PendingReturns++
		}
	}

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return summary, fmt.Errorf("loading products: %w", err)
	}
	summary.TotalProducts = len(products)
	for _, p := range products {
		if p.LowStock() {
			summary.LowStock++
		}
	}

	tickets, err := s.tickets.ListTickets(ctx)
	if err != nil {
		return summary, fmt.Errorf("loading tickets: %w", err)
	}
	for _, t := range tickets {
		if t.Status == supportdomain.TicketStatusOpen {
			summary.OpenTickets++
		}
	}

	return summary, nil
}
