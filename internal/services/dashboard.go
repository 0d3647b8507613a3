package service

import (
	"context"
	"strings"

	"github.com/aaravmahajanofficial/cake-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cake-storefront/internal/models"
	"github.com/aaravmahajanofficial/cake-storefront/internal/orderstatus"
	"github.com/aaravmahajanofficial/cake-storefront/pkg/bakery"
	"github.com/shopspring/decimal"
)

// dashboardOrderLimit bounds how many orders the dashboard aggregates over.
const dashboardOrderLimit = 1000

type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
	ListOrders(ctx context.Context, filter models.OrderFilter) (*models.OrderListResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status string) (*models.Order, error)
}

type dashboardService struct {
	client bakery.Client
}

func NewDashboardService(client bakery.Client) DashboardService {
	return &dashboardService{client: client}
}

func (s *dashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {

	orders, err := s.client.ListOrders(ctx, models.OrderFilter{Limit: dashboardOrderLimit})
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{TotalOrders: len(orders), TotalRevenue: decimal.Zero}
	customers := make(map[string]struct{})

	for _, order := range orders {
		if order.Status == orderstatus.Pending {
			stats.PendingOrders++
		}

		stats.TotalRevenue = stats.TotalRevenue.Add(order.TotalAmount)
		customers[strings.ToLower(strings.TrimSpace(order.Email))] = struct{}{}
	}

	stats.TotalCustomers = len(customers)

	return stats, nil
}

func (s *dashboardService) ListOrders(ctx context.Context, filter models.OrderFilter) (*models.OrderListResponse, error) {
	if filter.Limit < 1 || filter.Limit > dashboardOrderLimit {
		filter.Limit = 50
	}

	if filter.Status != "" && !orderstatus.Known(filter.Status) {
		return nil, errors.AddValidationError("status", "must be one of "+strings.Join(orderstatus.Codes(), ", "))
	}

	orders, err := s.client.ListOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.OrderListResponse{Data: orders, Total: len(orders), Limit: filter.Limit}, nil
}

func (s *dashboardService) UpdateOrderStatus(ctx context.Context, orderID string, status string) (*models.Order, error) {
	if !orderstatus.Known(status) {
		return nil, errors.AddValidationError("status", "must be one of "+strings.Join(orderstatus.Codes(), ", "))
	}

	return s.client.UpdateOrderStatus(ctx, orderID, status)
}
