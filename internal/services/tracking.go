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

const shortIDLength = 8

type TrackingService interface {
	Track(ctx context.Context, orderID string) (*models.TrackedOrder, error)
}

type trackingService struct {
	client bakery.Client
}

func NewTrackingService(client bakery.Client) TrackingService {
	return &trackingService{client: client}
}

// Track fetches the order and lays out its status for display. A missing
// order comes back as NOT_FOUND, never as a transport failure.
func (s *trackingService) Track(ctx context.Context, orderID string) (*models.TrackedOrder, error) {

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, errors.AddValidationError("id", "is required")
	}

	order, err := s.client.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order == nil || order.ID == "" {
		return nil, errors.NotFoundError("Order not found")
	}

	lastUpdated := order.UpdatedAt
	if lastUpdated.IsZero() {
		lastUpdated = order.CreatedAt
	}

	return &models.TrackedOrder{
		Order:         order,
		ShortID:       ShortID(order.ID),
		Status:        orderstatus.View(order.Status),
		Timeline:      orderstatus.Timeline(order.Status),
		Subtotal:      order.TotalAmount,
		DeliveryFee:   decimal.Zero,
		Total:         order.TotalAmount,
		LastUpdatedAt: lastUpdated,
	}, nil
}

// ShortID is the human-facing order reference.
func ShortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}

	return id[:shortIDLength]
}
