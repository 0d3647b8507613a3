package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DeliveryInfo struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address" validate:"required"`
}

type DraftItem struct {
	CakeID   string `json:"cake_id"`
	Quantity int    `json:"quantity"`
}

// OrderDraft is the one-shot payload for order creation. Prices are left out
// on purpose: the backend prices the order.
type OrderDraft struct {
	id       uuid.UUID
	delivery DeliveryInfo
	items    []DraftItem
}

func NewOrderDraft(delivery DeliveryInfo, items []DraftItem) OrderDraft {
	copied := make([]DraftItem, len(items))
	copy(copied, items)

	return OrderDraft{id: uuid.New(), delivery: delivery, items: copied}
}

// ID doubles as the idempotency key for the create call.
func (d OrderDraft) ID() uuid.UUID {
	return d.id
}

func (d OrderDraft) Delivery() DeliveryInfo {
	return d.delivery
}

func (d OrderDraft) Items() []DraftItem {
	copied := make([]DraftItem, len(d.items))
	copy(copied, d.items)

	return copied
}

// Payload is the POST /orders body.
func (d OrderDraft) Payload() CreateOrderPayload {
	return CreateOrderPayload{
		CustomerName: d.delivery.CustomerName,
		Email:        d.delivery.Email,
		Phone:        d.delivery.Phone,
		Address:      d.delivery.Address,
		Items:        d.Items(),
	}
}

type CreateOrderPayload struct {
	CustomerName string      `json:"customer_name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Items        []DraftItem `json:"items"`
}

type OrderCake struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

type OrderItem struct {
	ID       string          `json:"id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Cake     *OrderCake      `json:"cake,omitempty"`
}

type Order struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	CustomerName string          `json:"customer_name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	OrderItems   []OrderItem     `json:"order_items,omitempty"`
}

type CheckoutRequest struct {
	DeliveryInfo
}

type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	TrackingURL string `json:"tracking_url"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed baking ready delivered"`
}

type OrderFilter struct {
	Status string
	Limit  int
}
