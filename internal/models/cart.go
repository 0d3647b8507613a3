package models

import (
	"github.com/shopspring/decimal"
)

type CartLine struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageRef  string          `json:"image_ref,omitempty"`
	Quantity  int             `json:"quantity"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// AddItemRequest leaves Quantity nil when the client omits it; an explicit
// value is never adjusted.
type AddItemRequest struct {
	CakeID   string `json:"cake_id" validate:"required"`
	Quantity *int   `json:"quantity,omitempty" validate:"omitempty,min=1"`
}

func (r *AddItemRequest) RequestedQuantity() int {
	if r.Quantity == nil {
		return 1
	}

	return *r.Quantity
}

// UpdateQuantityRequest sets a line's quantity; zero or below removes the line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type CartLineView struct {
	CartLine
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartView is the cart as rendered by the cart and checkout screens.
// Delivery is free, so Total always equals Subtotal.
type CartView struct {
	Items       []CartLineView  `json:"items"`
	TotalItems  int             `json:"total_items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
	Version     uint64          `json:"version"`
}
