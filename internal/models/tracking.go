package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type StatusView struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Order    int    `json:"order"`
	Terminal bool   `json:"terminal"`
	Icon     string `json:"icon"`
}

type TimelineStep struct {
	Code    string `json:"code"`
	Label   string `json:"label"`
	Done    bool   `json:"done"`
	Current bool   `json:"current"`
}

// TrackedOrder is the order tracking screen's model.
type TrackedOrder struct {
	Order         *Order          `json:"order"`
	ShortID       string          `json:"short_id"`
	Status        StatusView      `json:"status"`
	Timeline      []TimelineStep  `json:"timeline"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DeliveryFee   decimal.Decimal `json:"delivery_fee"`
	Total         decimal.Decimal `json:"total"`
	LastUpdatedAt time.Time       `json:"last_updated_at"`
}
