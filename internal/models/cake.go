package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cake is a catalog entry as served by the bakery backend.
type Cake struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// CatalogItem is the subset of a catalog entry a cart line needs.
type CatalogItem struct {
	ItemID    string          `json:"item_id" validate:"required"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageRef  string          `json:"image_ref"`
}

func (c *Cake) CatalogItem() CatalogItem {
	return CatalogItem{
		ItemID:    c.ID,
		Name:      c.Name,
		UnitPrice: c.Price,
		ImageRef:  c.ImageURL,
	}
}

type CakeFilter struct {
	Available *bool
}

type CreateCakeRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Description string          `json:"description" validate:"max=2000"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
	Category    string          `json:"category" validate:"max=100"`
	Available   bool            `json:"available"`
}

type UpdateCakeRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	ImageURL    *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,max=100"`
	Available   *bool            `json:"available,omitempty"`
}
