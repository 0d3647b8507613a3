package cart

import (
	"github.com/aaravmahajanofficial/cake-storefront/internal/models"
	"github.com/shopspring/decimal"
)

// Snapshot is a read-only copy of a cart at one version. Its aggregates are
// computed from its own lines, so they cannot drift from them.
type Snapshot struct {
	lines   []models.CartLine
	version uint64
}

// NewSnapshot builds a detached snapshot, mostly for callers that assemble
// a cart outside a Store.
func NewSnapshot(lines []models.CartLine) Snapshot {
	copied := make([]models.CartLine, len(lines))
	copy(copied, lines)

	return Snapshot{lines: copied}
}

func (s Snapshot) Lines() []models.CartLine {
	copied := make([]models.CartLine, len(s.lines))
	copy(copied, s.lines)

	return copied
}

func (s Snapshot) Len() int {
	return len(s.lines)
}

func (s Snapshot) IsEmpty() bool {
	return len(s.lines) == 0
}

func (s Snapshot) Version() uint64 {
	return s.version
}

func (s Snapshot) TotalItemCount() int {
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}

	return count
}

func (s Snapshot) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range s.lines {
		subtotal = subtotal.Add(line.LineTotal())
	}

	return subtotal
}

func (s Snapshot) DraftItems() []models.DraftItem {
	items := make([]models.DraftItem, 0, len(s.lines))
	for _, line := range s.lines {
		items = append(items, models.DraftItem{CakeID: line.ItemID, Quantity: line.Quantity})
	}

	return items
}

// View renders the snapshot for the cart screen. Delivery is free.
func (s Snapshot) View() models.CartView {
	items := make([]models.CartLineView, 0, len(s.lines))
	for _, line := range s.lines {
		items = append(items, models.CartLineView{CartLine: line, LineTotal: line.LineTotal()})
	}

	subtotal := s.Subtotal()

	return models.CartView{
		Items:       items,
		TotalItems:  s.TotalItemCount(),
		Subtotal:    subtotal,
		DeliveryFee: decimal.Zero,
		Total:       subtotal,
		Version:     s.version,
	}
}
