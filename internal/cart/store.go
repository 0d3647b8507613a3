// Package cart holds a session's shopping cart. The Store is the only way to
// change a cart: every operation keeps quantities positive, keeps one line per
// item, and derives counts and totals from the lines on every read.
package cart

import (
	"sync"

	"github.com/aaravmahajanofficial/cake-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cake-storefront/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type EventKind string

const (
	EventItemAdded       EventKind = "item_added"
	EventQuantityChanged EventKind = "quantity_changed"
	EventItemRemoved     EventKind = "item_removed"
	EventCleared         EventKind = "cleared"
	EventOrderPlaced     EventKind = "order_placed"
)

// Event is delivered to subscribers after a mutation that changed the cart.
type Event struct {
	Kind     EventKind
	ItemID   string
	Snapshot Snapshot
}

type Store struct {
	mu       sync.Mutex
	order    []string
	lines    map[string]models.CartLine
	version  uint64
	subs     map[uint64]func(Event)
	nextSub  uint64
	validate *validator.Validate
}

func NewStore() *Store {
	return &Store{
		lines:    make(map[string]models.CartLine),
		subs:     make(map[uint64]func(Event)),
		validate: validator.New(),
	}
}

// AddItem merges into an existing line for the same item, otherwise appends a
// new line priced at the item's current unit price.
func (s *Store) AddItem(item models.CatalogItem, quantity int) error {
	if quantity < 1 {
		return errors.AddValidationError("quantity", "must be at least 1")
	}

	if err := s.validate.Struct(item); err != nil {
		return errors.AddValidationError("item_id", "is required").WithError(err)
	}

	if item.UnitPrice.IsNegative() {
		return errors.AddValidationError("unit_price", "must not be negative")
	}

	s.mu.Lock()

	if line, ok := s.lines[item.ItemID]; ok {
		line.Quantity += quantity
		s.lines[item.ItemID] = line
	} else {
		s.lines[item.ItemID] = models.CartLine{
			ItemID:    item.ItemID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			ImageRef:  item.ImageRef,
			Quantity:  quantity,
		}
		s.order = append(s.order, item.ItemID)
	}

	event := s.commitLocked(EventItemAdded, item.ItemID)
	s.mu.Unlock()

	s.publish(event)

	return nil
}

// SetQuantity is absolute, not additive. Zero or less removes the line; an
// unknown item is ignored.
func (s *Store) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(itemID)
		return
	}

	s.mu.Lock()

	line, ok := s.lines[itemID]
	if !ok || line.Quantity == quantity {
		s.mu.Unlock()
		return
	}

	line.Quantity = quantity
	s.lines[itemID] = line

	event := s.commitLocked(EventQuantityChanged, itemID)
	s.mu.Unlock()

	s.publish(event)
}

func (s *Store) RemoveItem(itemID string) {
	s.mu.Lock()

	if _, ok := s.lines[itemID]; !ok {
		s.mu.Unlock()
		return
	}

	s.removeLocked(itemID)

	event := s.commitLocked(EventItemRemoved, itemID)
	s.mu.Unlock()

	s.publish(event)
}

// Clear is idempotent; clearing an empty cart notifies nobody.
func (s *Store) Clear() {
	s.mu.Lock()

	if len(s.order) == 0 {
		s.mu.Unlock()
		return
	}

	s.resetLocked()

	event := s.commitLocked(EventCleared, "")
	s.mu.Unlock()

	s.publish(event)
}

// RemoveOrdered takes an ordered snapshot's quantities out of the cart. A
// cart still at the snapshot's version is cleared; otherwise lines added or
// raised since the snapshot keep the difference.
func (s *Store) RemoveOrdered(ordered Snapshot) {
	s.mu.Lock()

	if len(s.order) == 0 {
		s.mu.Unlock()
		return
	}

	if s.version == ordered.version {
		s.resetLocked()

		event := s.commitLocked(EventCleared, "")
		s.mu.Unlock()

		s.publish(event)

		return
	}

	changed := false

	for _, line := range ordered.lines {
		current, ok := s.lines[line.ItemID]
		if !ok {
			continue
		}

		changed = true
		current.Quantity -= line.Quantity

		if current.Quantity <= 0 {
			s.removeLocked(line.ItemID)
		} else {
			s.lines[line.ItemID] = current
		}
	}

	if !changed {
		s.mu.Unlock()
		return
	}

	event := s.commitLocked(EventOrderPlaced, "")
	s.mu.Unlock()

	s.publish(event)
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.copyLinesLocked()
}

func (s *Store) TotalItemCount() int {
	return s.Snapshot().TotalItemCount()
}

func (s *Store) Subtotal() decimal.Decimal {
	return s.Snapshot().Subtotal()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.order)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Subscribe registers fn for change events and returns a function that
// removes it. fn runs on the mutating goroutine after the store lock is
// released, so it may read the store.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

type pendingEvent struct {
	event Event
	subs  []func(Event)
}

func (s *Store) commitLocked(kind EventKind, itemID string) pendingEvent {
	s.version++

	subs := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}

	return pendingEvent{
		event: Event{Kind: kind, ItemID: itemID, Snapshot: s.snapshotLocked()},
		subs:  subs,
	}
}

func (s *Store) publish(p pendingEvent) {
	for _, fn := range p.subs {
		fn(p.event)
	}
}

func (s *Store) removeLocked(itemID string) {
	delete(s.lines, itemID)

	for i, id := range s.order {
		if id == itemID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) resetLocked() {
	s.order = nil
	s.lines = make(map[string]models.CartLine)
}

func (s *Store) copyLinesLocked() []models.CartLine {
	lines := make([]models.CartLine, 0, len(s.order))
	for _, id := range s.order {
		lines = append(lines, s.lines[id])
	}

	return lines
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{lines: s.copyLinesLocked(), version: s.version}
}
