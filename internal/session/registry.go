// Package session maps browser sessions to their carts.
package session

import (
	"fmt"
	"sync"

	"github.com/aaravmahajanofficial/cake-storefront/internal/cart"
	"github.com/aaravmahajanofficial/cake-storefront/internal/metrics"
	lru "github.com/hashicorp/golang-lru"
)

// Registry keeps at most a fixed number of carts; the least recently used
// session is dropped when a new one would exceed the bound.
type Registry struct {
	mu       sync.Mutex
	sessions *lru.Cache
}

func NewRegistry(maxSessions int) (*Registry, error) {
	r := &Registry{}

	sessions, err := lru.NewWithEvict(maxSessions, r.onEvict)
	if err != nil {
		return nil, fmt.Errorf("creating session registry: %w", err)
	}

	r.sessions = sessions

	return r, nil
}

// Store returns the session's cart, creating an empty one on first use.
func (r *Registry) Store(sessionID string) *cart.Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if value, ok := r.sessions.Get(sessionID); ok {
		return value.(*cart.Store)
	}

	store := cart.NewStore()
	store.Subscribe(func(e cart.Event) {
		metrics.RecordCartMutation(string(e.Kind))
	})

	r.sessions.Add(sessionID, store)
	metrics.SetActiveSessions(r.sessions.Len())

	return store
}

// Lookup does not create a cart and does not refresh the session's recency.
func (r *Registry) Lookup(sessionID string) (*cart.Store, bool) {
	value, ok := r.sessions.Peek(sessionID)
	if !ok {
		return nil, false
	}

	return value.(*cart.Store), true
}

func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions.Remove(sessionID)
	metrics.SetActiveSessions(r.sessions.Len())
}

func (r *Registry) Len() int {
	return r.sessions.Len()
}

// onEvict runs under the cache's own lock, so it must not call back into it.
func (r *Registry) onEvict(_ interface{}, _ interface{}) {
	metrics.RecordSessionEvicted()
}
