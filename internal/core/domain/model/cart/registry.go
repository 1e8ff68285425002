package cart

import (
	"sync"
)

// Registry hands out one cart per session. Sessions are identified by the
// opaque id the calling layer provides (the voice agent's room name, an HTTP
// header). Carts are never evicted; a session's cart lives until the process
// exits or Drop is called.
type Registry struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewRegistry creates an empty cart registry.
func NewRegistry() *Registry {
	return &Registry{
		carts: make(map[string]*Cart),
	}
}

// GetOrCreate returns the cart for the given session, creating it on first
// use.
func (r *Registry) GetOrCreate(sessionID string) *Cart {
	r.mu.RLock()
	cart, ok := r.carts[sessionID]
	r.mu.RUnlock()

	if ok {
		return cart
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cart, ok := r.carts[sessionID]; ok {
		return cart
	}

	cart = NewCart()
	r.carts[sessionID] = cart
	return cart
}

// Drop forgets the cart for the given session.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
}

// Len returns the number of live session carts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.carts)
}
