// Package cartstore keeps per-user carts. Two adapters share the same
// contract: an in-process map and a postgres-backed store.
package cartstore

import (
	"context"
	"sync"

	"github.com/RaikyD/storefront-checkout/internal/domain"
)

// MemoryStore holds carts in process memory. Safe for concurrent use;
// last write wins per user key.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]map[string]uint32 // user id -> product id -> quantity
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]map[string]uint32)}
}

// AddItem merges the item into the user's cart, summing quantities for
// an already-present product.
func (s *MemoryStore) AddItem(ctx context.Context, userID string, item domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		cart = make(map[string]uint32)
		s.carts[userID] = cart
	}
	cart[item.ProductID] += item.Quantity
	return nil
}

// GetCart returns a snapshot of the user's cart. A user with no cart
// gets an empty one.
func (s *MemoryStore) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := domain.Cart{UserID: userID}
	for productID, qty := range s.carts[userID] {
		cart.Items = append(cart.Items, domain.CartItem{ProductID: productID, Quantity: qty})
	}
	return cart, nil
}

func (s *MemoryStore) EmptyCart(ctx context.Context, userID string) error {
	s.mu.Lock()
	delete(s.carts, userID)
	s.mu.Unlock()
	return nil
}
