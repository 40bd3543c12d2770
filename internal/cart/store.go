package cart

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Store.Load when no cart exists for the session.
var ErrNotFound = errors.New("cart not found")

// Store is the durable persistence collaborator, keyed by session. Semantics
// are last-write-wins; the cart has a single writer per session.
type Store interface {
	Load(ctx context.Context, sessionKey string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
}

// MemoryStore is an in-process Store used by tests and local development.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: map[string]*Cart{}}
}

func (s *MemoryStore) Load(_ context.Context, sessionKey string) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.carts[sessionKey]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *cart
	clone.Items = cart.Snapshot()
	return &clone, nil
}

func (s *MemoryStore) Save(_ context.Context, cart *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *cart
	clone.Items = cart.Snapshot()
	s.carts[cart.SessionKey] = &clone
	return nil
}
