package cart

import (
	"context"
	"sync"
	"time"
)

// SessionStore keeps one cart per session id.
//
//go:generate mockgen -source=cart_store.go -destination=../mock/cart/cart_store_mock.go -package=mock
type SessionStore interface {
	// Get returns ErrCartNotFound when the session has no cart yet.
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, c *Cart) error
	// Update loads the cart (or a new empty one), applies fn and saves the
	// result as one step. Nothing is saved when fn fails.
	Update(ctx context.Context, sessionID string, fn func(*Cart) error) error
	Delete(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	lines     []CartLine
	expiresAt time.Time
}

// MemoryStore is a process-local SessionStore. Carts are copied on the way
// in and out so callers never share state with the store.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryStore keeps carts for ttl after their last write; ttl <= 0 keeps
// them forever.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		carts: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.load(sessionID)
	if !ok {
		return nil, ErrCartNotFound
	}
	return c, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, c *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store(sessionID, c)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, sessionID string, fn func(*Cart) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.load(sessionID)
	if !ok {
		c = NewCart()
	}
	if err := fn(c); err != nil {
		return err
	}
	s.store(sessionID, c)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

// load and store expect s.mu to be held.
func (s *MemoryStore) load(sessionID string) (*Cart, bool) {
	e, ok := s.carts[sessionID]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.carts, sessionID)
		return nil, false
	}

	c := NewCart()
	c.lines = append(c.lines, e.lines...)
	return c, true
}

func (s *MemoryStore) store(sessionID string, c *Cart) {
	e := memoryEntry{lines: c.Lines()}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.carts[sessionID] = e
}
