// Package cache is an in-memory store whose entries expire after a TTL.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Store holds values for a fixed TTL. It is safe for concurrent use.
// Expired entries are dropped lazily on Load.
type Store[T any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]entry[T]
	now   func() time.Time
}

// New creates a store. A ttl of zero or less disables caching: Save is a no-op.
func New[T any](ttl time.Duration) *Store[T] {
	return &Store[T]{ttl: ttl, items: make(map[string]entry[T]), now: time.Now}
}

// WithClock replaces the time source, for tests.
func (s *Store[T]) WithClock(now func() time.Time) *Store[T] {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
	return s
}

// Load returns the value under key if present and not expired.
func (s *Store[T]) Load(key string) (T, bool) {
	s.mu.RLock()
	e, ok := s.items[key]
	now := s.now()
	s.mu.RUnlock()

	if !ok {
		var zero T
		return zero, false
	}
	if !now.Before(e.expiresAt) {
		s.Invalidate(key)
		var zero T
		return zero, false
	}
	return e.value, true
}

// Save stores value under key for the store's TTL.
func (s *Store[T]) Save(key string, value T) {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	s.items[key] = entry[T]{value: value, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
}

// Invalidate removes key. Removing a missing key is not an error.
func (s *Store[T]) Invalidate(key string) {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
}

// Len reports the number of stored entries, expired ones included.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
