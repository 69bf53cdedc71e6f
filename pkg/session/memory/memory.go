package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/adrianliechti/joborder/pkg/session"
)

var _ session.Store = &Store{}

type entry struct {
	value   []byte
	expires time.Time
}

type Store struct {
	mu      sync.Mutex
	entries map[string]entry
}

func New() *Store {
	return &Store{
		entries: make(map[string]entry),
	}
}

func (s *Store) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = session.DefaultTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		value:   slices.Clone(value),
		expires: time.Now().Add(ttl),
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]

	if !ok {
		return nil, session.ErrNotFound
	}

	if time.Now().After(e.expires) {
		delete(s.entries, key)
		return nil, session.ErrNotFound
	}

	return slices.Clone(e.value), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}

// Prune drops expired entries and returns how many were removed.
func (s *Store) Prune(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	var count int

	for key, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, key)
			count++
		}
	}

	return count, nil
}
