package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// MemoryStore is an in-process Store, used for ephemeral runs and tests.
type MemoryStore[ID cmp.Ordered, T Keyed[ID]] struct {
	mu    sync.RWMutex
	items map[ID]T
	hub   *hub
}

// NewMemoryStore creates an empty store.
func NewMemoryStore[ID cmp.Ordered, T Keyed[ID]](name string, logger *zap.Logger) *MemoryStore[ID, T] {
	return &MemoryStore[ID, T]{
		items: make(map[ID]T),
		hub:   newHub(name, logger),
	}
}

func (s *MemoryStore[ID, T]) Query(id ID) Live[T] {
	return watch(s.hub, fmt.Sprintf("id=%v", id), func(context.Context) (T, error) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.items[id], nil
	})
}

func (s *MemoryStore[ID, T]) QueryAll() Live[[]T] {
	return watch(s.hub, "all", func(context.Context) ([]T, error) {
		return s.snapshot(), nil
	})
}

func (s *MemoryStore[ID, T]) Insert(_ context.Context, items ...T) error {
	s.put(items)
	return nil
}

func (s *MemoryStore[ID, T]) Update(_ context.Context, items ...T) error {
	s.put(items)
	return nil
}

func (s *MemoryStore[ID, T]) Delete(_ context.Context, items ...T) error {
	if len(items) == 0 {
		return nil
	}

	s.mu.Lock()
	for _, item := range items {
		delete(s.items, item.GetID())
	}
	s.mu.Unlock()

	s.hub.notify()
	return nil
}

// Len returns the number of records.
func (s *MemoryStore[ID, T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns a record without subscribing.
func (s *MemoryStore[ID, T]) Get(id ID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	return item, ok
}

// Watchers returns the number of open live queries.
func (s *MemoryStore[ID, T]) Watchers() int {
	return s.hub.Watchers()
}

func (s *MemoryStore[ID, T]) put(items []T) {
	if len(items) == 0 {
		return
	}

	s.mu.Lock()
	for _, item := range items {
		s.items[item.GetID()] = item
	}
	s.mu.Unlock()

	s.hub.notify()
}

func (s *MemoryStore[ID, T]) snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]ID, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.items[id])
	}
	return out
}
