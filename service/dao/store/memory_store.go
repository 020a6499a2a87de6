package store

import (
	"context"
	"sync"

	"github.com/talentgrid/allocator/service/dao"
	"github.com/talentgrid/allocator/service/dao/criteria"
)

// MemoryStore is a generic in-memory implementation of dao.Service. It keeps
// entities of type *T mapped by a comparable key K obtained from the supplied
// keySelector, and filters List results through an optional fieldSelector so
// that concrete DAOs do not rewrite identical Save/Load/Delete/List logic.
type MemoryStore[K comparable, T any] struct {
	mu            sync.RWMutex
	records       map[K]*T
	keySelector   func(*T) K
	fieldSelector func(*T) map[string]string
}

// NewMemoryStore creates a new MemoryStore. keySelector extracts the entity
// key (usually the ID field); fieldSelector may be nil when List filtering is
// not needed.
func NewMemoryStore[K comparable, T any](keySelector func(*T) K, fieldSelector func(*T) map[string]string) *MemoryStore[K, T] {
	return &MemoryStore[K, T]{
		records:       make(map[K]*T),
		keySelector:   keySelector,
		fieldSelector: fieldSelector,
	}
}

// Save stores or overwrites a record.
func (s *MemoryStore[K, T]) Save(_ context.Context, v *T) error {
	if v == nil {
		return dao.ErrNilEntity
	}
	key := s.keySelector(v)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = v
	return nil
}

// Load returns a record by key.
func (s *MemoryStore[K, T]) Load(_ context.Context, key K) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return v, nil
}

// Delete removes a record.
func (s *MemoryStore[K, T]) Delete(_ context.Context, key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return dao.ErrNotFound
	}
	delete(s.records, key)
	return nil
}

// List returns stored records matching the supplied parameters.
func (s *MemoryStore[K, T]) List(_ context.Context, parameters ...*dao.Parameter) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*T, 0, len(s.records))
	for _, v := range s.records {
		if len(parameters) > 0 && s.fieldSelector != nil {
			if !criteria.Matches(s.fieldSelector(v), parameters) {
				continue
			}
		}
		out = append(out, v)
	}
	return out, nil
}
