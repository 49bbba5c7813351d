package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/waypoint/pkg/domain"
)

// Store implements ports.StateStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.BackStackSnapshot
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.BackStackSnapshot),
	}
}

// Save persists the snapshot in memory.
func (s *Store) Save(ctx context.Context, hostID string, snapshot *domain.BackStackSnapshot) error {
	// Deep copy to ensure isolation, similar to serialization
	copied := snapshot.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[hostID] = copied
	return nil
}

// Load retrieves the snapshot from memory.
func (s *Store) Load(ctx context.Context, hostID string) (*domain.BackStackSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, ok := s.data[hostID]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}

	// Copy on read so callers can't mutate store state through the pointer
	return snapshot.Clone(), nil
}

// Delete removes the snapshot.
func (s *Store) Delete(ctx context.Context, hostID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, hostID)
	return nil
}

// List returns stored host IDs in sorted order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
