package storage

import (
	"context"
	"sync"

	"immo-map/models"
)

// MarkerStore persists confirmed listings for the /markers backend.
type MarkerStore interface {
	List(ctx context.Context) ([]models.Marker, error)
	Create(ctx context.Context, m models.Marker) error
	Close()
}

// MemoryStore keeps markers in process memory, in insertion order.
type MemoryStore struct {
	mu      sync.RWMutex
	markers []models.Marker
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Marker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Marker, len(s.markers))
	copy(out, s.markers)
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, m models.Marker) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markers = append(s.markers, m)
	return nil
}

func (s *MemoryStore) Close() {}
