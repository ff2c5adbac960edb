package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/passa-a-bola/passa-web/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu      sync.RWMutex
	clients map[string]map[string]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		clients: make(map[string]map[string]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetItems(ctx context.Context, clientID string, keys ...string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]string, len(keys))
	items, ok := s.clients[clientID]
	if !ok {
		return result, nil
	}
	for _, key := range keys {
		if value, ok := items[key]; ok {
			result[key] = value
		}
	}
	return result, nil
}

func (s *Storage) SetItems(ctx context.Context, clientID string, items map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.clients[clientID]
	if !ok {
		existing = make(map[string]string, len(items))
		s.clients[clientID] = existing
	}
	maps.Copy(existing, items)
	return nil
}

func (s *Storage) RemoveItems(ctx context.Context, clientID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.clients[clientID]
	if !ok {
		return nil
	}
	for _, key := range keys {
		delete(items, key)
	}
	if len(items) == 0 {
		delete(s.clients, clientID)
	}
	return nil
}

// Len returns the number of clients holding at least one key
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}
