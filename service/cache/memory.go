package cache

import (
	"context"
	"sort"
	"sync"

	"github.com/elC0mpa/aws-reservations/model"
)

type memoryService struct {
	mu         sync.RWMutex
	namespaces map[string]map[string]model.CacheEntry
}

// NewMemoryService returns a process-local cache. It backs the agent when no
// database path is configured and every cache test.
func NewMemoryService() *memoryService {
	return &memoryService{
		namespaces: make(map[string]map[string]model.CacheEntry),
	}
}

func (s *memoryService) ReplaceAll(_ context.Context, namespace string, entries []model.CacheEntry) error {
	replacement := make(map[string]model.CacheEntry, len(entries))
	for _, entry := range entries {
		replacement[entry.ID] = entry
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.namespaces[namespace] = replacement
	return nil
}

func (s *memoryService) Get(_ context.Context, namespace, id string) (*model.CacheEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.namespaces[namespace][id]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (s *memoryService) List(_ context.Context, namespace string) ([]model.CacheEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]model.CacheEntry, 0, len(s.namespaces[namespace]))
	for _, entry := range s.namespaces[namespace] {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}
