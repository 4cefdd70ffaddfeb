// internal/registration/store_memory.go
package registration

import (
	"context"
	"sync"

	"business-registry/internal/models"
)

// MemoryDraftStore keeps drafts in a map. It backs unit tests and local runs
// without Redis.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]models.RegistrationData
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string]models.RegistrationData)}
}

func (s *MemoryDraftStore) Read(_ context.Context, userID string) (models.RegistrationData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if draft, ok := s.drafts[userID]; ok {
		return draft, nil
	}
	return models.EmptyRegistrationData(), nil
}

func (s *MemoryDraftStore) Update(_ context.Context, userID string, patch models.RegistrationData) (models.RegistrationData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := s.drafts[userID].Merge(patch)
	s.drafts[userID] = merged
	return merged, nil
}

func (s *MemoryDraftStore) Reset(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
	return nil
}
