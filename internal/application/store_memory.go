// internal/application/store_memory.go
package application

import (
	"context"
	"fmt"
	"sync"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/models"
)

// MemoryStore keeps per-user application slices ordered head-first. It backs
// unit tests and local runs without Postgres.
type MemoryStore struct {
	mu   sync.RWMutex
	apps map[string][]models.Application
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{apps: make(map[string][]models.Application)}
}

func (s *MemoryStore) List(_ context.Context, userID, status string) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Application
	for _, app := range s.apps[userID] {
		if status == "" || status == "All" || string(app.Status) == status {
			out = append(out, app)
		}
	}
	return out, nil
}

func (s *MemoryStore) Insert(_ context.Context, app models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps[app.UserID] = append([]models.Application{app}, s.apps[app.UserID]...)
	return nil
}

func (s *MemoryStore) Replace(_ context.Context, userID, oldID string, app models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.apps[userID] {
		if existing.ID == oldID {
			s.apps[userID][i] = app
			return nil
		}
	}
	return stderrors.NewStorageWriteFailedError(fmt.Errorf("no application with id %s", oldID))
}

func (s *MemoryStore) Remove(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps := s.apps[userID]
	for i, existing := range apps {
		if existing.ID == id {
			s.apps[userID] = append(apps[:i:i], apps[i+1:]...)
			return nil
		}
	}
	return nil
}
