// internal/auth/store_memory.go
package auth

import (
	"context"
	"sync"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/models"
)

// In-memory stores keep the service testable without Postgres or Redis.

type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.UserRecord
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.UserRecord)}
}

func (s *MemoryUserStore) Save(_ context.Context, rec models.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[rec.Email]; exists {
		return stderrors.NewDuplicateUserError(rec.Email)
	}
	s.users[rec.Email] = rec
	return nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (models.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.users[email]; ok {
		return rec, nil
	}
	return models.UserRecord{}, ErrNotFound
}

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.Session)}
}

func (s *MemorySessionStore) Save(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

func (s *MemorySessionStore) Find(_ context.Context, token string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if session, ok := s.sessions[token]; ok && !session.IsExpired() {
		return session, nil
	}
	return models.Session{}, ErrNotFound
}

func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
