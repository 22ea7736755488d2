package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
)

// SessionRepo keeps sessions keyed by their opaque token. Expiry is the
// caller's concern (checked lazily); destroyed sessions are removed outright.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session // token -> session
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *SessionRepo) Put(_ context.Context, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.sessions[s.Token] = &cp
	return nil
}

func (r *SessionRepo) Get(_ context.Context, token string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[token]
	if !ok {
		return nil, fmt.Errorf("session not found: %w", domain.ErrNotFound)
	}
	cp := *s
	return &cp, nil
}

func (r *SessionRepo) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

// SetLocation stores the selected location on an existing session.
func (r *SessionRepo) SetLocation(_ context.Context, token, locationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok {
		return fmt.Errorf("session not found: %w", domain.ErrNotFound)
	}
	s.LocationID = &locationID
	return nil
}
