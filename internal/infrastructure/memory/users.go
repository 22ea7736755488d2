package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
)

// UserRepo is the in-memory credential store. Phone numbers are unique;
// the secondary indexes are plain maps kept in lockstep with the primary.
type UserRepo struct {
	mu         sync.RWMutex
	users      map[string]*domain.User // user_id -> user
	byPhone    map[string]string       // phone -> user_id
	byUsername map[string]string       // username -> user_id
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		users:      make(map[string]*domain.User),
		byPhone:    make(map[string]string),
		byUsername: make(map[string]string),
	}
}

func (r *UserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byPhone[u.Phone]; exists {
		return fmt.Errorf("phone already registered: %w", domain.ErrConflict)
	}
	if _, exists := r.byUsername[u.Username]; exists {
		return fmt.Errorf("username already taken: %w", domain.ErrConflict)
	}
	cp := *u
	r.users[u.UserID] = &cp
	r.byPhone[u.Phone] = u.UserID
	r.byUsername[u.Username] = u.UserID
	return nil
}

func (r *UserRepo) Get(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) GetByPhone(_ context.Context, phone string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	userID, ok := r.byPhone[phone]
	if !ok {
		return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
	}
	cp := *r.users[userID]
	return &cp, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	userID, ok := r.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
	}
	cp := *r.users[userID]
	return &cp, nil
}

// Update replaces the stored record, keeping the secondary indexes in sync.
func (r *UserRepo) Update(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.users[u.UserID]
	if !ok {
		return fmt.Errorf("user not found: %w", domain.ErrNotFound)
	}
	if old.Username != u.Username {
		if _, taken := r.byUsername[u.Username]; taken {
			return fmt.Errorf("username already taken: %w", domain.ErrConflict)
		}
		delete(r.byUsername, old.Username)
		r.byUsername[u.Username] = u.UserID
	}
	cp := *u
	cp.Phone = old.Phone // phone is the login identity and never changes here
	r.users[u.UserID] = &cp
	return nil
}
