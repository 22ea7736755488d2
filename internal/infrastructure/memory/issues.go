package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
)

// IssueRepo stores citizen-reported issues with their counters.
type IssueRepo struct {
	mu     sync.RWMutex
	issues map[string]*domain.Issue
}

func NewIssueRepo() *IssueRepo {
	return &IssueRepo{issues: make(map[string]*domain.Issue)}
}

func (r *IssueRepo) Create(_ context.Context, i *domain.Issue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *i
	r.issues[i.IssueID] = &cp
	return nil
}

func (r *IssueRepo) Get(_ context.Context, issueID string) (*domain.Issue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.issues[issueID]
	if !ok {
		return nil, fmt.Errorf("issue not found: %w", domain.ErrNotFound)
	}
	cp := *i
	return &cp, nil
}

// List returns issues matching the filter, newest first.
func (r *IssueRepo) List(_ context.Context, f domain.IssueFilter) ([]domain.Issue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Issue, 0)
	for _, i := range r.issues {
		if f.Matches(i) {
			out = append(out, *i)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

// UpdateStatus applies a triage transition; resolving stamps ResolvedAt.
func (r *IssueRepo) UpdateStatus(_ context.Context, issueID, status string, now time.Time) (*domain.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.issues[issueID]
	if !ok {
		return nil, fmt.Errorf("issue not found: %w", domain.ErrNotFound)
	}
	i.Status = status
	i.UpdatedAt = now
	if status == domain.IssueStatusResolved {
		i.ResolvedAt = &now
	}
	cp := *i
	return &cp, nil
}

func (r *IssueRepo) IncrementUpvotes(_ context.Context, issueID string) error {
	return r.bump(issueID, func(i *domain.Issue) { i.Upvotes++ })
}

func (r *IssueRepo) IncrementComments(_ context.Context, issueID string) error {
	return r.bump(issueID, func(i *domain.Issue) { i.Comments++ })
}

func (r *IssueRepo) bump(issueID string, apply func(*domain.Issue)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.issues[issueID]
	if !ok {
		return fmt.Errorf("issue not found: %w", domain.ErrNotFound)
	}
	apply(i)
	return nil
}
