package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
)

// VoteRepo enforces one vote per (user, issue) pair under its mutex, so the
// existence check and the insert are a single atomic step.
type VoteRepo struct {
	mu    sync.Mutex
	votes map[string]*domain.Vote // "<issue_id>/<user_id>" -> vote
}

func NewVoteRepo() *VoteRepo {
	return &VoteRepo{votes: make(map[string]*domain.Vote)}
}

func voteKey(issueID, userID string) string { return issueID + "/" + userID }

func (r *VoteRepo) Create(_ context.Context, v *domain.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := voteKey(v.IssueID, v.UserID)
	if _, exists := r.votes[key]; exists {
		return fmt.Errorf("already voted on this issue: %w", domain.ErrConflict)
	}
	cp := *v
	r.votes[key] = &cp
	return nil
}

func (r *VoteRepo) GetByUserAndIssue(_ context.Context, userID, issueID string) (*domain.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.votes[voteKey(issueID, userID)]
	if !ok {
		return nil, fmt.Errorf("vote not found: %w", domain.ErrNotFound)
	}
	cp := *v
	return &cp, nil
}
