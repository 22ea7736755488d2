package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
)

type CommentRepo struct {
	mu       sync.RWMutex
	comments map[string]*domain.Comment
}

func NewCommentRepo() *CommentRepo {
	return &CommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *CommentRepo) Create(_ context.Context, c *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.comments[c.CommentID] = &cp
	return nil
}

// ListByIssue returns an issue's comments oldest first.
func (r *CommentRepo) ListByIssue(_ context.Context, issueID string) ([]domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Comment, 0)
	for _, c := range r.comments {
		if c.IssueID == issueID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.Before(out[b].CreatedAt) })
	return out, nil
}
