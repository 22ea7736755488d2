// Package issue implements reporting, triage and engagement around
// citizen-reported local issues.
package issue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/sanjay-dhavanam/CivicConnect/internal/pkg/id"
	"github.com/sanjay-dhavanam/CivicConnect/internal/pkg/validate"
)

type issueStore interface {
	Create(ctx context.Context, i *domain.Issue) error
	Get(ctx context.Context, issueID string) (*domain.Issue, error)
	List(ctx context.Context, f domain.IssueFilter) ([]domain.Issue, error)
	UpdateStatus(ctx context.Context, issueID, status string, now time.Time) (*domain.Issue, error)
	IncrementUpvotes(ctx context.Context, issueID string) error
	IncrementComments(ctx context.Context, issueID string) error
}

type commentStore interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByIssue(ctx context.Context, issueID string) ([]domain.Comment, error)
}

type voteStore interface {
	Create(ctx context.Context, v *domain.Vote) error
	GetByUserAndIssue(ctx context.Context, userID, issueID string) (*domain.Vote, error)
}

type Service struct {
	issues   issueStore
	comments commentStore
	votes    voteStore
	clock    func() time.Time
}

type ServiceDeps struct {
	IssueRepo   issueStore
	CommentRepo commentStore
	VoteRepo    voteStore
	Clock       func() time.Time
}

func NewService(d ServiceDeps) *Service {
	clock := d.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Service{issues: d.IssueRepo, comments: d.CommentRepo, votes: d.VoteRepo, clock: clock}
}

// Create files a new issue in pending status. reporterID may be empty when
// the report comes in without a session; the record is then attributed to
// "anonymous".
func (s *Service) Create(ctx context.Context, reporterID string, req domain.CreateIssueRequest) (*domain.Issue, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	if reporterID == "" {
		reporterID = "anonymous"
	}
	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	now := s.clock()
	i := &domain.Issue{
		IssueID:     id.New(),
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Status:      domain.IssueStatusPending,
		Priority:    priority,
		LocationID:  req.LocationID,
		Address:     req.Address,
		Coordinates: req.Coordinates,
		ReportedBy:  reporterID,
		MediaKeys:   req.MediaKeys,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.issues.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) Get(ctx context.Context, issueID string) (*domain.Issue, error) {
	return s.issues.Get(ctx, issueID)
}

func (s *Service) List(ctx context.Context, f domain.IssueFilter) ([]domain.Issue, error) {
	return s.issues.List(ctx, f)
}

// UpdateStatus moves an issue through the triage lifecycle. Only the three
// known statuses are accepted.
func (s *Service) UpdateStatus(ctx context.Context, issueID, status string) (*domain.Issue, error) {
	switch status {
	case domain.IssueStatusPending, domain.IssueStatusInProgress, domain.IssueStatusResolved:
	default:
		return nil, fmt.Errorf("unknown status %q: %w", status, domain.ErrBadRequest)
	}
	return s.issues.UpdateStatus(ctx, issueID, status, s.clock())
}

// AddComment attaches a comment to an existing issue and bumps its counter.
func (s *Service) AddComment(ctx context.Context, issueID, userID string, req domain.CreateCommentRequest) (*domain.Comment, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	if _, err := s.issues.Get(ctx, issueID); err != nil {
		return nil, err
	}
	c := &domain.Comment{
		CommentID: id.New(),
		IssueID:   issueID,
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: s.clock(),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	if err := s.issues.IncrementComments(ctx, issueID); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListComments(ctx context.Context, issueID string) ([]domain.Comment, error) {
	if _, err := s.issues.Get(ctx, issueID); err != nil {
		return nil, err
	}
	return s.comments.ListByIssue(ctx, issueID)
}

// CastVote records a user's single vote on an issue. Upvotes increment the
// issue's counter; a second vote by the same user is rejected.
func (s *Service) CastVote(ctx context.Context, issueID, userID string, upvote bool) (*domain.Vote, error) {
	if _, err := s.issues.Get(ctx, issueID); err != nil {
		return nil, err
	}
	if _, err := s.votes.GetByUserAndIssue(ctx, userID, issueID); err == nil {
		return nil, fmt.Errorf("already voted on this issue: %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	v := &domain.Vote{
		VoteID:    id.New(),
		IssueID:   issueID,
		UserID:    userID,
		Upvote:    upvote,
		CreatedAt: s.clock(),
	}
	if err := s.votes.Create(ctx, v); err != nil {
		return nil, err
	}
	if upvote {
		if err := s.issues.IncrementUpvotes(ctx, issueID); err != nil {
			return nil, err
		}
	}
	return v, nil
}
