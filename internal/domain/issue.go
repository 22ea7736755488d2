package domain

import "time"

const (
	IssueStatusPending    = "pending"
	IssueStatusInProgress = "in_progress"
	IssueStatusResolved   = "resolved"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Issue is a citizen-reported local problem (pothole, streetlight, drainage...).
type Issue struct {
	IssueID     string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`   // pending | in_progress | resolved
	Priority    string     `json:"priority"` // low | medium | high | urgent
	LocationID  string     `json:"location_id"`
	Address     string     `json:"address"`
	Coordinates *GeoPoint  `json:"coordinates,omitempty"`
	ReportedBy  string     `json:"reported_by"`
	AssignedTo  *string    `json:"assigned_to,omitempty"`
	MediaKeys   []string   `json:"media,omitempty"`
	Upvotes     int        `json:"upvotes"`
	Comments    int        `json:"comments"`
	CreatedAt   time.Time  `json:"created"`
	UpdatedAt   time.Time  `json:"updated"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

type CreateIssueRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Type        string    `json:"type" validate:"required"`
	Priority    string    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	LocationID  string    `json:"location_id" validate:"required"`
	Address     string    `json:"address" validate:"required"`
	Coordinates *GeoPoint `json:"coordinates"`
	MediaKeys   []string  `json:"media"`
}

// IssueFilter selects issues field by field; zero values mean "any".
type IssueFilter struct {
	Status     string
	Type       string
	Priority   string
	LocationID string
}

// Matches is the explicit predicate applied by list operations.
func (f IssueFilter) Matches(i *Issue) bool {
	if f.Status != "" && i.Status != f.Status {
		return false
	}
	if f.Type != "" && i.Type != f.Type {
		return false
	}
	if f.Priority != "" && i.Priority != f.Priority {
		return false
	}
	if f.LocationID != "" && i.LocationID != f.LocationID {
		return false
	}
	return true
}

// Comment is a citizen remark on an issue.
type Comment struct {
	CommentID string    `json:"id"`
	IssueID   string    `json:"issue_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Vote records one user's up/down vote on an issue. A user may vote on a
// given issue at most once.
type Vote struct {
	VoteID    string    `json:"id"`
	IssueID   string    `json:"issue_id"`
	UserID    string    `json:"user_id"`
	Upvote    bool      `json:"vote"` // true = upvote, false = downvote
	CreatedAt time.Time `json:"created"`
}
