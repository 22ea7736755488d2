package http

import (
	"context"
	"time"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/sanjay-dhavanam/CivicConnect/internal/infrastructure/memory"
	s3infra "github.com/sanjay-dhavanam/CivicConnect/internal/infrastructure/s3"
	"github.com/sanjay-dhavanam/CivicConnect/internal/infrastructure/sns"
	"github.com/sanjay-dhavanam/CivicConnect/internal/infrastructure/translate"
)

// UserStore is the user persistence contract, satisfied by the in-memory
// and DynamoDB backends alike.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

// SessionStore is the session persistence contract.
type SessionStore interface {
	Put(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	SetLocation(ctx context.Context, token, locationID string) error
}

// OTPStore is the verification-code persistence contract.
type OTPStore interface {
	Create(ctx context.Context, o *domain.OTP) error
	Consume(ctx context.Context, phone, code string, now time.Time) (bool, error)
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo    UserStore
	SessionRepo SessionStore
	OTPRepo     OTPStore

	IssueRepo          *memory.IssueRepo
	CommentRepo        *memory.CommentRepo
	VoteRepo           *memory.VoteRepo
	BudgetRepo         *memory.BudgetRepo
	RepresentativeRepo *memory.RepresentativeRepo
	LocationRepo       *memory.LocationRepo
	SpeechRepo         *memory.SpeechRepo

	S3Store    *s3infra.Store
	SMSSender  sns.SMSSender
	Translator translate.Translator
}
