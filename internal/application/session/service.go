package session

import (
	"context"
	"fmt"
	"time"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	pkgtoken "github.com/sanjay-dhavanam/CivicConnect/internal/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// Service turns a successful credential check into a server-side session
// referenced by an opaque token, and resolves tokens back to sessions.
// Expiry is lazy: an expired session is detected (and discarded) on read.
type Service interface {
	Login(ctx context.Context, phone, password string) (*domain.User, *domain.Session, error)
	GovtLogin(ctx context.Context, username, password string) (*domain.User, *domain.Session, error)
	Logout(ctx context.Context, token string) error
	Current(ctx context.Context, token string) (*domain.User, *domain.Session, error)
	SetLocation(ctx context.Context, token, locationID string) error
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type sessionStore interface {
	Put(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	SetLocation(ctx context.Context, token, locationID string) error
}

type service struct {
	userRepo    userStore
	sessionRepo sessionStore
	sessionTTL  time.Duration
	now         func() time.Time
}

type ServiceDeps struct {
	UserRepo    userStore
	SessionRepo sessionStore
	SessionTTL  time.Duration
	// Clock overrides the time source; nil means time.Now.
	Clock func() time.Time
}

func NewService(deps ServiceDeps) Service {
	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	return &service{
		userRepo:    deps.UserRepo,
		sessionRepo: deps.SessionRepo,
		sessionTTL:  deps.SessionTTL,
		now:         now,
	}
}

func (s *service) Login(ctx context.Context, phone, password string) (*domain.User, *domain.Session, error) {
	u, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, nil, invalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, nil, invalidCredentials()
	}
	sess, err := s.establish(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, sess, nil
}

func (s *service) GovtLogin(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil || u.UserType != domain.UserTypeGovernment {
		return nil, nil, invalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, nil, invalidCredentials()
	}
	sess, err := s.establish(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, sess, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.Delete(ctx, token)
}

func (s *service) Current(ctx context.Context, token string) (*domain.User, *domain.Session, error) {
	sess, err := s.sessionRepo.Get(ctx, token)
	if err != nil {
		return nil, nil, fmt.Errorf("not authenticated: %w", domain.ErrUnauthorized)
	}
	if sess.Expired(s.now()) {
		_ = s.sessionRepo.Delete(ctx, token)
		return nil, nil, fmt.Errorf("session expired: %w", domain.ErrUnauthorized)
	}
	u, err := s.userRepo.Get(ctx, sess.UserID)
	if err != nil {
		// The account went away underneath the session; drop the session too.
		_ = s.sessionRepo.Delete(ctx, token)
		return nil, nil, fmt.Errorf("not authenticated: %w", domain.ErrUnauthorized)
	}
	return u, sess, nil
}

func (s *service) SetLocation(ctx context.Context, token, locationID string) error {
	if _, _, err := s.Current(ctx, token); err != nil {
		return err
	}
	return s.sessionRepo.SetLocation(ctx, token, locationID)
}

func (s *service) establish(ctx context.Context, u *domain.User) (*domain.Session, error) {
	tok, err := pkgtoken.NewSessionToken()
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	sess := &domain.Session{
		Token:     tok,
		UserID:    u.UserID,
		UserType:  u.UserType,
		ExpiresAt: now.Add(s.sessionTTL).Unix(),
		CreatedAt: now,
	}
	if err := s.sessionRepo.Put(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func invalidCredentials() error {
	return fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
}
