// Package user implements citizen and government account management.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/sanjay-dhavanam/CivicConnect/internal/pkg/id"
	"github.com/sanjay-dhavanam/CivicConnect/internal/pkg/validate"
	"golang.org/x/crypto/bcrypt"
)

type userStore interface {
	Create(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type Service struct {
	users userStore
	clock func() time.Time
}

type ServiceDeps struct {
	UserRepo userStore
	Clock    func() time.Time
}

func NewService(d ServiceDeps) *Service {
	clock := d.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Service{users: d.UserRepo, clock: clock}
}

// Register creates an account from a registration request. The phone number
// is the login identity and must not already be registered.
func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	userType := req.UserType
	if userType == "" {
		userType = domain.UserTypeCitizen
	}
	now := s.clock()
	u := &domain.User{
		UserID:         id.New(),
		Username:       req.Username,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Email:          req.Email,
		AadhaarNumber:  req.AadhaarNumber,
		PasswordHash:   string(hash),
		UserType:       userType,
		GovernmentRole: req.GovernmentRole,
		Department:     req.Department,
		LocationID:     req.LocationID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.Get(ctx, userID)
}

// Update applies a partial profile update. Absent fields keep their stored
// values; the phone number is never touched.
func (s *Service) Update(ctx context.Context, userID string, req domain.UpdateUserRequest) (*domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Email != nil {
		u.Email = req.Email
	}
	if req.LocationID != nil {
		u.LocationID = req.LocationID
	}
	if req.Avatar != nil {
		u.Avatar = req.Avatar
	}
	u.UpdatedAt = s.clock()
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
