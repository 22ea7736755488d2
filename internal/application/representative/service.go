// Package representative exposes the elected-official directory.
package representative

import (
	"context"
	"fmt"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/sanjay-dhavanam/CivicConnect/internal/pkg/id"
	"github.com/sanjay-dhavanam/CivicConnect/internal/pkg/validate"
)

type repStore interface {
	Create(ctx context.Context, r *domain.Representative) error
	List(ctx context.Context, f domain.RepresentativeFilter) ([]domain.Representative, error)
}

type Service struct {
	reps repStore
}

func NewService(reps repStore) *Service {
	return &Service{reps: reps}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRepresentativeRequest) (*domain.Representative, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	rep := &domain.Representative{
		RepID:        id.New(),
		Name:         req.Name,
		Position:     req.Position,
		Party:        req.Party,
		LocationID:   req.LocationID,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Bio:          req.Bio,
		AvatarURL:    req.AvatarURL,
		TermStart:    req.TermStart,
		TermEnd:      req.TermEnd,
	}
	if err := s.reps.Create(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *Service) List(ctx context.Context, f domain.RepresentativeFilter) ([]domain.Representative, error) {
	return s.reps.List(ctx, f)
}
