// Package location manages the selectable cities and districts.
package location

import (
	"context"
	"fmt"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/sanjay-dhavanam/CivicConnect/internal/pkg/id"
	"github.com/sanjay-dhavanam/CivicConnect/internal/pkg/validate"
)

type locationStore interface {
	Create(ctx context.Context, l *domain.Location) error
	Get(ctx context.Context, locationID string) (*domain.Location, error)
	List(ctx context.Context) ([]domain.Location, error)
}

type Service struct {
	locations locationStore
}

func NewService(locations locationStore) *Service {
	return &Service{locations: locations}
}

func (s *Service) Create(ctx context.Context, req domain.CreateLocationRequest) (*domain.Location, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	l := &domain.Location{
		LocationID:  id.New(),
		Name:        req.Name,
		State:       req.State,
		Type:        req.Type,
		Coordinates: req.Coordinates,
	}
	if err := s.locations.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Get(ctx context.Context, locationID string) (*domain.Location, error) {
	return s.locations.Get(ctx, locationID)
}

func (s *Service) List(ctx context.Context) ([]domain.Location, error) {
	return s.locations.List(ctx)
}
