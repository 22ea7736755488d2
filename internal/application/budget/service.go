// Package budget exposes public spending allocations.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/sanjay-dhavanam/CivicConnect/internal/pkg/id"
	"github.com/sanjay-dhavanam/CivicConnect/internal/pkg/validate"
)

type budgetStore interface {
	Create(ctx context.Context, b *domain.Budget) error
	List(ctx context.Context, f domain.BudgetFilter) ([]domain.Budget, error)
}

type Service struct {
	budgets budgetStore
	clock   func() time.Time
}

type ServiceDeps struct {
	BudgetRepo budgetStore
	Clock      func() time.Time
}

func NewService(d ServiceDeps) *Service {
	clock := d.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Service{budgets: d.BudgetRepo, clock: clock}
}

func (s *Service) Create(ctx context.Context, req domain.CreateBudgetRequest) (*domain.Budget, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	status := req.Status
	if status == "" {
		status = domain.BudgetStatusAllocated
	}
	now := s.clock()
	b := &domain.Budget{
		BudgetID:    id.New(),
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		LocationID:  req.LocationID,
		FiscalYear:  req.FiscalYear,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.budgets.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, f domain.BudgetFilter) ([]domain.Budget, error) {
	return s.budgets.List(ctx, f)
}
