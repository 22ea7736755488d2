package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
)

// BudgetRepo stores public spending allocations.
type BudgetRepo struct {
	mu      sync.RWMutex
	budgets map[string]*domain.Budget
}

func NewBudgetRepo() *BudgetRepo {
	return &BudgetRepo{budgets: make(map[string]*domain.Budget)}
}

func (r *BudgetRepo) Create(_ context.Context, b *domain.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.budgets[b.BudgetID] = &cp
	return nil
}

func (r *BudgetRepo) List(_ context.Context, f domain.BudgetFilter) ([]domain.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Budget, 0)
	for _, b := range r.budgets {
		if f.Matches(b) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].BudgetID < out[b].BudgetID })
	return out, nil
}

// RepresentativeRepo stores elected officials.
type RepresentativeRepo struct {
	mu   sync.RWMutex
	reps map[string]*domain.Representative
}

func NewRepresentativeRepo() *RepresentativeRepo {
	return &RepresentativeRepo{reps: make(map[string]*domain.Representative)}
}

func (r *RepresentativeRepo) Create(_ context.Context, rep *domain.Representative) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rep
	r.reps[rep.RepID] = &cp
	return nil
}

func (r *RepresentativeRepo) List(_ context.Context, f domain.RepresentativeFilter) ([]domain.Representative, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Representative, 0)
	for _, rep := range r.reps {
		if f.Matches(rep) {
			out = append(out, *rep)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].RepID < out[b].RepID })
	return out, nil
}

// LocationRepo stores the selectable locations.
type LocationRepo struct {
	mu        sync.RWMutex
	locations map[string]*domain.Location
}

func NewLocationRepo() *LocationRepo {
	return &LocationRepo{locations: make(map[string]*domain.Location)}
}

func (r *LocationRepo) Create(_ context.Context, l *domain.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *l
	r.locations[l.LocationID] = &cp
	return nil
}

func (r *LocationRepo) Get(_ context.Context, locationID string) (*domain.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.locations[locationID]
	if !ok {
		return nil, fmt.Errorf("location not found: %w", domain.ErrNotFound)
	}
	cp := *l
	return &cp, nil
}

func (r *LocationRepo) List(_ context.Context) ([]domain.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Location, 0, len(r.locations))
	for _, l := range r.locations {
		out = append(out, *l)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].LocationID < out[b].LocationID })
	return out, nil
}

// SpeechRepo stores parliamentary speech records.
type SpeechRepo struct {
	mu       sync.RWMutex
	speeches map[string]*domain.Speech
}

func NewSpeechRepo() *SpeechRepo {
	return &SpeechRepo{speeches: make(map[string]*domain.Speech)}
}

func (r *SpeechRepo) Create(_ context.Context, s *domain.Speech) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.speeches[s.SpeechID] = &cp
	return nil
}

func (r *SpeechRepo) Get(_ context.Context, speechID string) (*domain.Speech, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.speeches[speechID]
	if !ok {
		return nil, fmt.Errorf("speech not found: %w", domain.ErrNotFound)
	}
	cp := *s
	return &cp, nil
}

func (r *SpeechRepo) List(_ context.Context, f domain.SpeechFilter) ([]domain.Speech, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Speech, 0)
	for _, s := range r.speeches {
		if f.Matches(s) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Date.After(out[b].Date) })
	return out, nil
}
