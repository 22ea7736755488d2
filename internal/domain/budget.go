package domain

import "time"

const (
	BudgetStatusAllocated  = "allocated"
	BudgetStatusInProgress = "in_progress"
	BudgetStatusCompleted  = "completed"
)

// Budget is a public spending allocation for a location and fiscal year.
type Budget struct {
	BudgetID    string    `json:"id"`
	Title       string    `json:"title"`
	Amount      int64     `json:"amount"` // whole rupees
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	LocationID  string    `json:"location_id"`
	FiscalYear  string    `json:"fiscal_year"`
	Status      string    `json:"status"` // allocated | in_progress | completed
	CreatedAt   time.Time `json:"created"`
	UpdatedAt   time.Time `json:"updated"`
}

type CreateBudgetRequest struct {
	Title       string `json:"title" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	LocationID  string `json:"location_id" validate:"required"`
	FiscalYear  string `json:"fiscal_year" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=allocated in_progress completed"`
}

type BudgetFilter struct {
	Category   string
	FiscalYear string
	Status     string
	LocationID string
}

func (f BudgetFilter) Matches(b *Budget) bool {
	if f.Category != "" && b.Category != f.Category {
		return false
	}
	if f.FiscalYear != "" && b.FiscalYear != f.FiscalYear {
		return false
	}
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.LocationID != "" && b.LocationID != f.LocationID {
		return false
	}
	return true
}
