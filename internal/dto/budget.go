package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"budget-engine/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaveBudgetRequest replaces the overall amount and every allocation of the
// current budget. Amounts are accepted as JSON numbers or numeric strings.
type SaveBudgetRequest struct {
	OverallAmount json.Number            `json:"overall_amount" validate:"required,money"`
	Allocations   map[string]json.Number `json:"allocations" validate:"omitempty,dive,required,money"`
}

// ToFields converts the request into domain amounts
func (r SaveBudgetRequest) ToFields() (models.BudgetFields, error) {
	overall, err := parseAmount("overall_amount", r.OverallAmount)
	if err != nil {
		return models.BudgetFields{}, err
	}

	allocations, err := parseAllocations(r.Allocations)
	if err != nil {
		return models.BudgetFields{}, err
	}

	return models.BudgetFields{OverallAmount: overall, Allocations: allocations}, nil
}

// PatchBudgetRequest updates the overall amount and/or a subset of allocations.
// Categories absent from the request keep their stored amounts.
type PatchBudgetRequest struct {
	OverallAmount *json.Number           `json:"overall_amount,omitempty" validate:"omitempty,money"`
	Allocations   map[string]json.Number `json:"allocations,omitempty" validate:"omitempty,dive,required,money"`
}

// ToPatch converts the request into a domain patch
func (r PatchBudgetRequest) ToPatch() (models.BudgetPatch, error) {
	var patch models.BudgetPatch

	if r.OverallAmount != nil {
		overall, err := parseAmount("overall_amount", *r.OverallAmount)
		if err != nil {
			return patch, err
		}
		patch.OverallAmount = &overall
	}

	allocations, err := parseAllocations(r.Allocations)
	if err != nil {
		return patch, err
	}
	if len(allocations) > 0 {
		patch.Allocations = allocations
	}

	return patch, nil
}

// DashboardQuery selects the month of the dashboard. Zero values default to the current month.
type DashboardQuery struct {
	Year  int `query:"year" validate:"omitempty,min=1900,max=9999"`
	Month int `query:"month" validate:"omitempty,min=1,max=12"`
}

// IsSet reports whether both year and month were supplied
func (q DashboardQuery) IsSet() bool {
	return q.Year != 0 && q.Month != 0
}

// BudgetResponse is the API representation of a budget
type BudgetResponse struct {
	ID             uuid.UUID         `json:"id"`
	UserID         uuid.UUID         `json:"user_id"`
	OverallAmount  string            `json:"overall_amount"`
	Allocations    map[string]string `json:"allocations"`
	TotalAllocated string            `json:"total_allocated"`
	Unallocated    string            `json:"unallocated"`
	Version        int               `json:"version"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// NewBudgetResponse renders a budget with two-decimal amounts
func NewBudgetResponse(budget *models.Budget) BudgetResponse {
	allocations := make(map[string]string, len(budget.Allocations))
	for category, amount := range budget.Allocations {
		allocations[category] = amount.StringFixed(2)
	}

	total := budget.Allocations.Sum()

	return BudgetResponse{
		ID:             budget.ID,
		UserID:         budget.UserID,
		OverallAmount:  budget.OverallAmount.StringFixed(2),
		Allocations:    allocations,
		TotalAllocated: total.StringFixed(2),
		Unallocated:    budget.OverallAmount.Sub(total).StringFixed(2),
		Version:        budget.Version,
		CreatedAt:      budget.CreatedAt,
		UpdatedAt:      budget.UpdatedAt,
	}
}

// CategoriesResponse lists the fixed budget categories in display order
type CategoriesResponse struct {
	Categories      []string `json:"categories"`
	DefaultCategory string   `json:"default_category"`
}

// SeedTransactionsRequest asks the development endpoint to generate bank data
type SeedTransactionsRequest struct {
	Months  int    `json:"months" validate:"omitempty,min=1,max=24"`
	Seed    uint64 `json:"seed"`
	Replace bool   `json:"replace"`
}

// SeedTransactionsResponse reports what the development endpoint stored
type SeedTransactionsResponse struct {
	Generated   int    `json:"generated"`
	StoredTotal int64  `json:"stored_total"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func parseAllocations(raw map[string]json.Number) (models.Allocations, error) {
	allocations := make(models.Allocations, len(raw))
	for category, value := range raw {
		amount, err := parseAmount(fmt.Sprintf("allocations[%s]", category), value)
		if err != nil {
			return nil, err
		}
		allocations[category] = amount
	}
	return allocations, nil
}

func parseAmount(field string, value json.Number) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: invalid amount %q", field, value.String())
	}
	return amount, nil
}
