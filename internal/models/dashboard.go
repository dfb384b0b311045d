package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reconciliation statuses
const (
	BudgetStatusNoBudget   = "no budget set"
	BudgetStatusOverBudget = "over budget"
	BudgetStatusNearLimit  = "near limit"
	BudgetStatusOnTrack    = "on track"
)

// MonthlySummary is the derived income/expense summary of one month. It is
// recomputed on every request and never persisted.
type MonthlySummary struct {
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	PeriodLabel      string          `json:"period_label"`
	IncomeTotal      decimal.Decimal `json:"income_total"`
	ExpenseTotal     decimal.Decimal `json:"expense_total"`
	NetChange        decimal.Decimal `json:"net_change"`
	TransactionCount int             `json:"transaction_count"`
}

// TrendSummary holds month-over-month percentage changes
type TrendSummary struct {
	Current      MonthlySummary  `json:"current"`
	Previous     MonthlySummary  `json:"previous"`
	IncomeTrend  decimal.Decimal `json:"income_trend"`
	ExpenseTrend decimal.Decimal `json:"expense_trend"`
}

// CategoryBreakdownItem is the outflow total of one category, used for charting
type CategoryBreakdownItem struct {
	Category         string          `json:"category"`
	Total            decimal.Decimal `json:"total"`
	TransactionCount int             `json:"transaction_count"`
}

// ReconciledCategory compares the allocated amount of a category with actual spend
type ReconciledCategory struct {
	Category       string          `json:"category"`
	Allocated      decimal.Decimal `json:"allocated"`
	Spent          decimal.Decimal `json:"spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	PercentDisplay decimal.Decimal `json:"percent_display"`
	PercentRaw     decimal.Decimal `json:"percent_raw"`
	Status         string          `json:"status"`
}

// IsOverBudget returns true when spend reached the allocation
func (rc *ReconciledCategory) IsOverBudget() bool {
	return rc.Status == BudgetStatusOverBudget
}

// ReconciledBudget is the reconciliation of a whole budget
type ReconciledBudget struct {
	BudgetID       uuid.UUID            `json:"budget_id"`
	OverallAmount  decimal.Decimal      `json:"overall_amount"`
	TotalAllocated decimal.Decimal      `json:"total_allocated"`
	TotalSpent     decimal.Decimal      `json:"total_spent"`
	Unallocated    decimal.Decimal      `json:"unallocated"`
	Categories     []ReconciledCategory `json:"categories"`
}

// DashboardView is the combined view model returned to the API boundary
type DashboardView struct {
	UserID            uuid.UUID               `json:"user_id"`
	Period            Period                  `json:"period"`
	Summary           MonthlySummary          `json:"summary"`
	Trends            TrendSummary            `json:"trends"`
	CategoryBreakdown []CategoryBreakdownItem `json:"category_breakdown"`
	ReconciledBudget  *ReconciledBudget       `json:"reconciled_budget"`
	History           []MonthlySummary        `json:"history"`
	GeneratedAt       time.Time               `json:"generated_at"`
}
