package dto

import (
	"time"

	"budget-engine/internal/models"

	"github.com/google/uuid"
)

// MonthlySummaryResponse is one month of income and expense totals
type MonthlySummaryResponse struct {
	Year             int    `json:"year"`
	Month            int    `json:"month"`
	PeriodLabel      string `json:"period_label"`
	IncomeTotal      string `json:"income_total"`
	ExpenseTotal     string `json:"expense_total"`
	NetChange        string `json:"net_change"`
	TransactionCount int    `json:"transaction_count"`
}

// TrendResponse carries month-over-month percentages with one decimal place
type TrendResponse struct {
	Current      MonthlySummaryResponse `json:"current"`
	Previous     MonthlySummaryResponse `json:"previous"`
	IncomeTrend  string                 `json:"income_trend"`
	ExpenseTrend string                 `json:"expense_trend"`
}

type CategoryBreakdownResponse struct {
	Category         string `json:"category"`
	Total            string `json:"total"`
	TransactionCount int    `json:"transaction_count"`
}

type ReconciledCategoryResponse struct {
	Category       string `json:"category"`
	Allocated      string `json:"allocated"`
	Spent          string `json:"spent"`
	Remaining      string `json:"remaining"`
	PercentDisplay string `json:"percent_display"`
	PercentRaw     string `json:"percent_raw"`
	Status         string `json:"status"`
}

type ReconciledBudgetResponse struct {
	BudgetID       uuid.UUID                    `json:"budget_id"`
	OverallAmount  string                       `json:"overall_amount"`
	TotalAllocated string                       `json:"total_allocated"`
	TotalSpent     string                       `json:"total_spent"`
	Unallocated    string                       `json:"unallocated"`
	Categories     []ReconciledCategoryResponse `json:"categories"`
}

// DashboardResponse is the API representation of a dashboard view
type DashboardResponse struct {
	UserID            uuid.UUID                   `json:"user_id"`
	Period            models.Period               `json:"period"`
	Summary           MonthlySummaryResponse      `json:"summary"`
	Trends            TrendResponse               `json:"trends"`
	CategoryBreakdown []CategoryBreakdownResponse `json:"category_breakdown"`
	ReconciledBudget  *ReconciledBudgetResponse   `json:"reconciled_budget"`
	History           []MonthlySummaryResponse    `json:"history"`
	GeneratedAt       time.Time                   `json:"generated_at"`
}

// NewDashboardResponse renders amounts and percentages with two decimal
// places and trends with one
func NewDashboardResponse(view *models.DashboardView) DashboardResponse {
	breakdown := make([]CategoryBreakdownResponse, 0, len(view.CategoryBreakdown))
	for _, item := range view.CategoryBreakdown {
		breakdown = append(breakdown, CategoryBreakdownResponse{
			Category:         item.Category,
			Total:            item.Total.StringFixed(2),
			TransactionCount: item.TransactionCount,
		})
	}

	history := make([]MonthlySummaryResponse, 0, len(view.History))
	for _, summary := range view.History {
		history = append(history, newMonthlySummaryResponse(summary))
	}

	return DashboardResponse{
		UserID:  view.UserID,
		Period:  view.Period,
		Summary: newMonthlySummaryResponse(view.Summary),
		Trends: TrendResponse{
			Current:      newMonthlySummaryResponse(view.Trends.Current),
			Previous:     newMonthlySummaryResponse(view.Trends.Previous),
			IncomeTrend:  view.Trends.IncomeTrend.StringFixed(1),
			ExpenseTrend: view.Trends.ExpenseTrend.StringFixed(1),
		},
		CategoryBreakdown: breakdown,
		ReconciledBudget:  newReconciledBudgetResponse(view.ReconciledBudget),
		History:           history,
		GeneratedAt:       view.GeneratedAt,
	}
}

func newMonthlySummaryResponse(summary models.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Year:             summary.Year,
		Month:            summary.Month,
		PeriodLabel:      summary.PeriodLabel,
		IncomeTotal:      summary.IncomeTotal.StringFixed(2),
		ExpenseTotal:     summary.ExpenseTotal.StringFixed(2),
		NetChange:        summary.NetChange.StringFixed(2),
		TransactionCount: summary.TransactionCount,
	}
}

func newReconciledBudgetResponse(reconciled *models.ReconciledBudget) *ReconciledBudgetResponse {
	if reconciled == nil {
		return nil
	}

	categories := make([]ReconciledCategoryResponse, 0, len(reconciled.Categories))
	for _, category := range reconciled.Categories {
		categories = append(categories, ReconciledCategoryResponse{
			Category:       category.Category,
			Allocated:      category.Allocated.StringFixed(2),
			Spent:          category.Spent.StringFixed(2),
			Remaining:      category.Remaining.StringFixed(2),
			PercentDisplay: category.PercentDisplay.StringFixed(2),
			PercentRaw:     category.PercentRaw.StringFixed(2),
			Status:         category.Status,
		})
	}

	return &ReconciledBudgetResponse{
		BudgetID:       reconciled.BudgetID,
		OverallAmount:  reconciled.OverallAmount.StringFixed(2),
		TotalAllocated: reconciled.TotalAllocated.StringFixed(2),
		TotalSpent:     reconciled.TotalSpent.StringFixed(2),
		Unallocated:    reconciled.Unallocated.StringFixed(2),
		Categories:     categories,
	}
}
