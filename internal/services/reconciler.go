package services

import (
	"budget-engine/internal/models"

	"github.com/shopspring/decimal"
)

var nearLimitRatio = decimal.RequireFromString("0.9")

type reconciler struct {
	classifier ClassifierInterface
}

// NewReconciler creates a new ReconcilerInterface instance
func NewReconciler(classifier ClassifierInterface) ReconcilerInterface {
	return &reconciler{classifier: classifier}
}

// Reconcile compares each category's allocation with the outflows classified
// into it. Rows are returned in canonical category order and every call
// starts its totals from zero.
func (r *reconciler) Reconcile(budget *models.Budget, transactions []models.Transaction) *models.ReconciledBudget {
	spent := make(map[string]decimal.Decimal, len(models.AllCategories()))
	totalSpent := decimal.Zero

	deduped := models.DedupeTransactions(transactions)
	for i := range deduped {
		if !deduped[i].IsOutflow() {
			continue
		}
		category := r.classifier.Classify(&deduped[i])
		spent[category] = spent[category].Add(deduped[i].Amount)
		totalSpent = totalSpent.Add(deduped[i].Amount)
	}

	result := &models.ReconciledBudget{
		OverallAmount:  decimal.Zero,
		TotalAllocated: decimal.Zero,
		TotalSpent:     totalSpent,
		Categories:     make([]models.ReconciledCategory, 0, len(models.AllCategories())),
	}
	if budget != nil {
		result.BudgetID = budget.ID
		result.OverallAmount = budget.OverallAmount
		result.TotalAllocated = budget.Allocations.Sum()
	}
	result.Unallocated = result.OverallAmount.Sub(result.TotalAllocated)

	for _, category := range models.AllCategories() {
		allocated := budget.AllocationFor(category)
		categorySpent, ok := spent[category]
		if !ok {
			categorySpent = decimal.Zero
		}
		result.Categories = append(result.Categories, reconcileCategory(category, allocated, categorySpent))
	}

	return result
}

func reconcileCategory(category string, allocated, spent decimal.Decimal) models.ReconciledCategory {
	row := models.ReconciledCategory{
		Category:       category,
		Allocated:      allocated,
		Spent:          spent,
		Remaining:      allocated.Sub(spent),
		PercentRaw:     decimal.Zero,
		PercentDisplay: decimal.Zero,
	}

	if !allocated.IsPositive() {
		row.Status = models.BudgetStatusNoBudget
		return row
	}

	row.PercentRaw = spent.Div(allocated).Mul(hundred).Round(2)
	row.PercentDisplay = decimal.Min(row.PercentRaw, hundred)

	switch {
	case spent.GreaterThanOrEqual(allocated):
		row.Status = models.BudgetStatusOverBudget
	case spent.GreaterThanOrEqual(allocated.Mul(nearLimitRatio)):
		row.Status = models.BudgetStatusNearLimit
	default:
		row.Status = models.BudgetStatusOnTrack
	}

	return row
}
