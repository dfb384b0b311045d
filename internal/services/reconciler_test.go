package services

import (
	"encoding/json"
	"testing"

	"budget-engine/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReconcilerTestSuite struct {
	suite.Suite
	reconciler ReconcilerInterface
	budget     *models.Budget
}

func TestReconcilerSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}

func (s *ReconcilerTestSuite) SetupTest() {
	s.reconciler = NewReconciler(NewClassifier(nil, nil))
	s.budget = &models.Budget{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		OverallAmount: decimal.NewFromInt(1000),
		Allocations: models.Allocations{
			models.CategoryHousingUtilities: decimal.NewFromInt(500),
			models.CategoryFoodDining:       decimal.NewFromInt(200),
			models.CategoryTransportation:   decimal.NewFromInt(100),
			models.CategoryHealthInsurance:  decimal.NewFromInt(100),
		},
	}
}

func (s *ReconcilerTestSuite) row(result *models.ReconciledBudget, category string) models.ReconciledCategory {
	for _, row := range result.Categories {
		if row.Category == category {
			return row
		}
	}
	s.FailNow("category not reconciled", category)
	return models.ReconciledCategory{}
}

func (s *ReconcilerTestSuite) transactions() []models.Transaction {
	return []models.Transaction{
		categorized("rent", "2024-01-01", "300", "RENT_AND_UTILITIES"),
		categorized("food-1", "2024-01-03", "150", "FOOD_AND_DRINK"),
		categorized("food-2", "2024-01-09", "40", "FOOD_AND_DRINK"),
		categorized("fuel", "2024-01-04", "125", "TRANSPORTATION"),
		categorized("movie", "2024-01-05", "20", "ENTERTAINMENT"),
		categorized("salary", "2024-01-15", "-3000", "INCOME"),
	}
}

func (s *ReconcilerTestSuite) TestReconcile_Statuses() {
	result := s.reconciler.Reconcile(s.budget, s.transactions())

	housing := s.row(result, models.CategoryHousingUtilities)
	s.Equal(models.BudgetStatusOnTrack, housing.Status)
	s.True(decimal.NewFromInt(200).Equal(housing.Remaining))
	s.True(decimal.NewFromInt(60).Equal(housing.PercentRaw))

	food := s.row(result, models.CategoryFoodDining)
	s.Equal(models.BudgetStatusNearLimit, food.Status)
	s.True(decimal.NewFromInt(95).Equal(food.PercentRaw))

	transport := s.row(result, models.CategoryTransportation)
	s.Equal(models.BudgetStatusOverBudget, transport.Status)
	s.True(decimal.NewFromInt(125).Equal(transport.PercentRaw))
	s.True(decimal.NewFromInt(100).Equal(transport.PercentDisplay))
	s.True(decimal.NewFromInt(-25).Equal(transport.Remaining))

	health := s.row(result, models.CategoryHealthInsurance)
	s.Equal(models.BudgetStatusOnTrack, health.Status)
	s.True(health.Spent.IsZero())

	entertainment := s.row(result, models.CategoryEntertainmentLeisure)
	s.Equal(models.BudgetStatusNoBudget, entertainment.Status)
	s.True(decimal.NewFromInt(20).Equal(entertainment.Spent))
	s.True(entertainment.PercentRaw.IsZero())
	s.True(entertainment.PercentDisplay.IsZero())
}

func (s *ReconcilerTestSuite) TestReconcile_ThresholdBoundaries() {
	testCases := []struct {
		spent    string
		expected string
	}{
		{"89.99", models.BudgetStatusOnTrack},
		{"90", models.BudgetStatusNearLimit},
		{"99.99", models.BudgetStatusNearLimit},
		{"100", models.BudgetStatusOverBudget},
	}

	for _, tc := range testCases {
		row := reconcileCategory(models.CategoryFoodDining, decimal.NewFromInt(100), decimal.RequireFromString(tc.spent))
		s.Equal(tc.expected, row.Status, "spent %s", tc.spent)
	}
}

func (s *ReconcilerTestSuite) TestReconcile_Totals() {
	result := s.reconciler.Reconcile(s.budget, s.transactions())

	s.Equal(s.budget.ID, result.BudgetID)
	s.True(decimal.NewFromInt(1000).Equal(result.OverallAmount))
	s.True(decimal.NewFromInt(900).Equal(result.TotalAllocated))
	s.True(decimal.NewFromInt(100).Equal(result.Unallocated))
	s.True(decimal.NewFromInt(635).Equal(result.TotalSpent))
}

func (s *ReconcilerTestSuite) TestReconcile_CanonicalOrder() {
	result := s.reconciler.Reconcile(s.budget, nil)

	s.Require().Len(result.Categories, len(models.AllCategories()))
	for i, category := range models.AllCategories() {
		s.Equal(category, result.Categories[i].Category)
	}
}

func (s *ReconcilerTestSuite) TestReconcile_IgnoresDuplicateTransactions() {
	transactions := append(s.transactions(), categorized("fuel", "2024-01-04", "125", "TRANSPORTATION"))

	result := s.reconciler.Reconcile(s.budget, transactions)
	s.True(decimal.NewFromInt(125).Equal(s.row(result, models.CategoryTransportation).Spent))
}

func (s *ReconcilerTestSuite) TestReconcile_IsIdempotent() {
	transactions := s.transactions()

	first, err := json.Marshal(s.reconciler.Reconcile(s.budget, transactions))
	s.Require().NoError(err)
	second, err := json.Marshal(s.reconciler.Reconcile(s.budget, transactions))
	s.Require().NoError(err)

	s.Equal(string(first), string(second))
}

func (s *ReconcilerTestSuite) TestReconcile_NilBudget() {
	result := s.reconciler.Reconcile(nil, s.transactions())

	s.Equal(uuid.Nil, result.BudgetID)
	for _, row := range result.Categories {
		s.Equal(models.BudgetStatusNoBudget, row.Status)
	}
}
