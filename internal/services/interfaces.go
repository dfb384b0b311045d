package services

import (
	"context"
	"time"

	"budget-engine/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClassifierInterface assigns transactions to budget categories
type ClassifierInterface interface {
	Classify(transaction *models.Transaction) string
	Categorize(transaction *models.Transaction) *models.CategorizationResult
	ClassifyAll(transactions []models.Transaction) []models.Transaction
}

// BudgetValidatorInterface enforces the budget allocation rules
type BudgetValidatorInterface interface {
	Validate(overall decimal.Decimal, allocations models.Allocations) error
}

// MonthlyAggregatorInterface derives monthly summaries from a transaction set
type MonthlyAggregatorInterface interface {
	Summarize(transactions []models.Transaction, period models.Period) models.MonthlySummary
	Trend(current, previous decimal.Decimal) decimal.Decimal
	MonthOverMonth(transactions []models.Transaction, period models.Period) models.TrendSummary
	CategoryBreakdown(transactions []models.Transaction, period models.Period) []models.CategoryBreakdownItem
	History(transactions []models.Transaction, period models.Period, months int) []models.MonthlySummary
	FilterPeriod(transactions []models.Transaction, period models.Period) []models.Transaction
}

// ReconcilerInterface compares actual spend with a budget
type ReconcilerInterface interface {
	Reconcile(budget *models.Budget, transactions []models.Transaction) *models.ReconciledBudget
}

// BudgetServiceInterface is the request-facing budget API
type BudgetServiceInterface interface {
	GetOrCreateCurrentBudget(ctx context.Context, userID uuid.UUID) (*models.Budget, error)
	SaveBudget(ctx context.Context, userID uuid.UUID, fields models.BudgetFields) (*models.Budget, error)
	PatchBudget(ctx context.Context, userID uuid.UUID, patch models.BudgetPatch) (*models.Budget, error)
	DeleteBudget(ctx context.Context, userID uuid.UUID) error
	GetDashboardView(ctx context.Context, userID uuid.UUID, period models.Period) (*models.DashboardView, error)
}

// TransactionSourceInterface supplies bank transactions for a user. Dates are
// inclusive ISO calendar dates.
type TransactionSourceInterface interface {
	GetTransactions(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]models.Transaction, error)
}

// TransactionGeneratorInterface produces realistic bank transactions for development seeding
type TransactionGeneratorInterface interface {
	GenerateMonth(userID uuid.UUID, period models.Period) []models.Transaction
	GenerateHistory(userID uuid.UUID, period models.Period, months int) []models.Transaction
}

// MetricsRecorderInterface defines metrics collection
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
