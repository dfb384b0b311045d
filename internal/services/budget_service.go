package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"budget-engine/internal/models"
	"budget-engine/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

var ErrTransactionsUnavailable = errors.New("transactions unavailable")

// defaultAllocationShares seed a new budget as fractions of the overall amount
var defaultAllocationShares = []struct {
	category string
	share    decimal.Decimal
}{
	{models.CategoryHousingUtilities, decimal.RequireFromString("0.30")},
	{models.CategoryFoodDining, decimal.RequireFromString("0.12")},
	{models.CategoryTransportation, decimal.RequireFromString("0.08")},
	{models.CategoryHealthInsurance, decimal.RequireFromString("0.06")},
	{models.CategoryPersonalLifestyle, decimal.RequireFromString("0.06")},
	{models.CategoryEntertainmentLeisure, decimal.RequireFromString("0.04")},
	{models.CategoryFinancialSavings, decimal.RequireFromString("0.10")},
	{models.CategoryGiftsDonations, decimal.RequireFromString("0.02")},
}

// DefaultAllocations returns the seed allocation for a new budget of the given overall amount
func DefaultAllocations(overall decimal.Decimal) models.Allocations {
	allocations := make(models.Allocations, len(defaultAllocationShares))
	for _, entry := range defaultAllocationShares {
		allocations[entry.category] = overall.Mul(entry.share).RoundDown(2)
	}
	return allocations
}

// BudgetSettings configures budget seeding and the dashboard window
type BudgetSettings struct {
	DefaultOverallAmount decimal.Decimal
	HistoryMonths        int
	Location             *time.Location
}

type budgetService struct {
	budgetRepo   repositories.BudgetRepositoryInterface
	transactions TransactionSourceInterface
	validator    BudgetValidatorInterface
	classifier   ClassifierInterface
	aggregator   MonthlyAggregatorInterface
	reconciler   ReconcilerInterface
	metrics      MetricsRecorderInterface
	settings     BudgetSettings
	logger       *slog.Logger

	createGroup singleflight.Group
	locksMu     sync.Mutex
	userLocks   map[uuid.UUID]*userLock
	now         func() time.Time
}

// userLock serializes writes for one user. The entry is dropped once no
// caller holds or waits for it.
type userLock struct {
	mu   sync.Mutex
	refs int
}

// NewBudgetService creates a new BudgetServiceInterface instance
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	transactions TransactionSourceInterface,
	validator BudgetValidatorInterface,
	classifier ClassifierInterface,
	aggregator MonthlyAggregatorInterface,
	reconciler ReconcilerInterface,
	metrics MetricsRecorderInterface,
	settings BudgetSettings,
	logger *slog.Logger,
) BudgetServiceInterface {
	if settings.Location == nil {
		settings.Location = time.Local
	}
	if settings.HistoryMonths < 2 {
		settings.HistoryMonths = 2
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &budgetService{
		budgetRepo:   budgetRepo,
		transactions: transactions,
		validator:    validator,
		classifier:   classifier,
		aggregator:   aggregator,
		reconciler:   reconciler,
		metrics:      metrics,
		settings:     settings,
		logger:       logger,
		userLocks:    make(map[uuid.UUID]*userLock),
		now:          time.Now,
	}
}

// GetOrCreateCurrentBudget returns the user's budget, creating the default one
// on first access. Concurrent first requests for one user share a single
// create; a create that loses to another process re-reads the winner's row.
func (s *budgetService) GetOrCreateCurrentBudget(ctx context.Context, userID uuid.UUID) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetCurrent(ctx, userID)
	if err == nil {
		return budget, nil
	}
	if !errors.Is(err, repositories.ErrBudgetNotFound) {
		return nil, fmt.Errorf("failed to load current budget: %w", err)
	}

	// the shared create outlives any single caller's cancellation
	createCtx := context.WithoutCancel(ctx)
	result, err, _ := s.createGroup.Do(userID.String(), func() (interface{}, error) {
		return s.createDefaultBudget(createCtx, userID)
	})
	if err != nil {
		return nil, err
	}

	return cloneBudget(result.(*models.Budget)), nil
}

func (s *budgetService) createDefaultBudget(ctx context.Context, userID uuid.UUID) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetCurrent(ctx, userID)
	if err == nil {
		return budget, nil
	}
	if !errors.Is(err, repositories.ErrBudgetNotFound) {
		return nil, fmt.Errorf("failed to load current budget: %w", err)
	}

	overall := s.settings.DefaultOverallAmount
	allocations := DefaultAllocations(overall)
	if err := s.validator.Validate(overall, allocations); err != nil {
		return nil, fmt.Errorf("default budget is invalid: %w", err)
	}

	budget = &models.Budget{
		UserID:        userID,
		OverallAmount: overall,
		Allocations:   allocations,
	}

	err = s.budgetRepo.Create(ctx, budget)
	if errors.Is(err, repositories.ErrBudgetAlreadyExists) {
		s.logger.Warn("concurrent budget creation detected, using existing budget", "user_id", userID)
		s.incrementCounter("budget_create_race", nil)
		return s.reloadCurrent(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create default budget: %w", err)
	}

	s.incrementCounter("budget_created", map[string]string{"source": "default"})
	s.logger.Info("default budget created",
		"user_id", userID,
		"budget_id", budget.ID,
		"overall_amount", overall.String())

	return budget, nil
}

// SaveBudget validates and stores a full set of budget amounts. Validation
// failures are returned unchanged as *ValidationError.
func (s *budgetService) SaveBudget(ctx context.Context, userID uuid.UUID, fields models.BudgetFields) (*models.Budget, error) {
	if err := s.validator.Validate(fields.OverallAmount, fields.Allocations); err != nil {
		s.recordValidationFailure(userID, err)
		return nil, err
	}

	unlock := s.lockUser(userID)
	defer unlock()

	budget, err := s.budgetRepo.GetCurrent(ctx, userID)
	if errors.Is(err, repositories.ErrBudgetNotFound) {
		budget = &models.Budget{
			UserID:        userID,
			OverallAmount: fields.OverallAmount,
			Allocations:   fields.Allocations.Clone(),
		}
		err = s.budgetRepo.Create(ctx, budget)
		if err == nil {
			s.incrementCounter("budget_created", map[string]string{"source": "save"})
			s.logger.Info("budget created", "user_id", userID, "budget_id", budget.ID)
			return budget, nil
		}
		if !errors.Is(err, repositories.ErrBudgetAlreadyExists) {
			return nil, fmt.Errorf("failed to create budget: %w", err)
		}
		s.incrementCounter("budget_create_race", nil)
		budget, err = s.reloadCurrent(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load current budget: %w", err)
	}

	budget.OverallAmount = fields.OverallAmount
	budget.Allocations = fields.Allocations.Clone()
	if err := s.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	s.incrementCounter("budget_saved", map[string]string{"operation": "update"})
	s.logger.Info("budget updated",
		"user_id", userID,
		"budget_id", budget.ID,
		"version", budget.Version)

	return budget, nil
}

// PatchBudget merges the patch into the stored budget and validates the
// merged row before anything is written
func (s *budgetService) PatchBudget(ctx context.Context, userID uuid.UUID, patch models.BudgetPatch) (*models.Budget, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	existing, err := s.GetOrCreateCurrentBudget(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return existing, nil
	}

	overall := existing.OverallAmount
	if patch.OverallAmount != nil {
		overall = *patch.OverallAmount
	}
	merged := existing.Allocations.Merge(patch.Allocations)

	if err := s.validator.Validate(overall, merged); err != nil {
		s.recordValidationFailure(userID, err)
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.OverallAmount != nil {
		fields["overall_amount"] = overall
	}
	if len(patch.Allocations) > 0 {
		fields["allocations"] = merged
	}

	budget, err := s.budgetRepo.Patch(ctx, existing.ID, existing.Version, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to patch budget: %w", err)
	}

	s.incrementCounter("budget_saved", map[string]string{"operation": "patch"})
	s.logger.Info("budget patched",
		"user_id", userID,
		"budget_id", budget.ID,
		"version", budget.Version)

	return budget, nil
}

// DeleteBudget removes the user's budget. The next read seeds a new default.
func (s *budgetService) DeleteBudget(ctx context.Context, userID uuid.UUID) error {
	unlock := s.lockUser(userID)
	defer unlock()

	budget, err := s.budgetRepo.GetCurrent(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.budgetRepo.Delete(ctx, budget.ID); err != nil {
		return err
	}

	s.incrementCounter("budget_deleted", nil)
	s.logger.Info("budget deleted", "user_id", userID, "budget_id", budget.ID)
	return nil
}

// GetDashboardView fetches the transactions of the period and the preceding
// history months, classifies them and combines summary, trends, breakdown and
// reconciliation. Nothing is cached between calls.
func (s *budgetService) GetDashboardView(ctx context.Context, userID uuid.UUID, period models.Period) (*models.DashboardView, error) {
	start := s.now()
	if err := period.Validate(); err != nil {
		return nil, err
	}

	budget, err := s.GetOrCreateCurrentBudget(ctx, userID)
	if err != nil {
		return nil, err
	}

	oldest := period.AddMonths(-(s.settings.HistoryMonths - 1))
	startDate := models.FormatTransactionDate(oldest.FirstDay(s.settings.Location))
	endDate := models.FormatTransactionDate(period.LastDay(s.settings.Location))

	transactions, err := s.transactions.GetTransactions(ctx, userID, startDate, endDate)
	if err != nil {
		s.logger.Error("failed to fetch transactions",
			"user_id", userID,
			"start_date", startDate,
			"end_date", endDate,
			"error", err)
		return nil, fmt.Errorf("%w: %w", ErrTransactionsUnavailable, err)
	}

	classified := s.classifier.ClassifyAll(models.DedupeTransactions(transactions))

	view := &models.DashboardView{
		UserID:            userID,
		Period:            period,
		Summary:           s.aggregator.Summarize(classified, period),
		Trends:            s.aggregator.MonthOverMonth(classified, period),
		CategoryBreakdown: s.aggregator.CategoryBreakdown(classified, period),
		ReconciledBudget:  s.reconciler.Reconcile(budget, s.aggregator.FilterPeriod(classified, period)),
		History:           s.aggregator.History(classified, period, s.settings.HistoryMonths),
		GeneratedAt:       s.now().UTC(),
	}

	if s.metrics != nil {
		s.metrics.RecordProcessingTime("dashboard_build", s.now().Sub(start))
		s.metrics.RecordGauge("dashboard_transactions", float64(len(classified)), nil)
	}
	s.logger.Debug("dashboard built",
		"user_id", userID,
		"period", period.String(),
		"transactions", len(classified))

	return view, nil
}

func (s *budgetService) reloadCurrent(ctx context.Context, userID uuid.UUID) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetCurrent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload current budget: %w", err)
	}
	return budget, nil
}

func (s *budgetService) lockUser(userID uuid.UUID) func() {
	s.locksMu.Lock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &userLock{}
		s.userLocks[userID] = lock
	}
	lock.refs++
	s.locksMu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()

		s.locksMu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(s.userLocks, userID)
		}
		s.locksMu.Unlock()
	}
}

func (s *budgetService) recordValidationFailure(userID uuid.UUID, err error) {
	reason := "unknown"
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		reason = validationErr.Reason
	}
	s.incrementCounter("budget_validation_failed", map[string]string{"reason": reason})
	s.logger.Info("budget rejected", "user_id", userID, "reason", reason, "error", err)
}

func (s *budgetService) incrementCounter(name string, tags map[string]string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(name, tags)
	}
}

func cloneBudget(budget *models.Budget) *models.Budget {
	clone := *budget
	clone.Allocations = budget.Allocations.Clone()
	return &clone
}
