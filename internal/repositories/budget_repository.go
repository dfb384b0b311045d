package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"budget-engine/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrBudgetAlreadyExists = errors.New("budget already exists for user")
)

// patchableBudgetColumns lists the columns Patch may write
var patchableBudgetColumns = map[string]bool{
	"overall_amount": true,
	"allocations":    true,
}

type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{db: db}
}

// GetByUserID retrieves the budgets of a user, newest first
func (r *budgetRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets for user: %w", err)
	}
	return budgets, nil
}

// GetCurrent retrieves the active budget of a user
func (r *budgetRepository) GetCurrent(ctx context.Context, userID uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get current budget: %w", err)
	}
	return &budget, nil
}

// Create inserts the first budget of a user. The unique user_id index turns a
// second concurrent insert into ErrBudgetAlreadyExists.
func (r *budgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	if err := r.db.WithContext(ctx).Create(budget).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrBudgetAlreadyExists
		}
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// Update overwrites the amounts of an existing budget when its version still
// matches. The version is incremented on success.
func (r *budgetRepository) Update(ctx context.Context, budget *models.Budget) error {
	expectedVersion := budget.Version
	now := time.Now()

	result := r.db.WithContext(ctx).
		Model(&models.Budget{}).
		Where("id = ? AND version = ?", budget.ID, expectedVersion).
		Updates(map[string]interface{}{
			"overall_amount": budget.OverallAmount,
			"allocations":    budget.Allocations,
			"version":        expectedVersion + 1,
			"updated_at":     now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return r.conflictOrMissing(ctx, budget.ID)
	}

	budget.Version = expectedVersion + 1
	budget.UpdatedAt = now
	return nil
}

// Patch writes only the given columns and returns the refreshed row
func (r *budgetRepository) Patch(ctx context.Context, id uuid.UUID, expectedVersion int, fields map[string]interface{}) (*models.Budget, error) {
	updates := make(map[string]interface{}, len(fields)+2)
	for column, value := range fields {
		if !patchableBudgetColumns[column] {
			return nil, fmt.Errorf("budget column %q cannot be patched", column)
		}
		updates[column] = value
	}
	updates["version"] = expectedVersion + 1
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&models.Budget{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(updates)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to patch budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, r.conflictOrMissing(ctx, id)
	}

	var budget models.Budget
	if err := r.db.WithContext(ctx).First(&budget, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload budget: %w", err)
	}
	return &budget, nil
}

// Delete removes a budget
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Budget{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

func (r *budgetRepository) conflictOrMissing(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Budget{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check budget: %w", err)
	}
	if count == 0 {
		return ErrBudgetNotFound
	}
	return models.ErrOptimisticLockConflict
}

// isDuplicateKeyError matches the translated gorm error and the raw driver
// messages of PostgreSQL and SQLite
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}
