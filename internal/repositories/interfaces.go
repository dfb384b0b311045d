package repositories

import (
	"context"

	"budget-engine/internal/models"

	"github.com/google/uuid"
)

// BudgetRepositoryInterface defines the contract for budget persistence
type BudgetRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Budget, error)
	GetCurrent(ctx context.Context, userID uuid.UUID) (*models.Budget, error)
	Create(ctx context.Context, budget *models.Budget) error
	Update(ctx context.Context, budget *models.Budget) error
	Patch(ctx context.Context, id uuid.UUID, expectedVersion int, fields map[string]interface{}) (*models.Budget, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for synced bank transactions
type TransactionRepositoryInterface interface {
	GetTransactions(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]models.Transaction, error)
	UpsertBatch(ctx context.Context, transactions []models.Transaction) error
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
