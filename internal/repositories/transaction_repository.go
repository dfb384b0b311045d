package repositories

import (
	"context"
	"fmt"
	"time"

	"budget-engine/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const upsertBatchSize = 200

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new repository over the synced bank transactions table
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

// GetTransactions returns a user's transactions dated between startDate and
// endDate inclusive. Dates are ISO calendar dates, which sort lexically.
func (r *transactionRepository) GetTransactions(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Order("date ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// UpsertBatch stores transactions, replacing rows that share a provider ID.
// Re-synced transactions keep any category assigned earlier.
func (r *transactionRepository) UpsertBatch(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"amount":           gorm.Expr("excluded.amount"),
				"date":             gorm.Expr("excluded.date"),
				"name":             gorm.Expr("excluded.name"),
				"raw_categories":   gorm.Expr("excluded.raw_categories"),
				"finance_category": gorm.Expr("excluded.finance_category"),
				"pending":          gorm.Expr("excluded.pending"),
				"updated_at":       time.Now(),
			}),
		}).CreateInBatches(&transactions, upsertBatchSize).Error
		if err != nil {
			return fmt.Errorf("failed to upsert transactions: %w", err)
		}
		return nil
	})
}

// CountByUserID counts the stored transactions of a user
func (r *transactionRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// DeleteByUserID removes every stored transaction of a user
func (r *transactionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Transaction{}).Error; err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	return nil
}
