package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrOptimisticLockConflict = errors.New("optimistic lock conflict: version mismatch")
)

// Budget is the single active budget of a user. Allocations map a budget
// category to its allocated amount.
type Budget struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_id" json:"user_id"`
	OverallAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"overall_amount"`
	Allocations   Allocations     `gorm:"type:text;not null" json:"allocations"`
	Version       int             `gorm:"default:1" json:"version"`
	CreatedAt     time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}
	if b.Version == 0 {
		b.Version = 1
	}
	if b.Allocations == nil {
		b.Allocations = Allocations{}
	}

	return nil
}

// AllocationFor returns the allocated amount for a category, zero when absent
func (b *Budget) AllocationFor(category string) decimal.Decimal {
	if b == nil || b.Allocations == nil {
		return decimal.Zero
	}
	if amount, ok := b.Allocations[category]; ok {
		return amount
	}
	return decimal.Zero
}

// Allocations maps budget categories to allocated amounts. It is persisted as
// a JSON text column so it works on both PostgreSQL and SQLite.
type Allocations map[string]decimal.Decimal

// Sum returns the total of all allocated amounts
func (a Allocations) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range a {
		total = total.Add(amount)
	}
	return total
}

// Clone returns an independent copy of the allocations
func (a Allocations) Clone() Allocations {
	clone := make(Allocations, len(a))
	for category, amount := range a {
		clone[category] = amount
	}
	return clone
}

// Merge returns a copy of a with every entry of patch applied on top
func (a Allocations) Merge(patch Allocations) Allocations {
	merged := a.Clone()
	for category, amount := range patch {
		merged[category] = amount
	}
	return merged
}

// Value implements driver.Valuer interface
func (a Allocations) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	bytes, err := json.Marshal(map[string]decimal.Decimal(a))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan implements sql.Scanner interface
func (a *Allocations) Scan(value interface{}) error {
	if value == nil {
		*a = Allocations{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Allocations", value)
	}

	if len(bytes) == 0 {
		*a = Allocations{}
		return nil
	}

	decoded := map[string]decimal.Decimal{}
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		return fmt.Errorf("failed to decode allocations: %w", err)
	}
	*a = decoded
	return nil
}

// BudgetFields carries a full replacement of a budget's amounts
type BudgetFields struct {
	OverallAmount decimal.Decimal
	Allocations   Allocations
}

// BudgetPatch carries a partial update. Nil or absent entries keep the stored value.
type BudgetPatch struct {
	OverallAmount *decimal.Decimal
	Allocations   Allocations
}

// IsEmpty reports whether the patch changes nothing
func (p BudgetPatch) IsEmpty() bool {
	return p.OverallAmount == nil && len(p.Allocations) == 0
}
