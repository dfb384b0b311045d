package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionDateLayout is the ISO calendar date layout used by the bank-data provider
const TransactionDateLayout = "2006-01-02"

var (
	ErrInvalidTransactionDate = errors.New("invalid transaction date")
	ErrTransactionIDRequired  = errors.New("transaction ID is required")
)

// FinanceCategory is the provider's personal finance category metadata
type FinanceCategory struct {
	Primary    string `json:"primary"`
	Detailed   string `json:"detailed"`
	Confidence string `json:"confidence,omitempty"`
}

// Transaction represents a bank transaction as supplied by the bank-data provider.
// Amount is signed: negative values are inflows, positive values are outflows.
type Transaction struct {
	ID               string           `gorm:"type:varchar(100);primary_key" json:"id"`
	UserID           uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID        string           `gorm:"type:varchar(100);index" json:"account_id"`
	Amount           decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date             string           `gorm:"type:varchar(10);not null;index" json:"date"`
	Name             string           `gorm:"type:varchar(255)" json:"name,omitempty"`
	RawCategories    []string         `gorm:"serializer:json;type:text" json:"raw_categories"`
	FinanceCategory  *FinanceCategory `gorm:"serializer:json;type:text" json:"finance_category,omitempty"`
	AssignedCategory *string          `gorm:"type:varchar(50)" json:"assigned_category,omitempty"`
	Pending          bool             `gorm:"default:false" json:"pending"`
	CreatedAt        time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "bank_transactions"
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}
	return t.Validate()
}

// Validate validates the fields the store relies on. Category metadata is
// optional and never validated here.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return ErrTransactionIDRequired
	}
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if _, err := ParseTransactionDate(t.Date, time.UTC); err != nil {
		return err
	}
	return nil
}

// IsInflow returns true for deposits (negative amounts)
func (t *Transaction) IsInflow() bool {
	return t.Amount.IsNegative()
}

// IsOutflow returns true for expenses (positive amounts)
func (t *Transaction) IsOutflow() bool {
	return t.Amount.IsPositive()
}

// HasAssignedCategory reports whether an upstream authority already set a valid category
func (t *Transaction) HasAssignedCategory() bool {
	return t.AssignedCategory != nil && IsValidCategory(*t.AssignedCategory)
}

// ParsedDate parses the transaction date at midnight in loc
func (t *Transaction) ParsedDate(loc *time.Location) (time.Time, error) {
	return ParseTransactionDate(t.Date, loc)
}

// ParseTransactionDate parses a YYYY-MM-DD date at midnight in loc. Values
// carrying a time component (e.g. RFC 3339) are truncated to their date part
// so the calendar day is never shifted by a timezone conversion.
func ParseTransactionDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	value = strings.TrimSpace(value)
	if len(value) > len(TransactionDateLayout) && value[len(TransactionDateLayout)] == 'T' {
		value = value[:len(TransactionDateLayout)]
	}
	parsed, err := time.ParseInLocation(TransactionDateLayout, value, loc)
	if err != nil {
		return time.Time{}, ErrInvalidTransactionDate
	}
	return parsed, nil
}

// FormatTransactionDate formats a date using the provider layout
func FormatTransactionDate(date time.Time) string {
	return date.Format(TransactionDateLayout)
}

// DedupeTransactions removes repeated transaction IDs, keeping the first
// occurrence. Transactions without an ID are kept as-is.
func DedupeTransactions(transactions []Transaction) []Transaction {
	seen := make(map[string]struct{}, len(transactions))
	result := make([]Transaction, 0, len(transactions))

	for i := range transactions {
		id := transactions[i].ID
		if id != "" {
			if _, exists := seen[id]; exists {
				continue
			}
			seen[id] = struct{}{}
		}
		result = append(result, transactions[i])
	}

	return result
}
