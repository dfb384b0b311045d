package services

import (
	"errors"
	"fmt"
	"sort"

	"budget-engine/internal/models"

	"github.com/shopspring/decimal"
)

var ErrBudgetValidation = errors.New("budget validation failed")

// Validation failure reasons, reported in rule order
const (
	ValidationReasonOverallNotPositive       = "overall_not_positive"
	ValidationReasonUnknownCategory          = "unknown_category"
	ValidationReasonNegativeAllocation       = "negative_allocation"
	ValidationReasonAllocationExceedsOverall = "allocation_exceeds_overall"
)

// ValidationError reports the first budget rule a request violated
type ValidationError struct {
	Reason   string
	Category string
	Message  string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets callers match any ValidationError with errors.Is(err, ErrBudgetValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrBudgetValidation
}

type budgetValidator struct{}

// NewBudgetValidator creates a new BudgetValidatorInterface instance
func NewBudgetValidator() BudgetValidatorInterface {
	return &budgetValidator{}
}

// Validate checks overall > 0, known categories, non-negative amounts and
// sum(allocations) <= overall, in that order. Allocations are never scaled
// down to fit.
func (v *budgetValidator) Validate(overall decimal.Decimal, allocations models.Allocations) error {
	if !overall.IsPositive() {
		return &ValidationError{
			Reason:  ValidationReasonOverallNotPositive,
			Message: "overall budget must be greater than 0",
		}
	}

	unknown := make([]string, 0)
	for category := range allocations {
		if !models.IsValidCategory(category) {
			unknown = append(unknown, category)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &ValidationError{
			Reason:   ValidationReasonUnknownCategory,
			Category: unknown[0],
			Message:  fmt.Sprintf("unknown budget category %q", unknown[0]),
		}
	}

	for _, category := range models.AllCategories() {
		amount, ok := allocations[category]
		if ok && amount.IsNegative() {
			return &ValidationError{
				Reason:   ValidationReasonNegativeAllocation,
				Category: category,
				Message:  fmt.Sprintf("allocation for %s must not be negative", category),
			}
		}
	}

	total := allocations.Sum()
	if total.GreaterThan(overall) {
		return &ValidationError{
			Reason: ValidationReasonAllocationExceedsOverall,
			Message: fmt.Sprintf("total allocations %s exceed overall budget %s",
				total.StringFixed(2), overall.StringFixed(2)),
		}
	}

	return nil
}
