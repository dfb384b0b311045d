package services

import (
	"errors"
	"testing"

	"budget-engine/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetValidatorTestSuite struct {
	suite.Suite
	validator BudgetValidatorInterface
}

func TestBudgetValidatorSuite(t *testing.T) {
	suite.Run(t, new(BudgetValidatorTestSuite))
}

func (s *BudgetValidatorTestSuite) SetupTest() {
	s.validator = NewBudgetValidator()
}

func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func (s *BudgetValidatorTestSuite) requireReason(err error, reason string) *ValidationError {
	s.Require().Error(err)
	s.True(errors.Is(err, ErrBudgetValidation))

	var validationErr *ValidationError
	s.Require().True(errors.As(err, &validationErr))
	s.Equal(reason, validationErr.Reason)
	return validationErr
}

func (s *BudgetValidatorTestSuite) TestValidate_AcceptsDefaultBudget() {
	overall := amount("5000")
	s.NoError(s.validator.Validate(overall, DefaultAllocations(overall)))
}

func (s *BudgetValidatorTestSuite) TestValidate_AcceptsExactTotal() {
	allocations := models.Allocations{
		models.CategoryHousingUtilities: amount("600.50"),
		models.CategoryFoodDining:       amount("399.50"),
	}
	s.NoError(s.validator.Validate(amount("1000"), allocations))
}

func (s *BudgetValidatorTestSuite) TestValidate_AcceptsEmptyAllocations() {
	s.NoError(s.validator.Validate(amount("100"), models.Allocations{}))
	s.NoError(s.validator.Validate(amount("100"), nil))
}

func (s *BudgetValidatorTestSuite) TestValidate_RejectsNonPositiveOverall() {
	for _, overall := range []string{"0", "-1", "-2500.75"} {
		err := s.validator.Validate(amount(overall), models.Allocations{})
		validationErr := s.requireReason(err, ValidationReasonOverallNotPositive)
		s.Equal("overall budget must be greater than 0", validationErr.Message)
	}
}

func (s *BudgetValidatorTestSuite) TestValidate_RejectsUnknownCategory() {
	allocations := models.Allocations{
		"Pets":                    amount("10"),
		"Crypto":                  amount("10"),
		models.CategoryFoodDining: amount("10"),
	}

	err := s.validator.Validate(amount("1000"), allocations)
	validationErr := s.requireReason(err, ValidationReasonUnknownCategory)
	s.Equal("Crypto", validationErr.Category)
	s.Equal(`unknown budget category "Crypto"`, err.Error())
}

func (s *BudgetValidatorTestSuite) TestValidate_RejectsNegativeAllocation() {
	allocations := models.Allocations{
		models.CategoryGiftsDonations: amount("-5"),
		models.CategoryTransportation: amount("-1"),
	}

	err := s.validator.Validate(amount("1000"), allocations)
	validationErr := s.requireReason(err, ValidationReasonNegativeAllocation)
	s.Equal(models.CategoryTransportation, validationErr.Category)
}

func (s *BudgetValidatorTestSuite) TestValidate_RejectsTotalAboveOverall() {
	allocations := models.Allocations{
		models.CategoryHousingUtilities: amount("600"),
		models.CategoryFoodDining:       amount("400.01"),
	}

	err := s.validator.Validate(amount("1000"), allocations)
	s.requireReason(err, ValidationReasonAllocationExceedsOverall)
	s.Equal("total allocations 1000.01 exceed overall budget 1000.00", err.Error())
}

func (s *BudgetValidatorTestSuite) TestValidate_ReportsFirstViolatedRule() {
	allocations := models.Allocations{
		"Pets":                        amount("-10"),
		models.CategoryFoodDining:     amount("-10"),
		models.CategoryTransportation: amount("5000"),
	}

	s.requireReason(s.validator.Validate(amount("0"), allocations), ValidationReasonOverallNotPositive)
	s.requireReason(s.validator.Validate(amount("100"), allocations), ValidationReasonUnknownCategory)

	delete(allocations, "Pets")
	s.requireReason(s.validator.Validate(amount("100"), allocations), ValidationReasonNegativeAllocation)

	allocations[models.CategoryFoodDining] = amount("10")
	s.requireReason(s.validator.Validate(amount("100"), allocations), ValidationReasonAllocationExceedsOverall)
}

// Patching housing on a 1000 budget holding food 400 and housing 500 is
// checked against the merged allocations
func (s *BudgetValidatorTestSuite) TestValidate_MergedPatch() {
	stored := models.Allocations{
		models.CategoryFoodDining:       amount("400"),
		models.CategoryHousingUtilities: amount("500"),
	}

	accepted := stored.Merge(models.Allocations{models.CategoryHousingUtilities: amount("600")})
	s.NoError(s.validator.Validate(amount("1000"), accepted))

	rejected := stored.Merge(models.Allocations{models.CategoryHousingUtilities: amount("700")})
	s.requireReason(s.validator.Validate(amount("1000"), rejected), ValidationReasonAllocationExceedsOverall)
}

// Accepted budgets never allocate more than their overall amount
func (s *BudgetValidatorTestSuite) TestValidate_AcceptedBudgetsNeverOverAllocate() {
	faker := gofakeit.New(7)
	categories := models.AllCategories()

	for i := 0; i < 1000; i++ {
		overall := decimal.NewFromFloat(faker.Float64Range(-100, 5000)).Round(2)
		allocations := models.Allocations{}
		for _, category := range categories {
			if faker.Bool() {
				allocations[category] = decimal.NewFromFloat(faker.Float64Range(-50, 1500)).Round(2)
			}
		}

		if err := s.validator.Validate(overall, allocations); err == nil {
			s.True(overall.IsPositive())
			s.True(allocations.Sum().LessThanOrEqual(overall),
				"accepted %s allocated against overall %s", allocations.Sum(), overall)
			for category, value := range allocations {
				s.False(value.IsNegative(), "accepted negative allocation for %s", category)
			}
		}
	}
}
