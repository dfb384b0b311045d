package models

// Budget categories. The order of AllCategories is the canonical order used
// for validation and reconciliation output.
const (
	CategoryHousingUtilities     = "Housing & Utilities"
	CategoryFoodDining           = "Food & Dining"
	CategoryTransportation       = "Transportation"
	CategoryHealthInsurance      = "Health & Insurance"
	CategoryPersonalLifestyle    = "Personal & Lifestyle"
	CategoryEntertainmentLeisure = "Entertainment & Leisure"
	CategoryFinancialSavings     = "Financial & Savings"
	CategoryGiftsDonations       = "Gifts & Donations"

	// CategoryDefault is assigned when no classification rule matches
	CategoryDefault = CategoryPersonalLifestyle
)

// Categorization method types
const (
	CategorizationMethodAssigned = "ASSIGNED"
	CategorizationMethodKeyword  = "KEYWORD"
	CategorizationMethodFallback = "FALLBACK"
)

// AllCategories returns all budget categories in canonical order
func AllCategories() []string {
	return []string{
		CategoryHousingUtilities,
		CategoryFoodDining,
		CategoryTransportation,
		CategoryHealthInsurance,
		CategoryPersonalLifestyle,
		CategoryEntertainmentLeisure,
		CategoryFinancialSavings,
		CategoryGiftsDonations,
	}
}

// IsValidCategory checks if a category string is one of the budget categories
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// CategorizationResult contains the result of transaction categorization
type CategorizationResult struct {
	Category       string `json:"category"`
	Method         string `json:"method"`
	MatchedKeyword string `json:"matched_keyword,omitempty"`
}
