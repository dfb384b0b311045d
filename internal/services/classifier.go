package services

import (
	"log/slog"
	"strings"

	"budget-engine/internal/models"
)

// ClassificationRule maps a keyword group to a budget category
type ClassificationRule struct {
	Category string
	Keywords []string
}

// ClassificationOrder is evaluated top to bottom and the first matching rule
// wins. Transportation must stay ahead of housing & utilities: "gas" is a
// utilities keyword and "gas station" a transportation one. Lodging counts
// as travel.
var ClassificationOrder = []ClassificationRule{
	{
		Category: models.CategoryFoodDining,
		Keywords: []string{"food", "restaurant", "dining", "groceries", "grocery", "coffee", "bakery", "fast food"},
	},
	{
		Category: models.CategoryTransportation,
		Keywords: []string{
			"transportation", "gas station", "fuel", "taxi", "ride share", "rideshare",
			"parking", "transit", "automotive", "airline", "flights", "travel", "tolls",
			"lodging", "hotel",
		},
	},
	{
		Category: models.CategoryHealthInsurance,
		Keywords: []string{"medical", "health", "pharmac", "doctor", "dentist", "dental", "insurance", "hospital"},
	},
	{
		Category: models.CategoryHousingUtilities,
		Keywords: []string{
			"rent", "mortgage", "utilities", "electricity", "water", "gas", "internet",
			"cable", "telephone", "phone", "home", "housing",
		},
	},
	{
		Category: models.CategoryPersonalLifestyle,
		Keywords: []string{
			"personal", "clothing", "apparel", "merchandise", "shopping", "shops",
			"beauty", "gym", "fitness", "hair", "education",
		},
	},
	{
		Category: models.CategoryEntertainmentLeisure,
		Keywords: []string{"entertainment", "recreation", "movie", "music", "games", "gaming", "sporting", "vacation"},
	},
	{
		Category: models.CategoryFinancialSavings,
		Keywords: []string{"loan", "bank fees", "transfer", "savings", "investment", "interest", "credit card", "tax", "fee", "income"},
	},
	{
		Category: models.CategoryGiftsDonations,
		Keywords: []string{"gift", "donation", "charity", "non profit", "nonprofit"},
	},
}

type classifier struct {
	rules   []ClassificationRule
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewClassifier creates a classifier using ClassificationOrder. metrics may be nil.
func NewClassifier(metrics MetricsRecorderInterface, logger *slog.Logger) ClassifierInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &classifier{
		rules:   ClassificationOrder,
		metrics: metrics,
		logger:  logger,
	}
}

// Classify returns the budget category of a transaction. It never fails and
// always returns one of the fixed categories.
func (c *classifier) Classify(transaction *models.Transaction) string {
	return c.Categorize(transaction).Category
}

// Categorize classifies a transaction and reports how the category was chosen
func (c *classifier) Categorize(transaction *models.Transaction) *models.CategorizationResult {
	if transaction == nil {
		return c.fallback(nil, "")
	}

	if transaction.HasAssignedCategory() {
		return c.record(&models.CategorizationResult{
			Category: *transaction.AssignedCategory,
			Method:   models.CategorizationMethodAssigned,
		})
	}

	composite := compositeCategoryText(transaction)
	if composite != "" {
		for _, rule := range c.rules {
			if keyword, ok := matchKeyword(composite, rule.Keywords); ok {
				return c.record(&models.CategorizationResult{
					Category:       rule.Category,
					Method:         models.CategorizationMethodKeyword,
					MatchedKeyword: keyword,
				})
			}
		}
	}

	return c.fallback(transaction, composite)
}

// ClassifyAll returns a copy of transactions with AssignedCategory set on
// every entry. The input slice is not modified.
func (c *classifier) ClassifyAll(transactions []models.Transaction) []models.Transaction {
	classified := make([]models.Transaction, len(transactions))
	copy(classified, transactions)

	for i := range classified {
		if classified[i].HasAssignedCategory() {
			continue
		}
		category := c.Classify(&classified[i])
		classified[i].AssignedCategory = &category
	}

	return classified
}

func (c *classifier) fallback(transaction *models.Transaction, composite string) *models.CategorizationResult {
	transactionID := ""
	if transaction != nil {
		transactionID = transaction.ID
	}
	c.logger.Debug("no classification rule matched, using default category",
		"transaction_id", transactionID,
		"category_text", composite,
		"category", models.CategoryDefault)

	return c.record(&models.CategorizationResult{
		Category: models.CategoryDefault,
		Method:   models.CategorizationMethodFallback,
	})
}

func (c *classifier) record(result *models.CategorizationResult) *models.CategorizationResult {
	if c.metrics != nil {
		c.metrics.IncrementCounter("transaction_classified", map[string]string{
			"method": result.Method,
		})
	}
	return result
}

// compositeCategoryText joins the provider category fields into one lowercase
// string. Missing fields are skipped.
func compositeCategoryText(transaction *models.Transaction) string {
	parts := make([]string, 0, 3)
	if transaction.FinanceCategory != nil {
		parts = append(parts, transaction.FinanceCategory.Primary, transaction.FinanceCategory.Detailed)
	}
	if len(transaction.RawCategories) > 0 {
		parts = append(parts, transaction.RawCategories[0])
	}
	return normalizeForMatching(strings.Join(parts, " "))
}

func normalizeForMatching(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}

func matchKeyword(text string, keywords []string) (string, bool) {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return keyword, true
		}
	}
	return "", false
}
