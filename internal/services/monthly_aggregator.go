package services

import (
	"log/slog"
	"slices"
	"time"

	"budget-engine/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type monthlyAggregator struct {
	classifier ClassifierInterface
	location   *time.Location
	logger     *slog.Logger
}

// NewMonthlyAggregator creates an aggregator that interprets transaction dates
// as calendar days in loc
func NewMonthlyAggregator(classifier ClassifierInterface, loc *time.Location, logger *slog.Logger) MonthlyAggregatorInterface {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &monthlyAggregator{
		classifier: classifier,
		location:   loc,
		logger:     logger,
	}
}

// Summarize computes income, expense and net change for the month. Negative
// amounts are income, positive amounts are expenses.
func (a *monthlyAggregator) Summarize(transactions []models.Transaction, period models.Period) models.MonthlySummary {
	summary := models.MonthlySummary{
		Year:         period.Year,
		Month:        period.Month,
		PeriodLabel:  period.Label(),
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
		NetChange:    decimal.Zero,
	}

	for _, transaction := range a.FilterPeriod(transactions, period) {
		switch {
		case transaction.IsInflow():
			summary.IncomeTotal = summary.IncomeTotal.Add(transaction.Amount.Abs())
		case transaction.IsOutflow():
			summary.ExpenseTotal = summary.ExpenseTotal.Add(transaction.Amount)
		}
		summary.TransactionCount++
	}

	summary.NetChange = summary.IncomeTotal.Sub(summary.ExpenseTotal)
	return summary
}

// Trend returns the percentage change from previous to current, rounded to
// one decimal place. A zero previous value yields 0 or 100.
func (a *monthlyAggregator) Trend(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(1)
}

// MonthOverMonth compares the month with the one before it
func (a *monthlyAggregator) MonthOverMonth(transactions []models.Transaction, period models.Period) models.TrendSummary {
	current := a.Summarize(transactions, period)
	previous := a.Summarize(transactions, period.Previous())

	return models.TrendSummary{
		Current:      current,
		Previous:     previous,
		IncomeTrend:  a.Trend(current.IncomeTotal, previous.IncomeTotal),
		ExpenseTrend: a.Trend(current.ExpenseTotal, previous.ExpenseTotal),
	}
}

// CategoryBreakdown groups the month's expenses by category, largest first.
// Equal totals keep the order in which their categories were first seen.
func (a *monthlyAggregator) CategoryBreakdown(transactions []models.Transaction, period models.Period) []models.CategoryBreakdownItem {
	items := make([]models.CategoryBreakdownItem, 0)
	index := make(map[string]int)

	inPeriod := a.FilterPeriod(transactions, period)
	for i := range inPeriod {
		if !inPeriod[i].IsOutflow() {
			continue
		}

		category := a.classifier.Classify(&inPeriod[i])
		pos, ok := index[category]
		if !ok {
			pos = len(items)
			index[category] = pos
			items = append(items, models.CategoryBreakdownItem{Category: category, Total: decimal.Zero})
		}
		items[pos].Total = items[pos].Total.Add(inPeriod[i].Amount)
		items[pos].TransactionCount++
	}

	slices.SortStableFunc(items, func(x, y models.CategoryBreakdownItem) int {
		return y.Total.Cmp(x.Total)
	})

	return items
}

// History returns summaries for the given number of months ending at period, oldest first
func (a *monthlyAggregator) History(transactions []models.Transaction, period models.Period, months int) []models.MonthlySummary {
	if months < 1 {
		months = 1
	}

	history := make([]models.MonthlySummary, 0, months)
	for offset := months - 1; offset >= 0; offset-- {
		history = append(history, a.Summarize(transactions, period.AddMonths(-offset)))
	}
	return history
}

// FilterPeriod returns the de-duplicated transactions dated inside the month.
// Dates are compared as calendar days; unparseable dates are skipped.
func (a *monthlyAggregator) FilterPeriod(transactions []models.Transaction, period models.Period) []models.Transaction {
	firstDay := period.FirstDay(a.location)
	lastDay := period.LastDay(a.location)

	result := make([]models.Transaction, 0)
	for _, transaction := range models.DedupeTransactions(transactions) {
		date, err := transaction.ParsedDate(a.location)
		if err != nil {
			a.logger.Debug("skipping transaction with unparseable date",
				"transaction_id", transaction.ID,
				"date", transaction.Date)
			continue
		}
		if date.Before(firstDay) || date.After(lastDay) {
			continue
		}
		result = append(result, transaction)
	}
	return result
}
