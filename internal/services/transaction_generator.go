package services

import (
	"time"

	"budget-engine/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// merchantProfile describes a merchant as the bank-data provider reports it
type merchantProfile struct {
	name        string
	primary     string
	detailed    string
	rawCategory string
	minAmount   float64
	maxAmount   float64
}

type transactionGenerator struct {
	faker        *gofakeit.Faker
	merchantPool []merchantProfile
}

const (
	salaryDayFirst     = 1
	salaryDaySecond    = 15
	rentDay            = 1
	maxDailyPurchases  = 3
	pendingProbability = 0.05
	uncategorizedRatio = 0.05
)

// NewTransactionGenerator creates a generator. A zero seed draws a random one.
func NewTransactionGenerator(seed uint64) TransactionGeneratorInterface {
	return &transactionGenerator{
		faker:        gofakeit.New(seed),
		merchantPool: initializeMerchantPool(),
	}
}

func initializeMerchantPool() []merchantProfile {
	return []merchantProfile{
		{"Whole Foods Market", "FOOD_AND_DRINK", "FOOD_AND_DRINK_GROCERIES", "Shops", 15, 250},
		{"Trader Joe's", "FOOD_AND_DRINK", "FOOD_AND_DRINK_GROCERIES", "Shops", 15, 180},
		{"Starbucks", "FOOD_AND_DRINK", "FOOD_AND_DRINK_COFFEE", "Food and Drink", 4, 18},
		{"Chipotle Mexican Grill", "FOOD_AND_DRINK", "FOOD_AND_DRINK_RESTAURANT", "Food and Drink", 9, 40},
		{"Olive Garden", "FOOD_AND_DRINK", "FOOD_AND_DRINK_RESTAURANT", "Food and Drink", 25, 120},

		{"Shell", "TRANSPORTATION", "TRANSPORTATION_GAS", "Gas Stations", 25, 80},
		{"Chevron", "TRANSPORTATION", "TRANSPORTATION_GAS", "Gas Stations", 25, 80},
		{"Uber", "TRANSPORTATION", "TRANSPORTATION_TAXIS_AND_RIDE_SHARES", "Travel", 8, 60},
		{"Metro Transit", "TRANSPORTATION", "TRANSPORTATION_PUBLIC_TRANSIT", "Travel", 2, 30},

		{"CVS Pharmacy", "MEDICAL", "MEDICAL_PHARMACIES_AND_SUPPLEMENTS", "Healthcare", 8, 90},
		{"Kaiser Permanente", "MEDICAL", "MEDICAL_PRIMARY_CARE", "Healthcare", 20, 300},
		{"Geico", "GENERAL_SERVICES", "GENERAL_SERVICES_INSURANCE", "Service", 90, 180},

		{"Target", "GENERAL_MERCHANDISE", "GENERAL_MERCHANDISE_SUPERSTORES", "Shops", 20, 200},
		{"Nordstrom", "GENERAL_MERCHANDISE", "GENERAL_MERCHANDISE_CLOTHING_AND_ACCESSORIES", "Shops", 30, 300},
		{"Planet Fitness", "PERSONAL_CARE", "PERSONAL_CARE_GYMS_AND_FITNESS_CENTERS", "Recreation", 10, 40},

		{"Netflix", "ENTERTAINMENT", "ENTERTAINMENT_TV_AND_MOVIES", "Service", 10, 23},
		{"Spotify", "ENTERTAINMENT", "ENTERTAINMENT_MUSIC_AND_AUDIO", "Service", 10, 17},
		{"AMC Theatres", "ENTERTAINMENT", "ENTERTAINMENT_TV_AND_MOVIES", "Recreation", 12, 60},

		{"Vanguard", "TRANSFER_OUT", "TRANSFER_OUT_INVESTMENT_AND_RETIREMENT_FUNDS", "Transfer", 100, 500},
		{"Chase Credit Card", "LOAN_PAYMENTS", "LOAN_PAYMENTS_CREDIT_CARD_PAYMENT", "Payment", 100, 600},

		{"Red Cross", "GOVERNMENT_AND_NON_PROFIT", "GOVERNMENT_AND_NON_PROFIT_DONATIONS", "Community", 10, 100},
	}
}

var monthlyBills = []merchantProfile{
	{"Property Management Co", "RENT_AND_UTILITIES", "RENT_AND_UTILITIES_RENT", "Payment", 1200, 1800},
	{"City Power & Gas", "RENT_AND_UTILITIES", "RENT_AND_UTILITIES_GAS_AND_ELECTRICITY", "Service", 60, 180},
	{"Comcast Xfinity", "RENT_AND_UTILITIES", "RENT_AND_UTILITIES_INTERNET_AND_CABLE", "Service", 50, 120},
}

// GenerateMonth produces salary deposits, monthly bills and daily purchases
// for the period. Purchases are positive outflows, deposits negative inflows.
func (g *transactionGenerator) GenerateMonth(userID uuid.UUID, period models.Period) []models.Transaction {
	accountID := "acc_" + userID.String()[:8]
	firstDay := period.FirstDay(time.UTC)
	lastDay := period.LastDay(time.UTC)

	transactions := make([]models.Transaction, 0)

	for _, day := range []int{salaryDayFirst, salaryDaySecond} {
		date := time.Date(period.Year, time.Month(period.Month), day, 0, 0, 0, 0, time.UTC)
		transactions = append(transactions, g.salaryTransaction(userID, accountID, date))
	}

	for _, bill := range monthlyBills {
		day := rentDay
		if bill.detailed != "RENT_AND_UTILITIES_RENT" {
			day = g.faker.Number(2, 28)
		}
		date := time.Date(period.Year, time.Month(period.Month), day, 0, 0, 0, 0, time.UTC)
		transactions = append(transactions, g.purchase(userID, accountID, bill, date))
	}

	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		purchases := g.faker.Number(0, maxDailyPurchases)
		for i := 0; i < purchases; i++ {
			merchant := g.merchantPool[g.faker.Number(0, len(g.merchantPool)-1)]
			transactions = append(transactions, g.purchase(userID, accountID, merchant, day))
		}
	}

	return transactions
}

// GenerateHistory generates the given number of months ending at period, oldest first
func (g *transactionGenerator) GenerateHistory(userID uuid.UUID, period models.Period, months int) []models.Transaction {
	if months < 1 {
		months = 1
	}

	transactions := make([]models.Transaction, 0)
	for offset := months - 1; offset >= 0; offset-- {
		transactions = append(transactions, g.GenerateMonth(userID, period.AddMonths(-offset))...)
	}
	return transactions
}

func (g *transactionGenerator) salaryTransaction(userID uuid.UUID, accountID string, date time.Time) models.Transaction {
	amount := decimal.NewFromFloat(g.faker.Float64Range(1800, 3500)).Round(2)

	return models.Transaction{
		ID:            g.transactionID(),
		UserID:        userID,
		AccountID:     accountID,
		Amount:        amount.Neg(),
		Date:          models.FormatTransactionDate(date),
		Name:          "Direct Deposit - " + g.faker.Company(),
		RawCategories: []string{"Transfer", "Payroll"},
		FinanceCategory: &models.FinanceCategory{
			Primary:    "INCOME",
			Detailed:   "INCOME_WAGES",
			Confidence: "VERY_HIGH",
		},
	}
}

func (g *transactionGenerator) purchase(userID uuid.UUID, accountID string, merchant merchantProfile, date time.Time) models.Transaction {
	amount := decimal.NewFromFloat(g.faker.Float64Range(merchant.minAmount, merchant.maxAmount)).Round(2)

	transaction := models.Transaction{
		ID:        g.transactionID(),
		UserID:    userID,
		AccountID: accountID,
		Amount:    amount,
		Date:      models.FormatTransactionDate(date),
		Name:      merchant.name,
		Pending:   g.faker.Float64() < pendingProbability,
	}

	// the provider occasionally omits category metadata entirely
	if g.faker.Float64() >= uncategorizedRatio {
		transaction.RawCategories = []string{merchant.rawCategory}
		transaction.FinanceCategory = &models.FinanceCategory{
			Primary:    merchant.primary,
			Detailed:   merchant.detailed,
			Confidence: g.faker.RandomString([]string{"VERY_HIGH", "HIGH", "MEDIUM"}),
		}
	}

	return transaction
}

func (g *transactionGenerator) transactionID() string {
	return "txn_" + g.faker.UUID()
}
