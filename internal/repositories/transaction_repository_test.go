package repositories

import (
	"context"
	"testing"

	"budget-engine/internal/database"
	"budget-engine/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   TransactionRepositoryInterface
	ctx    context.Context
	userID uuid.UUID
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) transaction(id, date string, amount int64) models.Transaction {
	return models.Transaction{
		ID:            id,
		UserID:        s.userID,
		AccountID:     "acc-1",
		Amount:        decimal.NewFromInt(amount),
		Date:          date,
		RawCategories: []string{"Food and Drink", "Restaurants"},
		FinanceCategory: &models.FinanceCategory{
			Primary:  "FOOD_AND_DRINK",
			Detailed: "FOOD_AND_DRINK_RESTAURANT",
		},
	}
}

func (s *TransactionRepositorySuite) TestGetTransactions_InclusiveRange() {
	s.Require().NoError(s.repo.UpsertBatch(s.ctx, []models.Transaction{
		s.transaction("t-dec", "2023-12-31", 10),
		s.transaction("t-first", "2024-01-01", 20),
		s.transaction("t-last", "2024-01-31", 30),
		s.transaction("t-feb", "2024-02-01", 40),
	}))

	transactions, err := s.repo.GetTransactions(s.ctx, s.userID, "2024-01-01", "2024-01-31")
	s.NoError(err)
	s.Require().Len(transactions, 2)
	s.Equal("t-first", transactions[0].ID)
	s.Equal("t-last", transactions[1].ID)
}

func (s *TransactionRepositorySuite) TestGetTransactions_ScopedToUser() {
	other := s.transaction("t-other", "2024-01-10", 10)
	other.UserID = uuid.New()
	s.Require().NoError(s.repo.UpsertBatch(s.ctx, []models.Transaction{
		s.transaction("t-mine", "2024-01-10", 10),
		other,
	}))

	transactions, err := s.repo.GetTransactions(s.ctx, s.userID, "2024-01-01", "2024-01-31")
	s.NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal("t-mine", transactions[0].ID)
}

func (s *TransactionRepositorySuite) TestUpsertBatch_RoundTripsCategoryMetadata() {
	s.Require().NoError(s.repo.UpsertBatch(s.ctx, []models.Transaction{s.transaction("t-1", "2024-01-10", 25)}))

	transactions, err := s.repo.GetTransactions(s.ctx, s.userID, "2024-01-01", "2024-01-31")
	s.NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal([]string{"Food and Drink", "Restaurants"}, transactions[0].RawCategories)
	s.Require().NotNil(transactions[0].FinanceCategory)
	s.Equal("FOOD_AND_DRINK", transactions[0].FinanceCategory.Primary)
	s.Nil(transactions[0].AssignedCategory)
}

func (s *TransactionRepositorySuite) TestUpsertBatch_ReplacesByID() {
	s.Require().NoError(s.repo.UpsertBatch(s.ctx, []models.Transaction{s.transaction("t-1", "2024-01-10", 25)}))

	updated := s.transaction("t-1", "2024-01-11", 30)
	updated.Pending = true
	s.Require().NoError(s.repo.UpsertBatch(s.ctx, []models.Transaction{updated}))

	count, err := s.repo.CountByUserID(s.ctx, s.userID)
	s.NoError(err)
	s.Equal(int64(1), count)

	transactions, err := s.repo.GetTransactions(s.ctx, s.userID, "2024-01-01", "2024-01-31")
	s.NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal("2024-01-11", transactions[0].Date)
	s.True(decimal.NewFromInt(30).Equal(transactions[0].Amount))
	s.True(transactions[0].Pending)
}

func (s *TransactionRepositorySuite) TestUpsertBatch_RejectsInvalidDate() {
	err := s.repo.UpsertBatch(s.ctx, []models.Transaction{s.transaction("t-1", "01/10/2024", 25)})
	s.ErrorIs(err, models.ErrInvalidTransactionDate)
}

func (s *TransactionRepositorySuite) TestUpsertBatch_Empty() {
	s.NoError(s.repo.UpsertBatch(s.ctx, nil))
}

func (s *TransactionRepositorySuite) TestDeleteByUserID() {
	s.Require().NoError(s.repo.UpsertBatch(s.ctx, []models.Transaction{
		s.transaction("t-1", "2024-01-10", 25),
		s.transaction("t-2", "2024-01-12", 15),
	}))

	s.NoError(s.repo.DeleteByUserID(s.ctx, s.userID))

	count, err := s.repo.CountByUserID(s.ctx, s.userID)
	s.NoError(err)
	s.Zero(count)
}
