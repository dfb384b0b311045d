package repositories

import (
	"context"
	"testing"
	"time"

	"budget-engine/internal/database"
	"budget-engine/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestBudgetRepository(t *testing.T) {
	suite.Run(t, new(BudgetRepositorySuite))
}

type BudgetRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   BudgetRepositoryInterface
	ctx    context.Context
	userID uuid.UUID
}

func (s *BudgetRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBudgetRepository(s.db.DB)
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *BudgetRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *BudgetRepositorySuite) newBudget(userID uuid.UUID) *models.Budget {
	return &models.Budget{
		UserID:        userID,
		OverallAmount: decimal.NewFromInt(1000),
		Allocations: models.Allocations{
			models.CategoryFoodDining:       decimal.NewFromInt(400),
			models.CategoryHousingUtilities: decimal.NewFromInt(500),
		},
	}
}

func (s *BudgetRepositorySuite) TestCreate() {
	budget := s.newBudget(s.userID)

	err := s.repo.Create(s.ctx, budget)
	s.NoError(err)
	s.NotEqual(uuid.Nil, budget.ID)
	s.Equal(1, budget.Version)
	s.NotZero(budget.CreatedAt)
}

func (s *BudgetRepositorySuite) TestCreate_SecondBudgetForUserIsRejected() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newBudget(s.userID)))

	err := s.repo.Create(s.ctx, s.newBudget(s.userID))
	s.ErrorIs(err, ErrBudgetAlreadyExists)

	budgets, err := s.repo.GetByUserID(s.ctx, s.userID)
	s.NoError(err)
	s.Len(budgets, 1)
}

func (s *BudgetRepositorySuite) TestGetCurrent() {
	created := s.newBudget(s.userID)
	s.Require().NoError(s.repo.Create(s.ctx, created))

	budget, err := s.repo.GetCurrent(s.ctx, s.userID)
	s.NoError(err)
	s.Equal(created.ID, budget.ID)
	s.True(decimal.NewFromInt(1000).Equal(budget.OverallAmount))
	s.True(decimal.NewFromInt(400).Equal(budget.AllocationFor(models.CategoryFoodDining)))
	s.True(decimal.NewFromInt(500).Equal(budget.AllocationFor(models.CategoryHousingUtilities)))
}

func (s *BudgetRepositorySuite) TestGetCurrent_NotFound() {
	budget, err := s.repo.GetCurrent(s.ctx, uuid.New())
	s.ErrorIs(err, ErrBudgetNotFound)
	s.Nil(budget)
}

func (s *BudgetRepositorySuite) TestGetByUserID_NewestFirst() {
	// rows written directly to simulate legacy duplicates without the unique index
	s.Require().NoError(s.db.Migrator().DropIndex(&models.Budget{}, "idx_budgets_user_id"))

	older := s.newBudget(s.userID)
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := s.newBudget(s.userID)
	newer.CreatedAt = time.Now()
	s.Require().NoError(s.repo.Create(s.ctx, older))
	s.Require().NoError(s.repo.Create(s.ctx, newer))

	budgets, err := s.repo.GetByUserID(s.ctx, s.userID)
	s.NoError(err)
	s.Require().Len(budgets, 2)
	s.Equal(newer.ID, budgets[0].ID)
	s.Equal(older.ID, budgets[1].ID)

	current, err := s.repo.GetCurrent(s.ctx, s.userID)
	s.NoError(err)
	s.Equal(newer.ID, current.ID)
}

func (s *BudgetRepositorySuite) TestUpdate() {
	budget := s.newBudget(s.userID)
	s.Require().NoError(s.repo.Create(s.ctx, budget))

	budget.OverallAmount = decimal.NewFromInt(2000)
	budget.Allocations = models.Allocations{models.CategoryTransportation: decimal.NewFromInt(250)}
	err := s.repo.Update(s.ctx, budget)
	s.NoError(err)
	s.Equal(2, budget.Version)

	stored, err := s.repo.GetCurrent(s.ctx, s.userID)
	s.NoError(err)
	s.True(decimal.NewFromInt(2000).Equal(stored.OverallAmount))
	s.Len(stored.Allocations, 1)
	s.True(decimal.NewFromInt(250).Equal(stored.AllocationFor(models.CategoryTransportation)))
	s.Equal(2, stored.Version)
}

func (s *BudgetRepositorySuite) TestUpdate_StaleVersion() {
	budget := s.newBudget(s.userID)
	s.Require().NoError(s.repo.Create(s.ctx, budget))

	stale := *budget
	s.Require().NoError(s.repo.Update(s.ctx, budget))

	stale.OverallAmount = decimal.NewFromInt(3000)
	err := s.repo.Update(s.ctx, &stale)
	s.ErrorIs(err, models.ErrOptimisticLockConflict)
	s.Equal(1, stale.Version)
}

func (s *BudgetRepositorySuite) TestUpdate_Missing() {
	budget := s.newBudget(s.userID)
	budget.ID = uuid.New()
	budget.Version = 1

	err := s.repo.Update(s.ctx, budget)
	s.ErrorIs(err, ErrBudgetNotFound)
}

func (s *BudgetRepositorySuite) TestPatch() {
	budget := s.newBudget(s.userID)
	s.Require().NoError(s.repo.Create(s.ctx, budget))

	merged := budget.Allocations.Merge(models.Allocations{models.CategoryHousingUtilities: decimal.NewFromInt(600)})
	patched, err := s.repo.Patch(s.ctx, budget.ID, budget.Version, map[string]interface{}{
		"allocations": merged,
	})
	s.NoError(err)
	s.Equal(2, patched.Version)
	s.True(decimal.NewFromInt(1000).Equal(patched.OverallAmount))
	s.True(decimal.NewFromInt(600).Equal(patched.AllocationFor(models.CategoryHousingUtilities)))
	s.True(decimal.NewFromInt(400).Equal(patched.AllocationFor(models.CategoryFoodDining)))
}

func (s *BudgetRepositorySuite) TestPatch_RejectsUnknownColumn() {
	budget := s.newBudget(s.userID)
	s.Require().NoError(s.repo.Create(s.ctx, budget))

	_, err := s.repo.Patch(s.ctx, budget.ID, budget.Version, map[string]interface{}{
		"user_id": uuid.New(),
	})
	s.Error(err)
	s.Contains(err.Error(), "cannot be patched")
}

func (s *BudgetRepositorySuite) TestPatch_StaleVersion() {
	budget := s.newBudget(s.userID)
	s.Require().NoError(s.repo.Create(s.ctx, budget))

	_, err := s.repo.Patch(s.ctx, budget.ID, budget.Version+5, map[string]interface{}{
		"overall_amount": decimal.NewFromInt(1500),
	})
	s.ErrorIs(err, models.ErrOptimisticLockConflict)
}

func (s *BudgetRepositorySuite) TestDelete() {
	budget := s.newBudget(s.userID)
	s.Require().NoError(s.repo.Create(s.ctx, budget))

	s.NoError(s.repo.Delete(s.ctx, budget.ID))

	_, err := s.repo.GetCurrent(s.ctx, s.userID)
	s.ErrorIs(err, ErrBudgetNotFound)

	s.ErrorIs(s.repo.Delete(s.ctx, budget.ID), ErrBudgetNotFound)
}

func (s *BudgetRepositorySuite) TestDelete_AllowsRecreate() {
	budget := s.newBudget(s.userID)
	s.Require().NoError(s.repo.Create(s.ctx, budget))
	s.Require().NoError(s.repo.Delete(s.ctx, budget.ID))

	s.NoError(s.repo.Create(s.ctx, s.newBudget(s.userID)))
}
