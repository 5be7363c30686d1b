package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"financehub/internal/database"
	"financehub/internal/models"
)

func TestPlanningRepositories(t *testing.T) {
	suite.Run(t, new(PlanningRepositorySuite))
}

type PlanningRepositorySuite struct {
	suite.Suite
	db       *database.DB
	netWorth NetWorthRepositoryInterface
	funds    ProtectedFundRepositoryInterface
	budgets  BudgetRepositoryInterface
}

func (s *PlanningRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.netWorth = NewNetWorthRepository(s.db.DB)
	s.funds = NewProtectedFundRepository(s.db.DB)
	s.budgets = NewBudgetRepository(s.db.DB)
}

func (s *PlanningRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *PlanningRepositorySuite) TestNetWorthLifecycle() {
	entry := &models.NetWorthEntry{
		Name:     "Brokerage",
		Type:     models.NetWorthTypeAsset,
		Category: "Investments",
		Value:    decimal.NewFromFloat(42000),
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.netWorth.Create(entry))
	s.NotEqual(uuid.Nil, entry.ID)

	entry.Value = decimal.NewFromFloat(45000)
	s.Require().NoError(s.netWorth.Update(entry))

	got, err := s.netWorth.GetByID(entry.ID)
	s.Require().NoError(err)
	s.True(got.Value.Equal(decimal.NewFromFloat(45000)))

	all, err := s.netWorth.GetAll()
	s.Require().NoError(err)
	s.Len(all, 1)

	s.Require().NoError(s.netWorth.Delete(entry.ID))
	_, err = s.netWorth.GetByID(entry.ID)
	s.ErrorIs(err, ErrNetWorthEntryNotFound)
}

func (s *PlanningRepositorySuite) TestNetWorth_InvalidTypeRejected() {
	entry := &models.NetWorthEntry{
		Name:  "Mystery",
		Type:  "windfall",
		Value: decimal.NewFromFloat(1),
	}
	s.ErrorIs(s.netWorth.Create(entry), models.ErrInvalidNetWorthType)
}

func (s *PlanningRepositorySuite) TestProtectedFundLifecycle() {
	fund := &models.ProtectedFund{
		Name:    "Emergency Fund",
		Type:    models.FundTypeEmergency,
		Target:  decimal.NewFromFloat(15000),
		Current: decimal.NewFromFloat(8000),
	}
	s.Require().NoError(s.funds.Create(fund))

	byType, err := s.funds.GetByType(models.FundTypeEmergency)
	s.Require().NoError(err)
	s.Require().Len(byType, 1)
	s.Equal("Emergency Fund", byType[0].Name)

	fund.Current = decimal.NewFromFloat(9000)
	s.Require().NoError(s.funds.Update(fund))

	s.Require().NoError(s.funds.Delete(fund.ID))
	s.ErrorIs(s.funds.Delete(fund.ID), ErrProtectedFundNotFound)
}

func (s *PlanningRepositorySuite) TestBudgetUpsert() {
	budget := &models.Budget{
		Category:     models.CategoryDining,
		MonthlyLimit: decimal.NewFromFloat(300),
	}
	s.Require().NoError(s.budgets.Upsert(budget))

	// Second upsert for the same category replaces the limit.
	replacement := &models.Budget{
		Category:     models.CategoryDining,
		MonthlyLimit: decimal.NewFromFloat(250),
	}
	s.Require().NoError(s.budgets.Upsert(replacement))

	all, err := s.budgets.GetAll()
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.True(all[0].MonthlyLimit.Equal(decimal.NewFromFloat(250)))

	got, err := s.budgets.GetByCategory(models.CategoryDining)
	s.Require().NoError(err)
	s.Equal(models.CategoryDining, got.Category)

	s.Require().NoError(s.budgets.Delete(models.CategoryDining))
	_, err = s.budgets.GetByCategory(models.CategoryDining)
	s.ErrorIs(err, ErrBudgetNotFound)
}

func (s *PlanningRepositorySuite) TestBudget_NonExpenseCategoryRejected() {
	budget := &models.Budget{
		Category:     models.CategoryTransfer,
		MonthlyLimit: decimal.NewFromFloat(100),
	}
	s.Error(s.budgets.Upsert(budget))
}
