package services

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"financehub/internal/models"
	"financehub/internal/repositories/repository_mocks"
)

func TestInsightsServiceSuite(t *testing.T) {
	suite.Run(t, new(InsightsServiceTestSuite))
}

type InsightsServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockTxnRepo    *repository_mocks.MockTransactionRepositoryInterface
	mockBudgetRepo *repository_mocks.MockBudgetRepositoryInterface
	service        *insightsService
}

func (s *InsightsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTxnRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockBudgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.service = NewInsightsService(s.mockTxnRepo, s.mockBudgetRepo).(*insightsService)
	s.service.now = func() time.Time {
		return time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	}
}

func (s *InsightsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InsightsServiceTestSuite) approved(date, description string, amount float64, category string) models.Transaction {
	d, err := time.ParseInLocation(models.DateLayout, date, time.UTC)
	s.Require().NoError(err)
	return models.Transaction{
		Date:        d,
		Description: description,
		Amount:      decimal.NewFromFloat(amount),
		Category:    category,
		Source:      models.SourceBank,
		Account:     gofakeit.Company(),
		Status:      models.TransactionStatusApproved,
		Reviewed:    true,
	}
}

func (s *InsightsServiceTestSuite) TestSummary() {
	transfer := s.approved("2024-01-20", "MOVE TO SAVINGS", -512, models.CategoryTransfer)
	transfer.IsTransfer = true
	pending := s.approved("2024-01-21", "NOT YET REVIEWED", -999, models.CategoryShopping)
	pending.Status = models.TransactionStatusPending
	pending.Reviewed = false

	s.mockTxnRepo.EXPECT().GetAll().Return([]models.Transaction{
		s.approved("2024-01-05", "ACME PAYROLL", 3000, models.CategoryIncome),
		s.approved("2024-01-10", "APT RENT", -1000, models.CategoryHousing),
		s.approved("2024-02-05", "ACME PAYROLL", 3000, models.CategoryIncome),
		s.approved("2024-02-12", "STARBUCKS #123", -500, models.CategoryDining),
		transfer,
		pending,
	}, nil)

	summary, err := s.service.Summary()
	s.Require().NoError(err)

	s.True(summary.Totals.Income.Equal(decimal.NewFromInt(6000)))
	s.True(summary.Totals.Expenses.Equal(decimal.NewFromInt(1500)))
	s.True(summary.Totals.Net.Equal(decimal.NewFromInt(4500)))
	s.InDelta(75.0, summary.Totals.SavingsRate, 0.01)

	s.Require().Len(summary.Monthly, 2)
	s.Equal("2024-01", summary.Monthly[0].Month)
	s.True(summary.Monthly[0].Income.Equal(decimal.NewFromInt(3000)))
	s.True(summary.Monthly[0].Expenses.Equal(decimal.NewFromInt(1000)))
	s.Equal("2024-02", summary.Monthly[1].Month)
	s.True(summary.Monthly[1].Net.Equal(decimal.NewFromInt(2500)))

	s.Require().Len(summary.Categories, 2)
	s.Equal(models.CategoryHousing, summary.Categories[0].Category)
	s.True(summary.Categories[0].Total.Equal(decimal.NewFromInt(1000)))

	s.Require().Len(summary.TopMerchants, 2)
	s.Equal("APT RENT", summary.TopMerchants[0].Description)
}

func (s *InsightsServiceTestSuite) TestSummary_EmptyCollection() {
	s.mockTxnRepo.EXPECT().GetAll().Return(nil, nil)

	summary, err := s.service.Summary()
	s.Require().NoError(err)
	s.True(summary.Totals.Net.IsZero())
	s.Zero(summary.Totals.SavingsRate)
	s.Empty(summary.Monthly)
}

func (s *InsightsServiceTestSuite) TestRecurringCharges_GroupsAcrossStoreNumbers() {
	s.mockTxnRepo.EXPECT().GetAll().Return([]models.Transaction{
		s.approved("2024-01-03", "NETFLIX #1001", -15.49, models.CategorySubscriptions),
		s.approved("2024-02-03", "NETFLIX #1002", -15.49, models.CategorySubscriptions),
		s.approved("2024-01-15", "ONE OFF PURCHASE", -80, models.CategoryShopping),
	}, nil)

	charges, err := s.service.RecurringCharges()
	s.Require().NoError(err)
	s.Require().Len(charges, 1)

	s.Equal("NETFLIX", charges[0].Description)
	s.Equal(2, charges[0].Frequency)
	s.True(charges[0].Average.Equal(decimal.NewFromFloat(15.49)))
	s.True(charges[0].Annualized.Equal(decimal.NewFromFloat(185.88)))
}

func (s *InsightsServiceTestSuite) TestRecurringCharges_HighVarianceExcluded() {
	s.mockTxnRepo.EXPECT().GetAll().Return([]models.Transaction{
		s.approved("2024-01-03", "GENERAL STORE", -1, models.CategoryShopping),
		s.approved("2024-02-03", "GENERAL STORE", -100, models.CategoryShopping),
	}, nil)

	charges, err := s.service.RecurringCharges()
	s.Require().NoError(err)
	s.Empty(charges)
}

func (s *InsightsServiceTestSuite) TestBudgetStatus_CurrentMonth() {
	s.mockTxnRepo.EXPECT().GetAll().Return([]models.Transaction{
		s.approved("2024-01-10", "STARBUCKS #123", -200, models.CategoryDining),
		s.approved("2024-02-10", "STARBUCKS #123", -350, models.CategoryDining),
		s.approved("2024-02-01", "APT RENT", -1000, models.CategoryHousing),
	}, nil)
	s.mockBudgetRepo.EXPECT().GetAll().Return([]models.Budget{
		{Category: models.CategoryDining, MonthlyLimit: decimal.NewFromInt(300)},
	}, nil)

	statuses, err := s.service.BudgetStatus("")
	s.Require().NoError(err)
	s.Require().Len(statuses, 2)

	// Sorted by current-month spend, Housing first.
	s.Equal(models.CategoryHousing, statuses[0].Category)
	s.True(statuses[0].Spent.Equal(decimal.NewFromInt(1000)))
	s.False(statuses[0].OverBudget)

	dining := statuses[1]
	s.Equal(models.CategoryDining, dining.Category)
	s.True(dining.MonthlyLimit.Equal(decimal.NewFromInt(300)))
	s.True(dining.Spent.Equal(decimal.NewFromInt(350)))
	s.True(dining.Average.Equal(decimal.NewFromInt(275)))
	s.True(dining.Remaining.Equal(decimal.NewFromInt(-50)))
	s.True(dining.OverBudget)
}

func (s *InsightsServiceTestSuite) TestBudgetStatus_ExcludesNonExpenseCategories() {
	transfer := s.approved("2024-02-02", "MOVE", -512, models.CategoryTransfer)
	transfer.IsTransfer = true

	s.mockTxnRepo.EXPECT().GetAll().Return([]models.Transaction{
		transfer,
		s.approved("2024-02-09", "MYSTERY DEBIT", -40, models.CategoryUncategorized),
	}, nil)
	s.mockBudgetRepo.EXPECT().GetAll().Return(nil, nil)

	statuses, err := s.service.BudgetStatus("")
	s.Require().NoError(err)
	s.Empty(statuses)
}
