package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"financehub/internal/dto"
	"financehub/internal/errors"
	"financehub/internal/services/service_mocks"
)

type InsightsHandlerTestSuite struct {
	suite.Suite
	echo                *echo.Echo
	ctrl                *gomock.Controller
	mockInsightsService *service_mocks.MockInsightsServiceInterface
	handler             *InsightsHandler
}

func TestInsightsHandlerSuite(t *testing.T) {
	suite.Run(t, new(InsightsHandlerTestSuite))
}

func (s *InsightsHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockInsightsService = service_mocks.NewMockInsightsServiceInterface(s.ctrl)
	s.handler = NewInsightsHandler(s.mockInsightsService)
}

func (s *InsightsHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InsightsHandlerTestSuite) TestSummary() {
	summary := &dto.InsightsSummary{
		Totals: dto.CashflowTotals{
			Income:      decimal.NewFromInt(6000),
			Expenses:    decimal.NewFromInt(1500),
			Net:         decimal.NewFromInt(4500),
			SavingsRate: 75,
		},
		Monthly: []dto.MonthlyCashflow{
			{Month: "2024-01", Income: decimal.NewFromInt(3000), Expenses: decimal.NewFromInt(800)},
			{Month: "2024-02", Income: decimal.NewFromInt(3000), Expenses: decimal.NewFromInt(700)},
		},
		Categories: []dto.CategorySpend{
			{Category: "Housing", Total: decimal.NewFromInt(1000), Count: 2},
		},
		TopMerchants: []dto.MerchantSpend{
			{Description: "LANDLORD LLC", Total: decimal.NewFromInt(1000), Count: 2},
		},
	}
	s.mockInsightsService.EXPECT().Summary().Return(summary, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights/summary", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.Summary(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.InsightsSummary
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(float64(75), response.Totals.SavingsRate)
	s.Len(response.Monthly, 2)
	s.Equal("Housing", response.Categories[0].Category)
}

func (s *InsightsHandlerTestSuite) TestSummary_ServiceError() {
	s.mockInsightsService.EXPECT().Summary().Return(nil, fmt.Errorf("db down"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights/summary", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.Summary(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *InsightsHandlerTestSuite) TestRecurringCharges() {
	charges := []dto.RecurringCharge{
		{Description: "NETFLIX", Average: decimal.NewFromFloat(15.49), Frequency: 3, Annualized: decimal.NewFromFloat(185.88)},
		{Description: "SPOTIFY", Average: decimal.NewFromFloat(9.99), Frequency: 2, Annualized: decimal.NewFromFloat(119.88)},
	}
	s.mockInsightsService.EXPECT().RecurringCharges().Return(charges, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights/recurring", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.RecurringCharges(c))
	s.Equal(http.StatusOK, rec.Code)

	var response []dto.RecurringCharge
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response, 2)
	s.Equal("NETFLIX", response[0].Description)
	s.Equal(3, response[0].Frequency)
}

func (s *InsightsHandlerTestSuite) TestBudgetStatus_DefaultsToCurrentMonth() {
	s.mockInsightsService.EXPECT().BudgetStatus("").Return([]dto.BudgetStatus{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights/budgets", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.BudgetStatus(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *InsightsHandlerTestSuite) TestBudgetStatus_ExplicitMonth() {
	statuses := []dto.BudgetStatus{
		{
			Category:     "Dining",
			MonthlyLimit: decimal.NewFromInt(300),
			Spent:        decimal.NewFromInt(350),
			Remaining:    decimal.NewFromInt(-50),
			OverBudget:   true,
		},
	}
	s.mockInsightsService.EXPECT().BudgetStatus("2024-01").Return(statuses, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights/budgets?month=2024-01", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.BudgetStatus(c))
	s.Equal(http.StatusOK, rec.Code)

	var response []dto.BudgetStatus
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response, 1)
	s.True(response[0].OverBudget)
}

func (s *InsightsHandlerTestSuite) TestBudgetStatus_InvalidMonth() {
	testCases := []string{"January", "2024-1", "2024/01", "01-2024"}

	for _, month := range testCases {
		s.Run(month, func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/insights/budgets?month="+month, nil)
			rec := httptest.NewRecorder()
			c := s.echo.NewContext(req, rec)

			s.NoError(s.handler.BudgetStatus(c))
			s.Equal(http.StatusBadRequest, rec.Code)

			var response errors.ErrorResponse
			s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
			s.Equal(string(errors.ValidationInvalidDate), response.Error.Code)
		})
	}
}
