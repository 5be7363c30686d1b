package handlers

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"financehub/internal/errors"
	"financehub/internal/services"
)

var monthParamPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// InsightsHandler handles spending analytics endpoints
type InsightsHandler struct {
	insightsService services.InsightsServiceInterface
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsService services.InsightsServiceInterface) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// Summary reports cashflow totals, the monthly series, category breakdown
// and top merchants over settled history
// @Summary Cashflow summary
// @Description Totals, monthly cashflow series, category breakdown and top merchants over approved non-transfer history
// @Tags Insights
// @Produce json
// @Success 200 {object} dto.InsightsSummary "Cashflow summary"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /insights/summary [get]
func (h *InsightsHandler) Summary(c echo.Context) error {
	summary, err := h.insightsService.Summary()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// RecurringCharges lists detected recurring charges sorted by annualized cost
// @Summary Recurring charges
// @Description Detected recurring charges (subscriptions, repeated bills) sorted by annualized cost
// @Tags Insights
// @Produce json
// @Success 200 {array} dto.RecurringCharge "Recurring charges"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /insights/recurring [get]
func (h *InsightsHandler) RecurringCharges(c echo.Context) error {
	charges, err := h.insightsService.RecurringCharges()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, charges)
}

// BudgetStatus reports per-category limit vs spend for a month
// @Summary Budget status
// @Description Per-category budget limit vs actual and average spend for the given month (defaults to the current month)
// @Tags Insights
// @Produce json
// @Param month query string false "Month to report on (YYYY-MM)"
// @Success 200 {array} dto.BudgetStatus "Budget status per category"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid month format"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /insights/budgets [get]
func (h *InsightsHandler) BudgetStatus(c echo.Context) error {
	month := c.QueryParam("month")
	if month != "" && !monthParamPattern.MatchString(month) {
		return SendError(c, errors.ValidationInvalidDate,
			errors.WithDetails("month must use the YYYY-MM format"))
	}

	statuses, err := h.insightsService.BudgetStatus(month)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, statuses)
}
