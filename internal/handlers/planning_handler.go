package handlers

import (
	goerrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"financehub/internal/dto"
	"financehub/internal/errors"
	"financehub/internal/models"
	"financehub/internal/services"
)

// PlanningHandler handles net worth, protected fund and budget endpoints
type PlanningHandler struct {
	planningService services.PlanningServiceInterface
}

// NewPlanningHandler creates a new planning handler
func NewPlanningHandler(planningService services.PlanningServiceInterface) *PlanningHandler {
	return &PlanningHandler{planningService: planningService}
}

// NetWorthSummary reports assets, liabilities and net worth
// @Summary Net worth summary
// @Tags Planning
// @Produce json
// @Success 200 {object} dto.NetWorthSummary "Net worth summary with entries"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /networth [get]
func (h *PlanningHandler) NetWorthSummary(c echo.Context) error {
	summary, err := h.planningService.NetWorthSummary()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// CreateNetWorthEntry records an asset or liability
// @Summary Create net worth entry
// @Tags Planning
// @Accept json
// @Produce json
// @Param request body dto.NetWorthEntryRequest true "Entry details"
// @Success 201 {object} models.NetWorthEntry "Created entry"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Router /networth [post]
func (h *PlanningHandler) CreateNetWorthEntry(c echo.Context) error {
	var req dto.NetWorthEntryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry, err := h.planningService.CreateNetWorthEntry(&req)
	if err != nil {
		if goerrors.Is(err, models.ErrInvalidNetWorthType) {
			return SendError(c, errors.PlanningInvalidType)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// UpdateNetWorthEntry replaces an existing entry's fields
// @Summary Update net worth entry
// @Tags Planning
// @Accept json
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Param request body dto.NetWorthEntryRequest true "Entry details"
// @Success 200 {object} models.NetWorthEntry "Updated entry"
// @Failure 404 {object} errors.ErrorResponse "PLANNING_001 - Entry not found"
// @Router /networth/{id} [put]
func (h *PlanningHandler) UpdateNetWorthEntry(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.NetWorthEntryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry, err := h.planningService.UpdateNetWorthEntry(id, &req)
	if err != nil {
		if goerrors.Is(err, services.ErrNotFound) {
			return SendError(c, errors.PlanningEntryNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}

// DeleteNetWorthEntry removes an entry
// @Summary Delete net worth entry
// @Tags Planning
// @Param id path string true "Entry ID (UUID)"
// @Success 204 "Entry deleted"
// @Failure 404 {object} errors.ErrorResponse "PLANNING_001 - Entry not found"
// @Router /networth/{id} [delete]
func (h *PlanningHandler) DeleteNetWorthEntry(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.planningService.DeleteNetWorthEntry(id); err != nil {
		if goerrors.Is(err, services.ErrNotFound) {
			return SendError(c, errors.PlanningEntryNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListProtectedFunds lists earmarked funds
// @Summary List protected funds
// @Tags Planning
// @Produce json
// @Success 200 {array} models.ProtectedFund "Protected funds"
// @Router /funds [get]
func (h *PlanningHandler) ListProtectedFunds(c echo.Context) error {
	funds, err := h.planningService.ListProtectedFunds()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, funds)
}

// CreateProtectedFund earmarks money toward a goal
// @Summary Create protected fund
// @Tags Planning
// @Accept json
// @Produce json
// @Param request body dto.ProtectedFundRequest true "Fund details"
// @Success 201 {object} models.ProtectedFund "Created fund"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Router /funds [post]
func (h *PlanningHandler) CreateProtectedFund(c echo.Context) error {
	var req dto.ProtectedFundRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fund, err := h.planningService.CreateProtectedFund(&req)
	if err != nil {
		if goerrors.Is(err, models.ErrInvalidFundType) {
			return SendError(c, errors.PlanningInvalidType)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusCreated, fund)
}

// UpdateProtectedFund replaces an existing fund's fields
// @Summary Update protected fund
// @Tags Planning
// @Accept json
// @Produce json
// @Param id path string true "Fund ID (UUID)"
// @Param request body dto.ProtectedFundRequest true "Fund details"
// @Success 200 {object} models.ProtectedFund "Updated fund"
// @Failure 404 {object} errors.ErrorResponse "PLANNING_002 - Fund not found"
// @Router /funds/{id} [put]
func (h *PlanningHandler) UpdateProtectedFund(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ProtectedFundRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fund, err := h.planningService.UpdateProtectedFund(id, &req)
	if err != nil {
		if goerrors.Is(err, services.ErrNotFound) {
			return SendError(c, errors.PlanningFundNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, fund)
}

// DeleteProtectedFund removes a fund
// @Summary Delete protected fund
// @Tags Planning
// @Param id path string true "Fund ID (UUID)"
// @Success 204 "Fund deleted"
// @Failure 404 {object} errors.ErrorResponse "PLANNING_002 - Fund not found"
// @Router /funds/{id} [delete]
func (h *PlanningHandler) DeleteProtectedFund(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.planningService.DeleteProtectedFund(id); err != nil {
		if goerrors.Is(err, services.ErrNotFound) {
			return SendError(c, errors.PlanningFundNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// EmergencyReserve reports emergency fund runway against average spending
// @Summary Emergency reserve runway
// @Description Months of average spending the emergency funds cover, plus the six month target
// @Tags Planning
// @Produce json
// @Success 200 {object} dto.EmergencyReserve "Emergency reserve status"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /funds/reserve [get]
func (h *PlanningHandler) EmergencyReserve(c echo.Context) error {
	reserve, err := h.planningService.EmergencyReserve()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, reserve)
}

// ListBudgets lists configured monthly budgets
// @Summary List budgets
// @Tags Planning
// @Produce json
// @Success 200 {array} models.Budget "Budgets"
// @Router /budgets [get]
func (h *PlanningHandler) ListBudgets(c echo.Context) error {
	budgets, err := h.planningService.ListBudgets()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, budgets)
}

// SetBudget creates or replaces the monthly limit for a category
// @Summary Set a category budget
// @Tags Planning
// @Accept json
// @Produce json
// @Param request body dto.BudgetRequest true "Budget details"
// @Success 200 {object} models.Budget "Budget"
// @Failure 400 {object} errors.ErrorResponse "PLANNING_005 - Non-expense category"
// @Router /budgets [put]
func (h *PlanningHandler) SetBudget(c echo.Context) error {
	var req dto.BudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !isBudgetableCategory(req.Category) {
		return SendError(c, errors.PlanningInvalidCategory)
	}

	budget, err := h.planningService.SetBudget(&req)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, budget)
}

// DeleteBudget removes the budget for a category
// @Summary Delete a category budget
// @Tags Planning
// @Param category path string true "Category name"
// @Success 204 "Budget deleted"
// @Failure 404 {object} errors.ErrorResponse "PLANNING_003 - Budget not found"
// @Router /budgets/{category} [delete]
func (h *PlanningHandler) DeleteBudget(c echo.Context) error {
	category := c.Param("category")
	if category == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("category is required"))
	}

	if err := h.planningService.DeleteBudget(category); err != nil {
		if goerrors.Is(err, services.ErrNotFound) {
			return SendError(c, errors.PlanningBudgetNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// isBudgetableCategory reports whether a category can carry a monthly
// limit. Income, transfers and the uncategorized bucket cannot.
func isBudgetableCategory(category string) bool {
	switch category {
	case models.CategoryIncome, models.CategoryTransfer, models.CategoryUncategorized:
		return false
	}
	return true
}
