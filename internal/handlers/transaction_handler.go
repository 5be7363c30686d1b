package handlers

import (
	goerrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"financehub/internal/dto"
	"financehub/internal/errors"
	"financehub/internal/models"
	"financehub/internal/services"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// TransactionHandler handles the review queue HTTP surface
type TransactionHandler struct {
	reviewService services.ReviewServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(reviewService services.ReviewServiceInterface) *TransactionHandler {
	return &TransactionHandler{reviewService: reviewService}
}

// ListTransactions retrieves the filtered transaction collection
// @Summary List transactions
// @Description Retrieve filtered transactions, flagged records first, then date descending
// @Tags Transactions
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, approved, flagged, unreviewed)
// @Param source query string false "Filter by source" Enums(bank, brokerage, exchange)
// @Param account query string false "Filter by account label"
// @Param category query string false "Filter by category"
// @Param transfers_only query bool false "Only transfer records"
// @Param search query string false "Case-insensitive description search"
// @Param start_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param end_date query string false "Filter by end date (YYYY-MM-DD)"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Number of results (max 500)" default(50)
// @Success 200 {object} dto.TransactionListResponse "Filtered transactions"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transactions, total, err := h.reviewService.ListTransactions(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Offset:       filters.Offset,
		Limit:        filters.Limit,
	})
}

// GetTransaction retrieves a single transaction by ID
// @Summary Get transaction by ID
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.Transaction "Transaction"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	transaction, err := h.reviewService.GetTransaction(id)
	if err != nil {
		if goerrors.Is(err, services.ErrNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// UpdateTransaction applies a review edit to a transaction
// @Summary Edit a transaction under review
// @Description Apply a review edit; any edit marks the record reviewed, and the transfer flag and Transfer category stay coupled
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} models.Transaction "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_003 - Invalid category or TRANSACTION_004 - Invalid status"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.reviewService.ApplyEdit(id, &req)
	if err != nil {
		switch {
		case goerrors.Is(err, services.ErrNotFound):
			return SendError(c, errors.TransactionNotFound)
		case goerrors.Is(err, models.ErrInvalidCategory):
			return SendError(c, errors.TransactionInvalidCategory)
		case goerrors.Is(err, models.ErrInvalidTransactionStatus):
			return SendError(c, errors.TransactionInvalidStatus)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, transaction)
}

// BulkApprove approves a set of transactions in one call
// @Summary Bulk approve transactions
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.BulkApproveRequest true "Transaction IDs"
// @Success 200 {object} dto.BulkApproveResponse "Number of approved records"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Empty ID list"
// @Router /transactions/approve [post]
func (h *TransactionHandler) BulkApprove(c echo.Context) error {
	var req dto.BulkApproveRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	approved, err := h.reviewService.BulkApprove(req.IDs)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BulkApproveResponse{Approved: approved})
}

// QueueCounts reports how many transactions sit in each review status
// @Summary Review queue counts
// @Tags Transactions
// @Produce json
// @Success 200 {object} map[string]int64 "Counts keyed by status"
// @Router /transactions/counts [get]
func (h *TransactionHandler) QueueCounts(c echo.Context) error {
	counts, err := h.reviewService.QueueCounts()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, counts)
}

// parseTransactionFilters parses and validates transaction filter parameters
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		Offset: getIntParam(c, "offset", 0),
		Limit:  getIntParam(c, "limit", defaultPageLimit),
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}
	if filters.Limit < 1 {
		filters.Limit = defaultPageLimit
	}
	if filters.Limit > maxPageLimit {
		filters.Limit = maxPageLimit
	}

	if status := c.QueryParam("status"); status != "" {
		if status != "unreviewed" && !models.IsValidTransactionStatus(status) {
			return filters, fmt.Errorf("invalid status")
		}
		filters.Status = status
	}

	if source := c.QueryParam("source"); source != "" {
		if !models.IsValidSource(source) {
			return filters, fmt.Errorf("invalid source")
		}
		filters.Source = source
	}

	if category := c.QueryParam("category"); category != "" {
		if !models.IsValidCategory(category) {
			return filters, fmt.Errorf("invalid category")
		}
		filters.Category = category
	}

	filters.Account = c.QueryParam("account")
	filters.Search = c.QueryParam("search")
	filters.TransferOnly = c.QueryParam("transfers_only") == "true"

	if startDateStr := c.QueryParam("start_date"); startDateStr != "" {
		startDate, err := time.ParseInLocation(models.DateLayout, startDateStr, time.UTC)
		if err != nil {
			return filters, fmt.Errorf("invalid start_date format, use YYYY-MM-DD")
		}
		filters.StartDate = &startDate
	}

	if endDateStr := c.QueryParam("end_date"); endDateStr != "" {
		endDate, err := time.ParseInLocation(models.DateLayout, endDateStr, time.UTC)
		if err != nil {
			return filters, fmt.Errorf("invalid end_date format, use YYYY-MM-DD")
		}
		filters.EndDate = &endDate
	}

	return filters, nil
}
