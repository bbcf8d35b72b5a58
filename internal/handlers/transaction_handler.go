package handlers

import (
	"fmt"
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction records an ad-hoc income or expense
// @Summary Create transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction details, amount in minor units"
// @Success 201 {object} dto.TransactionResponse "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Referenced account not found"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	input, reqErr := bindTransactionInput(c)
	if reqErr != nil {
		return reqErr.send(c)
	}

	transaction, err := h.transactionService.CreateTransaction(userID, input)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// GetTransaction retrieves a single transaction
// @Summary Get transaction
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param transactionId path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse "Transaction details"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{transactionId} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := getUUIDParam(c, "transactionId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionService.GetTransaction(transactionID, userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// ListTransactions retrieves paginated transaction history with filtering
// @Summary List transactions
// @Description Offset-paginated transactions, newest first
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param accountId query string false "Filter by account ID"
// @Param startDate query string false "Filter by start date (YYYY-MM-DD)"
// @Param endDate query string false "Filter by end date (YYYY-MM-DD)"
// @Param direction query string false "Filter by direction" Enums(income, expense)
// @Param category query string false "Filter by category"
// @Param offset query int false "Number of results to skip" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(20)
// @Success 200 {object} dto.ListTransactionsResponse "Transaction history with pagination"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transactions, total, err := h.transactionService.ListTransactions(userID, filters)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewListTransactionsResponse(transactions, total, filters.Offset, filters.Limit))
}

// UpdateTransaction replaces the editable fields of a transaction
// @Summary Update transaction
// @Description Settlement transactions only accept amount, description and date changes
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param transactionId path string true "Transaction ID (UUID)"
// @Param request body dto.TransactionRequest true "Transaction details"
// @Success 200 {object} dto.TransactionResponse "Updated transaction"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 409 {object} errors.ErrorResponse "TRANSACTION_004 - Settlement link cannot change"
// @Router /transactions/{transactionId} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := getUUIDParam(c, "transactionId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	input, reqErr := bindTransactionInput(c)
	if reqErr != nil {
		return reqErr.send(c)
	}

	transaction, err := h.transactionService.UpdateTransaction(transactionID, userID, input)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// DeleteTransaction removes a transaction
// @Summary Delete transaction
// @Tags Transactions
// @Security BearerAuth
// @Param transactionId path string true "Transaction ID (UUID)"
// @Success 204 "Transaction deleted"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{transactionId} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := getUUIDParam(c, "transactionId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.DeleteTransaction(transactionID, userID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// requestError is a request problem detected before calling a service
type requestError struct {
	code    errors.ErrorCode
	details []string
}

func (e *requestError) send(c echo.Context) error {
	return SendError(c, e.code, errors.WithDetails(e.details...))
}

// bindTransactionInput binds and validates a transaction body
func bindTransactionInput(c echo.Context) (services.TransactionInput, *requestError) {
	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return services.TransactionInput{}, &requestError{errors.ValidationGeneral, []string{"Invalid request body"}}
	}

	if err := c.Validate(req); err != nil {
		return services.TransactionInput{}, &requestError{errors.ValidationGeneral, validation.FormatErrors(err)}
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return services.TransactionInput{}, &requestError{errors.ValidationInvalidDate, []string{"date must be YYYY-MM-DD"}}
	}

	return services.TransactionInput{
		AccountID:   req.AccountID,
		Direction:   req.Direction,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}, nil
}

// parseTransactionFilters reads filter and pagination query parameters
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	var query dto.TransactionFilters
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return models.TransactionFilters{}, err
	}

	filters := models.TransactionFilters{
		Direction: query.Direction,
		Category:  query.Category,
		Offset:    getIntParam(c, "offset", 0),
		Limit:     getIntParam(c, "limit", defaultPageLimit),
	}

	if filters.Offset < 0 {
		return filters, fmt.Errorf("offset: must not be negative")
	}
	if filters.Limit < 1 || filters.Limit > maxPageLimit {
		filters.Limit = defaultPageLimit
	}

	if query.AccountID != "" {
		accountID, err := uuid.Parse(query.AccountID)
		if err != nil {
			return filters, fmt.Errorf("accountId: must be a valid UUID")
		}
		filters.AccountID = &accountID
	}

	if query.StartDate != "" {
		start, err := models.ParseDate(query.StartDate)
		if err != nil {
			return filters, fmt.Errorf("startDate: must be YYYY-MM-DD")
		}
		filters.StartDate = &start
	}

	if query.EndDate != "" {
		end, err := models.ParseDate(query.EndDate)
		if err != nil {
			return filters, fmt.Errorf("endDate: must be YYYY-MM-DD")
		}
		filters.EndDate = &end
	}

	return filters, nil
}
