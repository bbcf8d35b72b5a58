package handlers

import (
	"log/slog"
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
	scheduler      services.InstallmentSchedulerInterface
	ledger         services.PaymentLedgerInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(
	accountService services.AccountServiceInterface,
	scheduler services.InstallmentSchedulerInterface,
	ledger services.PaymentLedgerInterface,
) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		scheduler:      scheduler,
		ledger:         ledger,
	}
}

// CreateAccount creates a new account for the authenticated user
// @Summary Create a new account
// @Description Create a bill, loan, card or subscription. When principal and installmentCount are both given the installment schedule is generated with the account.
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account creation details"
// @Success 201 {object} dto.AccountResponse "Account created successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User profile not created yet"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.FormatErrors(err)...))
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("startDate must be YYYY-MM-DD"))
	}

	account, err := h.accountService.CreateAccount(userID, services.CreateAccountInput{
		Name:             req.Name,
		Kind:             req.Kind,
		Principal:        req.Principal,
		InstallmentCount: req.InstallmentCount,
		StartDate:        startDate,
		DueDay:           req.DueDay,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewAccountResponse(account))
}

// GetAccount retrieves a specific account by ID
// @Summary Get account by ID
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountResponse "Account details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID format"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	account, err := h.accountService.GetAccount(accountID, userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// ListAccounts retrieves all accounts of the authenticated user
// @Summary List accounts
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AccountListResponse "User's accounts"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accounts, err := h.accountService.ListAccounts(userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountListResponse(accounts))
}

// DeleteAccount removes an account together with its installments
// @Summary Delete account
// @Tags Accounts
// @Security BearerAuth
// @Param accountId path string true "Account ID (UUID)"
// @Success 204 "Account deleted"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{accountId} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	if err := h.accountService.DeleteAccount(accountID, userID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListInstallments returns the installment schedule of an account
// @Summary List installments of an account
// @Tags Installments
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.InstallmentListResponse "Installments ordered by sequence number"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{accountId}/installments [get]
func (h *AccountHandler) ListInstallments(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	installments, err := h.accountService.ListInstallments(accountID, userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewInstallmentListResponse(installments))
}

// ScheduleInstallments generates the installment schedule of an account that has none yet
// @Summary Schedule installments
// @Description Split the principal into installmentCount monthly installments due on dueDay; the last one absorbs the remainder
// @Tags Installments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.ScheduleInstallmentsRequest true "Schedule parameters"
// @Success 201 {object} dto.InstallmentListResponse "Generated installments"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid schedule parameters"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 409 {object} errors.ErrorResponse "ACCOUNT_004 - Account already has installments"
// @Router /accounts/{accountId}/installments/schedule [post]
func (h *AccountHandler) ScheduleInstallments(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	var req dto.ScheduleInstallmentsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.FormatErrors(err)...))
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("startDate must be YYYY-MM-DD"))
	}

	installments, err := h.scheduler.ScheduleInstallments(accountID, userID, req.Principal, req.InstallmentCount, startDate, req.DueDay)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewInstallmentListResponse(installments))
}

// SettleAccount pays off every remaining installment of an account with a single payment
// @Summary Settle account
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.SettleAccountRequest true "Payment amount in minor units"
// @Success 200 {object} dto.AccountResponse "Settled account"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 409 {object} errors.ErrorResponse "ACCOUNT_002 - Account already settled"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_003 - Payment does not cover the outstanding balance"
// @Router /accounts/{accountId}/settle [post]
func (h *AccountHandler) SettleAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	var req dto.SettleAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails(validation.FormatErrors(err)...))
	}

	account, err := h.ledger.SettleAccount(accountID, userID, req.PaymentAmount)
	if err != nil {
		return SendServiceError(c, err)
	}

	slog.Info("account settled",
		"trace_id", getTraceID(c),
		"account_id", accountID,
		"user_id", userID,
		"payment_amount", req.PaymentAmount.String(),
	)

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}
