package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// InstallmentHandler handles payment state changes of single installments
type InstallmentHandler struct {
	ledger         services.PaymentLedgerInterface
	accountService services.AccountServiceInterface
}

// NewInstallmentHandler creates a new installment handler
func NewInstallmentHandler(ledger services.PaymentLedgerInterface, accountService services.AccountServiceInterface) *InstallmentHandler {
	return &InstallmentHandler{
		ledger:         ledger,
		accountService: accountService,
	}
}

// PayInstallment marks an installment paid and records its expense transaction
// @Summary Pay installment
// @Tags Installments
// @Security BearerAuth
// @Produce json
// @Param installmentId path string true "Installment ID (UUID)"
// @Success 200 {object} dto.InstallmentPaymentResponse "Paid installment and its expense"
// @Failure 404 {object} errors.ErrorResponse "INSTALLMENT_001 - Installment not found"
// @Failure 409 {object} errors.ErrorResponse "INSTALLMENT_002 - Already paid, INSTALLMENT_003 - Already has a settlement transaction"
// @Router /installments/{installmentId}/pay [post]
func (h *InstallmentHandler) PayInstallment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	installmentID, err := getUUIDParam(c, "installmentId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid installment ID"))
	}

	settlement, err := h.ledger.MarkInstallmentPaid(installmentID, userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewInstallmentPaymentResponse(settlement))
}

// UnpayInstallment clears the paid flag of an installment. Its settlement transaction is kept.
// @Summary Mark installment unpaid
// @Tags Installments
// @Security BearerAuth
// @Produce json
// @Param installmentId path string true "Installment ID (UUID)"
// @Success 200 {object} dto.InstallmentResponse "Unpaid installment"
// @Failure 404 {object} errors.ErrorResponse "INSTALLMENT_001 - Installment not found"
// @Router /installments/{installmentId}/unpay [post]
func (h *InstallmentHandler) UnpayInstallment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	installmentID, err := getUUIDParam(c, "installmentId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid installment ID"))
	}

	installment, err := h.ledger.MarkInstallmentUnpaid(installmentID, userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewInstallmentResponse(installment))
}

// AssignPeriod moves an installment to another budget period without touching its due date
// @Summary Reassign installment reference period
// @Tags Installments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param installmentId path string true "Installment ID (UUID)"
// @Param request body dto.AssignPeriodRequest true "Target period"
// @Success 200 {object} dto.InstallmentResponse "Updated installment"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid month or year"
// @Failure 404 {object} errors.ErrorResponse "INSTALLMENT_001 - Installment not found"
// @Router /installments/{installmentId}/period [put]
func (h *InstallmentHandler) AssignPeriod(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	installmentID, err := getUUIDParam(c, "installmentId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid installment ID"))
	}

	var req dto.AssignPeriodRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(validation.FormatErrors(err)...))
	}

	installment, err := h.accountService.AssignInstallmentPeriod(installmentID, userID, req.Month, req.Year)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewInstallmentResponse(installment))
}
