package dto

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// AssignPeriodRequest moves an installment to another budget period
type AssignPeriodRequest struct {
	Month int `json:"month" validate:"min=1,max=12"`
	Year  int `json:"year" validate:"min=1"`
}

// InstallmentResponse represents a single installment in API responses
type InstallmentResponse struct {
	ID             uuid.UUID    `json:"id"`
	AccountID      uuid.UUID    `json:"accountId"`
	SequenceNumber int          `json:"sequenceNumber"`
	DueDate        string       `json:"dueDate"`
	Amount         models.Money `json:"amount"`
	AmountDisplay  string       `json:"amountDisplay"`
	Paid           bool         `json:"paid"`
	PaidAt         *time.Time   `json:"paidAt,omitempty"`
	ReferenceMonth int          `json:"referenceMonth"`
	ReferenceYear  int          `json:"referenceYear"`
}

// InstallmentListResponse represents the schedule of an account
type InstallmentListResponse struct {
	Installments []InstallmentResponse `json:"installments"`
	Total        int                   `json:"total"`
	TotalAmount  models.Money          `json:"totalAmount"`
}

// InstallmentPaymentResponse is returned after paying an installment
type InstallmentPaymentResponse struct {
	Installment InstallmentResponse `json:"installment"`
	Transaction TransactionResponse `json:"transaction"`
}

// NewInstallmentResponse maps an installment model to its API representation
func NewInstallmentResponse(inst *models.Installment) InstallmentResponse {
	return InstallmentResponse{
		ID:             inst.ID,
		AccountID:      inst.AccountID,
		SequenceNumber: inst.SequenceNumber,
		DueDate:        inst.DueDate.Format(DateLayout),
		Amount:         inst.Amount,
		AmountDisplay:  inst.Amount.String(),
		Paid:           inst.Paid,
		PaidAt:         inst.PaidAt,
		ReferenceMonth: inst.ReferenceMonth,
		ReferenceYear:  inst.ReferenceYear,
	}
}

// NewInstallmentListResponse maps a schedule and totals its amounts
func NewInstallmentListResponse(installments []models.Installment) InstallmentListResponse {
	items := make([]InstallmentResponse, 0, len(installments))
	var total models.Money
	for i := range installments {
		items = append(items, NewInstallmentResponse(&installments[i]))
		total += installments[i].Amount
	}
	return InstallmentListResponse{Installments: items, Total: len(items), TotalAmount: total}
}

// NewInstallmentPaymentResponse maps a settled installment and its expense
func NewInstallmentPaymentResponse(settlement *models.InstallmentSettlement) InstallmentPaymentResponse {
	return InstallmentPaymentResponse{
		Installment: NewInstallmentResponse(settlement.Installment),
		Transaction: NewTransactionResponse(settlement.Transaction),
	}
}
