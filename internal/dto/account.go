package dto

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used in request and response bodies
const DateLayout = "2006-01-02"

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating a new account.
// Principal and InstallmentCount together make the account carry an installment schedule.
type CreateAccountRequest struct {
	Name             string        `json:"name" validate:"required,max=120"`
	Kind             string        `json:"kind" validate:"account_kind"`
	Principal        *models.Money `json:"principal,omitempty" validate:"omitempty,positive_amount"`
	InstallmentCount *int          `json:"installmentCount,omitempty" validate:"omitempty,min=1,max=600"`
	StartDate        string        `json:"startDate,omitempty"`
	DueDay           int           `json:"dueDay" validate:"due_day"`
}

// ScheduleInstallmentsRequest represents the request payload for generating an installment schedule
type ScheduleInstallmentsRequest struct {
	Principal        models.Money `json:"principal" validate:"positive_amount"`
	InstallmentCount int          `json:"installmentCount" validate:"min=1,max=600"`
	StartDate        string       `json:"startDate" validate:"required"`
	DueDay           int          `json:"dueDay" validate:"due_day"`
}

// SettleAccountRequest represents the request payload for paying off an account in one go
type SettleAccountRequest struct {
	PaymentAmount models.Money `json:"paymentAmount" validate:"positive_amount"`
}

// Account Response DTOs

// AccountResponse represents a single account in API responses
type AccountResponse struct {
	ID               uuid.UUID     `json:"id"`
	Name             string        `json:"name"`
	Kind             string        `json:"kind"`
	Principal        *models.Money `json:"principal,omitempty"`
	PrincipalDisplay string        `json:"principalDisplay,omitempty"`
	InstallmentCount *int          `json:"installmentCount,omitempty"`
	StartDate        string        `json:"startDate"`
	DueDay           int           `json:"dueDay"`
	Settled          bool          `json:"settled"`
	SettledAt        *time.Time    `json:"settledAt,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// AccountListResponse represents the accounts of a user
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// NewAccountResponse maps an account model to its API representation
func NewAccountResponse(account *models.Account) AccountResponse {
	resp := AccountResponse{
		ID:               account.ID,
		Name:             account.Name,
		Kind:             account.Kind,
		Principal:        account.Principal,
		InstallmentCount: account.InstallmentCount,
		StartDate:        account.StartDate.Format(DateLayout),
		DueDay:           account.DueDay,
		Settled:          account.Settled,
		SettledAt:        account.SettledAt,
		CreatedAt:        account.CreatedAt,
	}
	if account.Principal != nil {
		resp.PrincipalDisplay = account.Principal.String()
	}
	return resp
}

// NewAccountListResponse maps a list of accounts
func NewAccountListResponse(accounts []models.Account) AccountListResponse {
	items := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, NewAccountResponse(&accounts[i]))
	}
	return AccountListResponse{Accounts: items, Total: len(items)}
}
