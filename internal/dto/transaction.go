package dto

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// TransactionRequest represents the request payload for creating or updating a transaction
type TransactionRequest struct {
	AccountID   *uuid.UUID   `json:"accountId,omitempty"`
	Direction   string       `json:"direction" validate:"required,transaction_direction"`
	Amount      models.Money `json:"amount" validate:"positive_amount"`
	Category    string       `json:"category,omitempty" validate:"max=50"`
	Description string       `json:"description" validate:"max=255"`
	Date        string       `json:"date,omitempty"`
}

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	AccountID string `query:"accountId"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Direction string `query:"direction"`
	Category  string `query:"category"`
}

// PaginationParams contains pagination parameters
type PaginationParams struct {
	Offset int `query:"offset"`
	Limit  int `query:"limit"`
}

// TransactionResponse represents a single transaction in API responses
type TransactionResponse struct {
	ID            uuid.UUID    `json:"id"`
	AccountID     *uuid.UUID   `json:"accountId,omitempty"`
	InstallmentID *uuid.UUID   `json:"installmentId,omitempty"`
	Direction     string       `json:"direction"`
	Amount        models.Money `json:"amount"`
	AmountDisplay string       `json:"amountDisplay"`
	Category      string       `json:"category,omitempty"`
	Description   string       `json:"description"`
	Date          string       `json:"date"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	HasMore bool  `json:"hasMore"`
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// NewTransactionResponse maps a transaction model to its API representation
func NewTransactionResponse(tx *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		AccountID:     tx.AccountID,
		InstallmentID: tx.InstallmentID,
		Direction:     tx.Direction,
		Amount:        tx.Amount,
		AmountDisplay: tx.Amount.String(),
		Category:      tx.Category,
		Description:   tx.Description,
		Date:          tx.Date.Format(DateLayout),
		CreatedAt:     tx.CreatedAt,
	}
}

// NewListTransactionsResponse maps a page of transactions
func NewListTransactionsResponse(transactions []models.Transaction, total int64, offset, limit int) ListTransactionsResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, NewTransactionResponse(&transactions[i]))
	}
	return ListTransactionsResponse{
		Transactions: items,
		Pagination: PaginationInfo{
			HasMore: int64(offset+len(items)) < total,
			Offset:  offset,
			Limit:   limit,
			Total:   total,
		},
	}
}
