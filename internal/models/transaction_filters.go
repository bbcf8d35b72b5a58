package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	AccountID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Direction string
	Category  string
	Offset    int
	Limit     int
}

// TransactionTotals holds the income and expense sums of a date range
type TransactionTotals struct {
	Income   Money
	Expenses Money
}
