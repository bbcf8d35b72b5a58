package services

import (
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

type monthlyAggregator struct {
	transactionRepo repositories.TransactionRepositoryInterface
	installmentRepo repositories.InstallmentRepositoryInterface
}

// NewMonthlyAggregator creates the aggregator over transactions and installments
func NewMonthlyAggregator(
	transactionRepo repositories.TransactionRepositoryInterface,
	installmentRepo repositories.InstallmentRepositoryInterface,
) MonthlyAggregatorInterface {
	return &monthlyAggregator{
		transactionRepo: transactionRepo,
		installmentRepo: installmentRepo,
	}
}

// Aggregate sums the user's transactions dated inside the month and the unpaid
// installments budgeted to it. Storage failures yield an *AggregationError and
// no partial result.
func (a *monthlyAggregator) Aggregate(userID uuid.UUID, month, year int) (*models.AggregationResult, error) {
	period, err := models.NewPeriod(month, year)
	if err != nil {
		return nil, periodError(err)
	}

	start, end := period.DateRange()
	totals, err := a.transactionRepo.GetTotalsByDateRange(userID, start, end)
	if err != nil {
		return nil, &AggregationError{UserID: userID, Month: month, Year: year, Err: err}
	}

	billsToPay, billsCount, err := a.installmentRepo.GetUnpaidTotalsByReferencePeriod(userID, month, year)
	if err != nil {
		return nil, &AggregationError{UserID: userID, Month: month, Year: year, Err: err}
	}

	return &models.AggregationResult{
		TotalIncome:     totals.Income,
		TotalExpenses:   totals.Expenses,
		TotalBalance:    totals.Income - totals.Expenses,
		TotalBillsToPay: billsToPay,
		BillsCount:      billsCount,
	}, nil
}

func periodError(err error) error {
	if err == models.ErrInvalidMonth {
		return invalid("month", "must be between 1 and 12")
	}
	return invalid("year", "must be positive")
}
