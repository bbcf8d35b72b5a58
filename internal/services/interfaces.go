package services

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// InstallmentSchedulerInterface derives and persists installment schedules
type InstallmentSchedulerInterface interface {
	ScheduleInstallments(accountID, userID uuid.UUID, principal models.Money, count int, startDate time.Time, dueDay int) ([]models.Installment, error)
}

// PaymentLedgerInterface records installment payments and account settlements
type PaymentLedgerInterface interface {
	MarkInstallmentPaid(installmentID, userID uuid.UUID) (*models.InstallmentSettlement, error)
	MarkInstallmentUnpaid(installmentID, userID uuid.UUID) (*models.Installment, error)
	SettleAccount(accountID, userID uuid.UUID, paymentAmount models.Money) (*models.Account, error)
}

// MonthlyAggregatorInterface derives the totals of one user's month from stored records
type MonthlyAggregatorInterface interface {
	Aggregate(userID uuid.UUID, month, year int) (*models.AggregationResult, error)
}

// SummaryServiceInterface serves and refreshes persisted monthly summaries
type SummaryServiceInterface interface {
	GetMonthlySummary(userID uuid.UUID, month, year int, forceRecalculate bool) (*models.MonthlySummary, error)
	RecalculateAllSummaries(userID uuid.UUID) (*models.RecalculationResult, error)
	ListMonthlySummaries(userID uuid.UUID) ([]models.MonthlySummary, error)
}

// AccountServiceInterface defines account-related business operations
type AccountServiceInterface interface {
	CreateAccount(userID uuid.UUID, input CreateAccountInput) (*models.Account, error)
	GetAccount(accountID, userID uuid.UUID) (*models.Account, error)
	ListAccounts(userID uuid.UUID) ([]models.Account, error)
	ListInstallments(accountID, userID uuid.UUID) ([]models.Installment, error)
	DeleteAccount(accountID, userID uuid.UUID) error
	AssignInstallmentPeriod(installmentID, userID uuid.UUID, month, year int) (*models.Installment, error)
}

// TransactionServiceInterface defines ad-hoc income and expense bookkeeping
type TransactionServiceInterface interface {
	CreateTransaction(userID uuid.UUID, input TransactionInput) (*models.Transaction, error)
	GetTransaction(transactionID, userID uuid.UUID) (*models.Transaction, error)
	ListTransactions(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	UpdateTransaction(transactionID, userID uuid.UUID, input TransactionInput) (*models.Transaction, error)
	DeleteTransaction(transactionID, userID uuid.UUID) error
}

// UserServiceInterface provisions and removes the owner rows everything else hangs off
type UserServiceInterface interface {
	EnsureUser(userID uuid.UUID, email, displayName string) (*models.User, error)
	GetUser(userID uuid.UUID) (*models.User, error)
	DeleteUser(userID uuid.UUID) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// CreateAccountInput carries the fields of a new account. Principal and
// InstallmentCount together describe an installment plan.
type CreateAccountInput struct {
	Name             string
	Kind             string
	Principal        *models.Money
	InstallmentCount *int
	StartDate        time.Time
	DueDay           int
}

// TransactionInput carries the user-editable fields of a transaction
type TransactionInput struct {
	AccountID   *uuid.UUID
	Direction   string
	Amount      models.Money
	Category    string
	Description string
	Date        time.Time
}
