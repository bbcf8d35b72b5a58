package repositories

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Delete(id uuid.UUID) error
}

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByIDForUser(id, userID uuid.UUID) (*models.Account, error)
	GetByUserID(userID uuid.UUID) ([]models.Account, error)
	Delete(id uuid.UUID) error
	ExecuteAtomicSettlement(accountID, userID uuid.UUID, paymentAmount models.Money, settledAt time.Time) (*models.Account, *models.Transaction, error)
}

// InstallmentRepositoryInterface defines the contract for installment repository operations
type InstallmentRepositoryInterface interface {
	ExecuteAtomicSchedule(accountID, userID uuid.UUID, plan models.InstallmentPlan, installments []models.Installment) error
	GetByAccountID(accountID uuid.UUID) ([]models.Installment, error)
	GetUnpaidTotalsByReferencePeriod(userID uuid.UUID, month, year int) (total models.Money, accountCount int, err error)
	ExecuteAtomicPayment(installmentID, userID uuid.UUID, paidAt time.Time) (*models.InstallmentSettlement, error)
	MarkUnpaid(installmentID, userID uuid.UUID) (*models.Installment, error)
	UpdateReferencePeriod(installmentID, userID uuid.UUID, month, year int) (*models.Installment, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByIDForUser(id, userID uuid.UUID) (*models.Transaction, error)
	GetWithFilters(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetTotalsByDateRange(userID uuid.UUID, startDate, endDate time.Time) (*models.TransactionTotals, error)
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
}

// MonthlySummaryRepositoryInterface defines the contract for monthly summary repository operations
type MonthlySummaryRepositoryInterface interface {
	GetByPeriod(userID uuid.UUID, month, year int) (*models.MonthlySummary, error)
	GetByUserID(userID uuid.UUID) ([]models.MonthlySummary, error)
	Create(summary *models.MonthlySummary) error
	Update(summary *models.MonthlySummary) error
}
