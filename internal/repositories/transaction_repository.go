package repositories

import (
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

const (
	defaultTransactionLimit = 50
	maxTransactionLimit     = 200
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrInstallmentAlreadySettled
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByIDForUser retrieves a transaction by ID, scoped to its owner
func (r *transactionRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetWithFilters retrieves a user's transactions matching the filters, newest first, with the total match count
func (r *transactionRepository) GetWithFilters(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).Where("user_id = ?", userID)

	if filters.AccountID != nil {
		query = query.Where("account_id = ?", *filters.AccountID)
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", dateParam(*filters.StartDate))
	}
	if filters.EndDate != nil {
		query = query.Where("date < ?", dateParam(filters.EndDate.AddDate(0, 0, 1)))
	}
	if filters.Direction != "" {
		query = query.Where("direction = ?", filters.Direction)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	if limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}

	if err := query.Order("date DESC, created_at DESC").
		Offset(filters.Offset).Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// GetTotalsByDateRange sums a user's income and expenses dated within [startDate, endDate]
func (r *transactionRepository) GetTotalsByDateRange(userID uuid.UUID, startDate, endDate time.Time) (*models.TransactionTotals, error) {
	var rows []struct {
		Direction string
		Total     int64
	}

	if err := r.db.Model(&models.Transaction{}).
		Select("direction, CAST(COALESCE(SUM(amount), 0) AS BIGINT) AS total").
		Where("user_id = ? AND date >= ? AND date < ?", userID, dateParam(startDate), dateParam(endDate.AddDate(0, 0, 1))).
		Group("direction").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}

	totals := &models.TransactionTotals{}
	for _, row := range rows {
		switch row.Direction {
		case models.DirectionIncome:
			totals.Income = models.Money(row.Total)
		case models.DirectionExpense:
			totals.Expenses = models.Money(row.Total)
		}
	}

	return totals, nil
}

// Update saves all fields of a transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}
	transaction.Date = models.DateOf(transaction.Date)
	if err := r.db.Save(transaction).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// Delete removes a transaction
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Transaction{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
