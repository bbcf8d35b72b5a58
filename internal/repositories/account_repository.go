package repositories

import (
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrAccountAlreadySettled  = errors.New("account is already settled")
	ErrInsufficientSettlement = errors.New("payment amount does not cover the outstanding balance")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByIDForUser retrieves an account by ID, scoped to its owner
func (r *accountRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetByUserID retrieves all accounts for a user
func (r *accountRepository) GetByUserID(userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for user: %w", err)
	}
	return accounts, nil
}

// Delete removes an account and its installments. Transactions survive with their
// account and installment references cleared.
func (r *accountRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		installmentIDs := tx.Model(&models.Installment{}).Select("id").Where("account_id = ?", id)
		if err := tx.Model(&models.Transaction{}).
			Where("account_id = ? OR installment_id IN (?)", id, installmentIDs).
			Updates(map[string]interface{}{"account_id": nil, "installment_id": nil}).Error; err != nil {
			return fmt.Errorf("failed to detach transactions: %w", err)
		}

		if err := tx.Where("account_id = ?", id).Delete(&models.Installment{}).Error; err != nil {
			return fmt.Errorf("failed to delete installments: %w", err)
		}

		result := tx.Delete(&models.Account{ID: id})
		if result.Error != nil {
			return fmt.Errorf("failed to delete account: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAccountNotFound
		}
		return nil
	})
}

// ExecuteAtomicSettlement pays off an account in one database transaction: every unpaid
// installment is marked paid at settledAt, the account is flagged settled and a single
// expense transaction for paymentAmount is recorded against it.
func (r *accountRepository) ExecuteAtomicSettlement(accountID, userID uuid.UUID, paymentAmount models.Money, settledAt time.Time) (*models.Account, *models.Transaction, error) {
	var account models.Account
	var settlementTx *models.Transaction

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", accountID, userID).
			First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to lock account: %w", err)
		}

		if account.Settled {
			return ErrAccountAlreadySettled
		}

		var installments []models.Installment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account_id = ?", accountID).
			Find(&installments).Error; err != nil {
			return fmt.Errorf("failed to lock installments: %w", err)
		}

		if paymentAmount < outstandingAmount(&account, installments) {
			return ErrInsufficientSettlement
		}

		if err := tx.Model(&models.Installment{}).
			Where("account_id = ? AND paid = ?", accountID, false).
			Updates(map[string]interface{}{"paid": true, "paid_at": settledAt, "updated_at": settledAt}).Error; err != nil {
			return fmt.Errorf("failed to mark installments paid: %w", err)
		}

		if err := account.MarkSettled(settledAt); err != nil {
			return ErrAccountAlreadySettled
		}
		account.UpdatedAt = settledAt
		if err := tx.Model(&account).
			Updates(map[string]interface{}{"settled": true, "settled_at": settledAt, "updated_at": settledAt}).Error; err != nil {
			return fmt.Errorf("failed to flag account settled: %w", err)
		}

		settlementTx = &models.Transaction{
			UserID:      userID,
			AccountID:   &account.ID,
			Direction:   models.DirectionExpense,
			Amount:      paymentAmount,
			Category:    models.CategorySettlement,
			Description: fmt.Sprintf("Settlement of %s", account.Name),
			Date:        models.DateOf(settledAt),
		}
		if err := tx.Create(settlementTx).Error; err != nil {
			return fmt.Errorf("failed to create settlement transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &account, settlementTx, nil
}

// outstandingAmount is what must be paid to settle the account: the unpaid installments
// when a schedule exists, otherwise the principal
func outstandingAmount(account *models.Account, installments []models.Installment) models.Money {
	if len(installments) == 0 {
		if account.Principal != nil {
			return *account.Principal
		}
		return 0
	}

	var outstanding models.Money
	for _, inst := range installments {
		if !inst.Paid {
			outstanding += inst.Amount
		}
	}
	return outstanding
}
