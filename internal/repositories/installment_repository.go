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
	ErrInstallmentNotFound       = errors.New("installment not found")
	ErrInstallmentAlreadyPaid    = errors.New("installment is already paid")
	ErrInstallmentAlreadySettled = errors.New("installment already has a settlement transaction")
	ErrInstallmentsAlreadyExist  = errors.New("account already has installments")
)

type installmentRepository struct {
	db *gorm.DB
}

// NewInstallmentRepository creates a new installment repository
func NewInstallmentRepository(db *gorm.DB) InstallmentRepositoryInterface {
	return &installmentRepository{
		db: db,
	}
}

// ExecuteAtomicSchedule records the plan on the account and inserts its installments.
// An account's schedule is written once; a second attempt fails with ErrInstallmentsAlreadyExist.
func (r *installmentRepository) ExecuteAtomicSchedule(accountID, userID uuid.UUID, plan models.InstallmentPlan, installments []models.Installment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var account models.Account
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

		var existing int64
		if err := tx.Model(&models.Installment{}).Where("account_id = ?", accountID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to count installments: %w", err)
		}
		if existing > 0 {
			return ErrInstallmentsAlreadyExist
		}

		if err := tx.Model(&account).Updates(map[string]interface{}{
			"principal":         plan.Principal,
			"installment_count": plan.Count,
			"start_date":        models.DateOf(plan.StartDate),
			"due_day":           plan.DueDay,
		}).Error; err != nil {
			return fmt.Errorf("failed to record installment plan: %w", err)
		}

		for i := range installments {
			installments[i].AccountID = accountID
		}
		if err := tx.Create(&installments).Error; err != nil {
			if isDuplicateKeyError(err) {
				return ErrInstallmentsAlreadyExist
			}
			return fmt.Errorf("failed to create installments: %w", err)
		}

		return nil
	})
}

// GetByAccountID retrieves the installments of an account in sequence order
func (r *installmentRepository) GetByAccountID(accountID uuid.UUID) ([]models.Installment, error) {
	var installments []models.Installment
	if err := r.db.Where("account_id = ?", accountID).
		Order("sequence_number ASC").Find(&installments).Error; err != nil {
		return nil, fmt.Errorf("failed to get installments for account: %w", err)
	}
	return installments, nil
}

// GetUnpaidTotalsByReferencePeriod sums the user's unpaid installments budgeted to the period
// and counts the distinct accounts they belong to
func (r *installmentRepository) GetUnpaidTotalsByReferencePeriod(userID uuid.UUID, month, year int) (models.Money, int, error) {
	var row struct {
		Total    int64
		Accounts int64
	}

	if err := r.db.Model(&models.Installment{}).
		Select("CAST(COALESCE(SUM(amount), 0) AS BIGINT) AS total, COUNT(DISTINCT account_id) AS accounts").
		Where("paid = ? AND reference_month = ? AND reference_year = ?", false, month, year).
		Where("account_id IN (?)", ownedAccountIDs(r.db, userID)).
		Scan(&row).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to sum unpaid installments: %w", err)
	}

	return models.Money(row.Total), int(row.Accounts), nil
}

// ExecuteAtomicPayment marks an installment paid and records its settlement transaction
// under row locks on the account and the installment, so an installment is settled at
// most once. Installments of a settled account are covered by the settlement and
// cannot be paid again.
func (r *installmentRepository) ExecuteAtomicPayment(installmentID, userID uuid.UUID, paidAt time.Time) (*models.InstallmentSettlement, error) {
	var settlement *models.InstallmentSettlement

	err := r.db.Transaction(func(tx *gorm.DB) error {
		inst, account, err := lockInstallmentForUpdate(tx, installmentID, userID)
		if err != nil {
			return err
		}

		if inst.Paid {
			return ErrInstallmentAlreadyPaid
		}

		var linked int64
		if err := tx.Model(&models.Transaction{}).Where("installment_id = ?", installmentID).
			Count(&linked).Error; err != nil {
			return fmt.Errorf("failed to check settlement transaction: %w", err)
		}
		if linked > 0 {
			return ErrInstallmentAlreadySettled
		}

		if err := inst.MarkPaid(paidAt); err != nil {
			return ErrInstallmentAlreadyPaid
		}
		inst.UpdatedAt = paidAt
		if err := tx.Model(inst).
			Updates(map[string]interface{}{"paid": true, "paid_at": paidAt, "updated_at": paidAt}).Error; err != nil {
			return fmt.Errorf("failed to mark installment paid: %w", err)
		}

		transaction := &models.Transaction{
			UserID:        userID,
			AccountID:     &inst.AccountID,
			InstallmentID: &inst.ID,
			Direction:     models.DirectionExpense,
			Amount:        inst.Amount,
			Category:      models.CategoryInstallment,
			Description:   installmentDescription(account, inst),
			Date:          models.DateOf(paidAt),
		}
		if err := tx.Create(transaction).Error; err != nil {
			if isDuplicateKeyError(err) {
				return ErrInstallmentAlreadySettled
			}
			return fmt.Errorf("failed to create settlement transaction: %w", err)
		}

		settlement = &models.InstallmentSettlement{Installment: inst, Transaction: transaction}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return settlement, nil
}

// MarkUnpaid clears the paid state of an installment. Its settlement transaction is kept.
// Installments of a settled account stay paid.
func (r *installmentRepository) MarkUnpaid(installmentID, userID uuid.UUID) (*models.Installment, error) {
	var inst *models.Installment

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		inst, _, err = lockInstallmentForUpdate(tx, installmentID, userID)
		if err != nil {
			return err
		}

		if !inst.Paid {
			return nil
		}

		now := time.Now().UTC()
		if err := tx.Model(inst).
			Updates(map[string]interface{}{"paid": false, "paid_at": nil, "updated_at": now}).Error; err != nil {
			return fmt.Errorf("failed to mark installment unpaid: %w", err)
		}
		inst.MarkUnpaid()
		inst.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	return inst, nil
}

// UpdateReferencePeriod moves an installment to another budget period without touching its due date
func (r *installmentRepository) UpdateReferencePeriod(installmentID, userID uuid.UUID, month, year int) (*models.Installment, error) {
	inst, err := findOwnedInstallment(r.db, installmentID, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := r.db.Model(inst).Updates(map[string]interface{}{
		"reference_month": month,
		"reference_year":  year,
		"updated_at":      now,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update reference period: %w", err)
	}
	inst.ReferenceMonth = month
	inst.ReferenceYear = year
	inst.UpdatedAt = now

	return inst, nil
}

// lockInstallmentForUpdate locks the owning account before the installment, in the
// same order as account settlement, and refuses installments of settled accounts
func lockInstallmentForUpdate(tx *gorm.DB, installmentID, userID uuid.UUID) (*models.Installment, *models.Account, error) {
	owned, err := findOwnedInstallment(tx, installmentID, userID)
	if err != nil {
		return nil, nil, err
	}

	var account models.Account
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", owned.AccountID).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInstallmentNotFound
		}
		return nil, nil, fmt.Errorf("failed to lock account: %w", err)
	}
	if account.Settled {
		return nil, nil, ErrAccountAlreadySettled
	}

	inst, err := findOwnedInstallment(tx.Clauses(clause.Locking{Strength: "UPDATE"}), installmentID, userID)
	if err != nil {
		return nil, nil, err
	}
	return inst, &account, nil
}

func findOwnedInstallment(db *gorm.DB, id, userID uuid.UUID) (*models.Installment, error) {
	var inst models.Installment
	if err := db.Where("id = ? AND account_id IN (?)", id, ownedAccountIDs(db.Session(&gorm.Session{NewDB: true}), userID)).
		First(&inst).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstallmentNotFound
		}
		return nil, fmt.Errorf("failed to get installment: %w", err)
	}
	return &inst, nil
}

func installmentDescription(account *models.Account, inst *models.Installment) string {
	if account.InstallmentCount != nil {
		return fmt.Sprintf("%s installment %d/%d", account.Name, inst.SequenceNumber, *account.InstallmentCount)
	}
	return fmt.Sprintf("%s installment %d", account.Name, inst.SequenceNumber)
}
