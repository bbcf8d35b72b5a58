package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInstallmentAlreadyPaid = errors.New("installment is already paid")
	ErrInvalidSequenceNumber  = errors.New("sequence number must be at least 1")
	ErrInvalidInstallmentAmt  = errors.New("installment amount must be positive")
)

// Installment is one scheduled payment of an account's principal.
// ReferenceMonth/ReferenceYear is the budget period the installment counts towards;
// it starts as the due date's month and may be reassigned independently of it.
type Installment struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	AccountID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_installment_account_sequence" json:"account_id"`
	SequenceNumber int        `gorm:"not null;uniqueIndex:idx_installment_account_sequence" json:"sequence_number"`
	DueDate        time.Time  `gorm:"type:date;not null" json:"due_date"`
	Amount         Money      `gorm:"type:bigint;not null" json:"amount"`
	Paid           bool       `gorm:"not null;default:false" json:"paid"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	ReferenceMonth int        `gorm:"not null;index:idx_installment_reference_period" json:"reference_month"`
	ReferenceYear  int        `gorm:"not null;index:idx_installment_reference_period" json:"reference_year"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Installment
func (i *Installment) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	i.DueDate = DateOf(i.DueDate)
	if i.ReferenceMonth == 0 && i.ReferenceYear == 0 {
		i.ReferenceMonth = int(i.DueDate.Month())
		i.ReferenceYear = i.DueDate.Year()
	}

	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	return i.Validate()
}

// Validate validates the installment fields
func (i *Installment) Validate() error {
	if i.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if i.SequenceNumber < 1 {
		return ErrInvalidSequenceNumber
	}

	if i.Amount <= 0 {
		return ErrInvalidInstallmentAmt
	}

	if i.DueDate.IsZero() {
		return errors.New("due date is required")
	}

	if _, err := NewPeriod(i.ReferenceMonth, i.ReferenceYear); err != nil {
		return err
	}

	if i.Paid != (i.PaidAt != nil) {
		return errors.New("paid_at must be set exactly when the installment is paid")
	}

	return nil
}

// MarkPaid flags the installment as paid at the given instant
func (i *Installment) MarkPaid(at time.Time) error {
	if i.Paid {
		return ErrInstallmentAlreadyPaid
	}
	i.Paid = true
	i.PaidAt = &at
	return nil
}

// MarkUnpaid clears the paid flag and timestamp
func (i *Installment) MarkUnpaid() {
	i.Paid = false
	i.PaidAt = nil
}

// ReferencePeriod returns the budget period the installment belongs to
func (i *Installment) ReferencePeriod() Period {
	return Period{Month: i.ReferenceMonth, Year: i.ReferenceYear}
}

// TableName specifies the table name for Installment
func (Installment) TableName() string {
	return "installments"
}
