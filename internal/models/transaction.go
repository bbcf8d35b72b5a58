package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DirectionIncome  = "income"
	DirectionExpense = "expense"

	CategoryInstallment = "installment"
	CategorySettlement  = "settlement"
)

var (
	ErrInvalidDirection = errors.New("invalid transaction direction")
	ErrInvalidAmount    = errors.New("transaction amount must be positive")
)

// Transaction is a dated income or expense of a user. It weakly references the
// account and, for installment settlements, the installment it paid.
type Transaction struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_transaction_user_date" json:"user_id"`
	AccountID     *uuid.UUID `gorm:"type:uuid;index" json:"account_id,omitempty"`
	InstallmentID *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"installment_id,omitempty"`
	Direction     string     `gorm:"type:varchar(10);not null" json:"direction"`
	Amount        Money      `gorm:"type:bigint;not null" json:"amount"`
	Category      string     `gorm:"type:varchar(50)" json:"category,omitempty"`
	Description   string     `gorm:"type:text" json:"description"`
	Date          time.Time  `gorm:"type:date;not null;index:idx_transaction_user_date" json:"date"`
	CreatedAt     time.Time  `gorm:"not null;index" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	t.Date = DateOf(t.Date)

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidDirection(t.Direction) {
		return ErrInvalidDirection
	}

	if t.Amount <= 0 {
		return ErrInvalidAmount
	}

	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}

	if t.InstallmentID != nil && t.AccountID == nil {
		return errors.New("installment settlement must reference its account")
	}

	return nil
}

// IsSettlement reports whether the transaction was recorded by paying an
// installment or settling an account. The category outlives the installment
// link, which is cleared when the account is deleted.
func (t *Transaction) IsSettlement() bool {
	return t.InstallmentID != nil || t.Category == CategorySettlement || t.Category == CategoryInstallment
}

// IsValidDirection checks if the transaction direction is valid
func IsValidDirection(direction string) bool {
	return direction == DirectionIncome || direction == DirectionExpense
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
