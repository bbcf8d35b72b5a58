package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AccountKindRecurringFixed = "recurring_fixed"
	AccountKindLoan           = "loan"
	AccountKindCreditCard     = "credit_card"
	AccountKindSubscription   = "subscription"
	AccountKindOther          = "other"

	MinDueDay = 1
	MaxDueDay = 31
)

var (
	ErrInvalidAccountKind      = errors.New("invalid account kind")
	ErrInvalidDueDay           = errors.New("due day must be between 1 and 31")
	ErrInvalidPrincipal        = errors.New("principal must be positive")
	ErrInvalidInstallmentCount = errors.New("installment count must be at least 1")
)

// Account is a user-owned bill, loan, card or subscription that may carry an installment schedule
type Account struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name             string     `gorm:"type:varchar(120);not null" json:"name"`
	Kind             string     `gorm:"type:varchar(20);not null" json:"kind"`
	Principal        *Money     `gorm:"type:bigint" json:"principal,omitempty"`
	InstallmentCount *int       `json:"installment_count,omitempty"`
	StartDate        time.Time  `gorm:"type:date;not null" json:"start_date"`
	DueDay           int        `gorm:"not null" json:"due_day"`
	Settled          bool       `gorm:"not null;default:false" json:"settled"`
	SettledAt        *time.Time `json:"settled_at,omitempty"`
	CreatedAt        time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"not null" json:"updated_at"`
}

// InstallmentPlan is the input an installment schedule is derived from
type InstallmentPlan struct {
	Principal Money
	Count     int
	StartDate time.Time
	DueDay    int
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Kind == "" {
		a.Kind = AccountKindOther
	}

	a.StartDate = DateOf(a.StartDate)

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if a.Name == "" {
		return errors.New("account name is required")
	}

	if !IsValidAccountKind(a.Kind) {
		return ErrInvalidAccountKind
	}

	if a.DueDay < MinDueDay || a.DueDay > MaxDueDay {
		return ErrInvalidDueDay
	}

	if a.Principal != nil && *a.Principal <= 0 {
		return ErrInvalidPrincipal
	}

	if a.InstallmentCount != nil && *a.InstallmentCount < 1 {
		return ErrInvalidInstallmentCount
	}

	if a.StartDate.IsZero() {
		return errors.New("start date is required")
	}

	return nil
}

// HasInstallmentPlan reports whether both principal and installment count are set,
// which is what an installment schedule is derived from
func (a *Account) HasInstallmentPlan() bool {
	return a.Principal != nil && a.InstallmentCount != nil
}

// MarkSettled flags the account as fully paid off
func (a *Account) MarkSettled(at time.Time) error {
	if a.Settled {
		return errors.New("account is already settled")
	}
	a.Settled = true
	a.SettledAt = &at
	return nil
}

// IsValidAccountKind checks if the account kind is valid
func IsValidAccountKind(kind string) bool {
	switch kind {
	case AccountKindRecurringFixed, AccountKindLoan, AccountKindCreditCard,
		AccountKindSubscription, AccountKindOther:
		return true
	default:
		return false
	}
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
