package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FinancialStatus is the health label derived from a month's totals
type FinancialStatus string

const (
	StatusExcellent FinancialStatus = "EXCELLENT"
	StatusGood      FinancialStatus = "GOOD"
	StatusWarning   FinancialStatus = "WARNING"
	StatusCritical  FinancialStatus = "CRITICAL"
)

// IsValid checks if the status is one of the known labels
func (s FinancialStatus) IsValid() bool {
	switch s {
	case StatusExcellent, StatusGood, StatusWarning, StatusCritical:
		return true
	default:
		return false
	}
}

// MonthlySummary is the persisted, re-derivable aggregate of one user's month
type MonthlySummary struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_summary_user_period" json:"user_id"`
	ReferenceMonth   int             `gorm:"not null;uniqueIndex:idx_summary_user_period" json:"reference_month"`
	ReferenceYear    int             `gorm:"not null;uniqueIndex:idx_summary_user_period" json:"reference_year"`
	TotalIncome      Money           `gorm:"type:bigint;not null;default:0" json:"total_income"`
	TotalExpenses    Money           `gorm:"type:bigint;not null;default:0" json:"total_expenses"`
	TotalBalance     Money           `gorm:"type:bigint;not null;default:0" json:"total_balance"`
	TotalBillsToPay  Money           `gorm:"type:bigint;not null;default:0" json:"total_bills_to_pay"`
	BillsCount       int             `gorm:"not null;default:0" json:"bills_count"`
	Status           FinancialStatus `gorm:"type:varchar(10);not null" json:"status"`
	LastCalculatedAt time.Time       `gorm:"not null" json:"last_calculated_at"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for MonthlySummary
func (m *MonthlySummary) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}

	return m.Validate()
}

// Validate validates the summary fields
func (m *MonthlySummary) Validate() error {
	if m.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if _, err := NewPeriod(m.ReferenceMonth, m.ReferenceYear); err != nil {
		return err
	}

	if !m.Status.IsValid() {
		return errors.New("invalid financial status")
	}

	if m.TotalBalance != m.TotalIncome-m.TotalExpenses {
		return errors.New("total balance must equal income minus expenses")
	}

	return nil
}

// Period returns the summary's reference period
func (m *MonthlySummary) Period() Period {
	return Period{Month: m.ReferenceMonth, Year: m.ReferenceYear}
}

// Apply copies freshly aggregated totals and status into the summary
func (m *MonthlySummary) Apply(result *AggregationResult, status FinancialStatus, calculatedAt time.Time) {
	m.TotalIncome = result.TotalIncome
	m.TotalExpenses = result.TotalExpenses
	m.TotalBalance = result.TotalBalance
	m.TotalBillsToPay = result.TotalBillsToPay
	m.BillsCount = result.BillsCount
	m.Status = status
	m.LastCalculatedAt = calculatedAt
}

// TableName specifies the table name for MonthlySummary
func (MonthlySummary) TableName() string {
	return "monthly_summaries"
}

// AggregationResult holds the derived totals of one user's month
type AggregationResult struct {
	TotalIncome     Money `json:"total_income"`
	TotalExpenses   Money `json:"total_expenses"`
	TotalBalance    Money `json:"total_balance"`
	TotalBillsToPay Money `json:"total_bills_to_pay"`
	BillsCount      int   `json:"bills_count"`
}

// RecalculationResult reports the outcome of recomputing all stored summaries of a user
type RecalculationResult struct {
	Total        int `json:"total"`
	Recalculated int `json:"recalculated"`
	Failed       int `json:"failed"`
}

// InstallmentSettlement is the paid installment together with the expense transaction recorded for it
type InstallmentSettlement struct {
	Installment *Installment `json:"installment"`
	Transaction *Transaction `json:"transaction"`
}
