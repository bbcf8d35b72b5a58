package dto

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlySummaryResponse represents a month's totals in API responses.
// Amounts are minor units; the *Display fields carry the same values in major units.
type MonthlySummaryResponse struct {
	ID                     uuid.UUID              `json:"id"`
	Month                  int                    `json:"month"`
	Year                   int                    `json:"year"`
	TotalIncome            models.Money           `json:"totalIncome"`
	TotalExpenses          models.Money           `json:"totalExpenses"`
	TotalBalance           models.Money           `json:"totalBalance"`
	TotalBillsToPay        models.Money           `json:"totalBillsToPay"`
	BillsCount             int                    `json:"billsCount"`
	Status                 models.FinancialStatus `json:"status"`
	BillsRatio             string                 `json:"billsRatio"`
	TotalIncomeDisplay     string                 `json:"totalIncomeDisplay"`
	TotalExpensesDisplay   string                 `json:"totalExpensesDisplay"`
	TotalBalanceDisplay    string                 `json:"totalBalanceDisplay"`
	TotalBillsToPayDisplay string                 `json:"totalBillsToPayDisplay"`
	LastCalculatedAt       time.Time              `json:"lastCalculatedAt"`
}

// MonthlySummaryListResponse lists the stored summaries of a user, newest first
type MonthlySummaryListResponse struct {
	Summaries []MonthlySummaryResponse `json:"summaries"`
	Total     int                      `json:"total"`
}

// RecalculationResponse reports a bulk recalculation
type RecalculationResponse struct {
	Total        int `json:"total"`
	Recalculated int `json:"recalculated"`
	Failed       int `json:"failed"`
}

// NewMonthlySummaryResponse maps a summary model to its API representation
func NewMonthlySummaryResponse(summary *models.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		ID:                     summary.ID,
		Month:                  summary.ReferenceMonth,
		Year:                   summary.ReferenceYear,
		TotalIncome:            summary.TotalIncome,
		TotalExpenses:          summary.TotalExpenses,
		TotalBalance:           summary.TotalBalance,
		TotalBillsToPay:        summary.TotalBillsToPay,
		BillsCount:             summary.BillsCount,
		Status:                 summary.Status,
		BillsRatio:             billsRatio(summary.TotalBillsToPay, summary.TotalIncome).StringFixed(2),
		TotalIncomeDisplay:     summary.TotalIncome.String(),
		TotalExpensesDisplay:   summary.TotalExpenses.String(),
		TotalBalanceDisplay:    summary.TotalBalance.String(),
		TotalBillsToPayDisplay: summary.TotalBillsToPay.String(),
		LastCalculatedAt:       summary.LastCalculatedAt,
	}
}

// NewMonthlySummaryListResponse maps a list of summaries
func NewMonthlySummaryListResponse(summaries []models.MonthlySummary) MonthlySummaryListResponse {
	items := make([]MonthlySummaryResponse, 0, len(summaries))
	for i := range summaries {
		items = append(items, NewMonthlySummaryResponse(&summaries[i]))
	}
	return MonthlySummaryListResponse{Summaries: items, Total: len(items)}
}

// NewRecalculationResponse maps a bulk recalculation result
func NewRecalculationResponse(result *models.RecalculationResult) RecalculationResponse {
	return RecalculationResponse{
		Total:        result.Total,
		Recalculated: result.Recalculated,
		Failed:       result.Failed,
	}
}

// billsRatio is bills/income, 1 when there is no income
func billsRatio(bills, income models.Money) decimal.Decimal {
	if income <= 0 {
		return decimal.NewFromInt(1)
	}
	return bills.Decimal().Div(income.Decimal())
}
