package services

import (
	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

var (
	excellentBillsRatio = decimal.RequireFromString("0.30")
	goodBillsRatio      = decimal.RequireFromString("0.50")
	warningBillsRatio   = decimal.RequireFromString("0.70")
)

// ClassifyFinancialStatus labels a month from its totals. The bills ratio is
// billsToPay/income, taken as 1 when there is no income.
func ClassifyFinancialStatus(income, expenses, billsToPay models.Money) models.FinancialStatus {
	surplus := income - expenses

	ratio := decimal.NewFromInt(1)
	if income > 0 {
		ratio = billsToPay.Decimal().Div(income.Decimal())
	}

	switch {
	case surplus > 0 && ratio.LessThan(excellentBillsRatio):
		return models.StatusExcellent
	case surplus > 0 && ratio.LessThan(goodBillsRatio):
		return models.StatusGood
	case surplus >= 0 && ratio.LessThan(warningBillsRatio):
		return models.StatusWarning
	default:
		return models.StatusCritical
	}
}
