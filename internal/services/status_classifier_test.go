package services

import (
	"testing"

	"finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFinancialStatus(t *testing.T) {
	cases := []struct {
		name     string
		income   models.Money
		expenses models.Money
		bills    models.Money
		want     models.FinancialStatus
	}{
		{"low bills with surplus", 1000, 0, 290, models.StatusExcellent},
		{"bills ratio exactly 0.30", 1000, 0, 300, models.StatusGood},
		{"moderate bills", 1000, 0, 490, models.StatusGood},
		{"bills ratio exactly 0.50", 1000, 0, 500, models.StatusWarning},
		{"high bills", 1000, 0, 690, models.StatusWarning},
		{"bills ratio exactly 0.70", 1000, 0, 700, models.StatusCritical},
		{"very high bills", 1000, 0, 900, models.StatusCritical},
		{"nothing at all", 0, 0, 0, models.StatusCritical},
		{"break even with low bills", 1000, 1000, 100, models.StatusWarning},
		{"deficit", 1000, 1001, 0, models.StatusCritical},
		{"expenses without income", 0, 500, 0, models.StatusCritical},
		{"surplus without bills", 250000, 100000, 0, models.StatusExcellent},
		{"bills larger than income", 1000, 0, 5000, models.StatusCritical},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyFinancialStatus(tc.income, tc.expenses, tc.bills))
		})
	}
}

func TestClassifyFinancialStatus_UsesExactRatios(t *testing.T) {
	// 299999/1000000 stays below 0.30 and must not be rounded up
	assert.Equal(t, models.StatusExcellent, ClassifyFinancialStatus(1000000, 1, 299999))
	assert.Equal(t, models.StatusGood, ClassifyFinancialStatus(3, 1, 1))
}
