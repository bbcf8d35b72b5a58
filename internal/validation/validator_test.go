package validation

import (
	"errors"
	"testing"

	"finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name      string       `json:"name" validate:"required,max=120"`
	Kind      string       `json:"kind" validate:"account_kind"`
	DueDay    int          `json:"dueDay" validate:"due_day"`
	Direction string       `json:"direction" validate:"transaction_direction"`
	Amount    models.Money `json:"amount" validate:"positive_amount"`
}

func validSample() sampleRequest {
	return sampleRequest{
		Name:      "Rent",
		Kind:      models.AccountKindRecurringFixed,
		DueDay:    5,
		Direction: models.DirectionExpense,
		Amount:    150000,
	}
}

func TestValidator_AcceptsValidRequest(t *testing.T) {
	assert.NoError(t, GetValidator().Struct(validSample()))
}

func TestValidator_EmptyKindIsAllowed(t *testing.T) {
	req := validSample()
	req.Kind = ""
	assert.NoError(t, GetValidator().Struct(req))
}

func TestValidator_CustomTags(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*sampleRequest)
		expected string
	}{
		{
			name:     "unknown kind",
			mutate:   func(r *sampleRequest) { r.Kind = "mortgage" },
			expected: "kind: must be one of recurring_fixed, loan, credit_card, subscription, other",
		},
		{
			name:     "due day zero",
			mutate:   func(r *sampleRequest) { r.DueDay = 0 },
			expected: "dueDay: must be between 1 and 31",
		},
		{
			name:     "due day 32",
			mutate:   func(r *sampleRequest) { r.DueDay = 32 },
			expected: "dueDay: must be between 1 and 31",
		},
		{
			name:     "bad direction",
			mutate:   func(r *sampleRequest) { r.Direction = "transfer" },
			expected: "direction: must be income or expense",
		},
		{
			name:     "zero amount",
			mutate:   func(r *sampleRequest) { r.Amount = 0 },
			expected: "amount: must be greater than 0",
		},
		{
			name:     "missing name",
			mutate:   func(r *sampleRequest) { r.Name = "" },
			expected: "name: is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSample()
			tt.mutate(&req)

			err := GetValidator().Struct(req)
			require.Error(t, err)
			assert.Equal(t, []string{tt.expected}, FormatErrors(err))
		})
	}
}

func TestFormatErrors_NonValidatorError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, FormatErrors(errors.New("boom")))
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
