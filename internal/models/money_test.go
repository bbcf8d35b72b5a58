package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Split(t *testing.T) {
	tests := []struct {
		name     string
		amount   Money
		parts    int
		expected []Money
		wantErr  bool
	}{
		{
			name:     "remainder goes to last part",
			amount:   1000,
			parts:    3,
			expected: []Money{333, 333, 334},
		},
		{
			name:     "even split",
			amount:   1200,
			parts:    4,
			expected: []Money{300, 300, 300, 300},
		},
		{
			name:     "single part",
			amount:   999,
			parts:    1,
			expected: []Money{999},
		},
		{
			name:     "one minor unit per part",
			amount:   3,
			parts:    3,
			expected: []Money{1, 1, 1},
		},
		{
			name:    "more parts than minor units",
			amount:  2,
			parts:   3,
			wantErr: true,
		},
		{
			name:    "zero parts",
			amount:  100,
			parts:   0,
			wantErr: true,
		},
		{
			name:    "non-positive amount",
			amount:  0,
			parts:   2,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := tt.amount.Split(tt.parts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parts)
			assert.Equal(t, tt.amount, sum(parts))
		})
	}
}

func TestMoney_SplitSumsToTotal(t *testing.T) {
	for amount := Money(1); amount < 2000; amount += 37 {
		for n := 1; n <= min(48, int(amount)); n++ {
			parts, err := amount.Split(n)
			require.NoError(t, err)
			require.Len(t, parts, n)
			assert.Equal(t, amount, sum(parts), "amount=%d n=%d", amount, n)
			for _, p := range parts {
				assert.True(t, p.IsPositive())
			}
		}
	}
}

func sum(parts []Money) Money {
	var total Money
	for _, p := range parts {
		total += p
	}
	return total
}

func TestNewMoneyFromDecimal(t *testing.T) {
	m, err := NewMoneyFromDecimal(decimal.RequireFromString("12.34"))
	require.NoError(t, err)
	assert.Equal(t, Money(1234), m)

	m, err = NewMoneyFromDecimal(decimal.RequireFromString("-5"))
	require.NoError(t, err)
	assert.Equal(t, Money(-500), m)

	_, err = NewMoneyFromDecimal(decimal.RequireFromString("0.001"))
	assert.ErrorIs(t, err, ErrInvalidMoney)
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "12.34", Money(1234).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "-1.00", Money(-100).String())
	assert.True(t, Money(1).IsPositive())
	assert.False(t, Money(0).IsPositive())
}
