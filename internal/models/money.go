package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// MinorUnitExponent is the number of decimal places between major and minor currency units
const MinorUnitExponent = 2

var ErrInvalidMoney = errors.New("amount must be a whole number of minor units")

// Money is an amount in integer minor currency units (e.g. cents)
type Money int64

// NewMoneyFromDecimal converts a major-unit decimal ("12.34") into minor units.
// Amounts with more precision than a minor unit are rejected rather than rounded.
func NewMoneyFromDecimal(d decimal.Decimal) (Money, error) {
	minor := d.Shift(MinorUnitExponent)
	if !minor.IsInteger() {
		return 0, ErrInvalidMoney
	}
	return Money(minor.IntPart()), nil
}

// Decimal returns the amount in major units
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -MinorUnitExponent)
}

// String formats the amount in major units with two decimals
func (m Money) String() string {
	return m.Decimal().StringFixed(MinorUnitExponent)
}

// IsPositive reports whether the amount is greater than zero
func (m Money) IsPositive() bool {
	return m > 0
}

// Split divides the amount into n parts of floor(m/n), with the last part
// absorbing the remainder so that the parts always sum to m. Every part is at
// least one minor unit.
func (m Money) Split(n int) ([]Money, error) {
	if n < 1 {
		return nil, fmt.Errorf("cannot split into %d parts", n)
	}
	if m < Money(n) {
		return nil, fmt.Errorf("cannot split %d minor units into %d positive parts", m, n)
	}

	base := m / Money(n)
	parts := make([]Money, n)
	for i := 0; i < n-1; i++ {
		parts[i] = base
	}
	parts[n-1] = m - base*Money(n-1)
	return parts, nil
}
