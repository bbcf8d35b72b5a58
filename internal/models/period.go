package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year must be positive")
)

// Period is a calendar month of a specific year, the unit monthly summaries
// and installment reference periods are keyed by
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// NewPeriod validates and returns a Period
func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, ErrInvalidMonth
	}
	if year < 1 {
		return Period{}, ErrInvalidYear
	}
	return Period{Month: month, Year: year}, nil
}

// PeriodOf returns the period a date falls in
func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// FirstDay returns the first calendar day of the period
func (p Period) FirstDay() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns the last calendar day of the period
func (p Period) LastDay() time.Time {
	return p.FirstDay().AddDate(0, 1, -1)
}

// DateRange returns the inclusive [first, last] day range of the period
func (p Period) DateRange() (time.Time, time.Time) {
	return p.FirstDay(), p.LastDay()
}

// AddMonths returns the period n months after p (n may be negative)
func (p Period) AddMonths(n int) Period {
	return PeriodOf(p.FirstDay().AddDate(0, n, 0))
}

// DaysIn returns the number of days of the period's month
func (p Period) DaysIn() int {
	return p.LastDay().Day()
}

// String formats the period as YYYY-MM
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// DateOf strips the time component, returning midnight UTC of the same calendar day
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}
