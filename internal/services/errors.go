package services

import (
	"errors"
	"fmt"

	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

// Error kinds. Every error returned by a service matches exactly one of
// these with errors.Is, except storage failures which are passed through wrapped.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("resource not found")
	ErrConflict    = errors.New("conflicting state")
	ErrAggregation = errors.New("aggregation failed")
)

var (
	ErrAccountNotFound     = newKindError(ErrNotFound, "account not found")
	ErrInstallmentNotFound = newKindError(ErrNotFound, "installment not found")
	ErrTransactionNotFound = newKindError(ErrNotFound, "transaction not found")
	ErrSummaryNotFound     = newKindError(ErrNotFound, "monthly summary not found")
	ErrUserNotFound        = newKindError(ErrNotFound, "user not found")

	ErrAlreadyPaid                  = newKindError(ErrConflict, "installment is already paid")
	ErrAlreadySettled               = newKindError(ErrConflict, "installment already has a settlement transaction")
	ErrInsufficientAmount           = newKindError(ErrConflict, "payment amount does not cover the outstanding balance")
	ErrAccountAlreadySettled        = newKindError(ErrConflict, "account is already settled")
	ErrInstallmentsAlreadyScheduled = newKindError(ErrConflict, "account already has an installment schedule")
	ErrSettlementLinkImmutable      = newKindError(ErrConflict, "settlement transactions cannot be re-linked")
	ErrEmailAlreadyExists           = newKindError(ErrConflict, "email already exists")
)

type kindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}

// ValidationError reports a rejected input field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// AggregationError wraps a storage failure hit while deriving a monthly summary
type AggregationError struct {
	UserID uuid.UUID
	Month  int
	Year   int
	Err    error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("failed to aggregate %04d-%02d for user %s: %v", e.Year, e.Month, e.UserID, e.Err)
}

func (e *AggregationError) Unwrap() []error {
	return []error{ErrAggregation, e.Err}
}

// translateRepositoryError maps repository sentinels onto service errors.
// Unknown errors are returned unchanged.
func translateRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrAccountNotFound):
		return ErrAccountNotFound
	case errors.Is(err, repositories.ErrInstallmentNotFound):
		return ErrInstallmentNotFound
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return ErrTransactionNotFound
	case errors.Is(err, repositories.ErrSummaryNotFound):
		return ErrSummaryNotFound
	case errors.Is(err, repositories.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, repositories.ErrInstallmentAlreadyPaid):
		return ErrAlreadyPaid
	case errors.Is(err, repositories.ErrInstallmentAlreadySettled):
		return ErrAlreadySettled
	case errors.Is(err, repositories.ErrInsufficientSettlement):
		return ErrInsufficientAmount
	case errors.Is(err, repositories.ErrAccountAlreadySettled):
		return ErrAccountAlreadySettled
	case errors.Is(err, repositories.ErrInstallmentsAlreadyExist):
		return ErrInstallmentsAlreadyScheduled
	case errors.Is(err, repositories.ErrEmailAlreadyExists):
		return ErrEmailAlreadyExists
	}
	return err
}
