package handlers

import (
	stderrors "errors"
	"log/slog"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For request problems detected in the handler itself (4xx responses)
//    Use cases:
//    - Malformed bodies or params: SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("..."))
//    - Missing identity: SendError(c, errors.AuthMissingToken)
//
// 2. SendServiceError - For errors returned by the services layer
//    Maps the service error hierarchy onto API codes and falls back to SendSystemError.
//
// 3. SendSystemError - For system/internal errors (500 responses)
//    Logs the internal error and never exposes it to the client.
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"

	// ErrorCodeContextKey holds the API error code sent for the request, read by the metrics middleware
	ErrorCodeContextKey = "error_code"
)

// SuccessResponse represents a standard success response
// Used for successful API responses with data, messages, and metadata
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	c.Set(ErrorCodeContextKey, string(code))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)

	slog.Error("request failed",
		"trace_id", traceID,
		"path", c.Path(),
		"method", c.Request().Method,
		"error", internalErr,
	)

	c.Set(ErrorCodeContextKey, errorResponse.Error.Code)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// serviceErrorCodes maps specific service errors to API codes. Checked in order,
// before the generic kinds.
var serviceErrorCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{services.ErrUserNotFound, errors.UserNotFound},
	{services.ErrAccountNotFound, errors.AccountNotFound},
	{services.ErrInstallmentNotFound, errors.InstallmentNotFound},
	{services.ErrTransactionNotFound, errors.TransactionNotFound},
	{services.ErrSummaryNotFound, errors.SummaryNotFound},
	{services.ErrAlreadyPaid, errors.InstallmentAlreadyPaid},
	{services.ErrAlreadySettled, errors.InstallmentAlreadySettled},
	{services.ErrInsufficientAmount, errors.AccountInsufficientSettlement},
	{services.ErrAccountAlreadySettled, errors.AccountAlreadySettled},
	{services.ErrInstallmentsAlreadyScheduled, errors.AccountAlreadyScheduled},
	{services.ErrSettlementLinkImmutable, errors.TransactionLinkImmutable},
	{services.ErrEmailAlreadyExists, errors.UserEmailTaken},
}

// SendServiceError translates an error from the services layer into an API error response
func SendServiceError(c echo.Context, err error) error {
	var validationErr *services.ValidationError
	if stderrors.As(err, &validationErr) {
		return SendError(c, validationCode(validationErr.Field), errors.WithDetails(validationErr.Error()))
	}

	for _, mapping := range serviceErrorCodes {
		if stderrors.Is(err, mapping.err) {
			return SendError(c, mapping.code, errors.WithDetails(err.Error()))
		}
	}

	var aggregationErr *services.AggregationError
	if stderrors.As(err, &aggregationErr) {
		slog.Error("monthly aggregation failed",
			"trace_id", getTraceID(c),
			"user_id", aggregationErr.UserID,
			"month", aggregationErr.Month,
			"year", aggregationErr.Year,
			"error", aggregationErr.Err,
		)
		return SendError(c, errors.SummaryAggregationFailed)
	}

	if stderrors.Is(err, services.ErrValidation) {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	return SendSystemError(c, err)
}

func validationCode(field string) errors.ErrorCode {
	switch field {
	case "amount", "payment_amount", "principal":
		return errors.TransactionInvalidAmount
	case "direction":
		return errors.TransactionInvalidType
	case "month", "year", "date", "start_date", "end_date":
		return errors.ValidationInvalidDate
	case "email":
		return errors.ValidationInvalidEmail
	default:
		return errors.ValidationGeneral
	}
}
