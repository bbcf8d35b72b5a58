package errors

import "net/http"

// ErrorResponse is the JSON envelope of every API error
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption adjusts a response built by NewErrorResponse
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines of the response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the default message of the code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the response for code, carrying the code's default message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			Details: []string{},
			TraceID: traceID,
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationErrorFromList builds a VALIDATION_001 response listing every failed field
func NewValidationErrorFromList(details []string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides err behind a SYSTEM_001 response. err is handed back
// untouched for server-side logging only.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

var httpStatuses = map[ErrorCode]int{
	ValidationGeneral:        http.StatusBadRequest,
	ValidationRequiredField:  http.StatusBadRequest,
	ValidationInvalidFormat:  http.StatusBadRequest,
	ValidationOutOfRange:     http.StatusBadRequest,
	ValidationInvalidEmail:   http.StatusBadRequest,
	ValidationInvalidDate:    http.StatusBadRequest,
	TransactionInvalidAmount: http.StatusBadRequest,
	TransactionInvalidType:   http.StatusBadRequest,

	AuthInvalidToken:       http.StatusUnauthorized,
	AuthMissingToken:       http.StatusUnauthorized,
	AuthExpiredToken:       http.StatusUnauthorized,
	AuthInvalidTokenFormat: http.StatusUnauthorized,

	UserNotFound:        http.StatusNotFound,
	AccountNotFound:     http.StatusNotFound,
	InstallmentNotFound: http.StatusNotFound,
	TransactionNotFound: http.StatusNotFound,
	SummaryNotFound:     http.StatusNotFound,

	UserEmailTaken:            http.StatusConflict,
	AccountAlreadySettled:     http.StatusConflict,
	AccountAlreadyScheduled:   http.StatusConflict,
	InstallmentAlreadyPaid:    http.StatusConflict,
	InstallmentAlreadySettled: http.StatusConflict,
	TransactionLinkImmutable:  http.StatusConflict,

	AccountInsufficientSettlement: http.StatusUnprocessableEntity,

	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the status code a response with code is sent with.
// Codes without an entry, including every other SYSTEM_* code, are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsServerError reports whether the response is sent with a 5xx status
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= http.StatusInternalServerError
}
