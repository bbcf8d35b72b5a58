package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidToken       ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
)

// User error codes (USER_*)
const (
	UserNotFound   ErrorCode = "USER_001"
	UserEmailTaken ErrorCode = "USER_002"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound               ErrorCode = "ACCOUNT_001"
	AccountAlreadySettled         ErrorCode = "ACCOUNT_002"
	AccountInsufficientSettlement ErrorCode = "ACCOUNT_003"
	AccountAlreadyScheduled       ErrorCode = "ACCOUNT_004"
)

// Installment error codes (INSTALLMENT_*)
const (
	InstallmentNotFound       ErrorCode = "INSTALLMENT_001"
	InstallmentAlreadyPaid    ErrorCode = "INSTALLMENT_002"
	InstallmentAlreadySettled ErrorCode = "INSTALLMENT_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
	TransactionLinkImmutable ErrorCode = "TRANSACTION_004"
)

// Summary error codes (SUMMARY_*)
const (
	SummaryNotFound          ErrorCode = "SUMMARY_001"
	SummaryAggregationFailed ErrorCode = "SUMMARY_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidToken:       "Invalid authorization token",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format or range",

	// User errors
	UserNotFound:   "User not found",
	UserEmailTaken: "A user with this email already exists",

	// Account errors
	AccountNotFound:               "Account not found",
	AccountAlreadySettled:         "Account is already settled",
	AccountInsufficientSettlement: "Payment amount does not cover the outstanding balance",
	AccountAlreadyScheduled:       "Account already has an installment schedule",

	// Installment errors
	InstallmentNotFound:       "Installment not found",
	InstallmentAlreadyPaid:    "Installment is already paid",
	InstallmentAlreadySettled: "Installment already has a settlement transaction",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Invalid transaction amount",
	TransactionInvalidType:   "Invalid transaction direction",
	TransactionLinkImmutable: "Settlement transactions cannot be re-linked",

	// Summary errors
	SummaryNotFound:          "Monthly summary not found",
	SummaryAggregationFailed: "Monthly summary could not be calculated",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
