package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Project error codes (PROJECT_*)
const (
	ProjectNotFound  ErrorCode = "PROJECT_001"
	ProjectInvalidID ErrorCode = "PROJECT_002"
	ProjectInvalid   ErrorCode = "PROJECT_003"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerEmpty        ErrorCode = "LEDGER_001"
	LedgerInvalidEntry ErrorCode = "LEDGER_002"
	LedgerReplaceFailed ErrorCode = "LEDGER_003"
)

// Statement error codes (STATEMENT_*)
const (
	StatementInvalidType      ErrorCode = "STATEMENT_001"
	StatementNotFound         ErrorCode = "STATEMENT_002"
	StatementGenerationFailed ErrorCode = "STATEMENT_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
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
	// Project errors
	ProjectNotFound:  "Audit project not found",
	ProjectInvalidID: "Invalid project ID format",
	ProjectInvalid:   "Project data is invalid",

	// Ledger errors
	LedgerEmpty:         "Trial balance is empty or missing for this project",
	LedgerInvalidEntry:  "Trial balance entry is invalid",
	LedgerReplaceFailed: "Failed to replace trial balance",

	// Statement errors
	StatementInvalidType:      "Invalid statement type",
	StatementNotFound:         "Financial statement not found",
	StatementGenerationFailed: "Failed to generate financial statements",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

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
