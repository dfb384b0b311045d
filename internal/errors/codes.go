package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidPeriod ErrorCode = "VALIDATION_005"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound        ErrorCode = "BUDGET_001"
	BudgetRuleViolation   ErrorCode = "BUDGET_002"
	BudgetVersionConflict ErrorCode = "BUDGET_003"
	BudgetAlreadyExists   ErrorCode = "BUDGET_004"
	BudgetUnknownCategory ErrorCode = "BUDGET_005"
	BudgetEmptyPatch      ErrorCode = "BUDGET_006"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemUpstreamDataError  ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidPeriod: "Invalid year or month",

	// Budget errors
	BudgetNotFound:        "Budget not found",
	BudgetRuleViolation:   "Budget allocations are invalid",
	BudgetVersionConflict: "Budget was modified by another request. Reload and try again",
	BudgetAlreadyExists:   "A budget already exists for this user",
	BudgetUnknownCategory: "Unknown budget category",
	BudgetEmptyPatch:      "Patch request contains no changes",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemUpstreamDataError:  "Transaction data is temporarily unavailable",
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
