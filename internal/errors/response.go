package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the envelope every failed API call returns
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the code, a client-safe message and the request trace ID
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption customizes a response built by NewErrorResponse
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the code's default message
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds a response for code with its default message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError turns field -> message pairs into "field: message"
// details, sorted so the output is stable.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(details)

	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// NewBudgetRuleError reports a rejected budget write. The message is the
// rule's own text and the reason is the machine-readable rule name.
func NewBudgetRuleError(reason, message, traceID string) *ErrorResponse {
	code := BudgetRuleViolation
	if reason == "unknown_category" {
		code = BudgetUnknownCategory
	}
	return NewErrorResponse(code, traceID,
		WithMessage(message),
		WithDetails("reason: "+reason))
}

// WrapSystemError hides err behind the generic internal error. err is handed
// back for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapUpstreamError hides a bank-data collaborator failure behind SYSTEM_007
func WrapUpstreamError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemUpstreamDataError, traceID), err
}

var httpStatuses = map[ErrorCode]int{
	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationOutOfRange:    http.StatusBadRequest,
	ValidationInvalidPeriod: http.StatusBadRequest,
	BudgetEmptyPatch:        http.StatusBadRequest,

	AuthMissingToken:           http.StatusUnauthorized,
	AuthExpiredToken:           http.StatusUnauthorized,
	AuthInvalidTokenFormat:     http.StatusUnauthorized,
	AuthInsufficientPermission: http.StatusForbidden,

	BudgetNotFound:        http.StatusNotFound,
	BudgetVersionConflict: http.StatusConflict,
	BudgetAlreadyExists:   http.StatusConflict,
	BudgetRuleViolation:   http.StatusUnprocessableEntity,
	BudgetUnknownCategory: http.StatusUnprocessableEntity,

	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemUpstreamDataError:  http.StatusBadGateway,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the status code for code. Unmapped codes, including
// the remaining SYSTEM_* codes, are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetHTTPStatus returns the status code for the response's error code
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsServerError reports whether the response maps to a 5xx status
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= http.StatusInternalServerError
}
