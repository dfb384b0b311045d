package handlers

import (
	stderrors "errors"
	"net/http"

	"budget-engine/internal/errors"
	"budget-engine/internal/models"
	"budget-engine/internal/repositories"
	"budget-engine/internal/services"
	"budget-engine/internal/validation"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and business logic errors (4xx responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Authentication errors: SendError(c, errors.AuthMissingToken)
//    - Not found errors: SendError(c, errors.BudgetNotFound)
//    - Conflicts: SendError(c, errors.BudgetVersionConflict)
//
// 2. SendBudgetError - For errors returned by the budget service. Rule
//    violations become 422, missing budgets 404, lost updates 409 and bank
//    data failures 502. Anything else is a system error.
//
// 3. SendSystemError - For system/internal errors (500 responses)
//    Use cases:
//    - Database errors from repositories
//    - Unexpected errors that should not expose internal details to client
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions
//    - return err without wrapping - Use SendSystemError to protect internal details

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
// Used for backward compatibility in tests
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
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	c.Logger().Errorf("trace_id=%s internal error: %v", traceID, err)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError reports request validation failures field by field
func SendValidationError(c echo.Context, err error) error {
	errorResponse := errors.NewValidationError(validation.FieldErrors(err), getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}

// SendBudgetError maps budget service errors onto the standardized error codes
func SendBudgetError(c echo.Context, err error) error {
	traceID := getTraceID(c)

	var ruleErr *services.ValidationError
	switch {
	case stderrors.As(err, &ruleErr):
		errorResponse := errors.NewBudgetRuleError(ruleErr.Reason, ruleErr.Message, traceID)
		return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
	case stderrors.Is(err, repositories.ErrBudgetNotFound):
		return SendError(c, errors.BudgetNotFound)
	case stderrors.Is(err, models.ErrOptimisticLockConflict):
		return SendError(c, errors.BudgetVersionConflict)
	case stderrors.Is(err, repositories.ErrBudgetAlreadyExists):
		return SendError(c, errors.BudgetAlreadyExists)
	case stderrors.Is(err, models.ErrInvalidMonth), stderrors.Is(err, models.ErrInvalidYear):
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrTransactionsUnavailable):
		errorResponse, internal := errors.WrapUpstreamError(err, traceID)
		c.Logger().Errorf("trace_id=%s upstream error: %v", traceID, internal)
		return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
	default:
		return SendSystemError(c, err)
	}
}
