package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"budget-engine/internal/errors"
	"budget-engine/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API error responses by code, route and status",
	},
	[]string{"code", "route", "status"},
)

var statusErrorCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusNotFound:              errors.ValidationGeneral,
	http.StatusMethodNotAllowed:      errors.ValidationGeneral,
	http.StatusRequestEntityTooLarge: errors.ValidationGeneral,
	http.StatusUnsupportedMediaType:  errors.ValidationGeneral,
	http.StatusUnauthorized:          errors.AuthMissingToken,
	http.StatusForbidden:             errors.AuthInsufficientPermission,
	http.StatusConflict:              errors.BudgetVersionConflict,
	http.StatusUnprocessableEntity:   errors.BudgetRuleViolation,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusBadGateway:            errors.SystemUpstreamDataError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

// CustomHTTPErrorHandler renders errors that reach echo (routing failures,
// body limit, unhandled handler errors) in the API error envelope
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	response, status := errorResponseFor(err, traceID)

	level := slog.LevelWarn
	if response.IsServerError() {
		level = slog.LevelError
	}
	slog.Log(c.Request().Context(), level, "request failed",
		"trace_id", traceID,
		"error_code", response.Error.Code,
		"status", status,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(response.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, response); sendErr != nil {
		slog.Error("failed to send error response", "trace_id", traceID, "error", sendErr)
	}
}

func errorResponseFor(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		response := errors.NewErrorResponse(mapHTTPStatusToErrorCode(httpErr.Code), traceID,
			errors.WithMessage(fmt.Sprint(httpErr.Message)))
		return response, httpErr.Code
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		return errors.NewValidationError(validation.FieldErrors(validationErrs), traceID), http.StatusBadRequest
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response, response.GetHTTPStatus()
}

func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	if code, ok := statusErrorCodes[status]; ok {
		return code
	}
	return errors.SystemUnexpectedError
}
