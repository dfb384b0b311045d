package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(BudgetNotFound, s.traceID)

	s.NotNil(response)
	s.Equal("BUDGET_001", response.Error.Code)
	s.Equal("Budget not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(
		ValidationInvalidPeriod,
		s.traceID,
		WithMessage("month must be between 1 and 12"),
		WithDetails("month: 13"),
	)

	s.Equal("VALIDATION_005", response.Error.Code)
	s.Equal("month must be between 1 and 12", response.Error.Message)
	s.Equal([]string{"month: 13"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWithDetails_LastInvocationWins() {
	response := NewErrorResponse(
		ValidationGeneral,
		s.traceID,
		WithDetails("detail1", "detail2"),
		WithDetails("detail3"),
	)

	s.Equal([]string{"detail3"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedFieldErrors() {
	response := NewValidationError(map[string]string{
		"overall_amount": "is required",
		"allocations":    "must be a valid budget category",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{
		"allocations: must be a valid budget category",
		"overall_amount: is required",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewBudgetRuleError() {
	response := NewBudgetRuleError("allocation_exceeds_overall",
		"total allocations 1100.00 exceed overall budget 1000.00", s.traceID)

	s.Equal("BUDGET_002", response.Error.Code)
	s.Equal("total allocations 1100.00 exceed overall budget 1000.00", response.Error.Message)
	s.Equal([]string{"reason: allocation_exceeds_overall"}, response.Error.Details)
	s.Equal(http.StatusUnprocessableEntity, response.GetHTTPStatus())

	unknown := NewBudgetRuleError("unknown_category", `unknown budget category "Pets"`, s.traceID)
	s.Equal("BUDGET_005", unknown.Error.Code)
	s.Equal(http.StatusUnprocessableEntity, unknown.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	internalErr := errors.New("SQL error: relation \"budgets\" does not exist")

	response, originalErr := WrapSystemError(internalErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "SQL")
	s.NotContains(response.Error.Message, "budgets")
	s.Empty(response.Error.Details)
	s.Equal(internalErr, originalErr)
}

func (s *ResponseTestSuite) TestWrapUpstreamError() {
	upstreamErr := errors.New("provider returned 503")

	response, originalErr := WrapUpstreamError(upstreamErr, s.traceID)

	s.Equal("SYSTEM_007", response.Error.Code)
	s.Equal(http.StatusBadGateway, response.GetHTTPStatus())
	s.NotContains(response.Error.Message, "503")
	s.Equal(upstreamErr, originalErr)
}

func (s *ResponseTestSuite) TestJSON_OmitsEmptyDetails() {
	jsonBytes, err := json.Marshal(NewErrorResponse(AuthMissingToken, s.traceID))
	s.Require().NoError(err)

	var jsonMap map[string]interface{}
	s.Require().NoError(json.Unmarshal(jsonBytes, &jsonMap))

	errorObj := jsonMap["error"].(map[string]interface{})
	s.Equal("AUTH_001", errorObj["code"])
	s.Equal(s.traceID, errorObj["trace_id"])
	_, hasDetails := errorObj["details"]
	s.False(hasDetails, "Empty details should be omitted from JSON")
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		code           ErrorCode
		expectedStatus int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationRequiredField, http.StatusBadRequest},
		{ValidationInvalidFormat, http.StatusBadRequest},
		{ValidationOutOfRange, http.StatusBadRequest},
		{ValidationInvalidPeriod, http.StatusBadRequest},
		{BudgetEmptyPatch, http.StatusBadRequest},

		{AuthMissingToken, http.StatusUnauthorized},
		{AuthExpiredToken, http.StatusUnauthorized},
		{AuthInvalidTokenFormat, http.StatusUnauthorized},
		{AuthInsufficientPermission, http.StatusForbidden},

		{BudgetNotFound, http.StatusNotFound},
		{BudgetVersionConflict, http.StatusConflict},
		{BudgetAlreadyExists, http.StatusConflict},
		{BudgetRuleViolation, http.StatusUnprocessableEntity},
		{BudgetUnknownCategory, http.StatusUnprocessableEntity},

		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemUpstreamDataError, http.StatusBadGateway},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{SystemConfigurationError, http.StatusInternalServerError},
		{SystemUnexpectedError, http.StatusInternalServerError},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expectedStatus, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestIsServerError() {
	for _, code := range []ErrorCode{ValidationGeneral, AuthMissingToken, BudgetNotFound, BudgetVersionConflict} {
		s.False(NewErrorResponse(code, s.traceID).IsServerError(), string(code))
	}

	for _, code := range []ErrorCode{SystemInternalError, SystemUpstreamDataError, SystemServiceUnavailable} {
		s.True(NewErrorResponse(code, s.traceID).IsServerError(), string(code))
	}
}

func (s *ResponseTestSuite) TestNewValidationError_NoFieldsHasNoDetails() {
	response := NewValidationError(map[string]string{}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Empty(response.Error.Details)
}
