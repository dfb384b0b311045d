package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"budget-engine/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// PanicRecoveryTestSuite defines the test suite for panic recovery middleware
type PanicRecoveryTestSuite struct {
	suite.Suite
	echo   *echo.Echo
	logger *slog.Logger
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) TestRecoverFromPanic() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		panic("test panic")
	})

	var err error
	s.NotPanics(func() {
		err = handler(c)
	})
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	var errorResponse errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("test-trace-id", errorResponse.Error.TraceID)
	s.NotContains(rec.Body.String(), "test panic")
}

func (s *PanicRecoveryTestSuite) TestNoTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery(nil)(func(c echo.Context) error {
		panic(42)
	})

	s.NotPanics(func() {
		_ = handler(c)
	})
	s.Contains(rec.Body.String(), "unknown")
}

func (s *PanicRecoveryTestSuite) TestCommittedResponseNotOverwritten() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		_ = c.String(http.StatusOK, "partial")
		panic("late panic")
	})

	s.NotPanics(func() {
		_ = handler(c)
	})
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("partial", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestNoPanicPassesThrough() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	s.NoError(handler(c))
	s.Equal(http.StatusNoContent, rec.Code)
}
