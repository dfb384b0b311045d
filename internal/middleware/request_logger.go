package middleware

import (
	"log/slog"
	"time"

	"budget-engine/internal/handlers"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs one structured line per request with its trace ID,
// status and duration. Server errors log at ERROR, client errors at WARN.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			attrs := []any{
				"trace_id", GetTraceID(c),
				"method", c.Request().Method,
				"path", c.Path(),
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if userID := c.Get(handlers.UserIDKey); userID != nil {
				attrs = append(attrs, "user_id", userID)
			}

			logger.Log(c.Request().Context(), level, "http request", attrs...)
			return nil
		}
	}
}
