package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"budget-engine/internal/dto"
	"budget-engine/internal/errors"
	"budget-engine/internal/models"
	"budget-engine/internal/repositories"
	"budget-engine/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultSeedMonths = 6

// GeneratorFactory builds a transaction generator for one seed request
type GeneratorFactory func(seed uint64) services.TransactionGeneratorInterface

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	newGenerator    GeneratorFactory
	metrics         services.MetricsRecorderInterface
	location        *time.Location
	logger          *slog.Logger
	now             func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	newGenerator GeneratorFactory,
	metrics services.MetricsRecorderInterface,
	location *time.Location,
	logger *slog.Logger,
) *DevHandler {
	if newGenerator == nil {
		newGenerator = services.NewTransactionGenerator
	}
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DevHandler{
		transactionRepo: transactionRepo,
		newGenerator:    newGenerator,
		metrics:         metrics,
		location:        location,
		logger:          logger,
		now:             time.Now,
	}
}

// SeedTransactions generates realistic bank transactions for the caller and
// stores them as their transaction source
//
// Method: POST /api/v1/dev/transactions
// Authentication: Required
// Environment: Development only
//
// Body:
//   - months: Number of months ending with the current one (default: 6, max: 24)
//   - seed: Generator seed, 0 for random
//   - replace: Delete the caller's stored transactions first
//
// Success Response: 201 Created with dto.SeedTransactionsResponse
//
// Error Responses:
//   - 400: Invalid parameters
//   - 401: Unauthorized
//   - 500: Internal server error
func (h *DevHandler) SeedTransactions(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SeedTransactionsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	months := req.Months
	if months == 0 {
		months = defaultSeedMonths
	}

	ctx := c.Request().Context()
	if req.Replace {
		if err := h.transactionRepo.DeleteByUserID(ctx, userID); err != nil {
			return SendSystemError(c, err)
		}
	}

	period := models.PeriodOf(h.now().In(h.location))
	transactions := h.newGenerator(req.Seed).GenerateHistory(userID, period, months)

	if err := h.transactionRepo.UpsertBatch(ctx, transactions); err != nil {
		return SendSystemError(c, err)
	}

	stored, err := h.transactionRepo.CountByUserID(ctx, userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordGauge("dev_transactions_seeded", float64(len(transactions)), nil)
	}

	oldest := period.AddMonths(-(months - 1))
	h.logger.Info("seeded development transactions",
		"user_id", userID,
		"generated", len(transactions),
		"months", months,
		"replace", req.Replace,
		"client_ip", c.RealIP())

	return c.JSON(http.StatusCreated, dto.SeedTransactionsResponse{
		Generated:   len(transactions),
		StoredTotal: stored,
		StartDate:   models.FormatTransactionDate(oldest.FirstDay(time.UTC)),
		EndDate:     models.FormatTransactionDate(period.LastDay(time.UTC)),
	})
}

// ClearTransactions removes every stored transaction of the caller
//
// Method: DELETE /api/v1/dev/transactions
// Authentication: Required
// Environment: Development only
//
// Success Response: 200 OK
//
// Error Responses:
//   - 401: Unauthorized
//   - 500: Internal server error
func (h *DevHandler) ClearTransactions(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.transactionRepo.DeleteByUserID(c.Request().Context(), userID); err != nil {
		return SendSystemError(c, err)
	}

	h.logger.Info("cleared development transactions", "user_id", userID, "client_ip", c.RealIP())

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "transactions deleted",
	})
}
