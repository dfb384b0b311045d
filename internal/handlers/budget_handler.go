package handlers

import (
	"net/http"
	"time"

	"budget-engine/internal/dto"
	"budget-engine/internal/errors"
	"budget-engine/internal/models"
	"budget-engine/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget and dashboard HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
	location      *time.Location
	now           func() time.Time
}

// NewBudgetHandler creates a new budget handler. The location decides which
// month is "current" when the dashboard is requested without a period.
func NewBudgetHandler(budgetService services.BudgetServiceInterface, location *time.Location) *BudgetHandler {
	if location == nil {
		location = time.UTC
	}
	return &BudgetHandler{
		budgetService: budgetService,
		location:      location,
		now:           time.Now,
	}
}

// GetBudget returns the current budget, seeding a default one on first access
// @Summary Get the current budget
// @Tags Budget
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BudgetResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budget, err := h.budgetService.GetOrCreateCurrentBudget(c.Request().Context(), userID)
	if err != nil {
		return SendBudgetError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

// SaveBudget replaces the overall amount and all allocations
// @Summary Replace the budget
// @Tags Budget
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SaveBudgetRequest true "Budget amounts"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Malformed request"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 409 {object} errors.ErrorResponse "BUDGET_003 - Concurrent update"
// @Failure 422 {object} errors.ErrorResponse "BUDGET_002 - Budget rule violated"
// @Router /budget [put]
func (h *BudgetHandler) SaveBudget(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SaveBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	fields, err := req.ToFields()
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	budget, err := h.budgetService.SaveBudget(c.Request().Context(), userID, fields)
	if err != nil {
		return SendBudgetError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

// PatchBudget updates the overall amount and/or some allocations. The merged
// budget must satisfy the same rules as a full save.
// @Summary Partially update the budget
// @Tags Budget
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PatchBudgetRequest true "Changed amounts"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} errors.ErrorResponse "BUDGET_006 - Nothing to update"
// @Failure 409 {object} errors.ErrorResponse "BUDGET_003 - Concurrent update"
// @Failure 422 {object} errors.ErrorResponse "BUDGET_002 - Budget rule violated"
// @Router /budget [patch]
func (h *BudgetHandler) PatchBudget(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.PatchBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	patch, err := req.ToPatch()
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if patch.IsEmpty() {
		return SendError(c, errors.BudgetEmptyPatch)
	}

	budget, err := h.budgetService.PatchBudget(c.Request().Context(), userID, patch)
	if err != nil {
		return SendBudgetError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

// DeleteBudget removes the current budget. The next read seeds a new default.
// @Summary Delete the budget
// @Tags Budget
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budget [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.budgetService.DeleteBudget(c.Request().Context(), userID); err != nil {
		return SendBudgetError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetDashboard returns the dashboard view of a month
// @Summary Get the dashboard
// @Description Monthly summary, month-over-month trends, category breakdown, budget reconciliation and history
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param year query int false "Year, defaults to the current year"
// @Param month query int false "Month 1-12, defaults to the current month"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid period"
// @Failure 502 {object} errors.ErrorResponse "SYSTEM_007 - Transaction data unavailable"
// @Router /dashboard [get]
func (h *BudgetHandler) GetDashboard(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.DashboardQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails("year and month must be integers"))
	}

	if err := c.Validate(query); err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(err.Error()))
	}

	period := models.PeriodOf(h.now().In(h.location))
	if query.IsSet() {
		period = models.Period{Year: query.Year, Month: query.Month}
	} else if query.Year != 0 || query.Month != 0 {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails("year and month must be given together"))
	}

	view, err := h.budgetService.GetDashboardView(c.Request().Context(), userID, period)
	if err != nil {
		return SendBudgetError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewDashboardResponse(view))
}

// GetCategories lists the budget categories
// @Summary List budget categories
// @Tags Budget
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /categories [get]
func (h *BudgetHandler) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.CategoriesResponse{
		Categories:      models.AllCategories(),
		DefaultCategory: models.CategoryDefault,
	})
}
