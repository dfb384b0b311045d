package main

import (
	"budget-engine/internal/handlers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routeHandlers struct {
	health      *handlers.HealthCheckHandler
	budget      *handlers.BudgetHandler
	dev         *handlers.DevHandler
	auth        echo.MiddlewareFunc
	rateLimiter echo.MiddlewareFunc
}

// registerRoutes mounts the public probes and the authenticated API. Dev
// routes are mounted only when a dev handler is given.
func registerRoutes(e *echo.Echo, h routeHandlers) {
	e.GET("/health", h.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", h.rateLimiter)
	api.GET("/categories", h.budget.GetCategories)

	protected := api.Group("", h.auth)
	protected.GET("/budget", h.budget.GetBudget)
	protected.PUT("/budget", h.budget.SaveBudget)
	protected.PATCH("/budget", h.budget.PatchBudget)
	protected.DELETE("/budget", h.budget.DeleteBudget)
	protected.GET("/dashboard", h.budget.GetDashboard)

	if h.dev != nil {
		dev := protected.Group("/dev")
		dev.POST("/transactions", h.dev.SeedTransactions)
		dev.DELETE("/transactions", h.dev.ClearTransactions)
	}
}
