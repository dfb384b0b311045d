package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budget-engine/internal/config"
	"budget-engine/internal/database"
	"budget-engine/internal/handlers"
	"budget-engine/internal/middleware"
	"budget-engine/internal/repositories"
	"budget-engine/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApplication(cfg, db, logger)
	go app.rateLimiter.RunCleanup(ctx)

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "address", address, "environment", cfg.Server.Environment)
		if err := app.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.echo.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	options := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, options))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, options))
}

type application struct {
	echo        *echo.Echo
	rateLimiter *middleware.RateLimiter
}

// newApplication wires repositories, services and handlers into an echo server
func newApplication(cfg *config.Config, db *database.DB, logger *slog.Logger) *application {
	metrics := services.NewPrometheusMetrics(nil)
	location := cfg.Budget.Location()

	budgetRepo := repositories.NewBudgetRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)

	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     cfg.Budget.SourceMaxFailures,
		ResetTimeout:    cfg.Budget.SourceResetTimeout,
		HalfOpenMaxSucc: 1,
	})
	transactionSource := services.NewGuardedTransactionSource(transactionRepo, breaker, metrics, logger)

	classifier := services.NewClassifier(metrics, logger)
	budgetService := services.NewBudgetService(
		budgetRepo,
		transactionSource,
		services.NewBudgetValidator(),
		classifier,
		services.NewMonthlyAggregator(classifier, location, logger),
		services.NewReconciler(classifier),
		metrics,
		services.BudgetSettings{
			DefaultOverallAmount: cfg.Budget.DefaultOverallAmount,
			HistoryMonths:        cfg.Budget.HistoryMonths,
			Location:             location,
		},
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit("64K"))

	var devHandler *handlers.DevHandler
	if !cfg.IsProduction() {
		devHandler = handlers.NewDevHandler(transactionRepo, services.NewTransactionGenerator, metrics, location, logger)
	}

	registerRoutes(e, routeHandlers{
		health:      handlers.NewHealthCheckHandler(db.DB),
		budget:      handlers.NewBudgetHandler(budgetService, location),
		dev:         devHandler,
		auth:        middleware.RequireAuth(middleware.NewTokenValidator(cfg.JWT.Secret, cfg.JWT.Issuer)),
		rateLimiter: rateLimiter.Middleware(),
	})

	return &application{echo: e, rateLimiter: rateLimiter}
}
