package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"budget-engine/internal/models"

	"github.com/google/uuid"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

// CircuitState is the state of a circuit breaker
type CircuitState int

const (
	StateClosed CircuitState = iota
	StateOpen
	StateHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

type CircuitBreaker struct {
	mu                sync.Mutex
	config            CircuitBreakerConfig
	state             CircuitState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	if config.MaxFailures < 1 {
		config.MaxFailures = 1
	}
	if config.HalfOpenMaxSucc < 1 {
		config.HalfOpenMaxSucc = 1
	}
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

// Allow reports whether a call may go through. An open breaker moves to
// half-open once the reset timeout has passed since the last failure.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.state = StateHalfOpen
		cb.halfOpenSuccesses = 0
	}

	return cb.state != StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.state = StateClosed
			cb.failures = 0
			cb.halfOpenSuccesses = 0
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateHalfOpen:
		cb.state = StateOpen
		cb.halfOpenSuccesses = 0
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.state = StateOpen
		}
	}
}

func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) FailureCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures
}

// guardedTransactionSource stops calling a failing bank-data source until it recovers
type guardedTransactionSource struct {
	source  TransactionSourceInterface
	breaker *CircuitBreaker
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewGuardedTransactionSource wraps source with a circuit breaker. Calls made
// while the breaker is open fail fast with ErrCircuitBreakerOpen. Cancelled
// requests do not count as source failures.
func NewGuardedTransactionSource(
	source TransactionSourceInterface,
	breaker *CircuitBreaker,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionSourceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &guardedTransactionSource{
		source:  source,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

func (g *guardedTransactionSource) GetTransactions(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]models.Transaction, error) {
	if !g.breaker.Allow() {
		g.record("rejected")
		return nil, ErrCircuitBreakerOpen
	}

	transactions, err := g.source.GetTransactions(ctx, userID, startDate, endDate)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		before := g.breaker.State()
		g.breaker.RecordFailure()
		if after := g.breaker.State(); after != before {
			g.logger.Warn("transaction source circuit state changed",
				"from", before.String(),
				"to", after.String(),
				"error", err)
		}
		g.record("failure")
		return nil, fmt.Errorf("transaction source: %w", err)
	}

	g.breaker.RecordSuccess()
	g.record("success")
	return transactions, nil
}

func (g *guardedTransactionSource) record(outcome string) {
	if g.metrics != nil {
		g.metrics.IncrementCounter("transaction_source_call", map[string]string{"outcome": outcome})
	}
}
