package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsClassified   *prometheus.CounterVec
	budgetValidationFailures *prometheus.CounterVec
	budgetsCreated           *prometheus.CounterVec
	budgetCreateRaces        prometheus.Counter
	budgetSaves              *prometheus.CounterVec
	budgetsDeleted           prometheus.Counter
	dashboardDuration        prometheus.Histogram
	dashboardTransactions    prometheus.Histogram
	devTransactionsSeeded    prometheus.Counter
	transactionSourceCalls   *prometheus.CounterVec
}

// NewPrometheusMetrics registers the budget metrics with reg. A nil reg uses
// the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsClassified: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_classified_total",
				Help: "Total number of transactions classified, by classification method",
			},
			[]string{"method"},
		),
		budgetValidationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_validation_failures_total",
				Help: "Total number of rejected budget writes, by rule",
			},
			[]string{"reason"},
		),
		budgetsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgets_created_total",
				Help: "Total number of budgets created",
			},
			[]string{"source"},
		),
		budgetCreateRaces: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_create_races_total",
				Help: "Total number of budget creates that lost to a concurrent create",
			},
		),
		budgetSaves: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_saves_total",
				Help: "Total number of budget updates",
			},
			[]string{"operation"},
		),
		budgetsDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "budgets_deleted_total",
				Help: "Total number of budgets deleted",
			},
		),
		dashboardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_build_duration_milliseconds",
				Help:    "Dashboard view build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		dashboardTransactions: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_transactions",
				Help:    "Number of transactions aggregated per dashboard view",
				Buckets: prometheus.ExponentialBuckets(10, 2, 10),
			},
		),
		devTransactionsSeeded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dev_transactions_seeded_total",
				Help: "Total number of generated transactions stored by the development seed endpoint",
			},
		),
		transactionSourceCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_source_calls_total",
				Help: "Total number of bank-data source calls, by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction_classified":
		if method := tags["method"]; method != "" {
			m.transactionsClassified.WithLabelValues(method).Inc()
		}
	case "budget_validation_failed":
		if reason := tags["reason"]; reason != "" {
			m.budgetValidationFailures.WithLabelValues(reason).Inc()
		}
	case "budget_created":
		m.budgetsCreated.WithLabelValues(tags["source"]).Inc()
	case "budget_create_race":
		m.budgetCreateRaces.Inc()
	case "budget_saved":
		if operation := tags["operation"]; operation != "" {
			m.budgetSaves.WithLabelValues(operation).Inc()
		}
	case "budget_deleted":
		m.budgetsDeleted.Inc()
	case "transaction_source_call":
		if outcome := tags["outcome"]; outcome != "" {
			m.transactionSourceCalls.WithLabelValues(outcome).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dashboard_build":
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "dashboard_transactions":
		m.dashboardTransactions.Observe(value)
	case "dev_transactions_seeded":
		m.devTransactionsSeeded.Add(value)
	}
}
