package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	summaryLookups        *prometheus.CounterVec
	summaryRecalcDuration prometheus.Histogram
	summaryRecalcFailed   prometheus.Gauge
	installmentPayments   *prometheus.CounterVec
	accountSettlements    *prometheus.CounterVec
	apiErrors             *prometheus.CounterVec
}

// NewPrometheusMetrics registers the service metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		summaryLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "monthly_summary_lookups_total",
				Help: "Total number of monthly summary lookups by cache result",
			},
			[]string{"result"},
		),
		summaryRecalcDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "monthly_summary_recalculation_duration_milliseconds",
				Help:    "Monthly summary aggregation and store duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		summaryRecalcFailed: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "monthly_summary_recalculation_failed",
				Help: "Number of periods that failed in the last bulk recalculation",
			},
		),
		installmentPayments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "installment_payments_total",
				Help: "Total number of installment payment attempts",
			},
			[]string{"status"},
		),
		accountSettlements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_settlements_total",
				Help: "Total number of account settlement attempts",
			},
			[]string{"status"},
		),
		apiErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API error responses by error code",
			},
			[]string{"code"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "summary_cache_hit":
		m.summaryLookups.WithLabelValues("hit").Inc()
	case "summary_cache_miss":
		m.summaryLookups.WithLabelValues("miss").Inc()
	case "installment_payment":
		if status != "" {
			m.installmentPayments.WithLabelValues(status).Inc()
		}
	case "account_settlement":
		if status != "" {
			m.accountSettlements.WithLabelValues(status).Inc()
		}
	case "api_error":
		if code := tags["code"]; code != "" {
			m.apiErrors.WithLabelValues(code).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "summary_recalculation":
		m.summaryRecalcDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "summary_recalculation_failed":
		m.summaryRecalcFailed.Set(value)
	}
}
