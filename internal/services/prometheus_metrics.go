package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	statementsGenerated  *prometheus.CounterVec
	statementDuration    prometheus.Histogram
	reportsGenerated     prometheus.Counter
	reportDuration       prometheus.Histogram
	analyticsQueries     *prometheus.CounterVec
	clientsCreated       prometheus.Counter
	clientsMerged        prometheus.Counter
	sessionsScheduled    *prometheus.CounterVec
	cancellationChanges  *prometheus.CounterVec
	dayEventsRecorded    *prometheus.CounterVec
	paymentsRecorded     *prometheus.CounterVec
	paymentAmount        prometheus.Histogram
	activeClientsTotal   prometheus.Gauge
	demoSeedsRun         prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		statementsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statements_generated_total",
				Help: "Total number of statements generated",
			},
			[]string{"scope"},
		),
		statementDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_build_duration_milliseconds",
				Help:    "Statement build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		reportsGenerated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "accounts_reports_generated_total",
				Help: "Total number of accounts rollup reports generated",
			},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "accounts_report_build_duration_milliseconds",
				Help:    "Accounts report build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		analyticsQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_queries_total",
				Help: "Total number of dashboard analytics queries",
			},
			[]string{"report"},
		),
		clientsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "clients_created_total",
				Help: "Total number of clients created",
			},
		),
		clientsMerged: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "clients_merged_total",
				Help: "Total number of duplicate client merges",
			},
		),
		sessionsScheduled: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sessions_scheduled_total",
				Help: "Total number of training sessions scheduled",
			},
			[]string{"type"},
		),
		cancellationChanges: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "session_cancellation_changes_total",
				Help: "Total number of coach cancellation flag changes",
			},
			[]string{"cancelled"},
		),
		dayEventsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "day_events_recorded_total",
				Help: "Total number of rain or closure days recorded",
			},
			[]string{"kind"},
		),
		paymentsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_recorded_total",
				Help: "Total number of payments recorded",
			},
			[]string{"earmarked"},
		),
		paymentAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "payment_amount",
				Help:    "Recorded payment amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(10, 2, 10),
			},
		),
		activeClientsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_clients_total",
				Help: "Current number of active clients",
			},
		),
		demoSeedsRun: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "demo_seeds_run_total",
				Help: "Total number of demo data seed runs",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "statement_generated":
		m.statementsGenerated.WithLabelValues(tags["scope"]).Inc()
	case "accounts_report_generated":
		m.reportsGenerated.Inc()
	case "analytics_query":
		if report := tags["report"]; report != "" {
			m.analyticsQueries.WithLabelValues(report).Inc()
		}
	case "client_created":
		m.clientsCreated.Inc()
	case "clients_merged":
		m.clientsMerged.Inc()
	case "session_scheduled":
		if t := tags["type"]; t != "" {
			m.sessionsScheduled.WithLabelValues(t).Inc()
		}
	case "session_cancellation_changed":
		m.cancellationChanges.WithLabelValues(tags["cancelled"]).Inc()
	case "day_event_recorded":
		if kind := tags["kind"]; kind != "" {
			m.dayEventsRecorded.WithLabelValues(kind).Inc()
		}
	case "payment_recorded":
		m.paymentsRecorded.WithLabelValues(tags["earmarked"]).Inc()
	case "demo_seed_run":
		m.demoSeedsRun.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "statement_build":
		m.statementDuration.Observe(float64(duration.Milliseconds()))
	case "accounts_report_build":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "payment_amount":
		m.paymentAmount.Observe(value)
	case "active_clients":
		m.activeClientsTotal.Set(value)
	}
}
