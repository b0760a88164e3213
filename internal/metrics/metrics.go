// Package metrics exposes Prometheus instrumentation for the report endpoints.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Report outcomes recorded on grades_reports_total.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Reports counts report requests and their latency.
type Reports struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New registers the report collectors with reg.
func New(reg prometheus.Registerer) *Reports {
	m := &Reports{
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "grades_reports_total",
				Help: "Report requests by report name and outcome.",
			},
			[]string{"report", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "grades_report_duration_seconds",
				Help:    "Time spent fetching records and computing a report.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report"},
		),
	}
	reg.MustRegister(m.total, m.duration)
	return m
}

// Observe records one report. A nil receiver is a no-op so handlers can run without metrics.
func (m *Reports) Observe(report, outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.total.WithLabelValues(report, outcome).Inc()
	m.duration.WithLabelValues(report).Observe(time.Since(started).Seconds())
}
