package chart

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus metrics of a chart pipeline.
type Metrics struct {
	RecomputeTotal     *prometheus.CounterVec // labels: mutation
	RecomputeDur       prometheus.Histogram
	AttachedIndicators prometheus.Gauge
	Quotes             prometheus.Gauge
}

// NewMetrics creates the chart metrics and registers them with reg. A nil reg leaves
// them unregistered, which tests use to read values directly.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RecomputeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "argochart_recompute_total",
			Help: "Full indicator recomputes by triggering mutation",
		}, []string{"mutation"}),
		RecomputeDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "argochart_recompute_duration_seconds",
			Help:    "Latency of a full recompute over every attached indicator",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		AttachedIndicators: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "argochart_attached_indicators",
			Help: "Indicators currently attached to the pipeline",
		}),
		Quotes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "argochart_quotes",
			Help: "Quotes currently held by the chart",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.RecomputeTotal,
			m.RecomputeDur,
			m.AttachedIndicators,
			m.Quotes,
		)
	}

	return m
}
