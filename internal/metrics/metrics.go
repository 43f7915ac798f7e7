package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the dashboard backend.
type Metrics struct {
	registry *prometheus.Registry

	ScansTotal       prometheus.Counter
	ScanDuration     prometheus.Histogram
	FetchFailures    *prometheus.CounterVec // labels: symbol
	FetchDuration    prometheus.Histogram
	ProjectionsTotal prometheus.Counter
}

// New registers and returns all metrics on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ScansTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quantpulse_scans_total",
			Help: "Total watchlist scans executed",
		}),
		ScanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quantpulse_scan_duration_seconds",
			Help:    "Full watchlist scan duration",
			Buckets: prometheus.DefBuckets,
		}),
		FetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quantpulse_fetch_failures_total",
			Help: "Per-symbol provider fetch failures",
		}, []string{"symbol"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quantpulse_fetch_duration_seconds",
			Help:    "Single-symbol provider fetch duration",
			Buckets: prometheus.DefBuckets,
		}),
		ProjectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quantpulse_projections_total",
			Help: "Total DCA projections computed",
		}),
	}
	m.registry.MustRegister(
		m.ScansTotal,
		m.ScanDuration,
		m.FetchFailures,
		m.FetchDuration,
		m.ProjectionsTotal,
	)
	return m
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
