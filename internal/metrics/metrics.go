// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ChartsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "phitinh_charts_total",
		Help: "Charts built, by facing classification",
	}, []string{"kind"})
	ChartDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "phitinh_chart_duration_ms",
		Help:    "Chart request duration in milliseconds",
		Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 50, 100},
	})
	GatesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "phitinh_gates_total",
		Help: "Gate detection outcomes",
	}, []string{"outcome"})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "phitinh_cache_hits_total",
		Help: "Chart cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "phitinh_cache_misses_total",
		Help: "Chart cache misses",
	})
	InvalidGridsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "phitinh_invalid_grids_total",
		Help: "Composed grids that failed the permutation check",
	})
	SweepsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "phitinh_sweeps_total",
		Help: "Completed 24-mountain sweeps",
	})
)

func init() {
	prometheus.MustRegister(ChartsTotal)
	prometheus.MustRegister(ChartDurationMs)
	prometheus.MustRegister(GatesTotal)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(InvalidGridsTotal)
	prometheus.MustRegister(SweepsTotal)
}

// Handler exposes the default registry.
func Handler() http.Handler { return promhttp.Handler() }
