package metrics

import "github.com/prometheus/client_golang/prometheus"

// Index Prometheus metrics.
var (
	IndexedRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "propdex",
			Name:      "indexed_records",
			Help:      "Number of records in the sealed index",
		},
	)

	IndexBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "propdex",
			Name:      "index_build_duration_seconds",
			Help:      "Index build duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "propdex",
			Name:      "search_duration_seconds",
			Help:      "Search execution duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	SearchHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "propdex",
			Name:      "search_hits_total",
			Help:      "Total number of matched documents across all searches",
		},
	)

	FacetComputationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "propdex",
			Name:      "facet_computations_total",
			Help:      "Facet aggregations performed per facet name",
		},
		[]string{"facet"},
	)
)

var indexMetricsRegistered bool

// RegisterIndexMetrics registers Prometheus index metrics. Must be called once from main.
func RegisterIndexMetrics() {
	if indexMetricsRegistered {
		return
	}
	prometheus.MustRegister(IndexedRecords)
	prometheus.MustRegister(IndexBuildDuration)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchHitsTotal)
	prometheus.MustRegister(FacetComputationsTotal)
	indexMetricsRegistered = true
}
