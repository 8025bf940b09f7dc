package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	RESULT_FOUND            = "found"
	RESULT_NO_PATH          = "no_path"
	RESULT_INVALID_ENDPOINT = "invalid_endpoint"
	RESULT_ERROR            = "error"
	RESULT_SAME_ENDPOINT    = "same_endpoint"
)

var (
	// routeComputeTotal counts route computations by algorithm and result
	routeComputeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfindx_route_compute_total",
		Help: "Total route computations by algorithm and result",
	}, []string{"algorithm", "result"})

	routeComputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wayfindx_route_compute_duration_seconds",
		Help:    "Fetch, build, solve and assemble duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	}, []string{"algorithm"})

	routeSettledNodes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wayfindx_route_settled_nodes",
		Help:    "Number of vertices settled by the solver per query",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 5000},
	}, []string{"algorithm"})

	graphSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wayfindx_graph_edges",
		Help:    "Number of edges of the per-query building graph",
		Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000},
	})
)

func ObserveRouteCompute(algorithm, result string, seconds float64) {
	routeComputeTotal.WithLabelValues(algorithm, result).Inc()
	routeComputeDuration.WithLabelValues(algorithm).Observe(seconds)
}

func ObserveSettledNodes(algorithm string, n int) {
	routeSettledNodes.WithLabelValues(algorithm).Observe(float64(n))
}

func ObserveGraphSize(numberOfEdges int) {
	graphSize.Observe(float64(numberOfEdges))
}
