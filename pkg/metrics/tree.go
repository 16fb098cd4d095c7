package metrics

import "github.com/prometheus/client_golang/prometheus"

var TreeOperationsMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bstmap_tree_operations_total",
		Help: "tree operations applied, by operation and outcome",
	}, []string{"tree", "op", "result"})

var TreeSizeMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "bstmap_tree_size",
		Help: "number of bindings in the tree",
	}, []string{"tree"})

var TreeHeightMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "bstmap_tree_height",
		Help: "height of the tree, which is also the recursion depth of its operations",
	}, []string{"tree"})

var BenchPhaseDurationMetrics = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "bstmap_bench_phase_duration_seconds",
		Help:    "wall time of each benchmark phase",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	}, []string{"order", "phase"})

func init() {
	prometheus.MustRegister(
		TreeOperationsMetrics,
		TreeSizeMetrics,
		TreeHeightMetrics,
		BenchPhaseDurationMetrics,
	)
}
