package engine

import "github.com/zeromicro/go-zero/core/metric"

var (
	conversionsDone = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_bionic",
		Subsystem: "engine",
		Name:      "conversions_done_total",
		Help:      "Total conversions completed",
		Labels:    []string{"source"},
	})

	conversionsFailed = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_bionic",
		Subsystem: "engine",
		Name:      "conversions_failed_total",
		Help:      "Total conversions failed",
		Labels:    []string{"reason"},
	})

	conversionsRetried = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_bionic",
		Subsystem: "engine",
		Name:      "conversions_retried_total",
		Help:      "Total conversions left on the queue for another attempt",
		Labels:    []string{"reason"},
	})

	nodesProcessed = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_bionic",
		Subsystem: "engine",
		Name:      "nodes_total",
		Help:      "Text nodes processed by outcome and path",
		Labels:    []string{"outcome", "path"},
	})

	conversionDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "plat_bionic",
		Subsystem: "engine",
		Name:      "duration_seconds",
		Help:      "Conversion duration in seconds",
		Labels:    []string{"source"},
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})

	queueDepth = metric.NewGaugeVec(&metric.GaugeVecOpts{
		Namespace: "plat_bionic",
		Subsystem: "queue",
		Name:      "depth",
		Help:      "Current conversions by status",
		Labels:    []string{"status"},
	})
)
