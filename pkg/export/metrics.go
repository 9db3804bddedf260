package export

import "github.com/zeromicro/go-zero/core/metric"

const (
	formatHTML  = "html"
	formatEmail = "email"
)

var (
	renderDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "plat_bionic",
		Subsystem: "export",
		Name:      "duration_seconds",
		Help:      "Export render duration in seconds",
		Labels:    []string{"format"},
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})

	renderCacheHits = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_bionic",
		Subsystem: "export",
		Name:      "cache_hits_total",
		Help:      "Email render cache hits",
		Labels:    []string{"format"},
	})

	renderCacheMisses = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_bionic",
		Subsystem: "export",
		Name:      "cache_misses_total",
		Help:      "Email render cache misses",
		Labels:    []string{"format"},
	})
)
