package batch

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics used in monitoring service.
var (
	scriptsDecoded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Help:      "Number of successfully decoded scripts",
			Name:      "scripts_decoded",
			Namespace: "cs2",
		},
	)
	scriptsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Number of scripts that failed to decode",
			Name:      "scripts_failed",
			Namespace: "cs2",
		},
		[]string{"stage"},
	)
	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Number of cache hits",
			Name:      "cache_hits",
			Namespace: "cs2",
		},
		[]string{"cache"},
	)
	decodeTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Help:      "Script decoding time",
			Name:      "script_decode_time",
			Namespace: "cs2",
		},
	)
)

func init() {
	prometheus.MustRegister(
		scriptsDecoded,
		scriptsFailed,
		cacheHits,
		decodeTime,
	)
}

func addFailure(stage Stage) {
	scriptsFailed.WithLabelValues(stage.String()).Inc()
}

func addCacheHit(cache string) {
	cacheHits.WithLabelValues(cache).Inc()
}
