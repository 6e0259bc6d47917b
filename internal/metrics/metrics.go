// Package metrics defines Prometheus instrumentation for the watcher.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Staleness cache metrics, labeled by aggregate kind (weekly, session).
	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cwatch_cache_hits_total",
			Help: "Aggregation results served from the mtime cache",
		},
		[]string{"kind"},
	)

	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cwatch_cache_misses_total",
			Help: "Aggregation calls that reparsed source files",
		},
		[]string{"kind"},
	)

	// Relay metrics
	RelayMessages = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cwatch_relay_messages_total",
			Help: "Non-empty hook payloads received on the notification socket",
		},
	)

	RelayErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cwatch_relay_errors_total",
			Help: "Transport errors swallowed by the relay accept loop",
		},
	)

	// Watcher metrics
	AlertsFired = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cwatch_alerts_fired_total",
			Help: "Alerts dispatched to the user",
		},
	)

	Refreshes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cwatch_refreshes_total",
			Help: "Stats refresh passes run by the watcher loop",
		},
	)
)

func init() {
	prometheus.MustRegister(
		CacheHits,
		CacheMisses,
		RelayMessages,
		RelayErrors,
		AlertsFired,
		Refreshes,
	)
}
