package snapshot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// persistDuration tracks how long whole-collection snapshot writes take.
// Snapshot writes happen inside the repository mutex, so this is also the
// floor on mutation latency.
var persistDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "inventory",
	Subsystem: "snapshot",
	Name:      "persist_duration_seconds",
	Help:      "Duration of atomic whole-collection snapshot writes.",
	Buckets:   prometheus.DefBuckets,
})
