package hints

import "github.com/prometheus/client_golang/prometheus"

// metricsSet groups the hints database's Prometheus instrumentation.
// Grounded on the package-level NewCounterVec/MustRegister convention
// used throughout the teacher's middleware and rate-limiting packages.
type metricsSet struct {
	zones           prometheus.Counter
	slotTransitions prometheus.Counter
	iteratorReseeds prometheus.Counter
}

var defaultMetrics = newMetricsSet()

func newMetricsSet() *metricsSet {
	m := &metricsSet{
		zones: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dnscore_hints_zones",
			Help: "Total number of hints zones ever created.",
		}),
		slotTransitions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dnscore_hints_slot_transitions_total",
			Help: "Total number of hints slot insertions (including ring overwrites).",
		}),
		iteratorReseeds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dnscore_hints_iterator_reseeds_total",
			Help: "Total number of times a hints iterator reseeded its ring position.",
		}),
	}
	prometheus.MustRegister(m.zones, m.slotTransitions, m.iteratorReseeds)
	return m
}
