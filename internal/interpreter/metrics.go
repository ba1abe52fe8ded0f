package interpreter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// interpretationsTotal counts interpretations by result kind.
	// Labels: kind (recurrence, date, none)
	interpretationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "recurring_task",
		Subsystem: "interpreter",
		Name:      "interpretations_total",
		Help:      "Total schedule text interpretations by result kind",
	}, []string{"kind"})

	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "recurring_task",
		Subsystem: "interpreter",
		Name:      "cache_hits_total",
		Help:      "Total interpretations served from the memo cache",
	})
)
