package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("recurring-task-engine/internal/task/usecase")

const (
	outcomeAdvanced     = "advanced"
	outcomeEnded        = "ended"
	outcomeNotRecurring = "not_recurring"
	outcomeDegraded     = "degraded"
	outcomeFailed       = "failed"
)

var (
	// advancementsTotal counts task completions by series outcome.
	// Labels: outcome (advanced, ended, not_recurring, degraded, failed)
	advancementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "recurring_task",
		Subsystem: "series",
		Name:      "advancements_total",
		Help:      "Total task completions by series advancement outcome",
	}, []string{"outcome"})

	indexConflictRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "recurring_task",
		Subsystem: "series",
		Name:      "index_conflict_retries_total",
		Help:      "Total re-reads of a series family after a recurrence index conflict",
	})

	advanceDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "recurring_task",
		Subsystem: "series",
		Name:      "advance_duration_seconds",
		Help:      "Time to complete a task and materialize its successor",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})
)
