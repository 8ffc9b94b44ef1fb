package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConversionsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "osmcad_conversions_submitted_total",
		Help: "Total number of conversion jobs submitted",
	})

	ConversionsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "osmcad_conversions_completed_total",
		Help: "Total number of conversion jobs that completed successfully",
	})

	ConversionsFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "osmcad_conversions_failed_total",
		Help: "Total number of conversion jobs that ended in error",
	})

	ActiveConversions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "osmcad_active_conversions",
		Help: "Number of conversion jobs currently pending or processing",
	})
)
