package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var generationPassesTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "deploytime_generation_passes_total",
		Help: "Total number of deploy time generation passes by result.",
	},
	[]string{"result"},
)

var generationPassDuration = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "deploytime_generation_pass_duration_seconds",
		Help:    "Duration of deploy time generation passes by result.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	},
	[]string{"result"},
)

var deployTimeRecords = promauto.With(prometheus.DefaultRegisterer).NewGauge(
	prometheus.GaugeOpts{
		Name: "deploytime_records",
		Help: "Number of deploy time records produced by the last successful generation pass.",
	},
)

// RecordGenerationPass counts a finished generation pass and observes its duration.
func RecordGenerationPass(result string, duration time.Duration) {
	generationPassesTotal.WithLabelValues(result).Inc()
	generationPassDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// SetDeployTimeRecords sets the number of records currently exposed.
func SetDeployTimeRecords(count int) {
	deployTimeRecords.Set(float64(count))
}
