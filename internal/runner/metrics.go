package runner

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "gospec"

// Metrics records example outcomes.
type Metrics struct {
	examplesTotal   *prometheus.CounterVec
	exampleDuration prometheus.Histogram
}

// NewMetrics registers the runner metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		examplesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "examples_total",
			Help:      "Count of examples run, by final status",
		}, []string{
			"status",
		}),
		exampleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "example_duration_seconds",
			Help:      "Duration of example runs",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) record(status Status, d time.Duration) {
	if m == nil {
		return
	}
	m.examplesTotal.WithLabelValues(status.String()).Inc()
	if status != Ignored {
		m.exampleDuration.Observe(d.Seconds())
	}
}
