// Package metrics exposes Prometheus counters for answered questions.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "krishisahay"

// Recorder counts served answers by source and failed queries by kind.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	answers    *prometheus.CounterVec
	errors     *prometheus.CounterVec
	completion prometheus.Histogram
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_total",
			Help:      "Total answers served by source",
		}, []string{"source"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_errors_total",
			Help:      "Total failed queries by error kind",
		}, []string{"kind"}),
		completion: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "completion_duration_seconds",
			Help:      "Latency of completion API calls",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}),
	}

	if reg != nil {
		reg.MustRegister(r.answers, r.errors, r.completion)
	}
	return r
}

// ObserveAnswer counts an answer served from source.
func (r *Recorder) ObserveAnswer(source string) {
	if r == nil {
		return
	}
	r.answers.WithLabelValues(source).Inc()
}

// ObserveError counts a failed query of the given kind.
func (r *Recorder) ObserveError(kind string) {
	if r == nil {
		return
	}
	r.errors.WithLabelValues(kind).Inc()
}

// ObserveCompletion records how long a completion call took.
func (r *Recorder) ObserveCompletion(d time.Duration) {
	if r == nil {
		return
	}
	r.completion.Observe(d.Seconds())
}
