// Package stopwatchprom exports durations reported by stopwatch timers
// as a Prometheus histogram.
package stopwatchprom

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wrr/stopwatch"
)

const DefaultName = "stopwatch_duration_seconds"

// Recorder implements stopwatch.Recorder. Observations are labeled
// with the timer name and the kind of the operation (stop, split or
// lap). Titles are not used as labels, because they are often unique.
type Recorder struct {
	durations *prometheus.HistogramVec
}

// NewRecorder creates a recorder and registers its histogram with reg.
// Empty Name and Help in opts are replaced with defaults, nil Buckets
// with prometheus.DefBuckets.
func NewRecorder(reg prometheus.Registerer, opts prometheus.HistogramOpts) (*Recorder, error) {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Help == "" {
		opts.Help = "Durations reported by stopwatch timers in seconds"
	}
	if opts.Buckets == nil {
		opts.Buckets = prometheus.DefBuckets
	}
	durations := prometheus.NewHistogramVec(opts, []string{"timer", "kind"})
	if err := reg.Register(durations); err != nil {
		return nil, fmt.Errorf("error registering %s: %w", opts.Name, err)
	}
	return &Recorder{durations: durations}, nil
}

func (r *Recorder) Record(m stopwatch.Mark) {
	r.durations.WithLabelValues(m.Timer, m.Kind.String()).Observe(m.Duration.Seconds())
}

// Collector returns the underlying histogram.
func (r *Recorder) Collector() prometheus.Collector {
	return r.durations
}
