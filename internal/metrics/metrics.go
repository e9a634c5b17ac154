// Package metrics times repository operations. Durations are observed into
// a Prometheus histogram held in a private registry, which can be written
// out in node_exporter textfile format.
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/stwalsh4118/tagit/internal/debug"
)

// Operation names
const (
	OpCreateTag   = "create_tag"
	OpGetAllTags  = "get_all_tags"
	OpResolveCommit = "resolve_commit"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Namespace prefixes every metric name.
const Namespace = "tagit"

// Recorder owns the registry and the operation duration histogram.
// A nil *Recorder is valid and only logs.
type Recorder struct {
	registry  *prometheus.Registry
	durations *prometheus.HistogramVec
	now       func() time.Time
}

// NewRecorder returns a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations started from the tag dialog.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"operation", "outcome"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(durations)

	return &Recorder{
		registry:  registry,
		durations: durations,
		now:       time.Now,
	}
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Start begins timing op.
func (r *Recorder) Start(op string) *Stopwatch {
	now := time.Now
	if r != nil && r.now != nil {
		now = r.now
	}
	return &Stopwatch{recorder: r, op: op, start: now(), now: now}
}

// WriteTextfile writes every gathered metric to path in the text exposition
// format. An empty path is a no-op.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// Stopwatch measures one operation. Stop is safe to call more than once;
// only the first call records.
type Stopwatch struct {
	recorder *Recorder
	op       string
	start    time.Time
	now      func() time.Time

	once    sync.Once
	elapsed time.Duration
}

// Stop ends the measurement, records it under outcome and returns the
// elapsed time.
func (s *Stopwatch) Stop(err error) time.Duration {
	s.once.Do(func() {
		s.elapsed = s.now().Sub(s.start)

		outcome := OutcomeSuccess
		if err != nil {
			outcome = OutcomeFailure
		}
		if s.recorder != nil {
			s.recorder.durations.WithLabelValues(s.op, outcome).Observe(s.elapsed.Seconds())
		}
		debug.Info("operation finished", "op", s.op, "outcome", outcome, "elapsed", FormatElapsed(s.elapsed))
	})
	return s.elapsed
}

// FormatDuration returns an abbreviated duration string.
// Examples: "0s", "45s", "5m", "1h 23m", "2h"
func FormatDuration(seconds int64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm", seconds/60)
	}
	hours := seconds / 3600
	mins := (seconds % 3600) / 60
	if mins > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dh", hours)
}

// FormatElapsed formats an operation duration: milliseconds below one
// second, FormatDuration above.
// Examples: "0ms", "120ms", "3s", "2m"
func FormatElapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return FormatDuration(int64(d / time.Second))
}
