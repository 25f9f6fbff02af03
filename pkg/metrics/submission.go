package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SubmissionMetrics records outcomes of quote submission attempts.
type SubmissionMetrics struct {
	duration *prometheus.HistogramVec
	success  prometheus.Counter
	failure  *prometheus.CounterVec
}

// NewSubmissionMetrics registers the submission metrics on the provided registerer.
func NewSubmissionMetrics(reg prometheus.Registerer) *SubmissionMetrics {
	if reg == nil {
		return &SubmissionMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quote_submission_duration_seconds",
		Help:    "Duration of quote submission attempts in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	success := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quote_submission_success_total",
		Help: "Successful quote submissions.",
	})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_submission_failure_total",
		Help: "Failed quote submissions by step.",
	}, []string{"step"})
	reg.MustRegister(duration, success, failure)
	return &SubmissionMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records how long a submission attempt took.
func (s *SubmissionMetrics) ObserveDuration(outcome string, duration time.Duration) {
	if s == nil || s.duration == nil {
		return
	}
	s.duration.WithLabelValues(normalizeLabel(outcome)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter.
func (s *SubmissionMetrics) IncSuccess() {
	if s == nil || s.success == nil {
		return
	}
	s.success.Inc()
}

// IncFailure increments the failure counter for the named write step.
func (s *SubmissionMetrics) IncFailure(step string) {
	if s == nil || s.failure == nil {
		return
	}
	s.failure.WithLabelValues(normalizeLabel(step)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
