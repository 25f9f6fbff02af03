package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestSubmissionMetricsNilSafe(t *testing.T) {
	t.Parallel()

	var m *SubmissionMetrics
	m.IncSuccess()
	m.IncFailure("header")
	m.ObserveDuration("success", time.Second)

	empty := NewSubmissionMetrics(nil)
	empty.IncSuccess()
	empty.IncFailure("items")
	empty.ObserveDuration("failure", time.Second)
}

func TestSubmissionMetricsCounts(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewSubmissionMetrics(reg)

	m.IncSuccess()
	m.IncSuccess()
	m.IncFailure("items")
	m.IncFailure("")
	m.ObserveDuration("success", 250*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	byName := map[string]*dto.MetricFamily{}
	for _, fam := range families {
		byName[fam.GetName()] = fam
	}

	success, ok := byName["quote_submission_success_total"]
	if !ok {
		t.Fatal("success counter not registered")
	}
	if got := success.GetMetric()[0].GetCounter().GetValue(); got != 2 {
		t.Fatalf("expected 2 successes, got %v", got)
	}

	failure, ok := byName["quote_submission_failure_total"]
	if !ok {
		t.Fatal("failure counter not registered")
	}
	steps := map[string]float64{}
	for _, metric := range failure.GetMetric() {
		var step string
		for _, label := range metric.GetLabel() {
			if label.GetName() == "step" {
				step = label.GetValue()
			}
		}
		steps[step] = metric.GetCounter().GetValue()
	}
	if steps["items"] != 1 {
		t.Fatalf("expected 1 items failure, got %v", steps["items"])
	}
	if steps["unknown"] != 1 {
		t.Fatalf("expected blank step to normalize to unknown, got %+v", steps)
	}

	if _, ok := byName["quote_submission_duration_seconds"]; !ok {
		t.Fatal("duration histogram not registered")
	}
}
