package observability

import (
	"context"
	"testing"

	"github.com/yalgashev/survey/config"
)

func TestFromCentralConfig(t *testing.T) {
	var c config.Config
	c.Server.Environment = "production"
	c.Observability.ServiceName = "evaluations"
	c.Observability.Tracing.Enabled = true
	c.Observability.Tracing.OTLPEndpoint = "collector:4318"
	c.Observability.Tracing.SamplingRate = 0.25

	got := FromCentralConfig(&c)
	if got.ServiceName != "evaluations" || got.Environment != "production" {
		t.Errorf("identity = %+v", got)
	}
	if !got.TracingEnabled || got.OTLPEndpoint != "collector:4318" || got.SamplingRate != 0.25 {
		t.Errorf("tracing = %+v", got)
	}
}

// Counters are no-ops before InitTelemetry and on a nil receiver.
func TestEvaluationMetricsNoop(t *testing.T) {
	ctx := context.Background()

	var nilMetrics *EvaluationMetrics
	nilMetrics.SurveySubmitted(ctx, "MED-101")
	nilMetrics.PassCompleted(ctx, "MED-101", 2)

	m, err := NewEvaluationMetrics()
	if err != nil {
		t.Fatalf("NewEvaluationMetrics: %v", err)
	}
	m.SurveySubmitted(ctx, "MED-101")
	m.InternshipSubmitted(ctx, "MED-101")
	m.ProfessorSkipped(ctx, "MED-101")
	m.PassCompleted(ctx, "MED-101", 2)
}
