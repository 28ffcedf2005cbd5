package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const evaluationMeterName = "github.com/yalgashev/survey/evaluation"

// EvaluationMetrics counts wizard outcomes. Instruments come from the global
// meter provider, which is a no-op until InitTelemetry runs.
type EvaluationMetrics struct {
	surveys    metric.Int64Counter
	internship metric.Int64Counter
	skipped    metric.Int64Counter
	completed  metric.Int64Counter
}

func NewEvaluationMetrics() (*EvaluationMetrics, error) {
	meter := otel.Meter(evaluationMeterName)

	surveys, err := meter.Int64Counter("evaluation.surveys.submitted",
		metric.WithDescription("Professor evaluations persisted"),
		metric.WithUnit("{survey}"),
	)
	if err != nil {
		return nil, err
	}
	internship, err := meter.Int64Counter("evaluation.internship.submitted",
		metric.WithDescription("Internship evaluations persisted"),
		metric.WithUnit("{survey}"),
	)
	if err != nil {
		return nil, err
	}
	skipped, err := meter.Int64Counter("evaluation.professors.skipped",
		metric.WithDescription("Professors skipped as not taught by the student"),
		metric.WithUnit("{professor}"),
	)
	if err != nil {
		return nil, err
	}
	completed, err := meter.Int64Counter("evaluation.passes.completed",
		metric.WithDescription("Wizard passes counted as participation"),
		metric.WithUnit("{pass}"),
	)
	if err != nil {
		return nil, err
	}

	return &EvaluationMetrics{
		surveys:    surveys,
		internship: internship,
		skipped:    skipped,
		completed:  completed,
	}, nil
}

func (m *EvaluationMetrics) SurveySubmitted(ctx context.Context, group string) {
	if m == nil {
		return
	}
	m.surveys.Add(ctx, 1, metric.WithAttributes(attribute.String("group", group)))
}

func (m *EvaluationMetrics) InternshipSubmitted(ctx context.Context, group string) {
	if m == nil {
		return
	}
	m.internship.Add(ctx, 1, metric.WithAttributes(attribute.String("group", group)))
}

func (m *EvaluationMetrics) ProfessorSkipped(ctx context.Context, group string) {
	if m == nil {
		return
	}
	m.skipped.Add(ctx, 1, metric.WithAttributes(attribute.String("group", group)))
}

func (m *EvaluationMetrics) PassCompleted(ctx context.Context, group string, semester int) {
	if m == nil {
		return
	}
	m.completed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("group", group),
		attribute.Int("semester", semester),
	))
}
