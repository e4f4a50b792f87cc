package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"editorbot/internal/builder"
	"editorbot/internal/logging"
	"editorbot/internal/plan"
	"editorbot/internal/serialize"
	"editorbot/internal/validate"
)

// ErrValidationFailed is wrapped by every FailedValidationError.
var ErrValidationFailed = errors.New("render plan validation failed")

// FailedValidationError reports a plan with fatal validation findings.
type FailedValidationError struct {
	PlanID string
	Result validate.Result
}

func (e *FailedValidationError) Error() string {
	return ErrValidationFailed.Error() + ": " + e.Result.FatalMessages()
}

func (e *FailedValidationError) Unwrap() error { return ErrValidationFailed }

// Request carries the inputs of one build.
type Request struct {
	Script      builder.Script
	Template    builder.Template
	Strategy    builder.VisualStrategy
	AudioSource string
}

// Result is a validated plan together with its wire record.
type Result struct {
	Plan       plan.Plan
	Validation validate.Result
	Record     serialize.Record
}

// Pipeline chains the builder, the validator and the serializer.
type Pipeline struct {
	builder *builder.Builder
	logger  *slog.Logger
}

// New returns a Pipeline. A nil builder means builder.New(); a nil logger
// discards output.
func New(b *builder.Builder, logger *slog.Logger) *Pipeline {
	if b == nil {
		b = builder.New()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{builder: b, logger: logger}
}

// Run builds, validates and serializes one plan. Build failures are returned
// as is; fatal findings are returned as *FailedValidationError together with
// the partial Result so callers can report the findings.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	built, err := p.builder.Build(req.Script, req.Template, req.Strategy, req.AudioSource)
	if err != nil {
		logging.ErrorWithContext(p.logger, "render plan build failed", "build_failed",
			logging.String(logging.FieldTemplateID, req.Template.ID),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check beat durations in the script"),
		)
		return Result{}, err
	}

	validation, err := p.Check(built)
	result := Result{Plan: built, Validation: validation}
	if err != nil {
		return result, err
	}

	result.Record = serialize.Serialize(built)
	p.logger.Info("render plan generated",
		logging.String(logging.FieldRenderPlanID, built.ID()),
		logging.Int("scenes", len(built.Scenes())),
		logging.Float64("total_duration", built.TotalDuration()),
		logging.Int("warnings", validation.WarningCount),
	)
	return result, nil
}

// Check validates an existing plan and logs every finding. It returns a
// *FailedValidationError when any finding is fatal.
func (p *Pipeline) Check(pl plan.Plan) (validate.Result, error) {
	result := validate.Validate(pl)
	planAttr := logging.String(logging.FieldRenderPlanID, pl.ID())

	for _, e := range result.Fatal() {
		p.logger.Error(e.Message,
			planAttr,
			logging.String(logging.FieldCode, string(e.Code)),
			logging.String(logging.FieldLocation, e.Location),
		)
	}
	for _, e := range result.Warnings() {
		logging.WarnWithContext(p.logger, e.Message, "render_plan_warning",
			planAttr,
			logging.String(logging.FieldCode, string(e.Code)),
			logging.String(logging.FieldLocation, e.Location),
			logging.String(logging.FieldImpact, "plan is renderable but may look or sound off"),
		)
	}

	if result.Passed {
		return result, nil
	}
	logging.ErrorWithContext(p.logger, "render plan validation failed", "validation_failed",
		planAttr,
		logging.Int("fatal_errors", result.FatalCount),
		logging.Int("warnings", result.WarningCount),
		logging.String("error_summary", result.FatalMessages()),
		logging.String(logging.FieldErrorHint, "revise the script or template and rebuild"),
	)
	return result, &FailedValidationError{PlanID: pl.ID(), Result: result}
}
