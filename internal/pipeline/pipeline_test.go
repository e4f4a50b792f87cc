package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"editorbot/internal/builder"
	"editorbot/internal/logging"
	"editorbot/internal/pipeline"
	"editorbot/internal/plan"
	"editorbot/internal/testsupport"
	"editorbot/internal/validate"
)

func newPipeline(t *testing.T) (*pipeline.Pipeline, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return pipeline.New(testsupport.NewBuilder(), logger), &buf
}

func TestRunProducesValidatedRecord(t *testing.T) {
	p, logs := newPipeline(t)

	result, err := p.Run(context.Background(), pipeline.Request{
		Script:      testsupport.TwoBeatScript(),
		Template:    testsupport.ReelTemplate(),
		AudioSource: "voice.wav",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !result.Validation.Passed {
		t.Fatalf("expected validation to pass: %+v", result.Validation.Errors)
	}
	if got := result.Record["render_plan_id"]; got != testsupport.FixedID {
		t.Fatalf("record id = %v", got)
	}
	if result.Plan.ID() != testsupport.FixedID {
		t.Fatalf("plan id = %q", result.Plan.ID())
	}
	if !strings.Contains(logs.String(), "render plan generated") {
		t.Fatalf("expected generated log, got %s", logs.String())
	}
}

func TestRunReturnsBuildError(t *testing.T) {
	p, logs := newPipeline(t)
	script := builder.Script{Beats: []builder.Beat{{Role: "hook", Text: "x", Duration: 0}}}

	_, err := p.Run(context.Background(), pipeline.Request{Script: script, Template: testsupport.ReelTemplate()})
	if !errors.Is(err, builder.ErrNonPositiveDuration) {
		t.Fatalf("expected ErrNonPositiveDuration, got %v", err)
	}
	if errors.Is(err, pipeline.ErrValidationFailed) {
		t.Fatal("build error must not look like a validation failure")
	}
	if !strings.Contains(logs.String(), `"event_type":"build_failed"`) {
		t.Fatalf("expected build_failed event, got %s", logs.String())
	}
}

func TestRunHonoursCancelledContext(t *testing.T) {
	p, _ := newPipeline(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Run(ctx, pipeline.Request{Script: testsupport.TwoBeatScript(), Template: testsupport.ReelTemplate()})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCheckReportsFatalFindings(t *testing.T) {
	p, logs := newPipeline(t)
	built := testsupport.BuildPlan(t, testsupport.TwoBeatScript(), testsupport.ReelTemplate(), builder.VisualStrategy{})
	params := built.Params()
	params.FPS = 0
	broken := plan.New(params)

	result, err := p.Check(broken)
	if !errors.Is(err, pipeline.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	var failed *pipeline.FailedValidationError
	if !errors.As(err, &failed) {
		t.Fatalf("expected *FailedValidationError, got %T", err)
	}
	if failed.PlanID != testsupport.FixedID {
		t.Fatalf("plan id = %q", failed.PlanID)
	}
	if result.Passed || result.FatalCount != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if !strings.Contains(err.Error(), "FPS must be positive") {
		t.Fatalf("error should carry fatal messages: %v", err)
	}
	out := logs.String()
	for _, want := range []string{`"code":"INVALID_FPS"`, `"event_type":"validation_failed"`, `"fatal_errors":1`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in logs, got %s", want, out)
		}
	}
}

func TestCheckLogsWarningsWithoutFailing(t *testing.T) {
	p, logs := newPipeline(t)
	built := testsupport.BuildPlan(t, testsupport.TwoBeatScript(), testsupport.ReelTemplate(), builder.VisualStrategy{})
	params := built.Params()
	params.Output = plan.NewOutput("mkv", "h264", "6M", "generic", "clip.mkv")

	result, err := p.Check(plan.New(params))
	if err != nil {
		t.Fatalf("warnings must not fail: %v", err)
	}
	if !slices.ContainsFunc(result.Warnings(), func(e validate.Error) bool { return e.Code == validate.CodeUnsupportedContainer }) {
		t.Fatalf("expected unsupported container warning: %+v", result.Errors)
	}
	if !strings.Contains(logs.String(), `"event_type":"render_plan_warning"`) {
		t.Fatalf("expected warning event, got %s", logs.String())
	}
}

func TestNewDefaults(t *testing.T) {
	p := pipeline.New(nil, nil)
	result, err := p.Run(context.Background(), pipeline.Request{
		Script:   testsupport.ThreeBeatScript(),
		Template: testsupport.MusicTemplate(),
		Strategy: testsupport.MusicStrategy(),
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(result.Plan.ID(), "rp-") {
		t.Fatalf("expected generated id, got %q", result.Plan.ID())
	}
	if len(result.Plan.AudioTracks()) != 2 {
		t.Fatalf("expected voice and music tracks, got %d", len(result.Plan.AudioTracks()))
	}
}
