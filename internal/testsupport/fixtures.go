package testsupport

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"editorbot/internal/builder"
	"editorbot/internal/plan"
)

// FixedTime is the clock used by deterministic test builders.
var FixedTime = time.Date(2026, time.January, 2, 15, 4, 5, 0, time.UTC)

// FixedID is the plan identifier produced by deterministic test builders.
const FixedID = "rp-00000000-0000-4000-8000-000000000000"

// NewBuilder returns a builder with a fixed clock and identifier.
func NewBuilder(opts ...builder.Option) *builder.Builder {
	base := []builder.Option{
		builder.WithClock(func() time.Time { return FixedTime }),
		builder.WithIDGenerator(func() string { return FixedID }),
	}
	return builder.New(append(base, opts...)...)
}

// TwoBeatScript is a hook and an argument beat lasting 5s and 7s.
func TwoBeatScript() builder.Script {
	return builder.Script{Beats: []builder.Beat{
		{Role: "hook", Text: "Stop scrolling.", Duration: 5, Keywords: []string{"stop"}},
		{Role: "argument", Text: "Here is why it matters.", Duration: 7},
	}}
}

// ThreeBeatScript covers hook, argument and conclusion with keywords on every beat.
func ThreeBeatScript() builder.Script {
	return builder.Script{Beats: []builder.Beat{
		{Role: "hook", Text: "Did you know?", Duration: 3.2, Keywords: []string{"know"}},
		{Role: "argument", Text: "Most plans fail on timing.", Duration: 6.45, Keywords: []string{"timing", "fail"}},
		{Role: "conclusion", Text: "Build it right.", Duration: 4.1, Keywords: []string{"right"}},
	}}
}

// ReelTemplate allows only the vertical reel format, without music.
func ReelTemplate() builder.Template {
	return builder.Template{
		ID:             "tpl_reel",
		AllowedFormats: []plan.Format{plan.FormatReelVertical},
		VisualRules:    builder.VisualRules{TextOverlayRequired: true},
	}
}

// MusicTemplate is ReelTemplate with music allowed.
func MusicTemplate() builder.Template {
	tmpl := ReelTemplate()
	tmpl.ID = "tpl_music"
	tmpl.AudioRules.MusicAllowed = true
	return tmpl
}

// MusicStrategy selects a soundtrack and a prompt for the first hook beat.
func MusicStrategy() builder.VisualStrategy {
	return builder.VisualStrategy{
		SoundtrackID:  "track.mp3",
		VisualPrompts: map[string]string{"hook_0": "neon city at night"},
	}
}

// BuildPlan builds a plan with NewBuilder and fails the test on error.
func BuildPlan(t testing.TB, script builder.Script, template builder.Template, strategy builder.VisualStrategy) plan.Plan {
	t.Helper()

	p, err := NewBuilder().Build(script, template, strategy, "test.wav")
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}
	return p
}

// ScriptRecord is TwoBeatScript in loosely typed form, with numeric strings.
func ScriptRecord() map[string]any {
	return map[string]any{
		"beats": []any{
			map[string]any{"role": "hook", "text": "Stop scrolling.", "duration": "5", "keywords": []any{"stop"}},
			map[string]any{"role": "argument", "text": "Here is why it matters.", "duration": 7.0},
		},
		"title": "ignored",
	}
}

// TemplateRecord is ReelTemplate in loosely typed form.
func TemplateRecord() map[string]any {
	return map[string]any{
		"id":              "tpl_reel",
		"allowed_formats": []any{"REEL_VERTICAL"},
		"audio_rules":     map[string]any{"music_allowed": false},
		"visual_rules":    map[string]any{"text_overlay_required": true},
	}
}

// PlanDiff reports differences between two plans, including unexported fields.
func PlanDiff(want, got plan.Plan) string {
	return cmp.Diff(want, got, cmp.Exporter(func(reflect.Type) bool { return true }))
}
