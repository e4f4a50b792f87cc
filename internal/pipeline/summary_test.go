package pipeline_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"editorbot/internal/builder"
	"editorbot/internal/pipeline"
	"editorbot/internal/serialize"
	"editorbot/internal/testsupport"
)

func TestSummary(t *testing.T) {
	p := testsupport.BuildPlan(t, testsupport.TwoBeatScript(), testsupport.ReelTemplate(), builder.VisualStrategy{})

	got := pipeline.Summary(serialize.Serialize(p))

	for _, want := range []string{
		"ID:           rp-00000000-...",
		"Format:       Reel Vertical",
		"Duration:     12.0s",
		"Scenes:       2",
		"Audio tracks: 1",
		"Resolution:   1080x1920 @ 30fps",
		"Output:       editorbot_tpl_reel_20260102_150405.mp4",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryToleratesSparseRecords(t *testing.T) {
	got := pipeline.Summary(serialize.Record{"render_plan_id": "short"})
	for _, want := range []string{"ID:           short", "Format:       Unknown", "Resolution:   unknown @ 0fps", "Output:       unknown"} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryTruncatesIDByRune(t *testing.T) {
	got := pipeline.Summary(serialize.Record{"render_plan_id": "rp-éééééééééééé"})
	if !utf8.ValidString(got) {
		t.Fatalf("summary is not valid UTF-8: %q", got)
	}
	if want := "ID:           rp-ééééééééé..."; !strings.Contains(got, want) {
		t.Fatalf("summary missing %q:\n%s", want, got)
	}
}

func TestFormatLabel(t *testing.T) {
	tests := map[string]string{
		"REEL_VERTICAL":  "Reel Vertical",
		"LANDSCAPE_16_9": "Landscape 16 9",
		"SQUARE_1_1":     "Square 1 1",
		"":               "Unknown",
	}
	for in, want := range tests {
		if got := pipeline.FormatLabel(in); got != want {
			t.Fatalf("FormatLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
