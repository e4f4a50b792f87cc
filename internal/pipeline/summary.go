package pipeline

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"editorbot/internal/record"
	"editorbot/internal/serialize"
)

const summaryIDLength = 12

var titleCaser = cases.Title(language.English)

// FormatLabel turns a format tag such as REEL_VERTICAL into "Reel Vertical".
func FormatLabel(format string) string {
	if format == "" {
		return "Unknown"
	}
	return titleCaser.String(strings.ToLower(strings.ReplaceAll(format, "_", " ")))
}

// Summary describes a serialized plan in a few human readable lines. Missing
// or malformed fields are shown as "unknown" rather than failing.
func Summary(r serialize.Record) string {
	f := record.Wrap(r)

	id := stringOr(f, "render_plan_id", "unknown")
	if runes := []rune(id); len(runes) > summaryIDLength {
		id = string(runes[:summaryIDLength]) + "..."
	}
	duration, _, _ := f.OptionalFloat("total_duration_seconds")
	fps, _ := f.Int("fps")

	resolution := "unknown"
	if res, ok, _ := f.OptionalObject("resolution"); ok {
		width, werr := res.Int("width")
		height, herr := res.Int("height")
		if werr == nil && herr == nil {
			resolution = fmt.Sprintf("%dx%d", width, height)
		}
	}

	filename := "unknown"
	if out, ok, _ := f.OptionalObject("output"); ok {
		filename = stringOr(out, "filename", filename)
	}

	var b strings.Builder
	fmt.Fprintln(&b, "Render Plan")
	fmt.Fprintf(&b, "ID:           %s\n", id)
	fmt.Fprintf(&b, "Format:       %s\n", FormatLabel(stringOr(f, "format", "")))
	fmt.Fprintf(&b, "Duration:     %.1fs\n", duration)
	fmt.Fprintf(&b, "Scenes:       %d\n", countList(r["scenes"]))
	fmt.Fprintf(&b, "Audio tracks: %d\n", countList(r["audio_tracks"]))
	fmt.Fprintf(&b, "Resolution:   %s @ %dfps\n", resolution, fps)
	fmt.Fprintf(&b, "Output:       %s", filename)
	return b.String()
}

func stringOr(f record.Fields, key, fallback string) string {
	if value, ok, err := f.OptionalString(key); err == nil && ok && value != "" {
		return value
	}
	return fallback
}

func countList(v any) int {
	if list, ok := v.([]any); ok {
		return len(list)
	}
	return 0
}
