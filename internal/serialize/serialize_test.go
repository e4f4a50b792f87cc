package serialize_test

import (
	"encoding/json"
	"errors"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"editorbot/internal/builder"
	"editorbot/internal/plan"
	"editorbot/internal/serialize"
	"editorbot/internal/testsupport"
)

func builtPlans(t *testing.T) map[string]plan.Plan {
	t.Helper()
	disabled := testsupport.ReelTemplate()
	disabled.VisualRules.TextOverlayRequired = false
	emptyText := builder.Script{Beats: []builder.Beat{
		{Role: "hook", Text: "", Duration: 1.25},
		{Role: "conclusion", Text: "done", Duration: 2.5, Keywords: []string{"done"}},
	}}
	return map[string]plan.Plan{
		"two beats":    testsupport.BuildPlan(t, testsupport.TwoBeatScript(), testsupport.ReelTemplate(), builder.VisualStrategy{}),
		"music":        testsupport.BuildPlan(t, testsupport.ThreeBeatScript(), testsupport.MusicTemplate(), testsupport.MusicStrategy()),
		"no subtitles": testsupport.BuildPlan(t, testsupport.ThreeBeatScript(), disabled, builder.VisualStrategy{}),
		"skipped text": testsupport.BuildPlan(t, emptyText, testsupport.ReelTemplate(), builder.VisualStrategy{}),
	}
}

func TestRoundTripInMemory(t *testing.T) {
	for name, p := range builtPlans(t) {
		t.Run(name, func(t *testing.T) {
			got, err := serialize.Deserialize(serialize.Serialize(p))
			if err != nil {
				t.Fatalf("deserialize: %v", err)
			}
			if diff := testsupport.PlanDiff(p, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTripJSONAndYAML(t *testing.T) {
	for name, p := range builtPlans(t) {
		for _, enc := range []serialize.Encoding{serialize.JSON, serialize.YAML} {
			t.Run(name+"/"+string(enc), func(t *testing.T) {
				data, err := serialize.Marshal(p, enc)
				if err != nil {
					t.Fatalf("marshal: %v", err)
				}
				got, err := serialize.Unmarshal(data)
				if err != nil {
					t.Fatalf("unmarshal: %v\n%s", err, data)
				}
				if diff := testsupport.PlanDiff(p, got); diff != "" {
					t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestTypedDecoders(t *testing.T) {
	p := builtPlans(t)["music"]
	jsonData, err := serialize.MarshalJSON(p)
	if err != nil {
		t.Fatalf("marshal json: %v", err)
	}
	fromJSON, err := serialize.UnmarshalJSON(jsonData)
	if err != nil {
		t.Fatalf("unmarshal json: %v", err)
	}
	yamlData, err := serialize.MarshalYAML(p)
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}
	fromYAML, err := serialize.UnmarshalYAML(yamlData)
	if err != nil {
		t.Fatalf("unmarshal yaml: %v", err)
	}
	if diff := testsupport.PlanDiff(fromJSON, fromYAML); diff != "" {
		t.Fatalf("json and yaml decode differently:\n%s", diff)
	}
}

func TestSerializeWireLayout(t *testing.T) {
	p := builtPlans(t)["two beats"]
	r := serialize.Serialize(p)

	wantKeys := []string{"audio_tracks", "format", "fps", "output", "render_plan_id", "resolution", "scenes", "subtitles", "total_duration_seconds"}
	if diff := cmp.Diff(wantKeys, slices.Sorted(maps.Keys(r))); diff != "" {
		t.Fatalf("top-level keys mismatch:\n%s", diff)
	}

	voice := r["audio_tracks"].([]any)[0].(serialize.Record)
	if voice["type"] != "voice" {
		t.Fatalf("unexpected voice type %v", voice["type"])
	}
	if v, ok := voice["fade_in"]; !ok || v != nil {
		t.Fatalf("fade_in should be an explicit null, got %v (present=%v)", v, ok)
	}

	scene := r["scenes"].([]any)[1].(serialize.Record)
	if overlays := scene["overlays"].([]any); overlays == nil || len(overlays) != 0 {
		t.Fatalf("overlays should be an empty list, got %#v", scene["overlays"])
	}
	visual := scene["visual"].(serialize.Record)
	if visual["type"] != "solid_color" || visual["prompt_ref"] != nil {
		t.Fatalf("unexpected visual %#v", visual)
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"fade_in":null`, `"overlays":[]`, `"highlight":null`, `"type":"cut"`} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("expected %s in %s", want, data)
		}
	}
}

func TestDeserializeCoercesNumericStrings(t *testing.T) {
	p := builtPlans(t)["two beats"]
	r := serialize.Serialize(p)
	r["total_duration_seconds"] = "12.0"
	r["fps"] = "30"
	r["resolution"] = serialize.Record{"width": "1080", "height": json.Number("1920")}
	scene := r["scenes"].([]any)[0].(serialize.Record)
	scene["end_time"] = "5"
	r["unknown_extra"] = "ignored"

	got, err := serialize.Deserialize(r)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if diff := testsupport.PlanDiff(p, got); diff != "" {
		t.Fatalf("coerced plan mismatch (-want +got):\n%s", diff)
	}
}

func TestDeserializeMissingKey(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(serialize.Record)
		path   string
	}{
		{name: "top level", mutate: func(r serialize.Record) { delete(r, "fps") }, path: "fps"},
		{name: "nested", mutate: func(r serialize.Record) {
			delete(r["scenes"].([]any)[1].(serialize.Record)["visual"].(serialize.Record), "type")
		}, path: "scenes[1].visual.type"},
		{name: "transition", mutate: func(r serialize.Record) {
			delete(r["scenes"].([]any)[0].(serialize.Record), "transition_out")
		}, path: "scenes[0].transition_out"},
		{name: "segment text", mutate: func(r serialize.Record) {
			delete(r["subtitles"].(serialize.Record)["segments"].([]any)[0].(serialize.Record), "text")
		}, path: "subtitles.segments[0].text"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := serialize.Serialize(builtPlans(t)["two beats"])
			tc.mutate(r)
			_, err := serialize.Deserialize(r)
			if !errors.Is(err, serialize.ErrMissingKey) {
				t.Fatalf("expected ErrMissingKey, got %v", err)
			}
			var fieldErr *serialize.FieldError
			if !errors.As(err, &fieldErr) || fieldErr.Path != tc.path {
				t.Fatalf("expected path %q, got %v", tc.path, err)
			}
		})
	}
}

func TestDeserializeOptionalKeysMayBeAbsent(t *testing.T) {
	p := builtPlans(t)["two beats"]
	r := serialize.Serialize(p)
	voice := r["audio_tracks"].([]any)[0].(serialize.Record)
	delete(voice, "fade_in")
	delete(voice, "fade_out")
	if _, err := serialize.Deserialize(r); err != nil {
		t.Fatalf("absent optional keys should be accepted: %v", err)
	}
}

func TestDeserializeInvalidValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(serialize.Record)
	}{
		{name: "unknown audio kind", mutate: func(r serialize.Record) {
			r["audio_tracks"].([]any)[0].(serialize.Record)["type"] = "narration"
		}},
		{name: "non numeric fps", mutate: func(r serialize.Record) { r["fps"] = "thirty" }},
		{name: "fractional fps", mutate: func(r serialize.Record) { r["fps"] = 29.97 }},
		{name: "scenes not a list", mutate: func(r serialize.Record) { r["scenes"] = "none" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := serialize.Serialize(builtPlans(t)["two beats"])
			tc.mutate(r)
			if _, err := serialize.Deserialize(r); !errors.Is(err, serialize.ErrInvalidValue) {
				t.Fatalf("expected ErrInvalidValue, got %v", err)
			}
		})
	}
}

func TestParseEncoding(t *testing.T) {
	if e, err := serialize.ParseEncoding("yml"); err != nil || e != serialize.YAML {
		t.Fatalf("yml = %v, %v", e, err)
	}
	if _, err := serialize.ParseEncoding("xml"); err == nil {
		t.Fatal("expected error for xml")
	}
	if _, err := serialize.Marshal(plan.Plan{}, "xml"); err == nil {
		t.Fatal("expected error marshalling to xml")
	}
}
