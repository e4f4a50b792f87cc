package serialize

import (
	"fmt"

	"editorbot/internal/plan"
	"editorbot/internal/record"
)

// Deserialize rebuilds a plan from its wire record. Unknown keys are ignored.
func Deserialize(r Record) (plan.Plan, error) {
	p, err := readPlan(record.Wrap(r))
	if err != nil {
		return plan.Plan{}, fmt.Errorf("deserialize render plan: %w", err)
	}
	return p, nil
}

func readPlan(f record.Fields) (plan.Plan, error) {
	var params plan.Params
	var err error

	if params.ID, err = f.String("render_plan_id"); err != nil {
		return plan.Plan{}, err
	}
	format, err := f.String("format")
	if err != nil {
		return plan.Plan{}, err
	}
	params.Format = plan.Format(format)
	if params.TotalDuration, err = f.Float("total_duration_seconds"); err != nil {
		return plan.Plan{}, err
	}
	if params.FPS, err = f.Int("fps"); err != nil {
		return plan.Plan{}, err
	}

	resolution, err := f.Object("resolution")
	if err != nil {
		return plan.Plan{}, err
	}
	if params.Resolution, err = readResolution(resolution); err != nil {
		return plan.Plan{}, err
	}

	if params.AudioTracks, err = readList(f, "audio_tracks", readAudioTrack); err != nil {
		return plan.Plan{}, err
	}
	if params.Scenes, err = readList(f, "scenes", readScene); err != nil {
		return plan.Plan{}, err
	}

	subtitles, err := f.Object("subtitles")
	if err != nil {
		return plan.Plan{}, err
	}
	if params.Subtitles, err = readSubtitles(subtitles); err != nil {
		return plan.Plan{}, err
	}

	output, err := f.Object("output")
	if err != nil {
		return plan.Plan{}, err
	}
	if params.Output, err = readOutput(output); err != nil {
		return plan.Plan{}, err
	}
	return plan.New(params), nil
}

func readList[T any](f record.Fields, key string, read func(record.Fields) (T, error)) ([]T, error) {
	items, err := f.Objects(key)
	if err != nil {
		return nil, err
	}
	var out []T
	for _, item := range items {
		value, err := read(item)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}

func readResolution(f record.Fields) (plan.Resolution, error) {
	width, err := f.Int("width")
	if err != nil {
		return plan.Resolution{}, err
	}
	height, err := f.Int("height")
	if err != nil {
		return plan.Resolution{}, err
	}
	return plan.NewResolution(width, height), nil
}

// readKind parses the "type" key of f with parse.
func readKind[K any](f record.Fields, parse func(string) (K, error)) (K, error) {
	var zero K
	tag, err := f.String("type")
	if err != nil {
		return zero, err
	}
	kind, err := parse(tag)
	if err != nil {
		return zero, &record.FieldError{Path: f.Path("type"), Err: record.ErrInvalidValue, Detail: err.Error()}
	}
	return kind, nil
}

func readAudioTrack(f record.Fields) (plan.AudioTrack, error) {
	kind, err := readKind(f, plan.ParseAudioKind)
	if err != nil {
		return plan.AudioTrack{}, err
	}
	source, err := f.String("source")
	if err != nil {
		return plan.AudioTrack{}, err
	}
	start, err := f.Float("start_time")
	if err != nil {
		return plan.AudioTrack{}, err
	}
	volume, err := f.Float("volume")
	if err != nil {
		return plan.AudioTrack{}, err
	}
	var opts []plan.AudioTrackOption
	if fade, ok, err := f.OptionalFloat("fade_in"); err != nil {
		return plan.AudioTrack{}, err
	} else if ok {
		opts = append(opts, plan.WithFadeIn(fade))
	}
	if fade, ok, err := f.OptionalFloat("fade_out"); err != nil {
		return plan.AudioTrack{}, err
	} else if ok {
		opts = append(opts, plan.WithFadeOut(fade))
	}
	return plan.NewAudioTrack(kind, source, start, volume, opts...), nil
}

func readScene(f record.Fields) (plan.Scene, error) {
	id, err := f.String("scene_id")
	if err != nil {
		return plan.Scene{}, err
	}
	start, err := f.Float("start_time")
	if err != nil {
		return plan.Scene{}, err
	}
	end, err := f.Float("end_time")
	if err != nil {
		return plan.Scene{}, err
	}
	visualFields, err := f.Object("visual")
	if err != nil {
		return plan.Scene{}, err
	}
	visual, err := readVisual(visualFields)
	if err != nil {
		return plan.Scene{}, err
	}
	overlays, err := readList(f, "overlays", readOverlay)
	if err != nil {
		return plan.Scene{}, err
	}
	in, err := readTransition(f, "transition_in")
	if err != nil {
		return plan.Scene{}, err
	}
	out, err := readTransition(f, "transition_out")
	if err != nil {
		return plan.Scene{}, err
	}
	return plan.NewScene(id, start, end, visual, overlays, in, out), nil
}

func readVisual(f record.Fields) (plan.Visual, error) {
	kind, err := readKind(f, plan.ParseVisualKind)
	if err != nil {
		return plan.Visual{}, err
	}
	source, err := f.String("source")
	if err != nil {
		return plan.Visual{}, err
	}
	var opts []plan.VisualOption
	optional := []struct {
		key  string
		with func(string) plan.VisualOption
	}{
		{key: "prompt_ref", with: plan.WithPromptRef},
		{key: "motion", with: plan.WithMotion},
		{key: "background_color", with: plan.WithBackgroundColor},
	}
	for _, field := range optional {
		value, ok, err := f.OptionalString(field.key)
		if err != nil {
			return plan.Visual{}, err
		}
		if ok {
			opts = append(opts, field.with(value))
		}
	}
	return plan.NewVisual(kind, source, opts...), nil
}

func readOverlay(f record.Fields) (plan.Overlay, error) {
	kind, err := readKind(f, plan.ParseOverlayKind)
	if err != nil {
		return plan.Overlay{}, err
	}
	contentRef, err := f.String("content_ref")
	if err != nil {
		return plan.Overlay{}, err
	}
	position, err := f.String("position")
	if err != nil {
		return plan.Overlay{}, err
	}
	start, err := f.Float("start_time")
	if err != nil {
		return plan.Overlay{}, err
	}
	end, err := f.Float("end_time")
	if err != nil {
		return plan.Overlay{}, err
	}
	style, err := f.String("style")
	if err != nil {
		return plan.Overlay{}, err
	}
	var opts []plan.OverlayOption
	animation, ok, err := f.OptionalString("animation")
	if err != nil {
		return plan.Overlay{}, err
	}
	if ok {
		opts = append(opts, plan.WithAnimation(animation))
	}
	return plan.NewOverlay(kind, contentRef, position, start, end, style, opts...), nil
}

func readTransition(parent record.Fields, key string) (plan.Transition, error) {
	f, err := parent.Object(key)
	if err != nil {
		return plan.Transition{}, err
	}
	kind, err := readKind(f, plan.ParseTransitionKind)
	if err != nil {
		return plan.Transition{}, err
	}
	duration, err := f.Float("duration")
	if err != nil {
		return plan.Transition{}, err
	}
	return plan.NewTransition(kind, duration), nil
}

func readSubtitles(f record.Fields) (plan.Subtitles, error) {
	enabled, err := f.Bool("enabled")
	if err != nil {
		return plan.Subtitles{}, err
	}
	style, err := f.String("style")
	if err != nil {
		return plan.Subtitles{}, err
	}
	segments, err := readList(f, "segments", readSegment)
	if err != nil {
		return plan.Subtitles{}, err
	}
	return plan.NewSubtitles(enabled, style, segments), nil
}

func readSegment(f record.Fields) (plan.SubtitleSegment, error) {
	start, err := f.Float("start")
	if err != nil {
		return plan.SubtitleSegment{}, err
	}
	end, err := f.Float("end")
	if err != nil {
		return plan.SubtitleSegment{}, err
	}
	text, err := f.String("text")
	if err != nil {
		return plan.SubtitleSegment{}, err
	}
	highlight, _, err := f.OptionalStrings("highlight")
	if err != nil {
		return plan.SubtitleSegment{}, err
	}
	return plan.NewSubtitleSegment(start, end, text, highlight), nil
}

func readOutput(f record.Fields) (plan.Output, error) {
	values := make([]string, 0, 5)
	for _, key := range []string{"container", "codec", "bitrate", "platform_profile", "filename"} {
		value, err := f.String(key)
		if err != nil {
			return plan.Output{}, err
		}
		values = append(values, value)
	}
	return plan.NewOutput(values[0], values[1], values[2], values[3], values[4]), nil
}
