package serialize

import (
	"editorbot/internal/plan"
	"editorbot/internal/record"
)

// Record is the JSON-compatible form of a plan or one of its parts.
type Record = map[string]any

var (
	// ErrMissingKey marks a required key absent from the input record.
	ErrMissingKey = record.ErrMissingKey
	// ErrInvalidValue marks a value of the wrong type or an unknown kind tag.
	ErrInvalidValue = record.ErrInvalidValue
)

// FieldError carries the dotted path of the offending key.
type FieldError = record.FieldError

// Serialize lowers p to its wire record.
func Serialize(p plan.Plan) Record {
	res := p.Resolution()
	return Record{
		"render_plan_id":         p.ID(),
		"format":                 string(p.Format()),
		"total_duration_seconds": p.TotalDuration(),
		"fps":                    p.FPS(),
		"resolution": Record{
			"width":  res.Width(),
			"height": res.Height(),
		},
		"audio_tracks": mapList(p.AudioTracks(), audioTrackRecord),
		"scenes":       mapList(p.Scenes(), sceneRecord),
		"subtitles":    subtitlesRecord(p.Subtitles()),
		"output":       outputRecord(p.Output()),
	}
}

func audioTrackRecord(t plan.AudioTrack) Record {
	fadeIn, hasFadeIn := t.FadeIn()
	fadeOut, hasFadeOut := t.FadeOut()
	return Record{
		"type":       t.Kind().String(),
		"source":     t.Source(),
		"start_time": t.StartTime(),
		"volume":     t.Volume(),
		"fade_in":    nullable(fadeIn, hasFadeIn),
		"fade_out":   nullable(fadeOut, hasFadeOut),
	}
}

func sceneRecord(s plan.Scene) Record {
	return Record{
		"scene_id":       s.ID(),
		"start_time":     s.StartTime(),
		"end_time":       s.EndTime(),
		"visual":         visualRecord(s.Visual()),
		"overlays":       mapList(s.Overlays(), overlayRecord),
		"transition_in":  transitionRecord(s.TransitionIn()),
		"transition_out": transitionRecord(s.TransitionOut()),
	}
}

func visualRecord(v plan.Visual) Record {
	promptRef, hasPromptRef := v.PromptRef()
	motion, hasMotion := v.Motion()
	background, hasBackground := v.BackgroundColor()
	return Record{
		"type":             v.Kind().String(),
		"source":           v.Source(),
		"prompt_ref":       nullable(promptRef, hasPromptRef),
		"motion":           nullable(motion, hasMotion),
		"background_color": nullable(background, hasBackground),
	}
}

func overlayRecord(o plan.Overlay) Record {
	animation, hasAnimation := o.Animation()
	return Record{
		"type":        o.Kind().String(),
		"content_ref": o.ContentRef(),
		"position":    o.Position(),
		"start_time":  o.StartTime(),
		"end_time":    o.EndTime(),
		"style":       o.Style(),
		"animation":   nullable(animation, hasAnimation),
	}
}

func transitionRecord(t plan.Transition) Record {
	return Record{
		"type":     t.Kind().String(),
		"duration": t.Duration(),
	}
}

func subtitlesRecord(s plan.Subtitles) Record {
	return Record{
		"enabled":  s.Enabled(),
		"style":    s.Style(),
		"segments": mapList(s.Segments(), segmentRecord),
	}
}

func segmentRecord(s plan.SubtitleSegment) Record {
	var highlight any
	if terms, ok := s.Highlight(); ok {
		list := make([]any, 0, len(terms))
		for _, term := range terms {
			list = append(list, term)
		}
		highlight = list
	}
	return Record{
		"start":     s.Start(),
		"end":       s.End(),
		"text":      s.Text(),
		"highlight": highlight,
	}
}

func outputRecord(o plan.Output) Record {
	return Record{
		"container":        o.Container(),
		"codec":            o.Codec(),
		"bitrate":          o.Bitrate(),
		"platform_profile": o.PlatformProfile(),
		"filename":         o.Filename(),
	}
}

// mapList always returns a non-nil list so empty collections encode as [].
func mapList[T any](items []T, fn func(T) Record) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func nullable[T any](value T, ok bool) any {
	if !ok {
		return nil
	}
	return value
}
