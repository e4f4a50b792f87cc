package builder

import (
	"editorbot/internal/plan"
	"editorbot/internal/record"
)

// Beat is one timed unit of narration.
type Beat struct {
	Role     string
	Text     string
	Duration float64
	Keywords []string
}

// Script is the ordered list of beats to lay out.
type Script struct {
	Beats []Beat
}

// AudioRules holds the template's audio constraints.
type AudioRules struct {
	MusicAllowed bool
}

// VisualRules holds the template's visual constraints.
type VisualRules struct {
	TextOverlayRequired bool
}

// Template describes the content template a plan is built for. Only the first
// allowed format is used; the ID only feeds the output filename.
type Template struct {
	ID             string
	AllowedFormats []plan.Format
	AudioRules     AudioRules
	VisualRules    VisualRules
}

// VisualStrategy carries the creative choices for how scenes look and sound.
// VisualPrompts is keyed by "{role}_{beat index}" with a 0-based index.
type VisualStrategy struct {
	SoundtrackID  string
	VisualPrompts map[string]string
}

// ScriptFromRecord reads a script from a loosely typed record. Absent beat
// fields take defaults: role "default", empty text, zero duration, no keywords.
func ScriptFromRecord(values map[string]any) (Script, error) {
	beats, _, err := record.Wrap(values).OptionalObjects("beats")
	if err != nil {
		return Script{}, err
	}
	script := Script{Beats: make([]Beat, 0, len(beats))}
	for _, fields := range beats {
		beat, err := beatFromFields(fields)
		if err != nil {
			return Script{}, err
		}
		script.Beats = append(script.Beats, beat)
	}
	return script, nil
}

func beatFromFields(f record.Fields) (Beat, error) {
	beat := Beat{Role: defaultRole}
	if role, ok, err := f.OptionalString("role"); err != nil {
		return Beat{}, err
	} else if ok {
		beat.Role = role
	}
	text, _, err := f.OptionalString("text")
	if err != nil {
		return Beat{}, err
	}
	beat.Text = text
	duration, _, err := f.OptionalFloat("duration")
	if err != nil {
		return Beat{}, err
	}
	beat.Duration = duration
	keywords, _, err := f.OptionalStrings("keywords")
	if err != nil {
		return Beat{}, err
	}
	beat.Keywords = keywords
	return beat, nil
}

// TemplateFromRecord reads a template descriptor. Music is disallowed unless
// audio_rules.music_allowed is true; a text overlay is required unless
// visual_rules.text_overlay_required is explicitly false.
func TemplateFromRecord(values map[string]any) (Template, error) {
	f := record.Wrap(values)
	tmpl := Template{VisualRules: VisualRules{TextOverlayRequired: true}}

	id, _, err := f.OptionalString("id")
	if err != nil {
		return Template{}, err
	}
	tmpl.ID = id

	formats, _, err := f.OptionalStrings("allowed_formats")
	if err != nil {
		return Template{}, err
	}
	for _, format := range formats {
		tmpl.AllowedFormats = append(tmpl.AllowedFormats, plan.Format(format))
	}

	if audio, ok, err := f.OptionalObject("audio_rules"); err != nil {
		return Template{}, err
	} else if ok {
		allowed, _, err := audio.OptionalBool("music_allowed")
		if err != nil {
			return Template{}, err
		}
		tmpl.AudioRules.MusicAllowed = allowed
	}

	if visual, ok, err := f.OptionalObject("visual_rules"); err != nil {
		return Template{}, err
	} else if ok {
		required, set, err := visual.OptionalBool("text_overlay_required")
		if err != nil {
			return Template{}, err
		}
		if set {
			tmpl.VisualRules.TextOverlayRequired = required
		}
	}
	return tmpl, nil
}

// StrategyFromRecord reads a visual strategy.
func StrategyFromRecord(values map[string]any) (VisualStrategy, error) {
	f := record.Wrap(values)
	soundtrack, _, err := f.OptionalString("soundtrack_id")
	if err != nil {
		return VisualStrategy{}, err
	}
	prompts, _, err := f.OptionalStringMap("visual_prompts")
	if err != nil {
		return VisualStrategy{}, err
	}
	return VisualStrategy{SoundtrackID: soundtrack, VisualPrompts: prompts}, nil
}
