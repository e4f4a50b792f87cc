package plan

import "fmt"

// Every kind family starts at 1 so the zero value is never a declared kind.

// AudioKind identifies the role of an audio layer in the mix.
type AudioKind uint8

const (
	AudioVoice AudioKind = iota + 1
	AudioMusic
)

var audioKindNames = map[AudioKind]string{
	AudioVoice: "voice",
	AudioMusic: "music",
}

func (k AudioKind) String() string { return kindName(audioKindNames, k) }

// Valid reports whether k is one of the declared audio kinds.
func (k AudioKind) Valid() bool {
	_, ok := audioKindNames[k]
	return ok
}

// ParseAudioKind maps a wire tag to an AudioKind.
func ParseAudioKind(value string) (AudioKind, error) {
	return parseKind(audioKindNames, "audio", value)
}

// MarshalText implements encoding.TextMarshaler.
func (k AudioKind) MarshalText() ([]byte, error) { return marshalKind(audioKindNames, "audio", k) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AudioKind) UnmarshalText(text []byte) error {
	parsed, err := ParseAudioKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// VisualKind identifies how a scene background is realised.
type VisualKind uint8

const (
	VisualImage VisualKind = iota + 1
	VisualVideo
	VisualSolidColor
	VisualGradient
)

var visualKindNames = map[VisualKind]string{
	VisualImage:      "image",
	VisualVideo:      "video",
	VisualSolidColor: "solid_color",
	VisualGradient:   "gradient",
}

func (k VisualKind) String() string { return kindName(visualKindNames, k) }

// Valid reports whether k is one of the declared visual kinds.
func (k VisualKind) Valid() bool {
	_, ok := visualKindNames[k]
	return ok
}

// ParseVisualKind maps a wire tag to a VisualKind.
func ParseVisualKind(value string) (VisualKind, error) {
	return parseKind(visualKindNames, "visual", value)
}

// MarshalText implements encoding.TextMarshaler.
func (k VisualKind) MarshalText() ([]byte, error) { return marshalKind(visualKindNames, "visual", k) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *VisualKind) UnmarshalText(text []byte) error {
	parsed, err := ParseVisualKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// OverlayKind identifies how the renderer interprets an overlay's content reference.
type OverlayKind uint8

const (
	OverlayText OverlayKind = iota + 1
	OverlayGraphic
)

var overlayKindNames = map[OverlayKind]string{
	OverlayText:    "text",
	OverlayGraphic: "graphic",
}

func (k OverlayKind) String() string { return kindName(overlayKindNames, k) }

// Valid reports whether k is one of the declared overlay kinds.
func (k OverlayKind) Valid() bool {
	_, ok := overlayKindNames[k]
	return ok
}

// ParseOverlayKind maps a wire tag to an OverlayKind.
func ParseOverlayKind(value string) (OverlayKind, error) {
	return parseKind(overlayKindNames, "overlay", value)
}

// MarshalText implements encoding.TextMarshaler.
func (k OverlayKind) MarshalText() ([]byte, error) {
	return marshalKind(overlayKindNames, "overlay", k)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *OverlayKind) UnmarshalText(text []byte) error {
	parsed, err := ParseOverlayKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// TransitionKind identifies a scene entry or exit effect.
type TransitionKind uint8

const (
	TransitionCut TransitionKind = iota + 1
	TransitionFade
	TransitionDissolve
	TransitionWipe
)

var transitionKindNames = map[TransitionKind]string{
	TransitionCut:      "cut",
	TransitionFade:     "fade",
	TransitionDissolve: "dissolve",
	TransitionWipe:     "wipe",
}

func (k TransitionKind) String() string { return kindName(transitionKindNames, k) }

// Valid reports whether k is one of the declared transition kinds.
func (k TransitionKind) Valid() bool {
	_, ok := transitionKindNames[k]
	return ok
}

// ParseTransitionKind maps a wire tag to a TransitionKind.
func ParseTransitionKind(value string) (TransitionKind, error) {
	return parseKind(transitionKindNames, "transition", value)
}

// MarshalText implements encoding.TextMarshaler.
func (k TransitionKind) MarshalText() ([]byte, error) {
	return marshalKind(transitionKindNames, "transition", k)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TransitionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseTransitionKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func kindName[K ~uint8](names map[K]string, k K) string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint8(k))
}

func parseKind[K ~uint8](names map[K]string, family, value string) (K, error) {
	for k, name := range names {
		if name == value {
			return k, nil
		}
	}
	var zero K
	return zero, fmt.Errorf("unknown %s kind %q", family, value)
}

func marshalKind[K ~uint8](names map[K]string, family string, k K) ([]byte, error) {
	name, ok := names[k]
	if !ok {
		return nil, fmt.Errorf("invalid %s kind %d", family, uint8(k))
	}
	return []byte(name), nil
}
