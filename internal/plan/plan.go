package plan

import (
	"fmt"
	"slices"
)

// Format labels the target layout of the rendered video.
type Format string

const (
	FormatReelVertical  Format = "REEL_VERTICAL"
	FormatLandscape16x9 Format = "LANDSCAPE_16_9"
	FormatSquare1x1     Format = "SQUARE_1_1"
	FormatPortrait4x5   Format = "PORTRAIT_4_5"
)

// optional carries a value that may be absent on the wire.
type optional[T any] struct {
	value T
	set   bool
}

func some[T any](value T) optional[T] { return optional[T]{value: value, set: true} }

func (o optional[T]) get() (T, bool) { return o.value, o.set }

// Resolution is a pixel frame size.
type Resolution struct {
	width  int
	height int
}

// NewResolution returns a frame size. Non-positive values are reported by the validator.
func NewResolution(width, height int) Resolution {
	return Resolution{width: width, height: height}
}

func (r Resolution) Width() int { return r.width }
func (r Resolution) Height() int { return r.height }

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.width, r.height)
}

// AudioTrack is one layer of the audio mix.
type AudioTrack struct {
	kind      AudioKind
	source    string
	startTime float64
	volume    float64
	fadeIn    optional[float64]
	fadeOut   optional[float64]
}

// AudioTrackOption sets an optional audio track attribute.
type AudioTrackOption func(*AudioTrack)

// WithFadeIn sets the fade-in duration in seconds.
func WithFadeIn(seconds float64) AudioTrackOption {
	return func(t *AudioTrack) { t.fadeIn = some(seconds) }
}

// WithFadeOut sets the fade-out duration in seconds.
func WithFadeOut(seconds float64) AudioTrackOption {
	return func(t *AudioTrack) { t.fadeOut = some(seconds) }
}

// NewAudioTrack returns an audio layer starting at startTime seconds with the
// given amplitude multiplier. Constructors store kinds as given; the zero kind
// and undeclared kinds are rejected by validation with INVALID_KIND.
func NewAudioTrack(kind AudioKind, source string, startTime, volume float64, opts ...AudioTrackOption) AudioTrack {
	track := AudioTrack{kind: kind, source: source, startTime: startTime, volume: volume}
	for _, opt := range opts {
		opt(&track)
	}
	return track
}

func (t AudioTrack) Kind() AudioKind { return t.kind }
func (t AudioTrack) Source() string { return t.source }
func (t AudioTrack) StartTime() float64 { return t.startTime }
func (t AudioTrack) Volume() float64 { return t.volume }
func (t AudioTrack) FadeIn() (float64, bool) { return t.fadeIn.get() }
func (t AudioTrack) FadeOut() (float64, bool) { return t.fadeOut.get() }

// Visual is the background of a scene.
type Visual struct {
	kind            VisualKind
	source          string
	promptRef       optional[string]
	motion          optional[string]
	backgroundColor optional[string]
}

// VisualOption sets an optional visual attribute.
type VisualOption func(*Visual)

// WithPromptRef records the generation prompt key the visual was derived from.
func WithPromptRef(ref string) VisualOption {
	return func(v *Visual) { v.promptRef = some(ref) }
}

// WithMotion sets the motion preset applied to the visual.
func WithMotion(motion string) VisualOption {
	return func(v *Visual) { v.motion = some(motion) }
}

// WithBackgroundColor sets the fallback fill colour (hex).
func WithBackgroundColor(color string) VisualOption {
	return func(v *Visual) { v.backgroundColor = some(color) }
}

// NewVisual returns a scene background. kind must be a declared VisualKind.
func NewVisual(kind VisualKind, source string, opts ...VisualOption) Visual {
	visual := Visual{kind: kind, source: source}
	for _, opt := range opts {
		opt(&visual)
	}
	return visual
}

func (v Visual) Kind() VisualKind { return v.kind }
func (v Visual) Source() string { return v.source }
func (v Visual) PromptRef() (string, bool) { return v.promptRef.get() }
func (v Visual) Motion() (string, bool) { return v.motion.get() }
func (v Visual) BackgroundColor() (string, bool) { return v.backgroundColor.get() }

// Overlay is a text or graphic layer drawn on top of a scene. Its times are
// relative to the start of the owning scene.
type Overlay struct {
	kind       OverlayKind
	contentRef string
	position   string
	startTime  float64
	endTime    float64
	style      string
	animation  optional[string]
}

// OverlayOption sets an optional overlay attribute.
type OverlayOption func(*Overlay)

// WithAnimation sets the entrance animation of an overlay.
func WithAnimation(animation string) OverlayOption {
	return func(o *Overlay) { o.animation = some(animation) }
}

// NewOverlay returns an overlay visible from startTime to endTime seconds after scene start.
func NewOverlay(kind OverlayKind, contentRef, position string, startTime, endTime float64, style string, opts ...OverlayOption) Overlay {
	overlay := Overlay{
		kind:       kind,
		contentRef: contentRef,
		position:   position,
		startTime:  startTime,
		endTime:    endTime,
		style:      style,
	}
	for _, opt := range opts {
		opt(&overlay)
	}
	return overlay
}

func (o Overlay) Kind() OverlayKind { return o.kind }
func (o Overlay) ContentRef() string { return o.contentRef }
func (o Overlay) Position() string { return o.position }
func (o Overlay) StartTime() float64 { return o.startTime }
func (o Overlay) EndTime() float64 { return o.endTime }
func (o Overlay) Style() string { return o.style }
func (o Overlay) Animation() (string, bool) { return o.animation.get() }

// Transition is a scene entry or exit effect. A zero duration is an instant cut.
type Transition struct {
	kind     TransitionKind
	duration float64
}

// NewTransition returns a transition lasting duration seconds. The zero
// TransitionKind is not a cut; use Cut or TransitionCut.
func NewTransition(kind TransitionKind, duration float64) Transition {
	return Transition{kind: kind, duration: duration}
}

// Cut is the instant transition.
func Cut() Transition { return NewTransition(TransitionCut, 0) }

func (t Transition) Kind() TransitionKind { return t.kind }
func (t Transition) Duration() float64 { return t.duration }

// Scene is a time-bounded visual unit positioned on the absolute timeline.
type Scene struct {
	id            string
	startTime     float64
	endTime       float64
	visual        Visual
	overlays      []Overlay
	transitionIn  Transition
	transitionOut Transition
}

// NewScene returns a scene covering [startTime, endTime) seconds.
func NewScene(id string, startTime, endTime float64, visual Visual, overlays []Overlay, transitionIn, transitionOut Transition) Scene {
	return Scene{
		id:            id,
		startTime:     startTime,
		endTime:       endTime,
		visual:        visual,
		overlays:      slices.Clone(overlays),
		transitionIn:  transitionIn,
		transitionOut: transitionOut,
	}
}

func (s Scene) ID() string { return s.id }
func (s Scene) StartTime() float64 { return s.startTime }
func (s Scene) EndTime() float64 { return s.endTime }
func (s Scene) Duration() float64 { return s.endTime - s.startTime }
func (s Scene) Visual() Visual { return s.visual }
func (s Scene) Overlays() []Overlay { return slices.Clone(s.overlays) }
func (s Scene) TransitionIn() Transition { return s.transitionIn }
func (s Scene) TransitionOut() Transition { return s.transitionOut }

// SubtitleSegment is one timed caption on the absolute timeline.
type SubtitleSegment struct {
	start     float64
	end       float64
	text      string
	highlight []string
}

// NewSubtitleSegment returns a caption shown from start to end seconds. A nil
// highlight means no emphasised terms; an empty non-nil slice is preserved.
func NewSubtitleSegment(start, end float64, text string, highlight []string) SubtitleSegment {
	return SubtitleSegment{start: start, end: end, text: text, highlight: slices.Clone(highlight)}
}

func (s SubtitleSegment) Start() float64 { return s.start }
func (s SubtitleSegment) End() float64 { return s.end }
func (s SubtitleSegment) Text() string { return s.text }

// Highlight returns the emphasised terms, or false when none were set.
func (s SubtitleSegment) Highlight() ([]string, bool) {
	if s.highlight == nil {
		return nil, false
	}
	return slices.Clone(s.highlight), true
}

// Subtitles is the global caption configuration.
type Subtitles struct {
	enabled  bool
	style    string
	segments []SubtitleSegment
}

// NewSubtitles returns a caption configuration. Segment ordering is checked by
// the validator, not enforced here.
func NewSubtitles(enabled bool, style string, segments []SubtitleSegment) Subtitles {
	return Subtitles{enabled: enabled, style: style, segments: slices.Clone(segments)}
}

// DisabledSubtitles returns the configuration used when captions are off.
func DisabledSubtitles() Subtitles { return NewSubtitles(false, "", nil) }

func (s Subtitles) Enabled() bool { return s.enabled }
func (s Subtitles) Style() string { return s.style }
func (s Subtitles) Segments() []SubtitleSegment { return slices.Clone(s.segments) }

// Output is the encoding and export target.
type Output struct {
	container       string
	codec           string
	bitrate         string
	platformProfile string
	filename        string
}

// NewOutput returns an export target. filename is a basename without directories.
func NewOutput(container, codec, bitrate, platformProfile, filename string) Output {
	return Output{
		container:       container,
		codec:           codec,
		bitrate:         bitrate,
		platformProfile: platformProfile,
		filename:        filename,
	}
}

func (o Output) Container() string { return o.container }
func (o Output) Codec() string { return o.codec }
func (o Output) Bitrate() string { return o.bitrate }
func (o Output) PlatformProfile() string { return o.platformProfile }
func (o Output) Filename() string { return o.filename }

// Params lists the parts of a Plan. It is only used to construct one.
type Params struct {
	ID            string
	Format        Format
	TotalDuration float64
	FPS           int
	Resolution    Resolution
	AudioTracks   []AudioTrack
	Scenes        []Scene
	Subtitles     Subtitles
	Output        Output
}

// Plan is everything a renderer needs to produce one video.
type Plan struct {
	id            string
	format        Format
	totalDuration float64
	fps           int
	resolution    Resolution
	audioTracks   []AudioTrack
	scenes        []Scene
	subtitles     Subtitles
	output        Output
}

// New assembles a Plan. Slices are copied; later changes to p do not affect the plan.
func New(p Params) Plan {
	return Plan{
		id:            p.ID,
		format:        p.Format,
		totalDuration: p.TotalDuration,
		fps:           p.FPS,
		resolution:    p.Resolution,
		audioTracks:   slices.Clone(p.AudioTracks),
		scenes:        slices.Clone(p.Scenes),
		subtitles:     p.Subtitles,
		output:        p.Output,
	}
}

func (p Plan) ID() string { return p.id }
func (p Plan) Format() Format { return p.format }
func (p Plan) TotalDuration() float64 { return p.totalDuration }
func (p Plan) FPS() int { return p.fps }
func (p Plan) Resolution() Resolution { return p.resolution }
func (p Plan) AudioTracks() []AudioTrack { return slices.Clone(p.audioTracks) }
func (p Plan) Scenes() []Scene { return slices.Clone(p.scenes) }
func (p Plan) Subtitles() Subtitles { return p.subtitles }
func (p Plan) Output() Output { return p.output }

// Params returns the parts of p, suitable for constructing a modified copy.
func (p Plan) Params() Params {
	return Params{
		ID:            p.id,
		Format:        p.format,
		TotalDuration: p.totalDuration,
		FPS:           p.fps,
		Resolution:    p.resolution,
		AudioTracks:   p.AudioTracks(),
		Scenes:        p.Scenes(),
		Subtitles:     p.subtitles,
		Output:        p.output,
	}
}
