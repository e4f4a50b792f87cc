package builder

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"editorbot/internal/logging"
	"editorbot/internal/plan"
)

// ErrNonPositiveDuration is returned when the beats of a script do not sum to a
// positive finite duration.
var ErrNonPositiveDuration = errors.New("script total duration is not a positive finite number")

// DefaultFilenamePrefix starts every generated output filename unless overridden.
const DefaultFilenamePrefix = "editorbot"

// Builder assembles render plans. It keeps no state between builds and is
// safe for concurrent use.
type Builder struct {
	logger         *slog.Logger
	now            func() time.Time
	newID          func() string
	filenamePrefix string
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for build events.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithClock sets the time source for the output filename timestamp.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithIDGenerator sets the source of render plan identifiers.
func WithIDGenerator(newID func() string) Option {
	return func(b *Builder) {
		if newID != nil {
			b.newID = newID
		}
	}
}

// WithFilenamePrefix sets the first component of the output filename.
func WithFilenamePrefix(prefix string) Option {
	return func(b *Builder) {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			b.filenamePrefix = prefix
		}
	}
}

// New returns a Builder with random identifiers and the local wall clock.
func New(opts ...Option) *Builder {
	b := &Builder{
		logger:         logging.NewNop(),
		now:            time.Now,
		newID:          NewPlanID,
		filenamePrefix: DefaultFilenamePrefix,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewPlanID returns a fresh render plan identifier of the form "rp-<uuid>".
func NewPlanID() string {
	return "rp-" + uuid.NewString()
}

// Build lays the script out on a timeline and returns the finished plan.
func (b *Builder) Build(script Script, template Template, strategy VisualStrategy, audioSource string) (plan.Plan, error) {
	templateID := template.ID
	if templateID == "" {
		templateID = defaultTemplateID
	}
	b.logger.Info("render plan build started",
		logging.Int("beats", len(script.Beats)),
		logging.String(logging.FieldTemplateID, templateID),
		logging.Bool("has_soundtrack", strategy.SoundtrackID != ""),
	)

	id := b.newID()
	format := selectFormat(template)
	resolution := resolutionFor(format)

	total := totalDuration(script)
	if !(total > 0) || math.IsInf(total, 1) {
		b.logger.Warn("render plan build rejected",
			logging.String(logging.FieldEventType, "non_positive_duration"),
			logging.Float64("total_duration", total),
			logging.String(logging.FieldErrorHint, "give at least one beat a positive duration"),
		)
		return plan.Plan{}, fmt.Errorf("build render plan: %w (total %.2fs)", ErrNonPositiveDuration, total)
	}

	audioTracks := buildAudioTracks(audioSource, total, template, strategy)
	scenes := buildScenes(script, strategy)
	subtitles := buildSubtitles(script, template)
	output := b.buildOutput(format, templateID)

	built := plan.New(plan.Params{
		ID:            id,
		Format:        format,
		TotalDuration: total,
		FPS:           defaultFPS,
		Resolution:    resolution,
		AudioTracks:   audioTracks,
		Scenes:        scenes,
		Subtitles:     subtitles,
		Output:        output,
	})

	b.logger.Info("render plan build complete",
		logging.String(logging.FieldRenderPlanID, id),
		logging.Float64("total_duration", total),
		logging.Int("scenes", len(scenes)),
		logging.Int("audio_tracks", len(audioTracks)),
		logging.String("resolution", resolution.String()),
		logging.Int("fps", defaultFPS),
	)
	return built, nil
}

func selectFormat(template Template) plan.Format {
	if len(template.AllowedFormats) == 0 {
		return plan.FormatReelVertical
	}
	return template.AllowedFormats[0]
}

// totalDuration sums beat durations in script order, the same order the
// scene cursor advances in, so the last scene ends exactly at the total.
func totalDuration(script Script) float64 {
	var total float64
	for _, beat := range script.Beats {
		total += beat.Duration
	}
	return total
}

func buildAudioTracks(audioSource string, total float64, template Template, strategy VisualStrategy) []plan.AudioTrack {
	tracks := []plan.AudioTrack{
		plan.NewAudioTrack(plan.AudioVoice, audioSource, 0, voiceVolume),
	}
	if template.AudioRules.MusicAllowed && strategy.SoundtrackID != "" {
		tracks = append(tracks, plan.NewAudioTrack(plan.AudioMusic, strategy.SoundtrackID, 0, musicVolume,
			plan.WithFadeIn(musicFadeIn),
			plan.WithFadeOut(math.Min(musicFadeMax, total*musicFadeShare)),
		))
	}
	return tracks
}

func buildScenes(script Script, strategy VisualStrategy) []plan.Scene {
	var scenes []plan.Scene
	cursor := 0.0
	for i, beat := range script.Beats {
		start := cursor
		end := start + beat.Duration
		scenes = append(scenes, plan.NewScene(
			fmt.Sprintf("scene_%d", i+1),
			start,
			end,
			buildVisual(beat, i, strategy.VisualPrompts),
			buildOverlays(beat),
			plan.Cut(),
			plan.Cut(),
		))
		cursor = end
	}
	return scenes
}

func buildVisual(beat Beat, index int, prompts map[string]string) plan.Visual {
	key := fmt.Sprintf("%s_%d", beat.Role, index)
	if _, ok := prompts[key]; ok {
		return plan.NewVisual(plan.VisualImage, promptSource,
			plan.WithPromptRef(key),
			plan.WithMotion(promptMotion),
			plan.WithBackgroundColor(promptBackground),
		)
	}
	color := roleColor(beat.Role)
	return plan.NewVisual(plan.VisualSolidColor, color, plan.WithBackgroundColor(color))
}

func buildOverlays(beat Beat) []plan.Overlay {
	if len(beat.Keywords) == 0 {
		return nil
	}
	return []plan.Overlay{
		plan.NewOverlay(plan.OverlayText, overlayContentRef, overlayPosition,
			overlayLeadIn,
			math.Max(overlayMinEnd, beat.Duration-overlayTail),
			overlayStyle,
			plan.WithAnimation(overlayAnimation),
		),
	}
}

func buildSubtitles(script Script, template Template) plan.Subtitles {
	if !template.VisualRules.TextOverlayRequired {
		return plan.DisabledSubtitles()
	}
	var segments []plan.SubtitleSegment
	cursor := 0.0
	for _, beat := range script.Beats {
		start := cursor
		cursor += beat.Duration
		if beat.Text == "" {
			continue
		}
		var highlight []string
		if len(beat.Keywords) > 0 {
			highlight = beat.Keywords
		}
		segments = append(segments, plan.NewSubtitleSegment(start, cursor, beat.Text, highlight))
	}
	return plan.NewSubtitles(true, subtitleStyle, segments)
}

func (b *Builder) buildOutput(format plan.Format, templateID string) plan.Output {
	profile := profileFor(format)
	filename := fmt.Sprintf("%s_%s_%s.%s", b.filenamePrefix, templateID, b.now().Format(timestampLayout), profile.container)
	return plan.NewOutput(profile.container, profile.codec, profile.bitrate, profile.platformProfile, filename)
}
