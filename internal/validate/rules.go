package validate

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"editorbot/internal/plan"
)

const (
	// timingTolerance absorbs floating point noise in timeline comparisons.
	timingTolerance = 0.01

	minWidth  = 320
	minHeight = 240
	maxWidth  = 7680
	maxHeight = 4320

	minDuration      = 1.0
	maxDuration      = 600.0
	minSceneDuration = 0.5
	maxVolume        = 2.0

	hostileFilenameChars = `/\:*?"<>|`
)

var (
	standardFPS         = []int{24, 25, 30, 60}
	supportedContainers = []string{"mp4", "mov", "webm", "avi"}
	supportedCodecs     = []string{"h264", "h265", "vp9", "prores"}
)

// positive and nonNegative are false for NaN and +Inf.
func positive(x float64) bool { return x > 0 && !math.IsInf(x, 1) }

func nonNegative(x float64) bool { return x >= 0 && !math.IsInf(x, 1) }

func checkResolution(p plan.Plan) []Error {
	var errs []Error
	res := p.Resolution()
	if res.Width() <= 0 || res.Height() <= 0 {
		errs = append(errs, fatal(CodeInvalidResolution, "resolution", "Resolution dimensions must be positive (got %s)", res))
	}
	if res.Width()%2 != 0 || res.Height()%2 != 0 {
		errs = append(errs, warning(CodeOddResolution, "resolution", "Resolution %s should use even dimensions for codec compatibility", res))
	}
	if res.Width() < minWidth || res.Height() < minHeight {
		errs = append(errs, warning(CodeResolutionTooSmall, "resolution", "Resolution %s is unusually small (below %dx%d)", res, minWidth, minHeight))
	}
	if res.Width() > maxWidth || res.Height() > maxHeight {
		errs = append(errs, warning(CodeResolutionTooLarge, "resolution", "Resolution %s exceeds 8K (%dx%d)", res, maxWidth, maxHeight))
	}
	return errs
}

func checkDuration(p plan.Plan) []Error {
	var errs []Error
	total := p.TotalDuration()
	if !positive(total) {
		errs = append(errs, fatal(CodeInvalidDuration, "total_duration_seconds", "Total duration must be positive (got %.2fs)", total))
	}
	if total < minDuration {
		errs = append(errs, warning(CodeDurationTooShort, "total_duration_seconds", "Video duration %.2fs is less than 1 second", total))
	}
	if total > maxDuration {
		errs = append(errs, warning(CodeDurationVeryLong, "total_duration_seconds", "Video duration %.2fs exceeds 10 minutes", total))
	}
	if p.FPS() <= 0 {
		errs = append(errs, fatal(CodeInvalidFPS, "fps", "FPS must be positive (got %d)", p.FPS()))
	}
	if !slices.Contains(standardFPS, p.FPS()) {
		errs = append(errs, warning(CodeUnusualFPS, "fps", "FPS %d is non-standard (expected 24/25/30/60)", p.FPS()))
	}
	return errs
}

func checkScenes(p plan.Plan) []Error {
	scenes := p.Scenes()
	if len(scenes) == 0 {
		return []Error{fatal(CodeNoScenes, "scenes", "Render plan must have at least one scene")}
	}
	slices.SortStableFunc(scenes, func(a, b plan.Scene) int {
		return cmp.Compare(a.StartTime(), b.StartTime())
	})

	var errs []Error
	for i, scene := range scenes {
		loc := fmt.Sprintf("scenes[%d]", i)
		if !nonNegative(scene.StartTime()) {
			errs = append(errs, fatal(CodeNegativeStartTime, loc+".start_time", "Scene %s start time %.2fs cannot be negative", scene.ID(), scene.StartTime()))
		}
		if !(scene.EndTime() > scene.StartTime()) || math.IsInf(scene.EndTime(), 1) {
			errs = append(errs, fatal(CodeInvalidSceneDuration, loc, "Scene %s end time must be greater than start time", scene.ID()))
		}
		if d := scene.Duration(); d < minSceneDuration {
			errs = append(errs, warning(CodeSceneTooShort, loc, "Scene duration %.1fs is very short", d))
		}
	}

	for i := 0; i+1 < len(scenes); i++ {
		current, next := scenes[i], scenes[i+1]
		loc := fmt.Sprintf("scenes[%d] -> scenes[%d]", i, i+1)
		if next.StartTime() < current.EndTime() {
			errs = append(errs, fatal(CodeSceneOverlap, loc,
				"Scene overlap: scene ends at %.2fs but next starts at %.2fs", current.EndTime(), next.StartTime()))
		}
		if gap := next.StartTime() - current.EndTime(); !(gap <= timingTolerance) {
			errs = append(errs, fatal(CodeSceneGap, loc, "Gap of %.2fs between scenes", gap))
		}
	}

	if first := scenes[0].StartTime(); !(math.Abs(first) <= timingTolerance) {
		errs = append(errs, fatal(CodeScenesStartLate, "scenes[0]", "First scene starts at %.2fs (should start at 0.0)", first))
	}
	if last := scenes[len(scenes)-1].EndTime(); !(math.Abs(last-p.TotalDuration()) <= timingTolerance) {
		errs = append(errs, fatal(CodeDurationMismatch, "scenes",
			"Scenes end at %.2fs but total duration is %.2fs", last, p.TotalDuration()))
	}
	return errs
}

func checkAudioTracks(p plan.Plan) []Error {
	tracks := p.AudioTracks()
	var errs []Error
	if len(tracks) == 0 {
		errs = append(errs, warning(CodeNoAudio, "audio_tracks", "Render plan should have at least one audio track"))
	}
	for i, track := range tracks {
		loc := fmt.Sprintf("audio_tracks[%d]", i)
		if !nonNegative(track.Volume()) {
			errs = append(errs, fatal(CodeNegativeVolume, loc+".volume", "Audio volume %v cannot be negative", track.Volume()))
		}
		if !nonNegative(track.StartTime()) {
			errs = append(errs, fatal(CodeNegativeAudioStart, loc+".start_time", "Audio start time %.2fs cannot be negative", track.StartTime()))
		}
		if fade, ok := track.FadeIn(); ok && !nonNegative(fade) {
			errs = append(errs, fatal(CodeNegativeFade, loc+".fade_in", "Fade-in duration %.2fs cannot be negative", fade))
		}
		if fade, ok := track.FadeOut(); ok && !nonNegative(fade) {
			errs = append(errs, fatal(CodeNegativeFade, loc+".fade_out", "Fade-out duration %.2fs cannot be negative", fade))
		}
		if track.Volume() > maxVolume {
			errs = append(errs, warning(CodeHighVolume, loc+".volume", "Volume %v is very high (may cause clipping)", track.Volume()))
		}
	}
	return errs
}

func checkSubtitles(p plan.Plan) []Error {
	subs := p.Subtitles()
	if !subs.Enabled() {
		return nil
	}
	segments := subs.Segments()
	if len(segments) == 0 {
		return []Error{warning(CodeSubtitlesEmpty, "subtitles.segments", "Subtitles enabled but no segments provided")}
	}
	slices.SortStableFunc(segments, func(a, b plan.SubtitleSegment) int {
		return cmp.Compare(a.Start(), b.Start())
	})

	var errs []Error
	for i, seg := range segments {
		loc := fmt.Sprintf("subtitles.segments[%d]", i)
		if !nonNegative(seg.Start()) {
			errs = append(errs, fatal(CodeNegativeSubtitleStart, loc+".start", "Subtitle start time %.2fs cannot be negative", seg.Start()))
		}
		if !(seg.End() > seg.Start()) || math.IsInf(seg.End(), 1) {
			errs = append(errs, fatal(CodeInvalidSubtitleDuration, loc, "Subtitle end time must be greater than start time"))
		}
		if !(seg.End() <= p.TotalDuration()) {
			errs = append(errs, fatal(CodeSubtitleOutOfBounds, loc,
				"Subtitle ends at %.2fs but video ends at %.2fs", seg.End(), p.TotalDuration()))
		}
		if i+1 < len(segments) {
			if next := segments[i+1]; next.Start() < seg.End() {
				errs = append(errs, warning(CodeSubtitleOverlap, fmt.Sprintf("%s -> subtitles.segments[%d]", loc, i+1),
					"Subtitle overlap at %.2fs (next starts at %.2fs)", seg.End(), next.Start()))
			}
		}
	}
	return errs
}

func checkOutput(p plan.Plan) []Error {
	out := p.Output()
	var errs []Error
	if !slices.Contains(supportedContainers, out.Container()) {
		errs = append(errs, warning(CodeUnsupportedContainer, "output.container",
			"Container %q may not be supported (expected one of %s)", out.Container(), strings.Join(supportedContainers, ", ")))
	}
	if !slices.Contains(supportedCodecs, out.Codec()) {
		errs = append(errs, warning(CodeUnsupportedCodec, "output.codec",
			"Codec %q may not be supported (expected one of %s)", out.Codec(), strings.Join(supportedCodecs, ", ")))
	}
	if out.Filename() == "" {
		errs = append(errs, fatal(CodeEmptyFilename, "output.filename", "Output filename cannot be empty"))
	} else if strings.ContainsAny(out.Filename(), hostileFilenameChars) {
		errs = append(errs, fatal(CodeInvalidFilename, "output.filename", "Filename %q contains invalid characters", out.Filename()))
	}
	return errs
}

// checkKinds reports kinds the serializer cannot name. Locations follow the
// plan's own scene order.
func checkKinds(p plan.Plan) []Error {
	var errs []Error
	for i, track := range p.AudioTracks() {
		if !track.Kind().Valid() {
			errs = append(errs, invalidKind(fmt.Sprintf("audio_tracks[%d].type", i), "audio", track.Kind()))
		}
	}
	for i, scene := range p.Scenes() {
		loc := fmt.Sprintf("scenes[%d]", i)
		if k := scene.Visual().Kind(); !k.Valid() {
			errs = append(errs, invalidKind(loc+".visual.type", "visual", k))
		}
		for j, overlay := range scene.Overlays() {
			if !overlay.Kind().Valid() {
				errs = append(errs, invalidKind(fmt.Sprintf("%s.overlays[%d].type", loc, j), "overlay", overlay.Kind()))
			}
		}
		if k := scene.TransitionIn().Kind(); !k.Valid() {
			errs = append(errs, invalidKind(loc+".transition_in.type", "transition", k))
		}
		if k := scene.TransitionOut().Kind(); !k.Valid() {
			errs = append(errs, invalidKind(loc+".transition_out.type", "transition", k))
		}
	}
	return errs
}

func invalidKind(loc, family string, k fmt.Stringer) Error {
	return fatal(CodeInvalidKind, loc, "Unrecognised %s kind %s", family, k)
}
