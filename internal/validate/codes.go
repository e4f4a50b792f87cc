package validate

// Code is the machine-readable identifier of a finding.
type Code string

const (
	CodeInvalidResolution  Code = "INVALID_RESOLUTION"
	CodeOddResolution      Code = "ODD_RESOLUTION"
	CodeResolutionTooSmall Code = "RESOLUTION_TOO_SMALL"
	CodeResolutionTooLarge Code = "RESOLUTION_TOO_LARGE"

	CodeInvalidDuration  Code = "INVALID_DURATION"
	CodeDurationTooShort Code = "DURATION_TOO_SHORT"
	CodeDurationVeryLong Code = "DURATION_VERY_LONG"
	CodeInvalidFPS       Code = "INVALID_FPS"
	CodeUnusualFPS       Code = "UNUSUAL_FPS"

	CodeNoScenes             Code = "NO_SCENES"
	CodeNegativeStartTime    Code = "NEGATIVE_START_TIME"
	CodeInvalidSceneDuration Code = "INVALID_SCENE_DURATION"
	CodeSceneTooShort        Code = "SCENE_TOO_SHORT"
	CodeSceneOverlap         Code = "SCENE_OVERLAP"
	CodeSceneGap             Code = "SCENE_GAP"
	CodeScenesStartLate      Code = "SCENES_START_LATE"
	CodeDurationMismatch     Code = "DURATION_MISMATCH"

	CodeNoAudio            Code = "NO_AUDIO"
	CodeNegativeVolume     Code = "NEGATIVE_VOLUME"
	CodeNegativeAudioStart Code = "NEGATIVE_AUDIO_START"
	CodeNegativeFade       Code = "NEGATIVE_FADE"
	CodeHighVolume         Code = "HIGH_VOLUME"

	CodeSubtitlesEmpty          Code = "SUBTITLES_EMPTY"
	CodeNegativeSubtitleStart   Code = "NEGATIVE_SUBTITLE_START"
	CodeInvalidSubtitleDuration Code = "INVALID_SUBTITLE_DURATION"
	CodeSubtitleOutOfBounds     Code = "SUBTITLE_OUT_OF_BOUNDS"
	CodeSubtitleOverlap         Code = "SUBTITLE_OVERLAP"

	CodeUnsupportedContainer Code = "UNSUPPORTED_CONTAINER"
	CodeUnsupportedCodec     Code = "UNSUPPORTED_CODEC"
	CodeEmptyFilename        Code = "EMPTY_FILENAME"
	CodeInvalidFilename      Code = "INVALID_FILENAME"

	// CodeInvalidKind flags an audio, visual, overlay or transition kind
	// outside the declared set, including the zero value.
	CodeInvalidKind Code = "INVALID_KIND"
)
