package builder

import "editorbot/internal/plan"

const (
	defaultFPS        = 30
	defaultRole       = "default"
	defaultTemplateID = "default"

	voiceVolume  = 1.0
	musicVolume  = 0.25
	musicFadeIn  = 1.5
	musicFadeMax = 2.0
	// musicFadeShare is the fraction of the total duration used for the music fade-out.
	musicFadeShare = 0.1

	overlayContentRef = "beat_keywords"
	overlayPosition   = "center"
	overlayStyle      = "bold_caps"
	overlayAnimation  = "fade_in_up"
	overlayLeadIn     = 0.3
	overlayTail       = 0.5
	overlayMinEnd     = 0.5

	promptSource     = "ai_generated"
	promptMotion     = "slow_zoom_in"
	promptBackground = "#000000"
	fallbackColor    = "#000000"

	subtitleStyle = "subtitle_emphasis"

	timestampLayout = "20060102_150405"
)

var formatResolutions = map[plan.Format]plan.Resolution{
	plan.FormatReelVertical:  plan.NewResolution(1080, 1920),
	plan.FormatLandscape16x9: plan.NewResolution(1920, 1080),
	plan.FormatSquare1x1:     plan.NewResolution(1080, 1080),
	plan.FormatPortrait4x5:   plan.NewResolution(1080, 1350),
}

var defaultResolution = plan.NewResolution(1080, 1920)

type outputProfile struct {
	container       string
	codec           string
	bitrate         string
	platformProfile string
}

var formatProfiles = map[plan.Format]outputProfile{
	plan.FormatReelVertical:  {container: "mp4", codec: "h264", bitrate: "6M", platformProfile: "instagram_reel"},
	plan.FormatLandscape16x9: {container: "mp4", codec: "h264", bitrate: "8M", platformProfile: "youtube_landscape"},
	plan.FormatSquare1x1:     {container: "mp4", codec: "h264", bitrate: "6M", platformProfile: "instagram_square"},
	plan.FormatPortrait4x5:   {container: "mp4", codec: "h264", bitrate: "6M", platformProfile: "instagram_portrait"},
}

var genericProfile = outputProfile{container: "mp4", codec: "h264", bitrate: "6M", platformProfile: "generic"}

var roleColors = map[string]string{
	"hook":       "#1a1a1a",
	"argument":   "#2a2a2a",
	"conclusion": "#3a3a3a",
}

func resolutionFor(format plan.Format) plan.Resolution {
	if res, ok := formatResolutions[format]; ok {
		return res
	}
	return defaultResolution
}

func profileFor(format plan.Format) outputProfile {
	if profile, ok := formatProfiles[format]; ok {
		return profile
	}
	return genericProfile
}

func roleColor(role string) string {
	if color, ok := roleColors[role]; ok {
		return color
	}
	return fallbackColor
}
