package config

const (
	defaultFilenamePrefix = "editorbot"
	defaultOutputDir      = "~/.local/share/editorbot/plans"
	defaultOutputEncoding = "json"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultBatchWorkers   = 4
	defaultLockFileName   = ".editorbot.lock"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			FilenamePrefix: defaultFilenamePrefix,
			Dir:            defaultOutputDir,
			Encoding:       defaultOutputEncoding,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Batch: Batch{
			Workers: defaultBatchWorkers,
		},
	}
}
