package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return c.normalizeBatch()
}

func (c *Config) normalizeOutput() error {
	var err error
	c.Output.FilenamePrefix = strings.TrimSpace(c.Output.FilenamePrefix)
	if c.Output.FilenamePrefix == "" {
		c.Output.FilenamePrefix = defaultFilenamePrefix
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		if value, ok := os.LookupEnv("EDITORBOT_OUTPUT_DIR"); ok && strings.TrimSpace(value) != "" {
			c.Output.Dir = strings.TrimSpace(value)
		} else {
			c.Output.Dir = defaultOutputDir
		}
	}
	if c.Output.Dir, err = expandPath(c.Output.Dir); err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	c.Output.Encoding = strings.ToLower(strings.TrimSpace(c.Output.Encoding))
	switch c.Output.Encoding {
	case "":
		c.Output.Encoding = defaultOutputEncoding
	case "yml":
		c.Output.Encoding = "yaml"
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		if value, ok := os.LookupEnv("EDITORBOT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
			c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
		} else {
			c.Logging.Level = defaultLogLevel
		}
	}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		dir, err := expandPath(strings.TrimSpace(c.Logging.Dir))
		if err != nil {
			return fmt.Errorf("logging.dir: %w", err)
		}
		c.Logging.Dir = dir
	}
	if len(c.Logging.ComponentLevels) > 0 {
		levels := make(map[string]string, len(c.Logging.ComponentLevels))
		for component, level := range c.Logging.ComponentLevels {
			component = strings.ToLower(strings.TrimSpace(component))
			if component == "" {
				continue
			}
			levels[component] = strings.ToLower(strings.TrimSpace(level))
		}
		c.Logging.ComponentLevels = levels
	}
	return nil
}

func (c *Config) normalizeBatch() error {
	if c.Batch.Workers == 0 {
		c.Batch.Workers = defaultBatchWorkers
	}
	if strings.TrimSpace(c.Batch.LockFile) != "" {
		lock, err := expandPath(strings.TrimSpace(c.Batch.LockFile))
		if err != nil {
			return fmt.Errorf("batch.lock_file: %w", err)
		}
		c.Batch.LockFile = lock
	}
	return nil
}
