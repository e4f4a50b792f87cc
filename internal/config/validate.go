package config

import (
	"errors"
	"fmt"
	"strings"
)

var validLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateBatch()
}

func (c *Config) validateOutput() error {
	if strings.ContainsAny(c.Output.FilenamePrefix, `/\:*?"<>|`) {
		return fmt.Errorf("output.filename_prefix %q contains characters that are not allowed in filenames", c.Output.FilenamePrefix)
	}
	switch c.Output.Encoding {
	case "json", "yaml":
	default:
		return fmt.Errorf("output.encoding: unsupported value %q (expected json or yaml)", c.Output.Encoding)
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return errors.New("output.dir must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, ok := validLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	for component, level := range c.Logging.ComponentLevels {
		if _, ok := validLevels[level]; !ok {
			return fmt.Errorf("logging.component_levels.%s: unsupported value %q", component, level)
		}
	}
	return nil
}

func (c *Config) validateBatch() error {
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1 (got %d)", c.Batch.Workers)
	}
	return nil
}
