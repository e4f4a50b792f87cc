// Package config loads, normalizes, and validates editorbot configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// EDITORBOT_LOG_LEVEL. The Config type centralizes the knobs the CLI needs:
// where plans are written and how, how logs are emitted, and how batch runs
// are parallelised.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
