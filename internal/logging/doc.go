// Package logging assembles structured slog loggers and formatting helpers used
// across the render plan toolchain.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes component loggers with optional per-component level
// overrides. The package also provides a no-op logger for tests and for
// library callers that do not want log output.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
