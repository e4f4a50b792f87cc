package logging

import (
	"context"
	"log/slog"

	"editorbot/internal/config"
)

// levelOverrideHandler drops records below its own minimum before the wrapped
// handler sees them. The wrapped handler runs at the most verbose level any
// component needs.
type levelOverrideHandler struct {
	next  slog.Handler
	level slog.Level
}

func (h *levelOverrideHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level && h.next.Enabled(ctx, level)
}

func (h *levelOverrideHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level < h.level {
		return nil
	}
	return h.next.Handle(ctx, record)
}

func (h *levelOverrideHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelOverrideHandler{next: h.next.WithAttrs(attrs), level: h.level}
}

func (h *levelOverrideHandler) WithGroup(name string) slog.Handler {
	return &levelOverrideHandler{next: h.next.WithGroup(name), level: h.level}
}

// WithLevelOverride returns a logger that enforces the provided minimum level
// while preserving existing attributes and handler wiring. Overriding an
// already overridden logger replaces the earlier minimum.
func WithLevelOverride(logger *slog.Logger, level slog.Level) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	next := logger.Handler()
	if existing, ok := next.(*levelOverrideHandler); ok {
		next = existing.next
	}
	return slog.New(&levelOverrideHandler{next: next, level: level})
}

// ForComponent returns a component logger, narrowed to the level configured
// under logging.component_levels when one is set. Without an override the
// component inherits the configured global level.
func ForComponent(logger *slog.Logger, cfg *config.Config, component string) *slog.Logger {
	componentLogger := NewComponentLogger(logger, component)
	if cfg == nil {
		return componentLogger
	}
	level := cfg.Logging.Level
	if override, ok := cfg.ComponentLevel(component); ok {
		level = override
	}
	return WithLevelOverride(componentLogger, parseLevel(level))
}
