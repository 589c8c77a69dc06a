package app

import (
	"io"
	"log/slog"
)

// newLogger creates the logger for one App from its configuration. It does
// not set the global logger, so apps running side by side in tests keep
// their output apart. Unknown levels fall back to warn, the CLI default,
// and debug logging adds the source location of each record.
func newLogger(cfg *Config, outW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler).With("app", "gospec")
}
