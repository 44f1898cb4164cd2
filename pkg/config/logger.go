package config

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger at debug level outside production and a
// JSON logger at info level in production.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler).With("service", cfg.ServiceName)
}
