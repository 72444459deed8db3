package driver

import (
	"fmt"
	"io"
	"log/slog"
)

// NewLogger builds the slog logger described by cfg, writing to w.
// Format "json" selects slog.JSONHandler, anything else slog.TextHandler.
func NewLogger(cfg LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("%w: log level %q", ErrInvalidConfig, cfg.Level)
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch cfg.Format {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h), nil
}
