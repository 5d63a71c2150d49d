package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/wojtowpj/beerlog-backend/internal/config"
)

// NewLogger builds the process-wide *slog.Logger from LogConfig and
// installs it as slog's default.
//
// Format "json" emits structured records for production; anything else
// falls back to the text handler with source locations for development.
// Level accepts debug, info, warn, error (case-insensitive) and defaults
// to info. Output always goes to os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	jsonFormat := strings.EqualFold(cfg.Format, "json")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !jsonFormat,
	}

	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
