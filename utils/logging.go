// Structured logging for the API clients. CLI-facing output stays on
// plain fmt with lipgloss styling; slog carries the request-level detail.
package utils

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a structured JSON logger on stderr with the given level.
// Supported levels: debug, info, warn, error
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler)
}

// SanitizeKey masks an API key for safe logging.
// Shows first 4 and last 4 characters only.
func SanitizeKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
