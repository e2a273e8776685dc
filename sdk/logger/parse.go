package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// parseLevel maps a level name to a slog.Level. Unknown names fall back
// to INFO.
func parseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// parseOutput maps an output name to a writer. Unknown names fall back
// to stdout.
func parseOutput(s string) io.Writer {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "STDERR":
		return os.Stderr
	case "DISCARD", "NONE":
		return io.Discard
	default:
		return os.Stdout
	}
}
