package stopwatch

import (
	"log/slog"
	"os"
	"strings"
)

// EnvVar names the environment variable read by EnvSink.
const EnvVar = "STOPWATCH_LOG"

// LevelOff is above all the standard levels, so nothing is logged.
const LevelOff = slog.LevelError + 1

// ParseLevel converts a level name to slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "off":
		return LevelOff
	default:
		// Use Info if levelStr is set to any other string
		return slog.LevelInfo
	}
}

// EnvSink selects a sink based on the STOPWATCH_LOG environment
// variable. If the variable is not set, messages are printed to
// stdout. If it is set to "off", messages are dropped. Otherwise
// messages are logged to stderr with the level given by the variable.
func EnvSink() Sink {
	levelStr := os.Getenv(EnvVar)
	if levelStr == "" {
		return Stdout()
	}
	level := ParseLevel(levelStr)
	if level == LevelOff {
		return Discard
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return SlogSink(slog.New(handler), level)
}
