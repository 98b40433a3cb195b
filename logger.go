package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

var logger *slog.Logger

func ResolveLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

// traceLevel maps a log level onto the closest schuko trace level.
func traceLevel(level slog.Level) tracing.TraceLevel {
	switch {
	case level <= slog.LevelDebug:
		return tracing.LevelDebug
	case level <= slog.LevelInfo:
		return tracing.LevelInfo
	default:
		return tracing.LevelError
	}
}

// InitLogger sets up the application logger and the trace levels of the
// core packages. format is "text" or "json".
func InitLogger(level, format string) error {
	logLevel, err := ResolveLogLevel(level)
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}
	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}
	logger = slog.New(handler)
	for _, key := range []string{"bezier", "raster"} {
		tracing.Select(key).SetTraceLevel(traceLevel(logLevel))
	}
	return nil
}
