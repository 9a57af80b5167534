// Package logging wires log/slog for the scoring engine and its surfaces.
// Components never construct handlers themselves; the CLI or server entry
// point calls Init once and everything else asks New for a scoped logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init installs the global slog default. Format is "text" or "json"; a nil
// writer defaults to os.Stderr. Scoring results never go through the logger,
// only diagnostics, so stdout stays clean for report output.
func Init(level slog.Level, format string, w ...io.Writer) {
	var writer io.Writer = os.Stderr
	if len(w) > 0 && w[0] != nil {
		writer = w[0]
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// ParseLevel maps a flag value to a slog level. Matching is case-insensitive.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// New returns a logger tagged with a "component" attribute, one per
// engine subsystem (catalog, engine, mcp, cli).
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
