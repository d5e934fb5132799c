package app

import (
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// newLogger builds the diagnostic logger. User-facing output goes through
// pterm; this logger only carries operational detail on stderr.
func newLogger(level string) *slog.Logger {
	handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Level:           parseLevel(level),
	})
	return slog.New(handler)
}

func parseLevel(level string) charmlog.Level {
	parsed, err := charmlog.ParseLevel(level)
	if err != nil {
		return charmlog.WarnLevel
	}
	return parsed
}
