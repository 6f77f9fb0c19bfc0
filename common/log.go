package common

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger builds the shared logger. An empty level falls back to the
// LOG_LEVEL environment variable and then to info; unknown levels are info.
func NewLogger(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		Prefix:          "samurai",
		ReportTimestamp: true,
	})
}

// ParseLevel maps debug|info|warn|error onto a log level.
func ParseLevel(s string) log.Level {
	s = strings.TrimSpace(s)
	if s == "" {
		s = os.Getenv("LOG_LEVEL")
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
