// Package logging builds the structured logger shared by the commands.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to stderr. Format is "text", "json" or
// "logfmt"; unknown values fall back to text. Unknown levels mean info.
func New(level, format string) *log.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

func NewWithWriter(w io.Writer, level, format string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           parseLevel(level),
		ReportTimestamp: true,
		Formatter:       parseFormatter(format),
	})
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func parseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
