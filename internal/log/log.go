// Package log builds the slog handlers used by the hammer CLI.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	LogfmtFormat = "logfmt"
	TextFormat   = "text"
)

var (
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// CreateHandlerWithStrings creates a [slog.Handler] writing to w, with the
// level and format given by name.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	format, err := GetFormatter(logFormat)
	if err != nil {
		return nil, err
	}

	return CreateHandler(w, level, format), nil
}

// CreateHandler creates a [slog.Handler] backed by a charmbracelet logger.
func CreateHandler(w io.Writer, level log.Level, format log.Formatter) slog.Handler {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       format,
		ReportTimestamp: format != log.TextFormatter,
	})
}

// GetLevel parses a level name. "warning" and "trace" are accepted as
// aliases; the empty string means warn.
func GetLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return log.WarnLevel, nil
	case "warning":
		return log.WarnLevel, nil
	case "trace":
		return log.DebugLevel, nil
	}

	l, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return l, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
	}

	return l, nil
}

// GetFormatter parses a format name; the empty string means text.
func GetFormatter(format string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case TextFormat, "":
		return log.TextFormatter, nil
	case LogfmtFormat:
		return log.LogfmtFormatter, nil
	case JSONFormat:
		return log.JSONFormatter, nil
	}

	return log.TextFormatter, fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}
