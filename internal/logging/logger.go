// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger: human-readable console output on
// stderr, plus an optional append-mode log file. Returns a closer for the
// file handle, which is a no-op when no file is configured.
func Setup(level, file string) (func() error, error) {
	zerolog.SetGlobalLevel(ParseLevel(level))

	console := zerolog.ConsoleWriter{Out: os.Stderr}

	closer := func() error { return nil }
	writer := io.Writer(console)
	if file != "" {
		f, err := openLogFile(file)
		if err != nil {
			return nil, err
		}
		closer = f.Close
		fileWriter := zerolog.ConsoleWriter{Out: f, NoColor: true}
		writer = zerolog.MultiLevelWriter(console, fileWriter)
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	return closer, nil
}

// SetupFileOnly routes all log output to the given file, keeping stderr
// clean. Used while the TUI owns the terminal.
func SetupFileOnly(level, file string) (func() error, error) {
	zerolog.SetGlobalLevel(ParseLevel(level))

	if file == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() error { return nil }, nil
	}

	f, err := openLogFile(file)
	if err != nil {
		return nil, err
	}
	writer := zerolog.ConsoleWriter{Out: f, NoColor: true}
	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	return f.Close, nil
}

// ParseLevel maps a level string to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
