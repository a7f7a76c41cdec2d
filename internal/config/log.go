package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger opens the dashboard log file and returns a zerolog logger
// writing to it. The TUI owns the terminal, so nothing may log to stdout
// while the program runs.
func NewLogger(level string) (zerolog.Logger, error) {
	if err := EnsureGlobalDir(); err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to ensure config dir: %w", err)
	}

	path, err := GlobalLogFile()
	if err != nil {
		return zerolog.Nop(), err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to open log file: %w", err)
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return logger, nil
}

// NewConsoleLogger returns a logger writing human-readable output to the
// given writer. Used by one-shot CLI commands where stderr is free.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
