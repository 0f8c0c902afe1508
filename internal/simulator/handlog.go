package simulator

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewHandLogger returns a structured JSON logger suitable for the
// per-hand record stream. One line per hand keeps the output easy to
// post-process.
func NewHandLogger(w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(w).With().Timestamp().Logger()
}

// NewConsoleHandLogger returns a pretty console variant of the hand
// logger for interactive runs.
func NewConsoleHandLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
}
