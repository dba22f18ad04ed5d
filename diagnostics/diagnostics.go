// Package diagnostics sets up the zerolog logger used for the program's
// optional diagnostic log file sink (spec §3's log_file option): nothing is
// ever written to stdout/stderr by default, since the alternate screen owns
// the terminal.
package diagnostics

import (
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/rs/zerolog"
)

// Open opens path in append mode and returns a zerolog.Logger writing to
// it, timestamped, at debug level. The caller owns the returned file and
// must close it on shutdown.
func Open(path string) (zerolog.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, errors.Annotatef(err, "open log file %q", path)
	}
	log := New(f)
	return log, f, nil
}

// New wraps an arbitrary writer as a timestamped zerolog.Logger at debug
// level, for callers that already manage the destination (Open uses it
// after opening the log file).
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// Disabled returns a logger that discards everything, used when no log
// file is configured.
func Disabled() zerolog.Logger {
	return zerolog.Nop()
}
