package program

import (
	"os"

	"github.com/stukennedy/boba/command"
)

// OutputStream selects which stream terminal writes go to.
type OutputStream int

const (
	OutputStdout OutputStream = iota
	OutputStderr
)

// ProgramOptions is the exhaustive configuration surface (spec §3). Zero
// value is not meaningful on its own — use Default() or config.Default().
type ProgramOptions struct {
	FPS int

	AltScreen bool

	// MouseMode is nil when mouse capture is disabled.
	MouseMode *command.MouseMode

	BracketedPaste bool
	FocusReporting bool

	// Title is empty when no window title should be set.
	Title string

	CatchPanics   bool
	HandleSignals bool

	// LogFile is empty when no diagnostic log should be written.
	LogFile string

	Output OutputStream
}

// Default returns the documented defaults (spec §3): fps 60, alt screen on,
// mouse off, bracketed paste on, focus reporting off, no title, panics
// caught, signals handled, no log file, stdout output.
func Default() ProgramOptions {
	return ProgramOptions{
		FPS:            60,
		AltScreen:      true,
		BracketedPaste: true,
		FocusReporting: false,
		CatchPanics:    true,
		HandleSignals:  true,
		Output:         OutputStdout,
	}
}

// Clamp enforces fps ∈ [1, 120] in place, per spec §8's boundary behaviors
// (fps=0 clamps to 1, fps=500 clamps to 120).
func (o *ProgramOptions) Clamp() {
	if o.FPS < 1 {
		o.FPS = 1
	}
	if o.FPS > 120 {
		o.FPS = 120
	}
}

// Writer resolves the configured Output selector to a concrete stream.
func (o ProgramOptions) Writer() *os.File {
	if o.Output == OutputStderr {
		return os.Stderr
	}
	return os.Stdout
}
