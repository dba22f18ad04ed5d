// Package terminal implements the backend contract spec §6 requires of any
// terminal driver, plus one concrete implementation (UnixBackend) built on
// golang.org/x/term and ANSI escape sequences, adapted from the teacher's
// ansi/ansi.go and input/input.go. The core (package program) depends only
// on the Backend interface; Program is constructible with any backend that
// satisfies it, including a fake one in tests.
package terminal

import (
	"context"

	"github.com/stukennedy/boba/command"
	"github.com/stukennedy/boba/model"
)

// Event is anything the backend's event source can yield.
type Event interface{ isEvent() }

// KeyEvent wraps a single keystroke.
type KeyEvent struct{ Key Key }

// ResizeEvent reports a new terminal size.
type ResizeEvent struct{ Width, Height int }

// FocusEvent indicates the terminal gained or lost focus.
type FocusEvent struct{ Focused bool }

// MouseKind distinguishes mouse event shapes.
type MouseKind int

const (
	MouseClickKind MouseKind = iota
	MouseScrollUpKind
	MouseScrollDownKind
)

// MouseEvent reports a mouse click or scroll.
type MouseEvent struct{ Kind MouseKind }

// PasteEvent carries bracketed-paste text.
type PasteEvent struct{ Text string }

// SequenceEvent reports a matched key-chord (SPEC_FULL §4 key sequences).
type SequenceEvent struct{ Name string }

func (KeyEvent) isEvent()      {}
func (ResizeEvent) isEvent()   {}
func (FocusEvent) isEvent()    {}
func (MouseEvent) isEvent()    {}
func (PasteEvent) isEvent()    {}
func (SequenceEvent) isEvent() {}

// Backend is the capability set the core requires of a terminal driver
// (spec §6). All calls except Events and Frame are synchronous and return
// an error rather than panicking.
type Backend interface {
	EnableRawMode() error
	DisableRawMode() error

	EnterAltScreen() error
	ExitAltScreen() error

	EnableMouse(mode command.MouseMode) error
	DisableMouse() error

	EnableBracketedPaste() error
	DisableBracketedPaste() error

	EnableFocusReporting() error
	DisableFocusReporting() error

	ShowCursor() error
	HideCursor() error
	SetCursorStyle(shape command.CursorShape) error

	SetTitle(title string) error
	ClearScreen() error
	ScrollUp(n int) error
	ScrollDown(n int) error

	// Print writes s verbatim; Println writes s followed by CR+LF (raw
	// mode suppresses newline translation).
	Print(s string) error
	Println(s string) error

	// Size reports the current viewport size in (cols, rows).
	Size() (cols, rows int, err error)

	// Events returns a channel of input/resize/focus/mouse/paste events.
	// The channel closes when ctx is done or the input source errors.
	Events(ctx context.Context) <-chan Event

	// Frame invokes fn with a drawing surface for one render pass, then
	// commits the minimal diff against the previous frame to the
	// terminal.
	Frame(fn func(model.Frame)) error

	// Suspend restores the terminal, signals the process to stop, and
	// reinitializes raw mode + alt screen on resume, forcing a redraw.
	Suspend() error

	// Dispatch applies a Terminal command directive.
	Dispatch(d command.TerminalDirective) error

	// Close restores the terminal to its pre-acquire state. Safe to call
	// more than once; failures are collected, not short-circuited (spec's
	// best-effort teardown).
	Close() error
}
