// Package model defines the trait the Program drives: init, update, view,
// and subscriptions (spec §6). It is deliberately tiny — the core never
// knows anything about a concrete model beyond this interface.
package model

import (
	"github.com/stukennedy/boba/command"
	"github.com/stukennedy/boba/subscription"
)

// Msg is an opaque, user-defined message type.
type Msg = command.Msg

// Model is the user-supplied application driven by the event loop. State
// mutation happens only inside Update; Init and Update return the effects
// the runtime should perform, never performing them directly.
type Model interface {
	// Init returns the initial state and an optional startup command.
	Init() (Model, command.Command)

	// Update processes one message and returns the new state plus a
	// command to execute. It never blocks and never touches the terminal
	// directly — side effects are described by the returned Command.
	Update(msg Msg) (Model, command.Command)

	// View renders the current state into frame. It must be a pure
	// function of state: the same state always produces the same frame
	// contents.
	View(frame Frame)

	// Subscriptions declares the long-lived event sources that should be
	// active for the current state. Called after every Update and
	// reconciled by identity; models with no subscriptions may embed
	// NoSubscriptions.
	Subscriptions() []subscription.Subscription
}

// Frame is the drawing surface View receives. It is intentionally minimal —
// widget rendering is out of scope for the core; the terminal package's
// cell buffer implements this for the default backend, and the headless
// harness's Buffer implements it in-memory for tests.
type Frame interface {
	// Size reports the frame's drawable area.
	Size() (cols, rows int)

	// SetCell paints a single cell. Implementations clip out-of-bounds
	// writes rather than panicking.
	SetCell(x, y int, r rune, fg, bg Color, style StyleFlags)
}

// Color is an ANSI 256-color index; zero means default/unset.
type Color uint8

// StyleFlags are bitwise text style attributes.
type StyleFlags uint8

const (
	Bold StyleFlags = 1 << iota
	Dim
	Italic
	Underline
	Reverse
)

// NoSubscriptions can be embedded by models with no long-lived event
// sources, satisfying Model.Subscriptions with the spec's documented
// default (empty).
type NoSubscriptions struct{}

func (NoSubscriptions) Subscriptions() []subscription.Subscription { return nil }
