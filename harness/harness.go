// Package harness implements the headless test harness (spec §4.5): a
// parallel entry point that drives a model.Model without a terminal, for
// unit tests. Only None, Message, Quit, Batch, and Sequence contribute to
// synchronous collection — Future, Stream, Terminal, and Exec are silently
// ignored, since the harness is explicitly not a runtime simulator.
package harness

import (
	"github.com/stukennedy/boba/command"
	"github.com/stukennedy/boba/model"
)

// Harness drives a Model through init/update/view without a terminal or
// event loop, collecting the synchronous messages a command produces so
// tests can assert on resulting state without racing a background task.
type Harness struct {
	m        model.Model
	quit     bool
	pending  []command.Msg
}

// New constructs a Harness by calling m.Init() and collecting any
// synchronous messages its initial command produces.
func New(m model.Model) *Harness {
	h := &Harness{}
	initial, cmd := m.Init()
	h.m = initial
	h.collect(cmd)
	return h
}

// Model returns the harness's current model state.
func (h *Harness) Model() model.Model { return h.m }

// Quit reports whether a Quit command has been collected.
func (h *Harness) Quit() bool { return h.quit }

// Send invokes Update with msg and collects any synchronous messages the
// resulting command produces. It does not itself drain those collected
// messages — call Drain for message-chaining test support.
func (h *Harness) Send(msg command.Msg) {
	newModel, cmd := h.m.Update(msg)
	h.m = newModel
	h.collect(cmd)
}

// Drain repeatedly processes pending synchronous messages (those collected
// from a Message/Batch/Sequence command) until none remain, supporting
// tests where one message's Update returns a command that enqueues another.
func (h *Harness) Drain() {
	for len(h.pending) > 0 {
		m := h.pending[0]
		h.pending = h.pending[1:]
		h.Send(m)
	}
}

// collect walks the synchronous shape of cmd (None, Message, Quit, Batch,
// Sequence) and appends any immediate messages to the pending queue.
// Future, Stream, Terminal, and Exec are opaque to the harness and are
// dropped without effect.
func (h *Harness) collect(cmd command.Command) {
	cmd.Visit(command.Visitor{
		None: func() {},
		Message: func(m command.Msg) {
			h.pending = append(h.pending, m)
		},
		Quit: func(error) {
			h.quit = true
		},
		Batch: func(children []command.Command) {
			for _, c := range children {
				h.collect(c)
			}
		},
		Sequence: func(children []command.Command) {
			for _, c := range children {
				h.collect(c)
			}
		},
	})
}

// Render renders the current model state into an in-memory buffer of the
// given dimensions and returns it.
func (h *Harness) Render(w, hgt int) *Buffer {
	buf := newBuffer(w, hgt)
	h.m.View(buf)
	return buf
}

// RenderString is a convenience that renders and converts the buffer to a
// newline-separated string.
func (h *Harness) RenderString(w, hgt int) string {
	return h.Render(w, hgt).String()
}
