// Package command implements the recursive Command tree: a description of
// side effects an Update function may ask the runtime to perform. Variants
// are closed — the interpreter in package program is a total match over
// them, and extensibility belongs to Future/Stream wrapping user code, not
// to new variants.
package command

import "context"

// Msg is an opaque, user-defined message type. The command tree never
// inspects it.
type Msg = any

type kind int

const (
	kindNone kind = iota
	kindMessage
	kindQuit
	kindFuture
	kindStream
	kindBatch
	kindSequence
	kindTerminal
	kindExec
)

// StreamFunc produces zero or more messages by calling yield. Returning
// false from yield means the sink is gone (program shutting down); the
// stream should stop. StreamFunc itself returns when the source is
// exhausted or yield first returns false.
type StreamFunc func(ctx context.Context, yield func(Msg) bool)

// ExecSpec describes an external process to run with inherited stdio.
type ExecSpec struct {
	Path string
	Args []string
	Dir  string
	Env  []string
}

// ExecResult is delivered to a Command's on-exit continuation after the
// child process returns (or fails to start).
type ExecResult struct {
	ExitCode int
	Err      error
}

// Command is a recursive, closed sum type. The zero value is None.
type Command struct {
	kind kind

	msg Msg
	err error // non-nil only for a Quit requesting a non-zero program exit

	future func(context.Context) Msg
	stream StreamFunc

	children []Command

	terminal TerminalDirective

	exec   ExecSpec
	onExit func(ExecResult) Msg
}

// None performs no effect.
func None() Command { return Command{kind: kindNone} }

// Message enqueues m on the program's channel.
func Message(m Msg) Command { return Command{kind: kindMessage, msg: m} }

// Quit signals the event loop to exit cleanly after the current step.
func Quit() Command { return Command{kind: kindQuit} }

// QuitWithError signals the event loop to exit after the current step,
// returning err from Program.Run instead of a nil error. Supplements the
// distilled spec's plain Quit with the original implementation's
// QuitWithError (crates/boba-core/src/quit.rs).
func QuitWithError(err error) Command { return Command{kind: kindQuit, err: err} }

// Perform lifts an async computation yielding a T plus a mapping function
// into a single-message Future command. The future is spawned once by the
// interpreter; on completion its result is mapped to a Msg and enqueued.
func Perform[T any](future func(context.Context) (T, error), mapFn func(T, error) Msg) Command {
	return Command{
		kind: kindFuture,
		future: func(ctx context.Context) Msg {
			v, err := future(ctx)
			return mapFn(v, err)
		},
	}
}

// Future wraps an already Msg-producing async computation directly.
func Future(fn func(context.Context) Msg) Command {
	return Command{kind: kindFuture, future: fn}
}

// Stream spawns an async producer of many messages.
func Stream(fn StreamFunc) Command {
	return Command{kind: kindStream, stream: fn}
}

// Batch executes all children concurrently with no ordering between them.
// An empty batch normalizes to None; a single-element batch unwraps to its
// child.
func Batch(cmds ...Command) Command {
	return collapse(kindBatch, cmds)
}

// Sequence executes children strictly in order: every message produced by
// child N is enqueued before child N+1 begins.
func Sequence(cmds ...Command) Command {
	return collapse(kindSequence, cmds)
}

func collapse(k kind, cmds []Command) Command {
	filtered := cmds[:0:0]
	for _, c := range cmds {
		if c.kind == kindNone {
			continue
		}
		filtered = append(filtered, c)
	}
	switch len(filtered) {
	case 0:
		return None()
	case 1:
		return filtered[0]
	default:
		return Command{kind: k, children: filtered}
	}
}

// Terminal dispatches a terminal-control directive synchronously.
func Terminal(d TerminalDirective) Command {
	return Command{kind: kindTerminal, terminal: d}
}

// Exec releases the terminal, runs spec with inherited stdio, re-acquires
// the terminal, and enqueues onExit(result).
func Exec(spec ExecSpec, onExit func(ExecResult) Msg) Command {
	return Command{kind: kindExec, exec: spec, onExit: onExit}
}

// IsNone reports whether c performs no effect.
func (c Command) IsNone() bool { return c.kind == kindNone }

// IsQuit reports whether c is Quit or QuitWithError.
func (c Command) IsQuit() bool { return c.kind == kindQuit }

// QuitErr returns the error carried by QuitWithError, or nil for a plain
// Quit. Only meaningful when IsQuit reports true.
func (c Command) QuitErr() error { return c.err }

// AsMessage destructures c into its immediate message, if c is exactly a
// Message command. Async, terminal, and composite variants are opaque to
// inspection, per spec.
func (c Command) AsMessage() (Msg, bool) {
	if c.kind == kindMessage {
		return c.msg, true
	}
	return nil, false
}

// AsBatch destructures c into its batch children, if c is exactly a Batch.
func (c Command) AsBatch() ([]Command, bool) {
	if c.kind == kindBatch {
		return c.children, true
	}
	return nil, false
}

// AsSequence destructures c into its sequence children, if c is exactly a
// Sequence.
func (c Command) AsSequence() ([]Command, bool) {
	if c.kind == kindSequence {
		return c.children, true
	}
	return nil, false
}

// Map traverses the tree and rewrites every place a Msg surfaces, pushing f
// to the leaves. It is functorial: c.Map(f).Map(g) is observationally
// equivalent to c.Map(compose(g, f)), and c.Map(identity) is observationally
// equivalent to c.
func (c Command) Map(f func(Msg) Msg) Command {
	switch c.kind {
	case kindNone, kindQuit, kindTerminal:
		return c
	case kindMessage:
		return Command{kind: kindMessage, msg: f(c.msg)}
	case kindFuture:
		inner := c.future
		return Command{kind: kindFuture, future: func(ctx context.Context) Msg {
			return f(inner(ctx))
		}}
	case kindStream:
		inner := c.stream
		return Command{kind: kindStream, stream: func(ctx context.Context, yield func(Msg) bool) {
			inner(ctx, func(m Msg) bool { return yield(f(m)) })
		}}
	case kindBatch:
		mapped := make([]Command, len(c.children))
		for i, ch := range c.children {
			mapped[i] = ch.Map(f)
		}
		return Command{kind: kindBatch, children: mapped}
	case kindSequence:
		mapped := make([]Command, len(c.children))
		for i, ch := range c.children {
			mapped[i] = ch.Map(f)
		}
		return Command{kind: kindSequence, children: mapped}
	case kindExec:
		inner := c.onExit
		return Command{kind: kindExec, exec: c.exec, onExit: func(r ExecResult) Msg {
			return f(inner(r))
		}}
	default:
		return c
	}
}
