package command

import "context"

// Visitor is the exhaustive-match seam the interpreter (package program)
// uses to dispatch on a Command's variant without command exporting its
// fields. Every variant has a corresponding, optional callback; Visit calls
// exactly one. This keeps the sum type closed — the only way to add a case
// is to add both a constructor here and a field to Visitor, which forces
// every caller of Visit to be revisited.
type Visitor struct {
	None     func()
	Message  func(Msg)
	Quit     func(err error)
	Future   func(fn func(context.Context) Msg)
	Stream   func(fn StreamFunc)
	Batch    func(children []Command)
	Sequence func(children []Command)
	Terminal func(d TerminalDirective)
	Exec     func(spec ExecSpec, onExit func(ExecResult) Msg)
}

// Visit dispatches c to the matching Visitor callback, if set.
func (c Command) Visit(v Visitor) {
	switch c.kind {
	case kindNone:
		if v.None != nil {
			v.None()
		}
	case kindMessage:
		if v.Message != nil {
			v.Message(c.msg)
		}
	case kindQuit:
		if v.Quit != nil {
			v.Quit(c.err)
		}
	case kindFuture:
		if v.Future != nil {
			v.Future(c.future)
		}
	case kindStream:
		if v.Stream != nil {
			v.Stream(c.stream)
		}
	case kindBatch:
		if v.Batch != nil {
			v.Batch(c.children)
		}
	case kindSequence:
		if v.Sequence != nil {
			v.Sequence(c.children)
		}
	case kindTerminal:
		if v.Terminal != nil {
			v.Terminal(c.terminal)
		}
	case kindExec:
		if v.Exec != nil {
			v.Exec(c.exec, c.onExit)
		}
	}
}
