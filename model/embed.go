package model

import (
	"github.com/stukennedy/boba/command"
	"github.com/stukennedy/boba/subscription"
)

// Component is the pattern for embedding a sub-model whose own message type
// differs from the parent's. It is not a new core type — Command.Map and
// Subscription.Map (spec §4.1/§4.2) already provide everything needed; this
// is documentation-as-code for the pattern the original implementation
// exposed as a trait (crates/boba-core/src/component.rs), which this port
// keeps as a convention rather than widening the closed Command/Subscription
// sum types.
type Component[SubMsg any] interface {
	Init() (Component[SubMsg], command.Command)
	Update(msg SubMsg) (Component[SubMsg], command.Command)
	View(frame Frame)
	Subscriptions() []subscription.Subscription
}

// Embed lifts a Component's messages, commands, and subscriptions into a
// parent's message type via the supplied wrap function, so the parent's
// Update can dispatch a SubMsg without either side knowing about the
// other's full message type.
type Embed[ParentMsg, SubMsg any] struct {
	Child Component[SubMsg]
	Wrap  func(SubMsg) ParentMsg
}

// Init runs the child's Init and lifts its command into ParentMsg.
func (e Embed[ParentMsg, SubMsg]) Init() (Embed[ParentMsg, SubMsg], command.Command) {
	child, cmd := e.Child.Init()
	e.Child = child
	return e, cmd.Map(func(m command.Msg) command.Msg { return e.Wrap(m.(SubMsg)) })
}

// Update runs the child's Update and lifts its command into ParentMsg.
func (e Embed[ParentMsg, SubMsg]) Update(msg SubMsg) (Embed[ParentMsg, SubMsg], command.Command) {
	child, cmd := e.Child.Update(msg)
	e.Child = child
	return e, cmd.Map(func(m command.Msg) command.Msg { return e.Wrap(m.(SubMsg)) })
}

// View delegates straight to the child — rendering does not need lifting.
func (e Embed[ParentMsg, SubMsg]) View(frame Frame) { e.Child.View(frame) }

// Subscriptions lifts the child's subscriptions' messages into ParentMsg,
// preserving each subscription's identity.
func (e Embed[ParentMsg, SubMsg]) Subscriptions() []subscription.Subscription {
	subs := e.Child.Subscriptions()
	lifted := make([]subscription.Subscription, len(subs))
	for i, s := range subs {
		lifted[i] = s.Map(func(m subscription.Msg) subscription.Msg { return e.Wrap(m.(SubMsg)) })
	}
	return lifted
}
