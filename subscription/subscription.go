package subscription

import "gopkg.in/tomb.v2"

// Msg is an opaque, user-defined message type; subscriptions never inspect
// it (mirrors command.Msg — kept as a separate alias so this package has no
// dependency on command).
type Msg = any

// SpawnFunc starts a subscription's long-lived task. It is called once, at
// most, by a Manager. t is the task's supervising tomb: the spawn function
// should register its goroutine(s) with t.Go and select on t.Dying() to
// cooperate with cancellation. send enqueues a message on the program's
// channel; a subscription may call it any number of times (including
// zero, for a finite source that only signals completion).
type SpawnFunc func(t *tomb.Tomb, send func(Msg))

// Subscription bundles an identity with a one-shot spawn operation.
// Installing it into a Manager consumes it — the value itself carries no
// running state.
type Subscription struct {
	id    ID
	spawn SpawnFunc
}

// New builds a Subscription from an id and spawn function.
func New(id ID, spawn SpawnFunc) Subscription {
	return Subscription{id: id, spawn: spawn}
}

// ID returns the subscription's identity.
func (s Subscription) ID() ID { return s.id }

// Map returns a subscription with the same id whose messages are
// post-processed by f. Go's closures already give spawn functions shared,
// garbage-collected access to f, so unlike an ownership-tracked
// implementation there is no need to route messages through an
// intermediate channel to hand off ownership — composing the send callback
// is sufficient and preserves identity and cancellation (the same tomb
// supervises the inner spawn).
func (s Subscription) Map(f func(Msg) Msg) Subscription {
	inner := s.spawn
	return Subscription{id: s.id, spawn: func(t *tomb.Tomb, send func(Msg)) {
		inner(t, func(m Msg) { send(f(m)) })
	}}
}
