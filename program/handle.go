package program

import (
	"sync/atomic"

	"github.com/stukennedy/boba/command"
)

// Handle is a cheaply clonable capability pair (spec §3's ProgramHandle):
// enqueue a message from outside the event-loop task, or request an
// immediate kill. Copying a Handle by value is safe — both fields are
// reference types.
type Handle struct {
	queue  *msgQueue
	killed *int32
}

// Send enqueues m on the program's message channel, reporting whether it
// was accepted (false once the program has finished shutting down).
func (h Handle) Send(m command.Msg) bool {
	return h.queue.send(m)
}

// Kill requests immediate termination: the event loop exits at the top of
// its next iteration without processing any further queued messages.
func (h Handle) Kill() {
	atomic.StoreInt32(h.killed, 1)
}

// Killed reports whether Kill has been called.
func (h Handle) Killed() bool {
	return atomic.LoadInt32(h.killed) != 0
}
