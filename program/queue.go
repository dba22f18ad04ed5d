package program

import (
	"sync"

	"github.com/stukennedy/boba/command"
)

// msgQueue is the program's unbounded, multi-producer single-consumer
// message channel (spec §5: "the message channel is the only cross-task
// shared state... sends are non-blocking; a failed send means the program
// is shutting down"). A plain buffered chan can't be unbounded without an
// arbitrary cap, so this follows the same mutex-protected-slice-plus-wakeup
// shape juju/juju's worker plumbing uses around its own internal queues.
type msgQueue struct {
	mu     sync.Mutex
	items  []command.Msg
	wake   chan struct{}
	closed bool
}

func newMsgQueue() *msgQueue {
	return &msgQueue{wake: make(chan struct{}, 1)}
}

// send enqueues m and reports whether it was accepted. It never blocks.
func (q *msgQueue) send(m command.Msg) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, m)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

// tryRecv pops the next message, if any, without blocking.
func (q *msgQueue) tryRecv() (command.Msg, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil, false
	}
	m := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	if len(q.items) > 0 {
		select {
		case q.wake <- struct{}{}:
		default:
		}
	}
	return m, true
}

// wakeCh signals (at least once) whenever a message is available.
func (q *msgQueue) wakeCh() <-chan struct{} { return q.wake }

// close marks the queue shut; further sends fail.
func (q *msgQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}
