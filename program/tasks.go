package program

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/tomb.v2"
)

// taskSet tracks every background task spawned by the command interpreter
// (one tomb.Tomb per Future/Stream/Sequence command, mirroring how
// subscription.Manager supervises subscription tasks) so shutdown can abort
// and await all of them, leaving no goroutine behind — the property
// goleak-based tests assert.
type taskSet struct {
	mu    sync.Mutex
	tombs []*tomb.Tomb
}

func newTaskSet() *taskSet { return &taskSet{} }

// spawn runs fn under a new supervised tomb and tracks it for shutdown.
func (s *taskSet) spawn(fn func(t *tomb.Tomb) error) {
	t := new(tomb.Tomb)
	s.mu.Lock()
	s.tombs = append(s.tombs, t)
	s.mu.Unlock()
	t.Go(func() error { return fn(t) })
}

// taskContext returns a context bound to t's lifetime, for command tasks
// that want to select on cancellation via context rather than t.Dying()
// directly.
func taskContext(t *tomb.Tomb) context.Context {
	c, cancel := context.WithCancel(context.Background())
	go func() {
		<-t.Dying()
		cancel()
	}()
	return c
}

// shutdown kills every tracked task and waits for all of them concurrently.
func (s *taskSet) shutdown() {
	s.mu.Lock()
	tombs := s.tombs
	s.tombs = nil
	s.mu.Unlock()

	var g errgroup.Group
	for _, t := range tombs {
		t := t
		t.Kill(nil)
		g.Go(t.Wait)
	}
	_ = g.Wait()
}
