package subscription

import (
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gopkg.in/tomb.v2"
)

// Manager holds the active subscription set and reconciles it against a new
// desired set on every event-loop cycle: start new, stop removed, keep
// unchanged. It is owned by exactly one goroutine (the Program's event
// loop) and is never shared.
type Manager struct {
	mu     sync.Mutex
	active map[ID]*tomb.Tomb
	send   func(Msg)
	log    zerolog.Logger
}

// NewManager builds a Manager that spawns subscriptions with send as their
// message sink. log may be the zero value (a disabled logger).
func NewManager(send func(Msg), log zerolog.Logger) *Manager {
	return &Manager{
		active: make(map[ID]*tomb.Tomb),
		send:   send,
		log:    log,
	}
}

// Reconcile converges the active set to match subs. Later entries in subs
// sharing an id with an earlier one silently win — the diff is by id, and
// producing duplicate ids is a caller error the manager does not detect.
func (m *Manager) Reconcile(subs []Subscription) {
	m.mu.Lock()
	defer m.mu.Unlock()

	desired := make(map[ID]Subscription, len(subs))
	for _, s := range subs {
		desired[s.id] = s
	}

	for id, t := range m.active {
		if _, ok := desired[id]; !ok {
			m.log.Debug().Str("subscription", id.String()).Msg("subscription stopped")
			t.Kill(nil)
			delete(m.active, id)
		}
	}

	for id, s := range desired {
		if _, ok := m.active[id]; ok {
			continue
		}
		m.log.Debug().Str("subscription", id.String()).Msg("subscription started")
		t := new(tomb.Tomb)
		s.spawn(t, m.send)
		m.active[id] = t
	}
}

// Len reports the number of currently active subscriptions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.active)
}

// Active reports whether id is in the active table. The table tracks the
// desired set, so an id whose task has already finished stays active until
// a Reconcile omits it.
func (m *Manager) Active(id ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.active[id]
	return ok
}

// Shutdown aborts every active subscription and waits for all of them to
// exit, concurrently, then clears the table.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	tombs := make([]*tomb.Tomb, 0, len(m.active))
	for _, t := range m.active {
		tombs = append(tombs, t)
	}
	m.active = make(map[ID]*tomb.Tomb)
	m.mu.Unlock()

	var g errgroup.Group
	for _, t := range tombs {
		t := t
		t.Kill(nil)
		g.Go(t.Wait)
	}
	_ = g.Wait()
}
