// Package metrics provides prometheus collectors for the event loop:
// messages processed, frames rendered, active subscriptions, and commands
// dispatched by variant. Grounded on the pack's market-fetcher metrics
// package (github.com/prometheus/client_golang/prometheus +
// promauto-style construction) but built as a per-Program struct rather
// than package-level promauto globals, since a process may construct more
// than one Program (tests do) and promauto panics on duplicate
// registration against the default registry.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "boba"

// Collectors holds every metric the event loop updates. Register it with a
// *prometheus.Registry to expose it.
type Collectors struct {
	MessagesProcessed     prometheus.Counter
	FramesRendered        prometheus.Counter
	ActiveSubscriptions   prometheus.Gauge
	CommandsByVariant     *prometheus.CounterVec
	TerminalDispatchFails prometheus.Counter
}

// New builds a fresh, unregistered Collectors set.
func New() *Collectors {
	return &Collectors{
		MessagesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_processed_total",
			Help:      "Total number of messages processed by update.",
		}),
		FramesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_rendered_total",
			Help:      "Total number of frames rendered.",
		}),
		ActiveSubscriptions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_subscriptions",
			Help:      "Number of currently active subscriptions.",
		}),
		CommandsByVariant: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Total number of commands dispatched, by variant.",
		}, []string{"variant"}),
		TerminalDispatchFails: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "terminal_dispatch_failures_total",
			Help:      "Total number of terminal directive dispatch failures.",
		}),
	}
}

// Register registers every collector with reg.
func (c *Collectors) Register(reg *prometheus.Registry) error {
	for _, collector := range []prometheus.Collector{
		c.MessagesProcessed,
		c.FramesRendered,
		c.ActiveSubscriptions,
		c.CommandsByVariant,
		c.TerminalDispatchFails,
	} {
		if err := reg.Register(collector); err != nil {
			return err
		}
	}
	return nil
}
