// Package program implements the event loop that owns the terminal, the
// message channel, the subscription manager, and the user model (spec
// §4.3). Program is constructed from a Model, a terminal.Backend, and
// ProgramOptions; Run drives it to completion and guarantees terminal
// restoration on every exit path.
package program

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/rs/zerolog"

	"github.com/stukennedy/boba/command"
	"github.com/stukennedy/boba/diagnostics"
	"github.com/stukennedy/boba/metrics"
	"github.com/stukennedy/boba/model"
	"github.com/stukennedy/boba/subscription"
	"github.com/stukennedy/boba/terminal"
)

// microBatchWindow and microBatchLimit bound how much draining the loop
// does per message-available wakeup before yielding to a possible render
// (spec §4.3/§9: "100 µs OR 100 further messages... a tuning choice, not a
// correctness property").
const (
	microBatchWindow = 100 * time.Microsecond
	microBatchLimit  = 100
)

// keySequencer is implemented by backends that support chord registration
// (terminal.UnixBackend). Optional: a backend without it simply never
// emits terminal.SequenceEvent.
type keySequencer interface {
	WithKeySequences(chords map[string]string)
}

// Program owns the terminal, the model, and the event loop. The zero value
// is not usable; construct with New.
type Program struct {
	model   model.Model
	backend terminal.Backend
	opts    ProgramOptions

	queue *msgQueue
	subs  *subscription.Manager
	tasks *taskSet
	clock clock.Clock

	killed int32

	needsRedraw      bool
	shouldQuit       bool
	quitErr          error
	terminalReleased bool

	filter func(command.Msg) (command.Msg, bool)

	logFile *os.File
	log     zerolog.Logger

	metrics *metrics.Collectors
}

// New constructs a Program: it opens the optional log file, acquires the
// terminal per opts, runs the model's Init, executes the resulting initial
// command, and reconciles initial subscriptions. Any I/O error during
// terminal acquisition or log opening is returned rather than panicking.
func New(initial model.Model, backend terminal.Backend, opts ProgramOptions) (*Program, error) {
	opts.Clamp()

	log := diagnostics.Disabled()
	var logFile *os.File
	if opts.LogFile != "" {
		l, f, err := diagnostics.Open(opts.LogFile)
		if err != nil {
			return nil, errors.Trace(err)
		}
		log, logFile = l, f
	}

	p := &Program{
		backend: backend,
		opts:    opts,
		queue:   newMsgQueue(),
		tasks:   newTaskSet(),
		clock:   clock.WallClock,
		logFile: logFile,
		log:     log,
	}
	p.subs = subscription.NewManager(func(m subscription.Msg) { p.queue.send(m) }, log)

	if err := p.acquireTerminal(); err != nil {
		if logFile != nil {
			_ = logFile.Close()
		}
		return nil, errors.Trace(err)
	}

	newModel, cmd := initial.Init()
	p.model = newModel
	p.execute(cmd)
	p.subs.Reconcile(p.model.Subscriptions())
	p.needsRedraw = true

	return p, nil
}

// WithClock overrides the wall clock used for the frame ticker and the
// micro-batch window, for deterministic tests (testclock.NewClock). Must be
// called before Run.
func (p *Program) WithClock(c clock.Clock) *Program {
	p.clock = c
	return p
}

// WithMetrics attaches a prometheus Collectors set the event loop will
// update: messages processed, frames rendered, active subscription count,
// and commands by variant.
func (p *Program) WithMetrics(c *metrics.Collectors) *Program {
	p.metrics = c
	return p
}

// WithFilter installs a message filter (spec §9: "message filter over
// message subclassing"). Returning (_, false) drops the message silently;
// returning (m2, true) substitutes m2 for downstream processing.
func (p *Program) WithFilter(f func(command.Msg) (command.Msg, bool)) *Program {
	p.filter = f
	return p
}

// WithKeySequences registers a chord vocabulary on backends that support it
// (SPEC_FULL §4): e.g. {"g g": "go-top", "ctrl+d ctrl+d": "exit"}. The
// key that completes a chord arrives as terminal.SequenceEvent{Name: "go-top"}
// instead of a raw key message; the chord's earlier keys are still delivered
// as ordinary key events.
func (p *Program) WithKeySequences(chords map[string]string) *Program {
	if ks, ok := p.backend.(keySequencer); ok {
		ks.WithKeySequences(chords)
	}
	return p
}

// Handle returns a cheaply clonable handle external code can use to enqueue
// messages or request a kill.
func (p *Program) Handle() Handle {
	return Handle{queue: p.queue, killed: &p.killed}
}

func (p *Program) killedFlag() bool { return atomic.LoadInt32(&p.killed) != 0 }

// Run drives the event loop to completion and returns the final model
// state. Teardown (subscription abort, task abort, terminal restore) always
// runs, regardless of which exit path was taken.
func (p *Program) Run() (model.Model, error) {
	if p.opts.CatchPanics {
		defer recoverAndRestore(func() { _ = p.backend.Close() })
	}
	defer p.teardown()

	var sigCh chan os.Signal
	if p.opts.HandleSignals {
		sigCh = make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)
		defer signal.Stop(sigCh)
	}

	eventsCtx, cancelEvents := context.WithCancel(context.Background())
	defer cancelEvents()
	events := p.backend.Events(eventsCtx)
	go func() {
		for ev := range events {
			if !p.queue.send(ev) {
				return
			}
		}
	}()

	for {
		if p.killedFlag() {
			return p.model, p.quitErr
		}

		// Priority order (spec §4.3): interrupt, then message, then frame
		// tick. Go's select has no native priority, so each pass first
		// probes the higher-priority sources non-blockingly before
		// settling into the real three-way select.
		select {
		case <-sigOrNil(sigCh):
			p.shouldQuit = true
			return p.model, p.quitErr
		default:
		}
		select {
		case <-p.queue.wakeCh():
			p.drainMicroBatch()
			if p.shouldQuit || p.killedFlag() {
				return p.model, p.quitErr
			}
			continue
		default:
		}

		frameDelay := time.Second / time.Duration(p.opts.FPS)
		select {
		case <-sigOrNil(sigCh):
			p.shouldQuit = true
			return p.model, p.quitErr
		case <-p.queue.wakeCh():
			p.drainMicroBatch()
			if p.shouldQuit || p.killedFlag() {
				return p.model, p.quitErr
			}
		case <-p.clock.After(frameDelay):
			if p.needsRedraw && !p.terminalReleased {
				if err := p.render(); err != nil {
					return p.model, errors.Trace(err)
				}
				p.needsRedraw = false
			}
		}
	}
}

// drainMicroBatch processes one message and then opportunistically drains
// up to microBatchLimit further ready messages within microBatchWindow,
// amortizing update+render overhead under high event rates (spec §4.3/§9).
func (p *Program) drainMicroBatch() {
	m, ok := p.queue.tryRecv()
	if !ok {
		return
	}
	p.processMessage(m)
	if p.shouldQuit || p.killedFlag() {
		return
	}

	deadline := p.clock.Now().Add(microBatchWindow)
	for n := 0; n < microBatchLimit && p.clock.Now().Before(deadline); n++ {
		m, ok := p.queue.tryRecv()
		if !ok {
			return
		}
		p.processMessage(m)
		if p.shouldQuit || p.killedFlag() {
			return
		}
	}
}

func sigOrNil(ch chan os.Signal) <-chan os.Signal {
	if ch == nil {
		return nil
	}
	return ch
}

// teardown aborts every subscription and background command task, restores
// the terminal if it is not currently released to a child process, and
// closes the log file. It never short-circuits on a single failure (spec's
// best-effort teardown).
func (p *Program) teardown() {
	p.subs.Shutdown()
	p.tasks.shutdown()
	if !p.terminalReleased {
		if err := p.backend.Close(); err != nil {
			p.log.Error().Err(err).Msg("terminal teardown")
		}
	}
	p.queue.close()
	if p.logFile != nil {
		_ = p.logFile.Close()
	}
}

// acquireTerminal enables raw mode and every terminal mode opts requests.
// Used both by New and by restoreTerminalControl after an Exec child exits.
func (p *Program) acquireTerminal() error {
	if err := p.backend.EnableRawMode(); err != nil {
		return errors.Annotate(err, "enable raw mode")
	}
	if p.opts.AltScreen {
		if err := p.backend.EnterAltScreen(); err != nil {
			return errors.Annotate(err, "enter alt screen")
		}
	}
	if p.opts.MouseMode != nil {
		if err := p.backend.EnableMouse(*p.opts.MouseMode); err != nil {
			return errors.Annotate(err, "enable mouse")
		}
	}
	if p.opts.BracketedPaste {
		if err := p.backend.EnableBracketedPaste(); err != nil {
			return errors.Annotate(err, "enable bracketed paste")
		}
	}
	if p.opts.FocusReporting {
		if err := p.backend.EnableFocusReporting(); err != nil {
			return errors.Annotate(err, "enable focus reporting")
		}
	}
	if p.opts.Title != "" {
		if err := p.backend.SetTitle(p.opts.Title); err != nil {
			return errors.Annotate(err, "set title")
		}
	}
	return nil
}

// releaseTerminal restores the terminal to a state safe for a child process
// to use normally and marks it released (renders suppressed meanwhile).
func (p *Program) releaseTerminal() error {
	if p.terminalReleased {
		return nil
	}
	if err := p.backend.Close(); err != nil {
		return errors.Trace(err)
	}
	p.terminalReleased = true
	return nil
}

// restoreTerminalControl re-acquires the terminal after a released period
// and forces a redraw.
func (p *Program) restoreTerminalControl() error {
	if err := p.acquireTerminal(); err != nil {
		return errors.Trace(err)
	}
	p.terminalReleased = false
	p.needsRedraw = true
	return nil
}

func (p *Program) dispatchTerminal(d command.TerminalDirective) {
	if d.Kind == command.Suspend {
		if err := p.backend.Suspend(); err != nil {
			p.log.Error().Err(err).Msg("suspend failed")
			if p.metrics != nil {
				p.metrics.TerminalDispatchFails.Inc()
			}
			p.shouldQuit = true
			return
		}
		p.needsRedraw = true
		return
	}
	if err := p.backend.Dispatch(d); err != nil {
		p.log.Error().Err(err).Msg("terminal dispatch failed")
		if p.metrics != nil {
			p.metrics.TerminalDispatchFails.Inc()
		}
	}
}

func (p *Program) render() error {
	err := p.backend.Frame(func(f model.Frame) {
		p.model.View(f)
	})
	if err != nil {
		return errors.Trace(err)
	}
	if p.metrics != nil {
		p.metrics.FramesRendered.Inc()
	}
	return nil
}

func (p *Program) processMessage(m command.Msg) {
	if p.filter != nil {
		filtered, keep := p.filter(m)
		if !keep {
			return
		}
		m = filtered
	}
	newModel, cmd := p.model.Update(m)
	p.model = newModel
	p.execute(cmd)
	p.subs.Reconcile(p.model.Subscriptions())
	p.needsRedraw = true

	if p.metrics != nil {
		p.metrics.MessagesProcessed.Inc()
		p.metrics.ActiveSubscriptions.Set(float64(p.subs.Len()))
	}
}
