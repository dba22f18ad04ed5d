package program

import (
	"context"
	"os"
	"os/exec"

	"golang.org/x/sync/errgroup"
	"gopkg.in/tomb.v2"

	"github.com/stukennedy/boba/command"
)

// countVariant labels the commands_total counter by which Command variant
// was just dispatched, a no-op when no metrics.Collectors is attached.
func (p *Program) countVariant(cmd command.Command) {
	if p.metrics == nil {
		return
	}
	variant := "none"
	cmd.Visit(command.Visitor{
		None:     func() { variant = "none" },
		Message:  func(command.Msg) { variant = "message" },
		Quit:     func(error) { variant = "quit" },
		Future:   func(func(context.Context) command.Msg) { variant = "future" },
		Stream:   func(command.StreamFunc) { variant = "stream" },
		Batch:    func([]command.Command) { variant = "batch" },
		Sequence: func([]command.Command) { variant = "sequence" },
		Terminal: func(command.TerminalDirective) { variant = "terminal" },
		Exec:     func(command.ExecSpec, func(command.ExecResult) command.Msg) { variant = "exec" },
	})
	p.metrics.CommandsByVariant.WithLabelValues(variant).Inc()
}

// execute is the synchronous command dispatch (spec §4.4): each child of a
// top-level Batch is dispatched in turn via recursion, so an async child
// (Future/Stream/Sequence) spawns its own background task while a
// synchronous child (Message/Terminal/Exec/Quit) takes effect immediately,
// in iteration order.
func (p *Program) execute(cmd command.Command) {
	p.countVariant(cmd)
	cmd.Visit(command.Visitor{
		None: func() {},
		Message: func(m command.Msg) {
			p.queue.send(m)
		},
		Quit: func(err error) {
			p.shouldQuit = true
			p.quitErr = err
		},
		Future: func(fn func(context.Context) command.Msg) {
			p.tasks.spawn(func(t *tomb.Tomb) error {
				ctx := taskContext(t)
				select {
				case <-t.Dying():
					return nil
				default:
				}
				p.queue.send(fn(ctx))
				return nil
			})
		},
		Stream: func(fn command.StreamFunc) {
			p.tasks.spawn(func(t *tomb.Tomb) error {
				ctx := taskContext(t)
				fn(ctx, func(m command.Msg) bool { return p.queue.send(m) })
				return nil
			})
		},
		Batch: func(children []command.Command) {
			for _, ch := range children {
				p.execute(ch)
			}
		},
		Sequence: func(children []command.Command) {
			p.tasks.spawn(func(t *tomb.Tomb) error {
				ctx := taskContext(t)
				for _, ch := range children {
					runSequenceStep(ctx, p.queue.send, ch)
				}
				return nil
			})
		},
		Terminal: func(d command.TerminalDirective) {
			p.dispatchTerminal(d)
		},
		Exec: func(spec command.ExecSpec, onExit func(command.ExecResult) command.Msg) {
			p.execChild(spec, onExit)
		},
	})
}

// runSequenceStep is the sequential interpreter (spec §4.4): None and
// Message behave as in the synchronous path, Future is awaited before
// proceeding, Stream is drained fully, Batch spawns its children
// concurrently but is awaited before the step completes, nested Sequence
// runs inline, and Quit/Terminal/Exec are ignored — a spawned sequence task
// holds no terminal access and no reference to should_quit.
func runSequenceStep(ctx context.Context, send func(command.Msg) bool, c command.Command) {
	c.Visit(command.Visitor{
		None:    func() {},
		Message: func(m command.Msg) { send(m) },
		Quit:    func(error) {},
		Terminal: func(command.TerminalDirective) {},
		Exec:     func(command.ExecSpec, func(command.ExecResult) command.Msg) {},
		Future: func(fn func(context.Context) command.Msg) {
			send(fn(ctx))
		},
		Stream: func(fn command.StreamFunc) {
			fn(ctx, send)
		},
		Batch: func(children []command.Command) {
			var g errgroup.Group
			for _, ch := range children {
				ch := ch
				g.Go(func() error {
					runSequenceStep(ctx, send, ch)
					return nil
				})
			}
			_ = g.Wait()
		},
		Sequence: func(children []command.Command) {
			for _, ch := range children {
				runSequenceStep(ctx, send, ch)
			}
		},
	})
}

// execChild runs the process spec describes synchronously on the event-loop goroutine: the
// terminal is released first so the child inherits a normal (non-raw,
// non-alt-screen) tty, then re-acquired once it exits.
func (p *Program) execChild(spec command.ExecSpec, onExit func(command.ExecResult) command.Msg) {
	if err := p.releaseTerminal(); err != nil {
		p.queue.send(onExit(command.ExecResult{Err: err}))
		return
	}

	cmd := exec.Command(spec.Path, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	runErr := cmd.Run()

	result := command.ExecResult{}
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.Err = runErr
		}
	}

	if err := p.restoreTerminalControl(); err != nil {
		p.shouldQuit = true
		p.quitErr = err
	}

	p.queue.send(onExit(result))
}
