package terminal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/juju/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/stukennedy/boba/command"
	"github.com/stukennedy/boba/model"
)

// UnixBackend is the default Backend, built on golang.org/x/term for raw
// mode and a hand-rolled ANSI writer (terminal/ansi.go) for everything
// else. Raw-mode handling follows the teacher's demos/maude/main.go, which
// imports golang.org/x/term directly; resize and suspend handling are new:
// SIGWINCH and SIGCONT are watched through os/signal, and Suspend uses
// golang.org/x/sys/unix to send SIGSTOP to this process.
type UnixBackend struct {
	in     *os.File
	out    *os.File
	inFd   int
	rawOld *term.State

	mu      sync.Mutex
	prevBuf *buffer
	width   int
	height  int

	seq *sequenceMatcher

	readCancel context.CancelFunc
}

// NewUnixBackend builds a backend reading from in and writing to out, both
// of which must be *os.File backed by a real tty for raw mode and resize
// queries to work.
func NewUnixBackend(in, out *os.File) *UnixBackend {
	w, h, _ := term.GetSize(int(out.Fd()))
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return &UnixBackend{
		in:     in,
		out:    out,
		inFd:   int(in.Fd()),
		width:  w,
		height: h,
	}
}

// WithKeySequences installs a chord vocabulary (SPEC_FULL §4); an empty
// matcher is a no-op pass-through.
func (b *UnixBackend) WithKeySequences(chords map[string]string) {
	b.seq = newSequenceMatcher(chords, 0)
}

func (b *UnixBackend) EnableRawMode() error {
	state, err := term.MakeRaw(b.inFd)
	if err != nil {
		return errors.Annotate(err, "enable raw mode")
	}
	b.rawOld = state
	return nil
}

func (b *UnixBackend) DisableRawMode() error {
	if b.rawOld == nil {
		return nil
	}
	err := term.Restore(b.inFd, b.rawOld)
	b.rawOld = nil
	if err != nil {
		return errors.Annotate(err, "disable raw mode")
	}
	return nil
}

func (b *UnixBackend) EnterAltScreen() error { ansiEnterAltScreen(b.out); return nil }
func (b *UnixBackend) ExitAltScreen() error  { ansiLeaveAltScreen(b.out); return nil }

func (b *UnixBackend) EnableMouse(mode command.MouseMode) error {
	ansiEnableMouse(b.out, mode)
	return nil
}
func (b *UnixBackend) DisableMouse() error { ansiDisableMouse(b.out); return nil }

func (b *UnixBackend) EnableBracketedPaste() error  { ansiEnableBracketedPaste(b.out); return nil }
func (b *UnixBackend) DisableBracketedPaste() error { ansiDisableBracketedPaste(b.out); return nil }

func (b *UnixBackend) EnableFocusReporting() error  { ansiEnableFocusReporting(b.out); return nil }
func (b *UnixBackend) DisableFocusReporting() error { ansiDisableFocusReporting(b.out); return nil }

func (b *UnixBackend) ShowCursor() error { ansiShowCursor(b.out); return nil }
func (b *UnixBackend) HideCursor() error { ansiHideCursor(b.out); return nil }
func (b *UnixBackend) SetCursorStyle(shape command.CursorShape) error {
	ansiSetCursorStyle(b.out, shape)
	return nil
}

func (b *UnixBackend) SetTitle(title string) error { ansiSetTitle(b.out, title); return nil }
func (b *UnixBackend) ClearScreen() error {
	ansiClearScreen(b.out)
	b.mu.Lock()
	b.prevBuf = nil
	b.mu.Unlock()
	return nil
}
func (b *UnixBackend) ScrollUp(n int) error   { ansiScrollUp(b.out, n); return nil }
func (b *UnixBackend) ScrollDown(n int) error { ansiScrollDown(b.out, n); return nil }

func (b *UnixBackend) Print(s string) error   { ansiPrint(b.out, s); return nil }
func (b *UnixBackend) Println(s string) error { ansiPrintln(b.out, s); return nil }

func (b *UnixBackend) Size() (int, int, error) {
	w, h, err := term.GetSize(int(b.out.Fd()))
	if err != nil {
		return 0, 0, errors.Annotate(err, "query terminal size")
	}
	return w, h, nil
}

// Events starts the key reader and a SIGWINCH watcher and multiplexes both
// into one Event channel until ctx is done.
func (b *UnixBackend) Events(ctx context.Context) <-chan Event {
	ctx, cancel := context.WithCancel(ctx)
	b.readCancel = cancel

	keys := readKeys(ctx, b.in)
	resizes := watchResize(ctx, b.out)

	out := make(chan Event, 64)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case k, ok := <-keys:
				if !ok {
					return
				}
				b.dispatchKey(ctx, out, k)
			case r, ok := <-resizes:
				if !ok {
					continue
				}
				b.mu.Lock()
				b.width, b.height = r.Width, r.Height
				b.prevBuf = nil
				b.mu.Unlock()
				select {
				case out <- ResizeEvent{Width: r.Width, Height: r.Height}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

func (b *UnixBackend) dispatchKey(ctx context.Context, out chan<- Event, k Key) {
	ev := translateKey(k)

	if b.seq != nil {
		if name, matched := b.seq.feed(keyToken(k), time.Now()); matched {
			select {
			case out <- SequenceEvent{Name: name}:
			case <-ctx.Done():
			}
			return
		}
	}

	select {
	case out <- ev:
	case <-ctx.Done():
	}
}

func translateKey(k Key) Event {
	switch k.Type {
	case FocusIn:
		return FocusEvent{Focused: true}
	case FocusOut:
		return FocusEvent{Focused: false}
	case MouseScrollUp:
		return MouseEvent{Kind: MouseScrollUpKind}
	case MouseScrollDown:
		return MouseEvent{Kind: MouseScrollDownKind}
	case MouseClick:
		return MouseEvent{Kind: MouseClickKind}
	case PasteKey:
		return PasteEvent{Text: k.Text}
	default:
		return KeyEvent{Key: k}
	}
}

func (b *UnixBackend) Frame(fn func(model.Frame)) error {
	b.mu.Lock()
	w, h := b.width, b.height
	prev := b.prevBuf
	b.mu.Unlock()

	next := newBuffer(w, h)
	fn(next)

	changes := diffBuffers(prev, next)
	renderChanges(b.out, changes)

	b.mu.Lock()
	b.prevBuf = next
	b.mu.Unlock()
	return nil
}

// Suspend restores the terminal, sends SIGSTOP to this process, and on
// SIGCONT reinitializes raw mode + alt screen, forcing a redraw. If
// reinitialization fails the caller should set should_quit rather than
// panic (spec §4.4) — Suspend reports that failure as an error for
// Program to act on.
func (b *UnixBackend) Suspend() error {
	if err := b.DisableRawMode(); err != nil {
		return err
	}
	ansiLeaveAltScreen(b.out)
	ansiShowCursor(b.out)

	cont := make(chan os.Signal, 1)
	signal.Notify(cont, syscall.SIGCONT)
	defer signal.Stop(cont)

	if err := unix.Kill(unix.Getpid(), unix.SIGSTOP); err != nil {
		return errors.Annotate(err, "suspend process")
	}
	<-cont

	if err := b.EnableRawMode(); err != nil {
		return errors.Annotate(err, "resume: re-enable raw mode")
	}
	ansiEnterAltScreen(b.out)
	b.mu.Lock()
	b.prevBuf = nil
	b.mu.Unlock()
	return nil
}

// Dispatch applies a single terminal-control directive, used by the
// command interpreter for the Terminal command variant.
func (b *UnixBackend) Dispatch(d command.TerminalDirective) error {
	switch d.Kind {
	case command.EnterAltScreen:
		return b.EnterAltScreen()
	case command.ExitAltScreen:
		return b.ExitAltScreen()
	case command.EnableMouseCapture:
		return b.EnableMouse(d.Mouse)
	case command.DisableMouse:
		return b.DisableMouse()
	case command.ShowCursor:
		return b.ShowCursor()
	case command.HideCursor:
		return b.HideCursor()
	case command.SetCursorStyle:
		return b.SetCursorStyle(d.Cursor)
	case command.EnableBracketedPaste:
		return b.EnableBracketedPaste()
	case command.DisableBracketedPaste:
		return b.DisableBracketedPaste()
	case command.EnableFocusReporting:
		return b.EnableFocusReporting()
	case command.DisableFocusReporting:
		return b.DisableFocusReporting()
	case command.SetTitle:
		return b.SetTitle(d.Title)
	case command.ClearScreen:
		return b.ClearScreen()
	case command.ScrollUp:
		return b.ScrollUp(d.N)
	case command.ScrollDown:
		return b.ScrollDown(d.N)
	case command.Println:
		return b.Println(d.Text)
	case command.Printf:
		return b.Print(d.Text)
	case command.Suspend:
		return b.Suspend()
	default:
		return nil
	}
}

// Close restores the terminal to its pre-acquire state, attempting every
// step independently (spec's best-effort teardown) rather than
// short-circuiting on the first failure.
func (b *UnixBackend) Close() error {
	if b.readCancel != nil {
		b.readCancel()
	}
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	collect(b.DisableMouse())
	collect(b.DisableBracketedPaste())
	collect(b.DisableFocusReporting())
	collect(b.ShowCursor())
	collect(b.SetCursorStyle(command.CursorDefault))
	ansiLeaveAltScreen(b.out)
	collect(b.DisableRawMode())
	if len(errs) == 0 {
		return nil
	}
	return errors.Errorf("terminal teardown: %d step(s) failed: %v", len(errs), errs)
}

// watchResize listens for SIGWINCH and reports the resulting terminal size.
func watchResize(ctx context.Context, out *os.File) <-chan ResizeEvent {
	ch := make(chan ResizeEvent, 4)
	sigCh := make(chan os.Signal, 4)
	signal.Notify(sigCh, syscall.SIGWINCH)
	go func() {
		defer close(ch)
		defer signal.Stop(sigCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigCh:
				w, h, err := term.GetSize(int(out.Fd()))
				if err != nil {
					continue
				}
				select {
				case ch <- ResizeEvent{Width: w, Height: h}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch
}
