package component

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stukennedy/boba/command"
	"github.com/stukennedy/boba/model"
	"github.com/stukennedy/boba/render"
	"github.com/stukennedy/boba/terminal"
)

type fakeFrame struct {
	w, h  int
	cells []rune
}

func newFakeFrame(w, h int) *fakeFrame {
	cells := make([]rune, w*h)
	for i := range cells {
		cells[i] = ' '
	}
	return &fakeFrame{w: w, h: h, cells: cells}
}

func (f *fakeFrame) Size() (int, int) { return f.w, f.h }

func (f *fakeFrame) SetCell(x, y int, r rune, fg, bg model.Color, style model.StyleFlags) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	if r == 0 {
		r = ' '
	}
	f.cells[y*f.w+x] = r
}

func (f *fakeFrame) String() string { return string(f.cells) }

func TestTextInputInsertsAndMovesCursor(t *testing.T) {
	ti := NewTextInput("type here")
	ti = ti.Update(terminal.Key{Type: terminal.RuneKey, Rune: 'h'})
	ti = ti.Update(terminal.Key{Type: terminal.RuneKey, Rune: 'i'})
	if ti.Value != "hi" || ti.Cursor != 2 {
		t.Fatalf("got value=%q cursor=%d, want value=%q cursor=2", ti.Value, ti.Cursor, "hi")
	}

	ti = ti.Update(terminal.Key{Type: terminal.Left})
	ti = ti.Update(terminal.Key{Type: terminal.Backspace})
	if ti.Value != "i" || ti.Cursor != 0 {
		t.Fatalf("after backspace got value=%q cursor=%d", ti.Value, ti.Cursor)
	}
}

func TestTextInputSubmitResets(t *testing.T) {
	ti := NewTextInput("")
	ti = ti.Update(terminal.Key{Type: terminal.RuneKey, Rune: 'x'})
	val, ti := ti.Submit()
	if val != "x" {
		t.Fatalf("Submit() value = %q, want %q", val, "x")
	}
	if ti.Value != "" || ti.Cursor != 0 {
		t.Fatal("Submit() should reset the input")
	}
}

func TestSpinnerTickResolvesToSpinnerTickMsg(t *testing.T) {
	cmd := SpinnerTick(time.Millisecond)
	var got command.Msg
	cmd.Visit(command.Visitor{
		Future: func(fn func(context.Context) command.Msg) {
			got = fn(context.Background())
		},
	})
	if _, ok := got.(SpinnerTickMsg); !ok {
		t.Fatalf("SpinnerTick resolved to %#v, want SpinnerTickMsg", got)
	}
}

func TestStepsRenderThroughTree(t *testing.T) {
	n := Steps([]Step{
		{Label: "build", Status: StepDone},
		{Label: "test", Status: StepActive},
	})
	frame := newFakeFrame(40, 1)
	render.Tree(frame, n)
	if rendered := frame.String(); !strings.Contains(rendered, "build") || !strings.Contains(rendered, "test") {
		t.Fatalf("rendered steps missing labels: %q", rendered)
	}
}
