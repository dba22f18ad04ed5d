package render

import (
	"strings"
	"testing"

	"github.com/stukennedy/boba/model"
	"github.com/stukennedy/boba/node"
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

func (f *fakeFrame) row(y int) string {
	return string(f.cells[y*f.w : (y+1)*f.w])
}

func TestTreePaintsText(t *testing.T) {
	frame := newFakeFrame(20, 1)
	Tree(frame, node.Text("hello"))
	if got := strings.TrimRight(frame.row(0), " "); got != "hello" {
		t.Fatalf("row 0 = %q, want %q", got, "hello")
	}
}

func TestTreePaintsRow(t *testing.T) {
	frame := newFakeFrame(10, 1)
	Tree(frame, node.Row(node.Text("ab"), node.Text("cd")))
	if got := strings.TrimRight(frame.row(0), " "); got != "abcd" {
		t.Fatalf("row 0 = %q, want %q", got, "abcd")
	}
}

func TestTreePaintsBoxBorder(t *testing.T) {
	frame := newFakeFrame(5, 3)
	Tree(frame, node.Box(node.BorderSingle, node.Text("x")))
	top := frame.row(0)
	if !strings.HasPrefix(top, "┌") {
		t.Fatalf("top row = %q, want to start with a top-left corner", top)
	}
}
