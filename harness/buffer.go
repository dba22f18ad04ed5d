package harness

import (
	"strings"

	"github.com/stukennedy/boba/model"
)

// Buffer is the in-memory model.Frame the harness renders into — the same
// minimal cell grid shape as terminal.buffer, duplicated here rather than
// shared because the harness must not depend on the terminal package (it
// is explicitly the no-terminal test entry point).
type Buffer struct {
	w, h  int
	cells []rune
}

func newBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([]rune, w*h)
	for i := range cells {
		cells[i] = ' '
	}
	return &Buffer{w: w, h: h, cells: cells}
}

func (b *Buffer) Size() (int, int) { return b.w, b.h }

func (b *Buffer) SetCell(x, y int, r rune, fg, bg model.Color, style model.StyleFlags) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	if r == 0 {
		r = ' '
	}
	b.cells[y*b.w+x] = r
}

// String converts the buffer to a newline-separated string, one line per
// row, trailing spaces kept so fixed-width assertions are exact.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := b.cells[y*b.w : (y+1)*b.w]
		sb.WriteString(string(row))
	}
	return sb.String()
}
