package terminal

import "github.com/stukennedy/boba/model"

// cell, buffer, and cellChange are a minimal replacement for the teacher's
// cell/diff packages, which cover the widget layer's box/layout model and
// were not retrieved with it (they are out of the core's scope — spec §1
// treats widget rendering as an external collaborator). The core only needs
// enough of a drawing surface to satisfy model.Frame and to compute the
// minimal set of changed cells between two frames.
type cell struct {
	r     rune
	fg    model.Color
	bg    model.Color
	style model.StyleFlags
}

// buffer is a flat grid of cells implementing model.Frame.
type buffer struct {
	w, h  int
	cells []cell
}

func newBuffer(w, h int) *buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &buffer{w: w, h: h, cells: make([]cell, w*h)}
}

func (b *buffer) Size() (int, int) { return b.w, b.h }

func (b *buffer) SetCell(x, y int, r rune, fg, bg model.Color, style model.StyleFlags) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.cells[y*b.w+x] = cell{r: r, fg: fg, bg: bg, style: style}
}

func (b *buffer) at(x, y int) cell {
	return b.cells[y*b.w+x]
}

type cellChange struct {
	x, y  int
	cells []cell
}

// diffBuffers returns the minimal set of changed cells between prev and
// next, one run of contiguous changed cells per row. prev may be nil or a
// different size than next, in which case every cell of next is reported
// changed (a full redraw, e.g. after a resize).
func diffBuffers(prev, next *buffer) []cellChange {
	if next == nil {
		return nil
	}
	fullRedraw := prev == nil || prev.w != next.w || prev.h != next.h

	var changes []cellChange
	for y := 0; y < next.h; y++ {
		x := 0
		for x < next.w {
			changed := fullRedraw || prev.at(x, y) != next.at(x, y)
			if !changed {
				x++
				continue
			}
			start := x
			var run []cell
			for x < next.w && (fullRedraw || prev.at(x, y) != next.at(x, y)) {
				run = append(run, next.at(x, y))
				x++
			}
			changes = append(changes, cellChange{x: start, y: y, cells: run})
		}
	}
	return changes
}
