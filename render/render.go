// Package render paints a node.Node tree — the component library's virtual
// UI tree (badges, steps, spinners, text inputs) — onto a model.Frame, so
// SPEC_FULL's component package has a real rendering path into the core's
// Frame contract instead of only building trees nothing ever draws.
package render

import (
	"github.com/stukennedy/boba/layout"
	"github.com/stukennedy/boba/model"
	"github.com/stukennedy/boba/node"
)

var borderGlyphs = map[node.BorderStyle][6]rune{
	node.BorderSingle:  {'┌', '┐', '└', '┘', '─', '│'},
	node.BorderDouble:  {'╔', '╗', '╚', '╝', '═', '║'},
	node.BorderRounded: {'╭', '╮', '╰', '╯', '─', '│'},
}

// Tree lays n out over the frame's full drawable area and paints it.
func Tree(frame model.Frame, n node.Node) {
	cols, rows := frame.Size()
	lt := layout.Layout(n, cols, rows)
	paint(frame, lt)
}

func paint(frame model.Frame, ln layout.LayoutNode) {
	switch ln.Node.Type {
	case node.TextNode:
		paintText(frame, ln)
	case node.BoxNode:
		paintBox(frame, ln)
	}
	for _, child := range ln.Children {
		paint(frame, child)
	}
}

func paintText(frame model.Frame, ln layout.LayoutNode) {
	props := ln.Node.Props
	fg, bg, style := model.Color(props.FG), model.Color(props.BG), model.StyleFlags(props.Style)
	lines := layout.WrapText(props.Text, ln.Rect.W)
	for dy, line := range lines {
		if dy >= ln.Rect.H {
			break
		}
		x := ln.Rect.X
		for _, r := range line {
			frame.SetCell(x, ln.Rect.Y+dy, r, fg, bg, style)
			x++
		}
	}
}

func paintBox(frame model.Frame, ln layout.LayoutNode) {
	glyphs, ok := borderGlyphs[ln.Node.Props.Border]
	if !ok || ln.Rect.W < 2 || ln.Rect.H < 2 {
		return
	}
	topLeft, topRight, botLeft, botRight, h, v := glyphs[0], glyphs[1], glyphs[2], glyphs[3], glyphs[4], glyphs[5]
	x0, y0 := ln.Rect.X, ln.Rect.Y
	x1, y1 := x0+ln.Rect.W-1, y0+ln.Rect.H-1

	frame.SetCell(x0, y0, topLeft, 0, 0, 0)
	frame.SetCell(x1, y0, topRight, 0, 0, 0)
	frame.SetCell(x0, y1, botLeft, 0, 0, 0)
	frame.SetCell(x1, y1, botRight, 0, 0, 0)
	for x := x0 + 1; x < x1; x++ {
		frame.SetCell(x, y0, h, 0, 0, 0)
		frame.SetCell(x, y1, h, 0, 0, 0)
	}
	for y := y0 + 1; y < y1; y++ {
		frame.SetCell(x0, y, v, 0, 0, 0)
		frame.SetCell(x1, y, v, 0, 0, 0)
	}
}
