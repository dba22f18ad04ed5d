package terminal

import (
	"fmt"
	"io"

	"github.com/stukennedy/boba/command"
	"github.com/stukennedy/boba/model"
)

// writeSGR and renderChanges adapt the teacher's ansi/ansi.go cell renderer to
// model.Color/model.StyleFlags. The rest of this file extends the teacher's
// escape-sequence set to the full directive list spec §6 requires
// (bracketed paste, cursor shapes, scroll, title) that the teacher's widget
// demo never needed.

func renderChanges(w io.Writer, changes []cellChange) {
	var curFG, curBG model.Color
	var curStyle model.StyleFlags
	first := true

	for _, ch := range changes {
		fmt.Fprintf(w, "\x1b[%d;%dH", ch.y+1, ch.x+1)
		for _, c := range ch.cells {
			if first || c.fg != curFG || c.bg != curBG || c.style != curStyle {
				writeSGR(w, c.fg, c.bg, c.style)
				curFG, curBG, curStyle = c.fg, c.bg, c.style
				first = false
			}
			if c.r == 0 {
				fmt.Fprint(w, " ")
			} else {
				fmt.Fprintf(w, "%c", c.r)
			}
		}
	}
	if !first {
		fmt.Fprint(w, "\x1b[0m")
	}
}

func writeSGR(w io.Writer, fg, bg model.Color, style model.StyleFlags) {
	fmt.Fprint(w, "\x1b[0")
	if style&model.Bold != 0 {
		fmt.Fprint(w, ";1")
	}
	if style&model.Dim != 0 {
		fmt.Fprint(w, ";2")
	}
	if style&model.Italic != 0 {
		fmt.Fprint(w, ";3")
	}
	if style&model.Underline != 0 {
		fmt.Fprint(w, ";4")
	}
	if style&model.Reverse != 0 {
		fmt.Fprint(w, ";7")
	}
	if fg != 0 {
		fmt.Fprintf(w, ";38;5;%d", fg)
	}
	if bg != 0 {
		fmt.Fprintf(w, ";48;5;%d", bg)
	}
	fmt.Fprint(w, "m")
}

func ansiHideCursor(w io.Writer)  { fmt.Fprint(w, "\x1b[?25l") }
func ansiShowCursor(w io.Writer)  { fmt.Fprint(w, "\x1b[?25h") }
func ansiClearScreen(w io.Writer) { fmt.Fprint(w, "\x1b[2J\x1b[H") }

func ansiEnterAltScreen(w io.Writer) { fmt.Fprint(w, "\x1b[?1049h") }
func ansiLeaveAltScreen(w io.Writer) { fmt.Fprint(w, "\x1b[?1049l") }

func ansiEnableFocusReporting(w io.Writer)  { fmt.Fprint(w, "\x1b[?1004h") }
func ansiDisableFocusReporting(w io.Writer) { fmt.Fprint(w, "\x1b[?1004l") }

func ansiEnableMouse(w io.Writer, mode command.MouseMode) {
	switch mode {
	case command.MouseAllMotion:
		fmt.Fprint(w, "\x1b[?1003h\x1b[?1006h")
	default:
		fmt.Fprint(w, "\x1b[?1000h\x1b[?1006h")
	}
}

func ansiDisableMouse(w io.Writer) {
	fmt.Fprint(w, "\x1b[?1006l\x1b[?1003l\x1b[?1000l")
}

func ansiEnableBracketedPaste(w io.Writer)  { fmt.Fprint(w, "\x1b[?2004h") }
func ansiDisableBracketedPaste(w io.Writer) { fmt.Fprint(w, "\x1b[?2004l") }

func ansiSetTitle(w io.Writer, title string) { fmt.Fprintf(w, "\x1b]2;%s\x07", title) }

func ansiScrollUp(w io.Writer, n int)   { fmt.Fprintf(w, "\x1b[%dS", n) }
func ansiScrollDown(w io.Writer, n int) { fmt.Fprintf(w, "\x1b[%dT", n) }

// ansiSetCursorStyle sends the DECSCUSR sequence for each of the seven
// cursor shapes spec §6 requires.
func ansiSetCursorStyle(w io.Writer, shape command.CursorShape) {
	code := 0
	switch shape {
	case command.CursorDefault:
		code = 0
	case command.CursorBlinkingBlock:
		code = 1
	case command.CursorSteadyBlock:
		code = 2
	case command.CursorBlinkingUnderscore:
		code = 3
	case command.CursorSteadyUnderscore:
		code = 4
	case command.CursorBlinkingBar:
		code = 5
	case command.CursorSteadyBar:
		code = 6
	}
	fmt.Fprintf(w, "\x1b[%d q", code)
}

func ansiPrintln(w io.Writer, s string) { fmt.Fprint(w, s, "\r\n") }
func ansiPrint(w io.Writer, s string)   { fmt.Fprint(w, s) }
