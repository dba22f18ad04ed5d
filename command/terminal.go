package command

// TerminalKind enumerates the directives a Terminal command may carry. The
// set is exhaustive per spec §6; the interpreter dispatches synchronously to
// the terminal writer and never blocks on it.
type TerminalKind int

const (
	EnterAltScreen TerminalKind = iota
	ExitAltScreen
	EnableMouseCapture
	DisableMouse
	ShowCursor
	HideCursor
	SetCursorStyle
	EnableBracketedPaste
	DisableBracketedPaste
	EnableFocusReporting
	DisableFocusReporting
	SetTitle
	ClearScreen
	ScrollUp
	ScrollDown
	Println
	Printf
	Suspend
)

// MouseMode selects how much mouse motion is reported.
type MouseMode int

const (
	MouseCellMotion MouseMode = iota
	MouseAllMotion
)

// CursorShape enumerates the seven cursor shapes a backend must support.
type CursorShape int

const (
	CursorDefault CursorShape = iota
	CursorBlinkingBlock
	CursorSteadyBlock
	CursorBlinkingUnderscore
	CursorSteadyUnderscore
	CursorBlinkingBar
	CursorSteadyBar
)

// TerminalDirective is the payload of a Terminal command. Only the fields
// relevant to Kind are meaningful.
type TerminalDirective struct {
	Kind   TerminalKind
	Mouse  MouseMode
	Cursor CursorShape
	Title  string
	N      int    // ScrollUp / ScrollDown line count
	Text   string // Println ("<text>\r\n") / Printf ("<text>" verbatim)
}

// Directive constructors — each builds the TerminalDirective for one Kind.

func DirEnterAltScreen() TerminalDirective { return TerminalDirective{Kind: EnterAltScreen} }
func DirExitAltScreen() TerminalDirective  { return TerminalDirective{Kind: ExitAltScreen} }
func DirEnableMouseCapture(mode MouseMode) TerminalDirective {
	return TerminalDirective{Kind: EnableMouseCapture, Mouse: mode}
}
func DirDisableMouse() TerminalDirective { return TerminalDirective{Kind: DisableMouse} }
func DirShowCursor() TerminalDirective   { return TerminalDirective{Kind: ShowCursor} }
func DirHideCursor() TerminalDirective   { return TerminalDirective{Kind: HideCursor} }
func DirSetCursorStyle(shape CursorShape) TerminalDirective {
	return TerminalDirective{Kind: SetCursorStyle, Cursor: shape}
}
func DirEnableBracketedPaste() TerminalDirective {
	return TerminalDirective{Kind: EnableBracketedPaste}
}
func DirDisableBracketedPaste() TerminalDirective {
	return TerminalDirective{Kind: DisableBracketedPaste}
}
func DirEnableFocusReporting() TerminalDirective {
	return TerminalDirective{Kind: EnableFocusReporting}
}
func DirDisableFocusReporting() TerminalDirective {
	return TerminalDirective{Kind: DisableFocusReporting}
}
func DirSetTitle(title string) TerminalDirective {
	return TerminalDirective{Kind: SetTitle, Title: title}
}
func DirClearScreen() TerminalDirective { return TerminalDirective{Kind: ClearScreen} }
func DirScrollUp(n int) TerminalDirective {
	return TerminalDirective{Kind: ScrollUp, N: n}
}
func DirScrollDown(n int) TerminalDirective {
	return TerminalDirective{Kind: ScrollDown, N: n}
}

// DirPrintln writes "<text>\r\n" — explicit CR+LF because raw mode
// suppresses newline translation.
func DirPrintln(text string) TerminalDirective {
	return TerminalDirective{Kind: Println, Text: text}
}

// DirPrintf writes "<text>" verbatim.
func DirPrintf(text string) TerminalDirective {
	return TerminalDirective{Kind: Printf, Text: text}
}

func DirSuspend() TerminalDirective { return TerminalDirective{Kind: Suspend} }
