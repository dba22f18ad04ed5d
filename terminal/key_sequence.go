package terminal

import (
	"strconv"
	"strings"
	"time"
)

// sequenceMatcher resolves chords like "g g" or "ctrl+d ctrl+d" into a
// single SequenceEvent. Only keys keyToken names have a token; the decoder
// drops control bytes other than ctrl+c, ctrl+d and ctrl+z, so a chord such
// as "ctrl+x ctrl+s" never matches. It mirrors the original implementation's
// input_layer.rs/key_sequence.rs state machine and the teacher's own
// ESC-disambiguation timer (input/input.go's escTimeout) for the "is this
// the start of a longer sequence or a standalone key" question.
type sequenceMatcher struct {
	chords  map[string]string // joined chord string -> sequence name
	timeout time.Duration

	pending []string
	deadline time.Time
}

func newSequenceMatcher(chords map[string]string, timeout time.Duration) *sequenceMatcher {
	if timeout <= 0 {
		timeout = 600 * time.Millisecond
	}
	return &sequenceMatcher{chords: chords, timeout: timeout}
}

// feed records a decoded key token (e.g. "g", "ctrl+x") and reports a
// matched sequence name, if the accumulated chord is a complete match and
// no longer chord extends it.
func (m *sequenceMatcher) feed(token string, now time.Time) (string, bool) {
	if len(m.chords) == 0 {
		return "", false
	}
	if len(m.pending) > 0 && now.After(m.deadline) {
		m.pending = nil
	}

	m.pending = append(m.pending, token)
	joined := strings.Join(m.pending, " ")

	if name, ok := m.chords[joined]; ok && !m.hasLongerPrefix(joined) {
		m.pending = nil
		return name, true
	}
	if m.hasLongerPrefix(joined) {
		m.deadline = now.Add(m.timeout)
		return "", false
	}

	// No chord starts with this prefix — reset, but the final token alone
	// might still start a new chord, so feed it again on its own.
	retry := len(m.pending) > 1
	m.pending = nil
	if retry {
		return m.feed(token, now)
	}
	return "", false
}

func (m *sequenceMatcher) hasLongerPrefix(prefix string) bool {
	for chord := range m.chords {
		if strings.HasPrefix(chord, prefix+" ") {
			return true
		}
	}
	return false
}

// keyToken renders a Key as the chord vocabulary's token form, e.g.
// RuneKey 'g' -> "g", CtrlC -> "ctrl+c", Up -> "up".
func keyToken(k Key) string {
	switch k.Type {
	case RuneKey:
		return string(k.Rune)
	case CtrlC:
		return "ctrl+c"
	case CtrlD:
		return "ctrl+d"
	case CtrlZ:
		return "ctrl+z"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Tab:
		return "tab"
	case ShiftTab:
		return "shift+tab"
	case Enter:
		return "enter"
	case Escape:
		return "esc"
	case Backspace:
		return "backspace"
	case Delete:
		return "delete"
	case Home:
		return "home"
	case End:
		return "end"
	case PageUp:
		return "pageup"
	case PageDown:
		return "pagedown"
	default:
		return "key" + strconv.Itoa(int(k.Type))
	}
}
