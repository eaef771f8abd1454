package tui

import (
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// pressHold is how long a key stays lit after a press. Terminals do not
// report key releases.
const pressHold = 150 * time.Millisecond

const (
	keyBackspace = "⌫"
	keySpace     = "space"
)

var keyboardRows = [][]string{
	{"`", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "=", keyBackspace},
	{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "[", "]", "\\"},
	{"a", "s", "d", "f", "g", "h", "j", "k", "l", ";", "'"},
	{"z", "x", "c", "v", "b", "n", "m", ",", ".", "/"},
	{keySpace},
}

// shifted maps shifted symbols to the key that produces them.
var shifted = map[rune]string{
	'~': "`", '!': "1", '@': "2", '#': "3", '$': "4", '%': "5", '^': "6", '&': "7", '*': "8",
	'(': "9", ')': "0", '_': "-", '+': "=", '{': "[", '}': "]", '|': "\\", ':': ";", '"': "'",
	'<': ",", '>': ".", '?': "/",
}

// keyboard tracks the most recent key press for the overlay.
type keyboard struct {
	label     string
	pressedAt time.Time
}

func keyLabel(r rune) string {
	if r == ' ' {
		return keySpace
	}
	if base, ok := shifted[r]; ok {
		return base
	}
	return string(unicode.ToLower(r))
}

func (k *keyboard) press(label string, at time.Time) {
	k.label = label
	k.pressedAt = at
}

func (k keyboard) lit(now time.Time) string {
	if k.label == "" || now.Sub(k.pressedAt) > pressHold {
		return ""
	}
	return k.label
}

func (k keyboard) view(st styles, now time.Time) string {
	lit := k.lit(now)
	rows := make([]string, 0, len(keyboardRows))
	for _, row := range keyboardRows {
		cells := make([]string, 0, len(row))
		for _, label := range row {
			text := " " + label + " "
			if label == keySpace {
				text = strings.Repeat(" ", 29)
			}
			style := st.key
			if label == lit {
				style = st.pressed
			}
			cells = append(cells, style.Render(text))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
