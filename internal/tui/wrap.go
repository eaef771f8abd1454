package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/neontype/internal/score"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

func buildStyledRunes(st styles, target []rune, classes []score.Class, cursorIndex int) []styledRune {
	words := findWords(target)
	currentWord := wordForCursor(words, cursorIndex)

	out := make([]styledRune, 0, len(classes))
	for i, class := range classes {
		displayed := ' '
		if i < len(target) {
			displayed = target[i]
		}
		var style lipgloss.Style
		switch class {
		case score.Correct:
			style = st.correct
		case score.Wrong:
			style = st.wrong
			// A mistyped space would be invisible.
			if displayed == ' ' {
				displayed = '•'
			}
		case score.Extra:
			style = st.wrong.Underline(true)
			displayed = '•'
		default:
			style = st.pending
			if displayed != ' ' && currentWord != nil && i >= currentWord.start && i < currentWord.end {
				style = st.current
			}
		}
		if i == cursorIndex {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: i < len(target) && target[i] == ' ',
		})
	}
	return out
}

type wordRange struct {
	start int
	end   int
}

func findWords(targetRunes []rune) []wordRange {
	words := []wordRange{}
	start := -1
	for i, r := range targetRunes {
		if r == ' ' {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(targetRunes)})
	}
	return words
}

func wordForCursor(words []wordRange, cursorIndex int) *wordRange {
	if len(words) == 0 {
		return nil
	}
	if cursorIndex < 0 {
		return &words[0]
	}
	for i, w := range words {
		if cursorIndex < w.end {
			return &words[i]
		}
	}
	return &words[len(words)-1]
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// visualLine is a wrapped line and the index of its first rune.
type visualLine struct {
	start int
	runes []styledRune
}

// wrapLines breaks runes at spaces so no line exceeds width cells.
// The breaking space stays at the end of its line so indices are preserved.
func wrapLines(runes []styledRune, width int) []visualLine {
	if width <= 0 {
		return []visualLine{{start: 0, runes: runes}}
	}
	var lines []visualLine
	start := 0
	for start < len(runes) {
		end, lineWidth, spaces, lastBreak := start, 0, 0, -1
		for end < len(runes) {
			item := runes[end]
			if item.isSpace {
				// Spaces only count once a word follows them.
				lastBreak = end
				spaces += item.width
				end++
				continue
			}
			if lineWidth+spaces+item.width > width && end > start {
				break
			}
			lineWidth += spaces + item.width
			spaces = 0
			end++
		}
		if end < len(runes) && lastBreak >= start {
			end = lastBreak + 1
		}
		lines = append(lines, visualLine{start: start, runes: runes[start:end]})
		start = end
	}
	return lines
}

// lineOf returns the index of the line containing rune index pos.
func lineOf(lines []visualLine, pos int) int {
	for i := len(lines) - 1; i >= 0; i-- {
		if pos >= lines[i].start {
			return i
		}
	}
	return 0
}
