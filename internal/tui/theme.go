package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/verte-zerg/neontype/internal/model"
)

type palette struct {
	text    string
	correct string
	wrong   string
	pending string
	muted   string
}

var palettes = map[string]palette{
	"dark":          {text: "#F0F0F0", correct: "#34D399", wrong: "#FB7185", pending: "#8C8C8C", muted: "#6E6E6E"},
	"light":         {text: "#1F1F1F", correct: "#047857", wrong: "#BE123C", pending: "#8C8C8C", muted: "#A0A0A0"},
	"solar":         {text: "#FDF6E3", correct: "#859900", wrong: "#DC322F", pending: "#93A1A1", muted: "#657B83"},
	"neon":          {text: "#E0FFFF", correct: "#39FF14", wrong: "#FF2E88", pending: "#7A7AA0", muted: "#5A5A80"},
	"high-contrast": {text: "#FFFFFF", correct: "#00FF00", wrong: "#FF0000", pending: "#C0C0C0", muted: "#FFFFFF"},
}

// styles is the set of lipgloss styles derived from the settings.
type styles struct {
	accent   string
	correct  lipgloss.Style
	wrong    lipgloss.Style
	pending  lipgloss.Style
	current  lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	accented lipgloss.Style
	pill     lipgloss.Style
	active   lipgloss.Style
	key      lipgloss.Style
	pressed  lipgloss.Style
	card     lipgloss.Style
	panel    lipgloss.Style
}

func newStyles(s model.Settings) styles {
	p, ok := palettes[s.Theme]
	if !ok {
		p = palettes["dark"]
	}
	accent := lipgloss.Color(s.Accent)
	st := styles{
		accent:   s.Accent,
		correct:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.correct)),
		wrong:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.wrong)),
		pending:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.pending)),
		current:  lipgloss.NewStyle().Foreground(accent),
		text:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		accented: lipgloss.NewStyle().Foreground(accent).Bold(true),
		pill:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.pending)).Padding(0, 1),
		active:   lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 1).Underline(true),
		key:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		pressed:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0B0C10")).Background(accent).Bold(true),
		card: lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(accent),
		panel: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(p.muted)),
	}
	if s.Font == "mono" {
		st.text = st.text.Bold(false)
	} else {
		// Terminals have one font; "geo" maps to a lighter rendering.
		st.text = st.text.Faint(true)
	}
	return st
}

// glowColor blends the muted color toward the accent by min(1, wpm/150).
func glowColor(muted, accent string, wpm int) lipgloss.Color {
	from, err := colorful.Hex(muted)
	if err != nil {
		return lipgloss.Color(accent)
	}
	to, err := colorful.Hex(accent)
	if err != nil {
		return lipgloss.Color(muted)
	}
	glow := math.Min(1, math.Max(0, float64(wpm)/150))
	return lipgloss.Color(from.BlendLab(to, glow).Clamped().Hex())
}
