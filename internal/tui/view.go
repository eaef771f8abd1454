package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/neontype/internal/model"
	"github.com/verte-zerg/neontype/internal/run"
	"github.com/verte-zerg/neontype/internal/stats"
)

const (
	visibleLines  = 3
	fallbackWidth = 60
	sparkWidth    = 32
)

// View implements tea.Model.
func (m *Model) View() string {
	now := m.now()
	sections := []string{m.headerView(), ""}
	var bindings []key.Binding
	switch {
	case m.prompting:
		sections = append(sections, m.promptView())
		bindings = m.keys.promptHelp()
	case m.panel:
		sections = append(sections, m.panelView())
		bindings = m.keys.panelHelp()
	case m.ctrl.State() == run.Complete:
		res, _ := m.ctrl.Result()
		sections = append(sections, m.resultView(res))
		bindings = m.keys.completeHelp()
	default:
		sections = append(sections, m.statsView(), "", m.textView())
		if m.prefs.Keypress() {
			sections = append(sections, "", m.kbd.view(m.st, now))
		}
		bindings = m.keys.idleHelp()
		if m.ctrl.State() == run.Running {
			bindings = m.keys.runningHelp()
		}
	}
	sections = append(sections, "", m.help.ShortHelpView(bindings))
	if m.status != "" {
		sections = append(sections, m.st.wrong.Render(m.status))
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) headerView() string {
	cfg := m.ctrl.Config()
	pills := make([]string, 0, len(model.Modes)+len(model.Durations)+1)
	for _, mode := range model.Modes {
		pills = append(pills, m.pill(string(mode), mode == cfg.Mode))
	}
	pills = append(pills, m.st.muted.Render("│"))
	for _, d := range model.Durations {
		pills = append(pills, m.pill(fmt.Sprintf("%d", int(d/time.Second)), d == cfg.Duration))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, pills...)
}

func (m *Model) pill(label string, active bool) string {
	if active {
		return m.st.active.Render(label)
	}
	return m.st.pill.Render(label)
}

func (m *Model) statsView() string {
	live := m.ctrl.Live()
	glow := m.st.accented.Foreground(glowColor(m.palette().muted, m.st.accent, live.WPM))
	segments := []string{
		progressBar(m.st, live.Progress),
		m.st.text.Render(secondsLeft(live.Remaining)),
		glow.Render(fmt.Sprintf("%d wpm", live.WPM)),
		m.st.muted.Render(fmt.Sprintf("%d%% acc", live.Accuracy)),
		m.st.muted.Render(fmt.Sprintf("%d raw", live.RawWPM)),
	}
	if m.ctrl.Paused() {
		segments = append(segments, m.st.accented.Render("paused"))
	}
	return strings.Join(segments, "  ")
}

func (m *Model) palette() palette {
	if p, ok := palettes[m.prefs.Theme()]; ok {
		return p
	}
	return palettes["dark"]
}

// textView renders a window of wrapped lines around the cursor.
func (m *Model) textView() string {
	target := m.ctrl.Target()
	input := []rune(m.ctrl.Input())
	cursor := len(input)
	if cursor >= len(target) {
		cursor = -1
	}
	runes := buildStyledRunes(m.st, target, m.ctrl.Classes(), cursor)
	width := fallbackWidth
	if m.width > 0 {
		width = int(float64(m.width) * 0.70)
		if width < 1 {
			width = 1
		}
	}
	lines := wrapLines(runes, width)
	pos := cursor
	if pos < 0 {
		pos = len(runes)
	}
	first := lineOf(lines, pos) - 1
	if first < 0 {
		first = 0
	}
	last := first + visibleLines
	if last > len(lines) {
		last = len(lines)
	}
	rendered := make([]string, 0, visibleLines)
	for _, line := range lines[first:last] {
		rendered = append(rendered, renderStyledRunes(line.runes))
	}
	return m.st.text.Width(width).Render(strings.Join(rendered, "\n"))
}

func (m *Model) resultView(res model.Result) string {
	stat := func(label string, value string) string {
		return lipgloss.JoinVertical(lipgloss.Center, m.st.text.Render(value), m.st.muted.Render(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("acc", fmt.Sprintf("%d%%", res.Accuracy)), "    ",
		stat("raw", fmt.Sprintf("%d", res.RawWPM)), "    ",
		stat("chars", fmt.Sprintf("%d", res.Characters)), "    ",
		stat("mistakes", fmt.Sprintf("%d", res.Mistakes)), "    ",
		stat("time", fmt.Sprintf("%.1fs", res.Elapsed.Seconds())),
	)
	lines := []string{
		m.st.accented.Render(fmt.Sprintf("%d", res.WPM)),
		m.st.muted.Render("wpm · " + string(res.Mode)),
		"",
		row,
	}
	if trace := m.ctrl.Trace(); len(trace) > 1 {
		lines = append(lines, "", m.st.accented.Render(stats.Sparkline(stats.MovingAverage(trace, 3), sparkWidth)))
	}
	return m.st.card.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
