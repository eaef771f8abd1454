package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/neontype/internal/model"
	"github.com/verte-zerg/neontype/internal/run"
	"github.com/verte-zerg/neontype/internal/settings"
)

type panelItem struct {
	key   string
	label string
}

var panelItems = []panelItem{
	{key: settings.KeyTheme, label: "theme"},
	{key: settings.KeyFont, label: "font"},
	{key: settings.KeyAccent, label: "accent"},
	{key: settings.KeySound, label: "sound"},
	{key: settings.KeyKeypress, label: "keypress animation"},
	{key: settings.KeyNumbers, label: "include numbers"},
	{key: settings.KeyPunct, label: "include punctuation"},
}

func (m *Model) updatePanel(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.panel = false
	case key.Matches(msg, m.keys.Up):
		m.panelRow = (m.panelRow + len(panelItems) - 1) % len(panelItems)
	case key.Matches(msg, m.keys.Down):
		m.panelRow = (m.panelRow + 1) % len(panelItems)
	case key.Matches(msg, m.keys.Select):
		m.changeSetting(panelItems[m.panelRow].key)
	}
	return nil
}

func (m *Model) changeSetting(name string) {
	ctx := context.Background()
	var err error
	switch name {
	case settings.KeyTheme:
		err = m.prefs.CycleTheme(ctx)
	case settings.KeyFont:
		err = m.prefs.Set(ctx, name, next(model.Fonts, m.prefs.Font()))
	case settings.KeyAccent:
		err = m.prefs.CycleAccent(ctx)
	default:
		err = m.prefs.Toggle(ctx, name)
	}
	if err != nil {
		// The value is applied in memory even when saving fails.
		m.fail("failed to change setting", err)
	}
	m.log.Debug("setting changed", zap.String("key", name))
	m.applySettings()
	if (name == settings.KeyNumbers || name == settings.KeyPunct) && m.ctrl.State() == run.Idle {
		m.ctrl.Reset()
	}
}

func next(values []string, current string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func (m *Model) panelView() string {
	values := m.prefs.Values()
	lines := []string{m.st.accented.Render("settings"), ""}
	for i, item := range panelItems {
		value, err := m.prefs.Get(item.key)
		if err != nil {
			value = "?"
		}
		if item.key == settings.KeyAccent {
			value = lipgloss.NewStyle().Foreground(lipgloss.Color(values.Accent)).Render("●") + " " + value
		}
		label := fmt.Sprintf("%-20s", item.label)
		marker := "  "
		style := m.st.muted
		if i == m.panelRow {
			marker = m.st.accented.Render("> ")
			style = m.st.text
		}
		lines = append(lines, marker+style.Render(label)+value)
	}
	return m.st.panel.Render(strings.Join(lines, "\n"))
}
