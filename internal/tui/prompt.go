package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/neontype/internal/model"
)

const promptLimit = 2000

// openPrompt asks for custom text. It starts empty each time.
func (m *Model) openPrompt() tea.Cmd {
	ti := textinput.New()
	ti.Placeholder = "type or paste your text"
	ti.Prompt = "> "
	ti.CharLimit = promptLimit
	ti.Width = 48
	ti.PromptStyle = m.st.accented
	ti.PlaceholderStyle = m.st.muted
	m.prompt = ti
	m.prompting = true
	return m.prompt.Focus()
}

func (m *Model) updatePrompt(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Skip):
			// Leaving the prompt moves past custom mode.
			m.prompting = false
			cfg := m.ctrl.Config()
			cfg.Mode = model.ModeCustom.Next()
			if err := m.ctrl.Configure(cfg); err != nil {
				m.fail("failed to change mode", err)
			}
			return nil
		case key.Matches(msg, m.keys.Submit):
			text := strings.Join(strings.Fields(m.prompt.Value()), " ")
			if text == "" {
				return nil
			}
			cfg := m.ctrl.Config()
			cfg.Mode = model.ModeCustom
			cfg.Text = text
			if err := m.ctrl.Configure(cfg); err != nil {
				m.fail("failed to use custom text", err)
				return nil
			}
			m.prompting = false
			return nil
		}
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

func (m *Model) promptView() string {
	return m.st.panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.st.accented.Render("custom text"),
		"",
		m.prompt.View(),
	))
}
