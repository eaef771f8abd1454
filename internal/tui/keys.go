package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Start      key.Binding
	Reset      key.Binding
	Pause      key.Binding
	Settings   key.Binding
	Duration   key.Binding
	Mode       key.Binding
	DeleteWord key.Binding
	Quit       key.Binding

	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding

	Submit key.Binding
	Skip   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Reset:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "reset")),
		Pause:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pause")),
		Settings:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "settings")),
		Duration:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "duration")),
		Mode:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "mode")),
		DeleteWord: key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "move")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ", "left", "right"), key.WithHelp("enter", "change")),
		Close:  key.NewBinding(key.WithKeys("esc", "ctrl+s"), key.WithHelp("esc", "close")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "use text")),
		Skip:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "skip")),
	}
}

func (k keyMap) idleHelp() []key.Binding {
	return []key.Binding{k.Start, k.Reset, k.Duration, k.Mode, k.Settings, k.Quit}
}

func (k keyMap) runningHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Pause, k.Settings, k.Quit}
}

func (k keyMap) completeHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Settings, k.Quit}
}

func (k keyMap) panelHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Close}
}

func (k keyMap) promptHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Skip}
}
