// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/verte-zerg/neontype/internal/generator"
	"github.com/verte-zerg/neontype/internal/model"
	"github.com/verte-zerg/neontype/internal/run"
	"github.com/verte-zerg/neontype/internal/settings"
)

const frameInterval = time.Second / 60

// frameMsg is one animation frame for the chain started in epoch.
type frameMsg struct {
	epoch uint64
	at    time.Time
}

func frameCmd(epoch uint64) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{epoch: epoch, at: t}
	})
}

// ConfigMsg carries a reloaded test configuration. It is applied while Idle
// and held until the next reset otherwise.
type ConfigMsg struct {
	Config model.TestConfig
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(m *Model) { m.log = log }
}

// WithBell sets where the terminal bell is written when sound is on.
func WithBell(w io.Writer) Option {
	return func(m *Model) { m.bell = w }
}

// WithClock replaces time.Now for key handling.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	ctrl  *run.Controller
	gen   *generator.Generator
	prefs *settings.Settings
	log   *zap.Logger
	bell  io.Writer
	now   func() time.Time

	keys keyMap
	help help.Model
	st   styles

	width  int
	height int

	panel     bool
	panelRow  int
	prompt    textinput.Model
	prompting bool

	kbd      keyboard
	mistakes int
	status   string
	pending  *model.TestConfig
}

// NewModel constructs a typing TUI model around ctrl. gen may be nil when the
// controller's text source is not a generator.
func NewModel(ctrl *run.Controller, gen *generator.Generator, prefs *settings.Settings, opts ...Option) *Model {
	m := &Model{
		ctrl:  ctrl,
		gen:   gen,
		prefs: prefs,
		log:   zap.NewNop(),
		bell:  io.Discard,
		now:   time.Now,
		keys:  newKeyMap(),
		help:  help.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.applySettings()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case frameMsg:
		if m.ctrl.Tick(msg.epoch, msg.at) {
			return m, frameCmd(msg.epoch)
		}
		return m, nil
	case ConfigMsg:
		m.applyConfig(msg.Config)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.prompting {
			return m, m.updatePrompt(msg)
		}
		if m.panel {
			return m, m.updatePanel(msg)
		}
		return m, m.updateTest(msg)
	default:
		if m.prompting {
			return m, m.updatePrompt(msg)
		}
		return m, nil
	}
}

func (m *Model) updateTest(msg tea.KeyMsg) tea.Cmd {
	now := m.now()
	switch {
	case key.Matches(msg, m.keys.Settings):
		m.ctrl.Pause()
		m.panel = true
		return nil
	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return nil
	case key.Matches(msg, m.keys.Start):
		if m.ctrl.State() != run.Idle {
			return nil
		}
		return m.chain(m.ctrl.Epoch(), m.ctrl.Start(now))
	case key.Matches(msg, m.keys.Pause):
		if m.ctrl.Paused() {
			return m.chain(m.ctrl.Epoch(), m.ctrl.Resume(now))
		}
		m.ctrl.Pause()
		return nil
	case key.Matches(msg, m.keys.Duration):
		if m.ctrl.State() == run.Idle {
			m.cycleDuration(msg.String() == "left")
		}
		return nil
	case key.Matches(msg, m.keys.Mode):
		if m.ctrl.State() == run.Idle {
			return m.cycleMode()
		}
		return nil
	case key.Matches(msg, m.keys.DeleteWord):
		m.kbd.press(keyBackspace, now)
		return m.setInput(deleteWord(m.ctrl.Input()), now)
	}

	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		input := []rune(m.ctrl.Input())
		if len(input) == 0 {
			return nil
		}
		m.kbd.press(keyBackspace, now)
		return m.setInput(string(input[:len(input)-1]), now)
	case tea.KeySpace:
		return m.typeRunes([]rune{' '}, now)
	case tea.KeyRunes:
		return m.typeRunes(msg.Runes, now)
	}
	return nil
}

func (m *Model) typeRunes(runes []rune, now time.Time) tea.Cmd {
	if m.ctrl.State() == run.Complete {
		return nil
	}
	for _, r := range runes {
		if !unicode.IsPrint(r) {
			return nil
		}
	}
	m.kbd.press(keyLabel(runes[len(runes)-1]), now)
	return m.setInput(m.ctrl.Input()+string(runes), now)
}

// setInput forwards value to the controller and starts a frame chain when the
// input started or resumed the run.
func (m *Model) setInput(value string, now time.Time) tea.Cmd {
	before := m.ctrl.Epoch()
	m.ctrl.SetInput(value, now)
	if mistakes := m.ctrl.Snapshot().Mistakes; mistakes != m.mistakes {
		if mistakes > m.mistakes && m.prefs.Sound() {
			m.ring()
		}
		m.mistakes = mistakes
	}
	return m.chain(before, m.ctrl.Epoch())
}

func (m *Model) chain(before, epoch uint64) tea.Cmd {
	if m.ctrl.State() != run.Running || m.ctrl.Paused() || epoch == before {
		return nil
	}
	return frameCmd(epoch)
}

func (m *Model) ring() {
	if _, err := io.WriteString(m.bell, "\a"); err != nil {
		m.log.Debug("failed to ring bell", zap.Error(err))
	}
}

func (m *Model) reset() {
	m.mistakes = 0
	m.status = ""
	if m.pending != nil {
		cfg := *m.pending
		m.pending = nil
		if err := m.ctrl.Configure(cfg); err != nil {
			m.fail("config reload rejected", err)
			m.ctrl.Reset()
		}
		m.applySettings()
		return
	}
	m.ctrl.Reset()
}

func (m *Model) applyConfig(cfg model.TestConfig) {
	if m.ctrl.State() != run.Idle {
		m.pending = &cfg
		m.log.Debug("config reload deferred", zap.String("state", m.ctrl.State().String()))
		return
	}
	if err := m.ctrl.Configure(cfg); err != nil {
		m.fail("config reload rejected", err)
		return
	}
	m.status = "config reloaded"
	m.applySettings()
}

func (m *Model) cycleDuration(back bool) {
	cfg := m.ctrl.Config()
	idx := -1
	for i, d := range model.Durations {
		if d == cfg.Duration {
			idx = i
		}
	}
	n := len(model.Durations)
	switch {
	case idx < 0:
		idx = 0
	case back:
		idx = (idx + n - 1) % n
	default:
		idx = (idx + 1) % n
	}
	cfg.Duration = model.Durations[idx]
	if err := m.ctrl.Configure(cfg); err != nil {
		m.fail("failed to change duration", err)
	}
}

// cycleMode moves to the next mode. Custom mode without text asks for it first.
func (m *Model) cycleMode() tea.Cmd {
	cfg := m.ctrl.Config()
	cfg.Mode = cfg.Mode.Next()
	if cfg.Mode == model.ModeCustom && strings.TrimSpace(cfg.Text) == "" {
		return m.openPrompt()
	}
	if err := m.ctrl.Configure(cfg); err != nil {
		m.fail("failed to change mode", err)
	}
	return nil
}

func (m *Model) fail(msg string, err error) {
	m.status = err.Error()
	m.log.Warn(msg, zap.Error(err))
}

// applySettings rebuilds styles and generator options from the preferences.
// A run-level accent overrides the stored one.
func (m *Model) applySettings() {
	values := m.prefs.Values()
	if accent := m.ctrl.Config().Accent; accent != "" {
		values.Accent = accent
	}
	m.st = newStyles(values)
	m.help.Styles.ShortKey = m.st.text
	m.help.Styles.ShortDesc = m.st.muted
	m.help.Styles.ShortSeparator = m.st.muted
	if m.gen != nil {
		m.gen.SetOptions(generator.Options{Numbers: values.Numbers, Punct: values.Punct})
	}
}

// deleteWord removes trailing spaces and the word before them.
func deleteWord(input string) string {
	runes := []rune(input)
	end := len(runes)
	for end > 0 && runes[end-1] == ' ' {
		end--
	}
	for end > 0 && runes[end-1] != ' ' {
		end--
	}
	return string(runes[:end])
}
