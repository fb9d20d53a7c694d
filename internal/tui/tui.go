package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/binconv/internal/model"
)

// PollInterval bounds how long the loop waits for input before it ages the
// flash again.
const PollInterval = 100 * time.Millisecond

// Default grid size until the terminal reports its own.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

type tickMsg time.Time

// Model drives an Input from key presses and renders it.
type Model struct {
	input *model.Input
	keys  keyMap
	help  help.Model
	now   func() time.Time

	width, height int
}

type Option func(*Model)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

func New(opts ...Option) Model {
	m := Model{
		input:  &model.Input{},
		keys:   keys,
		help:   newHelp(),
		now:    time.Now,
		width:  defaultWidth,
		height: defaultHeight,
	}
	for _, o := range opts {
		o(&m)
	}
	return m
}

// Snapshot exposes the current converter state.
func (m Model) Snapshot() model.Snapshot { return m.input.Snapshot() }

// Done reports whether the user asked to quit.
func (m Model) Done() bool { return m.input.ExitRequested() }

func tick() tea.Cmd {
	return tea.Tick(PollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		m.dispatch(msg)
	case tickMsg:
		cmd = tick()
	}

	m.input.AgeFeedback(m.now())
	if m.input.ExitRequested() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) dispatch(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.input.ToggleDown(m.now())
	case key.Matches(msg, m.keys.Up):
		m.input.ToggleUp(m.now())
	case key.Matches(msg, m.keys.Enter):
		m.input.CommitOrConvert()
	case key.Matches(msg, m.keys.Reset):
		m.input.Reset()
	case key.Matches(msg, m.keys.Backspace):
		m.input.RemoveLastDigit()
	case key.Matches(msg, m.keys.Quit):
		m.input.RequestExit()
	}
}

func (m Model) View() string {
	if m.input.ExitRequested() {
		return ""
	}
	caption := " " + m.help.View(m.keys) + " "
	return render(m.input.Snapshot(), m.width, m.height, caption)
}
