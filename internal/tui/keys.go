package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/idilsaglam/binconv/internal/ui"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Reset     key.Binding
	Backspace key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("k"), key.WithHelp("[K]", "Toggle 1")),
	Down:      key.NewBinding(key.WithKeys("j"), key.WithHelp("[J]", "Toggle 0")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("[Enter]", "Push/Convert")),
	Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("[R]", "Reset")),
	Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("[Backspace]", "Delete")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("[Q]", "Quit")),
}

// ShortHelp is the caption under the frame. Reset and Backspace work but are
// not advertised there.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Reset, k.Backspace, k.Quit},
	}
}

func newHelp() help.Model {
	t := ui.Current()
	h := help.New()
	h.ShortSeparator = " "
	h.Styles.ShortKey = t.CaptionKey
	h.Styles.ShortDesc = t.CaptionLabel
	h.Styles.ShortSeparator = t.CaptionLabel
	h.Styles.FullKey = t.CaptionKey
	h.Styles.FullDesc = t.CaptionLabel
	return h
}
