package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the palette and border used by the converter screen.
type Theme struct {
	Title        lipgloss.Style
	CaptionKey   lipgloss.Style
	CaptionLabel lipgloss.Style
	Quit         lipgloss.Style
	Frame        lipgloss.Style
	Border       lipgloss.Border

	Counter     lipgloss.Style
	Flash       lipgloss.Style
	ResultLabel lipgloss.Style
	ResultValue lipgloss.Style
	Muted       lipgloss.Style
	Bit         lipgloss.Style
	Cursor      lipgloss.Style
	Error       lipgloss.Style
}

var (
	black   = lipgloss.Color("0")
	red     = lipgloss.Color("1")
	green   = lipgloss.Color("2")
	yellow  = lipgloss.Color("3")
	blue    = lipgloss.Color("4")
	magenta = lipgloss.Color("5")
	white   = lipgloss.Color("7")
	gray    = lipgloss.Color("8")
	orange  = lipgloss.Color("#FE8019")
)

var current = Theme{
	Title:        lipgloss.NewStyle().Foreground(yellow).Bold(true),
	CaptionKey:   lipgloss.NewStyle().Foreground(blue).Bold(true),
	CaptionLabel: lipgloss.NewStyle().Foreground(white).Bold(true),
	Quit:         lipgloss.NewStyle().Foreground(red).Bold(true),
	Frame:        lipgloss.NewStyle().Foreground(orange),
	Border:       lipgloss.ThickBorder(),

	Counter:     lipgloss.NewStyle().Foreground(yellow),
	Flash:       lipgloss.NewStyle().Foreground(black).Background(yellow).Bold(true),
	ResultLabel: lipgloss.NewStyle().Foreground(magenta).Bold(true),
	ResultValue: lipgloss.NewStyle().Foreground(green).Bold(true),
	Muted:       lipgloss.NewStyle().Foreground(gray),
	Bit:         lipgloss.NewStyle().Bold(true),
	Cursor:      lipgloss.NewStyle().Foreground(magenta),
	Error:       lipgloss.NewStyle().Foreground(red).Bold(true),
}

// Current returns the theme every renderer pulls from.
func Current() Theme { return current }
