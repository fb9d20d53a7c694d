package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Panel draws a width x height frame using the current theme. The title is
// centered in the top rule, the caption in the bottom rule, and each body line
// is centered horizontally from the top of the inner area. Lines that do not
// fit are clipped.
func Panel(width, height int, title, caption string, body []string) string {
	if width < 2 || height < 2 {
		return ""
	}
	t := Current()
	b := t.Border
	innerW, innerH := width-2, height-2

	rows := make([]string, 0, height)
	rows = append(rows, rule(b.TopLeft, b.Top, b.TopRight, title, innerW))
	left, right := t.Frame.Render(b.Left), t.Frame.Render(b.Right)
	for i := 0; i < innerH; i++ {
		var ln string
		if i < len(body) {
			ln = body[i]
		}
		rows = append(rows, left+center(ln, innerW)+right)
	}
	rows = append(rows, rule(b.BottomLeft, b.Bottom, b.BottomRight, caption, innerW))
	return strings.Join(rows, "\n")
}

// rule is a horizontal border line with label centered over the fill.
func rule(l, fill, r, label string, inner int) string {
	fs := Current().Frame
	label = ansi.Truncate(label, inner, "")
	w := lipgloss.Width(label)
	before := (inner - w) / 2
	after := inner - w - before
	return fs.Render(l+strings.Repeat(fill, before)) + label + fs.Render(strings.Repeat(fill, after)+r)
}

func center(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	pad := width - lipgloss.Width(s)
	before := pad / 2
	return strings.Repeat(" ", before) + s + strings.Repeat(" ", pad-before)
}
