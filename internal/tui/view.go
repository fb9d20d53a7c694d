package tui

import (
	"strconv"
	"strings"

	"github.com/idilsaglam/binconv/internal/model"
	"github.com/idilsaglam/binconv/internal/ui"
)

const title = " Paijo's Religions Converter "

func render(s model.Snapshot, width, height int, caption string) string {
	return ui.Panel(width, height, ui.Current().Title.Render(title), caption, body(s))
}

// body lays out the lines inside the frame.
func body(s model.Snapshot) []string {
	t := ui.Current()

	counter := t.Counter
	if s.Flash {
		counter = t.Flash
	}

	var value string
	switch {
	case s.HasResult:
		value = t.ResultValue.Render(strconv.FormatUint(uint64(s.Result), 10))
	case s.HasPreview:
		value = t.Muted.Render("Preview: " + strconv.FormatUint(uint64(s.Preview), 10))
	default:
		value = t.Muted.Render("Waiting...")
	}

	return []string{
		"Counter: " + counter.Render(strconv.Itoa(s.Toggle)),
		"",
		t.ResultLabel.Render("Result: ") + value,
		"",
		slots(s.Digits),
		cursor(len(s.Digits)),
	}
}

func slots(digits []uint8) string {
	var b strings.Builder
	bit := ui.Current().Bit
	for _, d := range digits {
		b.WriteString("[" + bit.Render(strconv.Itoa(int(d))) + "] ")
	}
	for i := len(digits); i < model.Width; i++ {
		b.WriteString("[ ] ")
	}
	return b.String()
}

// cursor marks the slot the next digit goes into.
func cursor(next int) string {
	var b strings.Builder
	for i := 0; i < model.Width; i++ {
		if i == next {
			b.WriteString(ui.Current().Cursor.Render(" ^  "))
		} else {
			b.WriteString("    ")
		}
	}
	return b.String()
}
