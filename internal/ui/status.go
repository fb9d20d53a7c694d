package ui

import (
	"fmt"
	"io"
)

const symCross = "✖"

// Fail prints a one-line error message.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Error.Render(symCross+" "+msg))
}
