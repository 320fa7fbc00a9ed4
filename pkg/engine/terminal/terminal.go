// Package terminal reports on the terminal output is written to, so dumps
// can decide whether to colour and how wide to wrap.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the width and height of the terminal behind w.
// Falls back to defaults if w is not a terminal.
func Size(w io.Writer) (width, height int) {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Width returns the width of the terminal behind w.
// Falls back to DefaultWidth if it cannot be determined.
func Width(w io.Writer) int {
	width, _ := Size(w)
	return width
}

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
