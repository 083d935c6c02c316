// Package console detects the dimensions of the controlling terminal, for
// sizing wrapped diagnostic output. When there is no usable terminal the
// defaults are returned, so callers never have to special-case redirected
// output.
package console

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	// DefaultWidth is the width reported when no terminal is available.
	DefaultWidth = 100
	// DefaultHeight is the height reported when no terminal is available.
	DefaultHeight = 50
)

// OSFile is the subset of os.File functionality size detection needs.
type OSFile interface {
	Fd() uintptr
}

// Size returns the terminal dimensions of f in characters. If f is not an
// interactive terminal, or the size lookup fails or reports nonsense, the
// defaults are returned instead.
func Size(f OSFile) (width, height int) {
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return DefaultWidth, DefaultHeight
	}

	w, h, err := term.GetSize(int(fd))
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}

	return w, h
}

// DefaultSize returns the terminal dimensions of standard output.
func DefaultSize() (width, height int) {
	return Size(os.Stdout)
}

// Width returns the terminal width of standard output.
func Width() int {
	w, _ := DefaultSize()

	return w
}
