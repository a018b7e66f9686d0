// Copyright © 2024 The ELPS authors

package diagnostic

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ColorMode controls when ANSI color codes are used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color terminals unless NO_COLOR is set
	ColorAlways                  // always use colors
	ColorNever                   // never use colors
)

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: expected auto, always or never", s)
	}
}

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// SGR parameters for the parts of a report.
const (
	sgrHeader = "1;31"
	sgrBold   = "1"
	sgrGutter = "1;34"
)

// painter wraps text in escape sequences when color is on.
type painter bool

func (p painter) paint(sgr, text string) string {
	if !p || text == "" {
		return text
	}
	return "\033[" + sgr + "m" + text + "\033[0m"
}

func newPainter(mode ColorMode, w io.Writer) painter {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return painter(os.Getenv("NO_COLOR") == "" && IsTerminal(w))
}

// IsTerminal reports whether w is a file connected to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
