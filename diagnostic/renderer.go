// Copyright © 2024 The ELPS authors

package diagnostic

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Renderer writes reports in the form
//
//	error[code]: message
//	  --> file:line
//	   |
//	 2 |  source text
//	   |
//	   = note: ...
type Renderer struct {
	// Color controls ANSI color output. Default is ColorAuto.
	Color ColorMode

	// SourceReader reads source file contents. If nil, os.ReadFile is used.
	SourceReader func(string) ([]byte, error)
}

// Render writes rep to w with a single call to w.
func (r *Renderer) Render(w io.Writer, rep Report) error {
	p := newPainter(r.Color, w)
	var b strings.Builder

	head := "error"
	if rep.Code != "" {
		head += "[" + rep.Code + "]"
	}
	fmt.Fprintf(&b, "%s %s\n", p.paint(sgrHeader, head+":"), p.paint(sgrBold, rep.Message))
	if rep.File != "" {
		r.writeLocation(&b, p, rep)
	}
	for _, note := range rep.Notes {
		fmt.Fprintf(&b, "   %s note: %s\n", p.paint(sgrGutter, "="), note)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) writeLocation(b *strings.Builder, p painter, rep Report) {
	arrow := p.paint(sgrGutter, "-->")
	if rep.Line <= 0 {
		fmt.Fprintf(b, "  %s %s\n", arrow, rep.File)
		return
	}
	fmt.Fprintf(b, "  %s %s:%d\n", arrow, rep.File, rep.Line)

	num := strconv.Itoa(rep.Line)
	gutter := p.paint(sgrGutter, strings.Repeat(" ", len(num))+" |")
	text, ok := r.sourceLine(rep.File, rep.Line)
	if !ok {
		fmt.Fprintf(b, " %s\n", gutter)
		return
	}
	fmt.Fprintf(b, " %s\n", gutter)
	fmt.Fprintf(b, " %s  %s\n", p.paint(sgrGutter, num+" |"), strings.ReplaceAll(text, "\t", "    "))
	fmt.Fprintf(b, " %s\n", gutter)
}

// sourceLine returns the 1-based line of file, or false if the file cannot
// be read or is too short.
func (r *Renderer) sourceLine(file string, line int) (string, bool) {
	read := r.SourceReader
	if read == nil {
		read = os.ReadFile
	}
	data, err := read(file)
	if err != nil {
		return "", false
	}
	lines := strings.Split(string(data), "\n")
	if line > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[line-1], "\r"), true
}
