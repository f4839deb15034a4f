package unparse

import (
	"bytes"
	"strings"
)

// writer accumulates output line by line and tracks the current indent.
type writer struct {
	buf    bytes.Buffer
	unit   string
	depth  int
	atLine bool // true when nothing has been written on the current line
}

func newWriter(width int) *writer {
	return &writer{unit: strings.Repeat(" ", width), atLine: true}
}

func (w *writer) indent() { w.depth++ }
func (w *writer) dedent() { w.depth-- }

func (w *writer) Bytes() []byte { return w.buf.Bytes() }

func (w *writer) WriteString(s string) {
	if s == "" {
		return
	}
	if w.atLine {
		for range w.depth {
			w.buf.WriteString(w.unit)
		}
		w.atLine = false
	}
	w.buf.WriteString(s)
}

func (w *writer) Newline() {
	w.buf.WriteByte('\n')
	w.atLine = true
}
