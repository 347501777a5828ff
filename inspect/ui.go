// Package inspect edits node state through an immediate-mode widget
// capability. Every widget that takes a pointer may change the value and
// reports whether it did.
package inspect

import (
	"fmt"
	"io"
	"strings"
)

// UI is the widget set introspectors draw with.
type UI interface {
	Text(format string, args ...any)
	LabelText(label, value string)
	Indent()
	Unindent()

	InputText(label string, value *string) bool
	Checkbox(label string, value *bool) bool
	InputInt(label string, value *int) bool
	InputFloat(label string, value *float32) bool
	DragFloat(label string, value *float32, speed, min, max float32) bool
}

// Printer is a read-only UI that writes every widget as an indented line.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Err returns the first write error.
func (p *Printer) Err() error { return p.err }

func (p *Printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *Printer) Text(format string, args ...any) { p.line(format, args...) }

func (p *Printer) LabelText(label, value string) { p.line("%s: %s", label, value) }

func (p *Printer) Indent() { p.indent++ }

func (p *Printer) Unindent() {
	if p.indent > 0 {
		p.indent--
	}
}

func (p *Printer) InputText(label string, value *string) bool {
	p.line("%s: %q", label, *value)
	return false
}

func (p *Printer) Checkbox(label string, value *bool) bool {
	p.line("%s: %t", label, *value)
	return false
}

func (p *Printer) InputInt(label string, value *int) bool {
	p.line("%s: %d", label, *value)
	return false
}

func (p *Printer) InputFloat(label string, value *float32) bool {
	p.line("%s: %g", label, *value)
	return false
}

func (p *Printer) DragFloat(label string, value *float32, _, _, _ float32) bool {
	p.line("%s: %g", label, *value)
	return false
}
