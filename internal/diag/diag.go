// Package diag defines the single error type used across the front-end: a
// source file reference, a range, and a message. No package recovers from
// one locally; each stage returns it to its caller and the pipeline stops.
package diag

import (
	"fmt"
	"strings"

	"github.com/soda-lang/soda/internal/source"
)

// Error is a syntax or semantic diagnostic with a source location.
type Error struct {
	File    string
	Range   source.Range
	Message string
}

func New(file string, rng source.Range, format string, args ...interface{}) *Error {
	return &Error{File: file, Range: rng, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface using the one-line format from the
// external interfaces spec: error:<file>:<line>[-line]:<col>[-col>]: <message>
// Internally positions are 0-based; output is always 1-based.
func (e *Error) Error() string {
	start, end := e.Range.Start, e.Range.End
	lineField := fmt.Sprintf("%d", start.Line+1)
	if end.Line != start.Line {
		lineField = fmt.Sprintf("%d-%d", start.Line+1, end.Line+1)
	}
	colField := fmt.Sprintf("%d", start.Column+1)
	if end.Line == start.Line && end.Column != start.Column {
		colField = fmt.Sprintf("%d-%d", start.Column+1, end.Column+1)
	}
	return fmt.Sprintf("error:%s:%s:%s: %s", e.File, lineField, colField, e.Message)
}

// Errors accumulates diagnostics for callers (such as the CLI) that print
// more than one failure. The front-end itself always aborts on the first
// error; this type exists for collaborators that aggregate across files.
type Errors []*Error

func (es Errors) Error() string {
	var b strings.Builder
	for i, e := range es {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}
