// Package logging defines the sink for user-facing text output, such as the
// option listing and the resolution report. It is distinct from the
// diagnostic slog pipeline: slog records what the tool is doing, while a
// Logger renders what the user asked to see.
package logging

import (
	"fmt"
	"io"
)

// Logger accepts user-facing text. Write and WriteLine emit plain text; the
// Info and Result variants allow implementations to style section headers
// and final values differently. Plain implementations may treat every
// variant identically.
type Logger interface {
	Write(text string)
	WriteLine(text string)
	WriteInfo(text string)
	WriteLineInfo(text string)
	WriteResult(text string)
	WriteLineResult(text string)
}

// WriterLogger is the unstyled Logger implementation. Every variant writes
// the text verbatim to the underlying writer. Write errors are ignored; the
// sink is terminal-or-buffer output, not durable storage.
type WriterLogger struct {
	w io.Writer
}

// NewWriterLogger returns a plain Logger writing to w.
func NewWriterLogger(w io.Writer) *WriterLogger {
	return &WriterLogger{w: w}
}

func (l *WriterLogger) Write(text string)           { fmt.Fprint(l.w, text) }
func (l *WriterLogger) WriteLine(text string)       { fmt.Fprintln(l.w, text) }
func (l *WriterLogger) WriteInfo(text string)       { fmt.Fprint(l.w, text) }
func (l *WriterLogger) WriteLineInfo(text string)   { fmt.Fprintln(l.w, text) }
func (l *WriterLogger) WriteResult(text string)     { fmt.Fprint(l.w, text) }
func (l *WriterLogger) WriteLineResult(text string) { fmt.Fprintln(l.w, text) }
