package mrbinaer

import (
	"fmt"
	"io"
	"os"
)

// Logger writes "[mrbinaer]" prefixed lines. A nil Logger, or one with a nil
// writer, discards everything, so callers never need to check.
type Logger struct {
	w io.Writer
}

// NewLogger returns a Logger writing to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w}
}

// StderrLogger returns a Logger writing to os.Stderr when verbose is set and
// a discarding Logger otherwise.
func StderrLogger(verbose bool) *Logger {
	if !verbose {
		return nil
	}
	return NewLogger(os.Stderr)
}

// OpenLogFile returns a Logger appending to the file at path, creating it if
// needed, and a function that closes the file. Frontends that own the
// terminal log here instead of to stderr.
func OpenLogFile(path string) (*Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("mrbinaer: open log: %w", err)
	}
	return NewLogger(f), f.Close, nil
}

// Printf writes one formatted line.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.w == nil {
		return
	}
	_, _ = fmt.Fprintf(l.w, "[mrbinaer] "+format+"\n", args...)
}

// logTransition records a state change. Unchanged states are skipped.
func (l *Logger) logTransition(frame int, prev, next State) {
	if prev == next {
		return
	}
	l.Printf("frame %d: %v -> %v", frame, prev.Kind(), next.Kind())
}
