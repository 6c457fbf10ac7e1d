package evaluator

import (
	"fmt"
	"strings"
)

// Log collects the diagnostic lines a problem emits while parsing, checking,
// or preparing a submission. The lines surface only in the reason field of a
// result payload.
type Log struct {
	lines []string
}

// Line appends one diagnostic line.
func (l *Log) Line(s string) {
	l.lines = append(l.lines, s)
}

// Linef appends one formatted diagnostic line.
func (l *Log) Linef(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// Empty reports whether no lines were collected.
func (l *Log) Empty() bool {
	return len(l.lines) == 0
}

// Reason joins the collected lines into a result reason.
func (l *Log) Reason() string {
	return strings.Join(l.lines, "\n")
}
