// Package input holds the small text helpers shared by puzzle parsers:
// line splitting, integer extraction and a positioned ParseError.
package input

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrParse classifies every malformed-input failure. Use errors.Is.
var ErrParse = errors.New("input: malformed input")

// ParseError locates a malformed-input failure. Line and Column are 1-based;
// Column is 0 when the whole line is at fault.
type ParseError struct {
	Line   int
	Column int
	Text   string
	Err    error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("line %d, column %d: %v (%q)", e.Line, e.Column, e.Err, e.Text)
	}

	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Text)
}

// Unwrap exposes the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports true for ErrParse so callers can classify without knowing the cause.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Errorf builds a ParseError for line (1-based) wrapping cause with extra detail.
func Errorf(line, column int, text string, cause error, format string, args ...any) *ParseError {
	err := cause
	if format != "" {
		err = fmt.Errorf("%w: "+format, append([]any{cause}, args...)...)
	}

	return &ParseError{Line: line, Column: column, Text: text, Err: err}
}

// Lines splits text into lines, strips carriage returns and drops trailing
// blank lines. Interior blank lines are kept.
func Lines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

var intRx = regexp.MustCompile(`-?\d+`)

// Ints extracts every signed decimal integer from line, in order.
// Values that do not fit in an int are skipped.
func Ints(line string) []int {
	var out []int
	for _, m := range intRx.FindAllString(line, -1) {
		v, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		out = append(out, v)
	}

	return out
}
