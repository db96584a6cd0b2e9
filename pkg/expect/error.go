package expect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrExpectation is the sentinel every ExpectationError unwraps to.
var ErrExpectation = errors.New("expectation failed")

const (
	expectedLabel = "expected:"
	actualLabel   = "actual:"
)

// Location is a source position.
type Location struct {
	File string
	Line int
}

func (l Location) String() string { return fmt.Sprintf("%s:%d", l.File, l.Line) }

// ExpectationError reports a subject that did not satisfy a matcher. Its
// Error text is
//
//	[header\n]expected: <description>\nactual:   <subject>
//
// where the header is the check's description, its location, or both as
// "description (file:line)". Continuation lines of multi-line values are
// indented to the value column.
type ExpectationError struct {
	Description string
	Location    *Location
	Expected    string // the matcher's description
	Actual      string // the formatted subject
	Message     string // the matcher's message, possibly empty
	Subject     any
}

func (e *ExpectationError) Error() string {
	return e.render(plainStyles)
}

func (e *ExpectationError) Unwrap() error { return ErrExpectation }

// Header returns the label line, or "" when the check had neither a
// description nor a location.
func (e *ExpectationError) Header() string {
	switch {
	case e.Description != "" && e.Location != nil:
		return e.Description + " (" + e.Location.String() + ")"
	case e.Location != nil:
		return e.Location.String()
	default:
		return e.Description
	}
}

// actualText is the formatted subject, followed by the matcher's message in
// parentheses when it adds something.
func (e *ExpectationError) actualText() string {
	if e.Message == "" || e.Message == e.Actual {
		return e.Actual
	}
	return e.Actual + " (" + e.Message + ")"
}

// styles paints the fixed parts of the report. Values are never styled.
type styles struct {
	header, expected, actual func(string) string
}

func identity(s string) string { return s }

var plainStyles = styles{header: identity, expected: identity, actual: identity}

// column is the display width of the label column, including the space
// that separates labels from values.
func column() int {
	return max(runewidth.StringWidth(expectedLabel), runewidth.StringWidth(actualLabel)) + 1
}

// pad left-aligns label in the label column.
func pad(label string) string {
	return strings.Repeat(" ", column()-runewidth.StringWidth(label))
}

// indent aligns the continuation lines of a multi-line value under its first
// line.
func indent(value string) string {
	if !strings.Contains(value, "\n") {
		return value
	}
	return strings.ReplaceAll(value, "\n", "\n"+strings.Repeat(" ", column()))
}

func (e *ExpectationError) render(st styles) string {
	var sb strings.Builder
	if h := e.Header(); h != "" {
		sb.WriteString(st.header(h))
		sb.WriteString("\n")
	}
	sb.WriteString(st.expected(expectedLabel))
	sb.WriteString(pad(expectedLabel))
	sb.WriteString(indent(e.Expected))
	sb.WriteString("\n")
	sb.WriteString(st.actual(actualLabel))
	sb.WriteString(pad(actualLabel))
	sb.WriteString(indent(e.actualText()))
	return sb.String()
}
