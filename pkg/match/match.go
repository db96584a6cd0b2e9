// Package match provides composable, self-describing test predicates.
//
// A Matcher pairs a predicate with a description of what it expects. The
// description never depends on the subject being matched; the Result carries
// whatever the matcher learned about a particular subject.
//
// Anywhere a matcher is accepted, a plain value may be passed instead. It is
// wrapped in EqualTo:
//
//	match.AnyOf(1, 2, match.Greater(100))
package match

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dkoosis/verdict/pkg/format"
)

// Result is the outcome of matching one subject. Message is advisory context,
// often empty.
type Result struct {
	Matched bool
	Message string
}

// Matcher is a predicate with a human-readable description of its
// expectation. Implementations must be immutable and safe for concurrent use.
type Matcher interface {
	Description() string
	Match(subject any) Result
}

// ConfigError reports a matcher built with an invalid combination of
// options. It is raised with panic at construction time: it is a mistake in
// the test, not a test failure.
type ConfigError struct {
	Matcher string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("match.%s: %s", e.Matcher, e.Reason)
}

func invalid(matcher, reason string, args ...any) {
	panic(&ConfigError{Matcher: matcher, Reason: fmt.Sprintf(reason, args...)})
}

type funcMatcher struct {
	desc string
	fn   func(any) Result
}

func (m funcMatcher) Description() string      { return m.desc }
func (m funcMatcher) Match(subject any) Result { return m.fn(subject) }

// New builds a matcher from a description and a predicate.
func New(desc string, fn func(subject any) Result) Matcher {
	if fn == nil {
		invalid("New", "nil predicate")
	}
	return funcMatcher{desc: desc, fn: fn}
}

// Anything matches every subject.
func Anything() Matcher {
	return funcMatcher{desc: "anything", fn: func(any) Result { return Result{Matched: true} }}
}

// Ensure returns v itself when it is a Matcher, and EqualTo(v) otherwise.
func Ensure(v any) Matcher {
	if m, ok := v.(Matcher); ok {
		return m
	}
	return EqualTo(v)
}

func ensureAll(vs []any) []Matcher {
	ms := make([]Matcher, len(vs))
	for i, v := range vs {
		ms[i] = Ensure(v)
	}
	return ms
}

func descriptions(ms []Matcher) []string {
	descs := make([]string, len(ms))
	for i, m := range ms {
		descs[i] = m.Description()
	}
	return descs
}

func list(ms []Matcher) string {
	return strings.Join(descriptions(ms), ", ")
}

// resultOf wraps a plain boolean outcome.
func resultOf(ok bool) Result {
	return Result{Matched: ok}
}

func notA(subject any, what string) Result {
	return Result{Message: fmt.Sprintf("%s is not %s", format.TypeName(subject), what)}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
