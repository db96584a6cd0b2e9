package match

import (
	"fmt"
	"iter"
	"reflect"
	"runtime"
	"strings"

	"github.com/dkoosis/verdict/pkg/format"
)

// elements collects the elements of an iterable subject: a slice, an array,
// a non-nil pointer to an array, or a function shaped like iter.Seq.
func elements(subject any) ([]any, bool) {
	v := reflect.ValueOf(subject)
	if v.Kind() == reflect.Pointer && !v.IsNil() && v.Elem().Kind() == reflect.Array {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = v.Index(i).Interface()
		}
		return out, true
	case reflect.Func:
		if v.IsNil() || !v.Type().CanSeq() {
			return nil, false
		}
		var out []any
		for e := range v.Seq() {
			out = append(out, e.Interface())
		}
		return out, true
	default:
		return nil, false
	}
}

func notIterable(subject any) Result { return notA(subject, "iterable") }

func lengthMismatch(got, want int) Result {
	return Result{Message: fmt.Sprintf("has length %d, want %d", got, want)}
}

type member struct {
	m Matcher
}

// Member matches iterables with at least one element matching m.
func Member(m any) Matcher {
	return member{m: Ensure(m)}
}

func (c member) Description() string { return "member " + c.m.Description() }

func (c member) Match(subject any) Result {
	elems, ok := elements(subject)
	if !ok {
		return notIterable(subject)
	}
	for _, e := range elems {
		if c.m.Match(e).Matched {
			return resultOf(true)
		}
	}
	return Result{}
}

type each struct {
	m Matcher
}

// Each matches iterables whose elements all match m. An empty iterable
// matches.
func Each(m any) Matcher {
	return each{m: Ensure(m)}
}

func (c each) Description() string { return "each " + c.m.Description() }

func (c each) Match(subject any) Result {
	elems, ok := elements(subject)
	if !ok {
		return notIterable(subject)
	}
	for _, e := range elems {
		if r := c.m.Match(e); !r.Matched {
			return r
		}
	}
	return resultOf(true)
}

// sequence matches iterables elementwise against a fixed list of matchers.
type sequence struct {
	ms []Matcher
}

func (c sequence) Description() string { return "[" + list(c.ms) + "]" }

func (c sequence) Match(subject any) Result {
	elems, ok := elements(subject)
	if !ok {
		return notIterable(subject)
	}
	if len(elems) != len(c.ms) {
		return lengthMismatch(len(elems), len(c.ms))
	}
	for i, e := range elems {
		if r := c.ms[i].Match(e); !r.Matched {
			return r
		}
	}
	return resultOf(true)
}

// EachSeq matches iterables of the same length as refs whose i-th element
// matches f(refs[i]). refs is consumed once, when the matcher is built.
func EachSeq[E any](refs iter.Seq[E], f func(E) Matcher) Matcher {
	if f == nil {
		invalid("EachSeq", "nil matcher factory")
	}
	var ms []Matcher
	for r := range refs {
		ms = append(ms, f(r))
	}
	return sequence{ms: ms}
}

// EachOf is EachSeq with the references given as a slice.
func EachOf[E any](refs []E, f func(E) Matcher) Matcher {
	if f == nil {
		invalid("EachOf", "nil matcher factory")
	}
	ms := make([]Matcher, len(refs))
	for i, r := range refs {
		ms[i] = f(r)
	}
	return sequence{ms: ms}
}

// Array matches iterables with exactly len(vs) elements, matching vs in
// order.
func Array(vs ...any) Matcher {
	return sequence{ms: ensureAll(vs)}
}

type sorted struct {
	desc string
	// before reports whether a sorts before b. A non-empty Result message
	// means the pair could not be ordered.
	before func(a, b any) (bool, Result)
}

func (c sorted) Description() string { return c.desc }

func (c sorted) Match(subject any) Result {
	elems, ok := elements(subject)
	if !ok {
		return notIterable(subject)
	}
	for i := 1; i < len(elems); i++ {
		out, r := c.before(elems[i], elems[i-1])
		if r.Message != "" {
			return r
		}
		if out {
			return Result{}
		}
	}
	return resultOf(true)
}

// Sorted matches iterables in non-decreasing order. Elements are ordered as
// by Less.
func Sorted() Matcher {
	return sorted{desc: "sorted", before: func(a, b any) (bool, Result) {
		switch compare(a, b) {
		case incomparable:
			return false, Result{Message: fmt.Sprintf("cannot compare %s with %s", format.TypeName(a), format.TypeName(b))}
		case less:
			return true, Result{}
		default:
			return false, Result{}
		}
	}}
}

// SortedBy matches iterables in which no element is less than the one before
// it, according to less.
func SortedBy[E any](less func(a, b E) bool) Matcher {
	if less == nil {
		invalid("SortedBy", "nil comparison")
	}
	return sorted{desc: "sorted by " + funcName(less), before: func(a, b any) (bool, Result) {
		ea, ok := a.(E)
		if !ok {
			return false, notA(a, format.TypeOf[E]())
		}
		eb, ok := b.(E)
		if !ok {
			return false, notA(b, format.TypeOf[E]())
		}
		return less(ea, eb), Result{}
	}}
}

// funcName names fn by its symbol, qualified by package name only.
func funcName(fn any) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return format.TypeName(fn)
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
