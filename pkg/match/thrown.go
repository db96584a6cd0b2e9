package match

import (
	"errors"
	"reflect"

	"github.com/dkoosis/verdict/pkg/format"
)

var errorType = reflect.TypeFor[error]()

// raise calls a func() or func() error subject and reports what it raised:
// the value it panicked with or the non-nil error it returned.
func raise(subject any) (raised any, threw, callable bool) {
	v := reflect.ValueOf(subject)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, false, false
	}
	t := v.Type()
	if t.NumIn() != 0 || t.NumOut() > 1 || (t.NumOut() == 1 && t.Out(0) != errorType) {
		return nil, false, false
	}

	defer func() {
		if r := recover(); r != nil {
			raised, threw, callable = r, true, true
		}
	}()
	out := v.Call(nil)
	if len(out) == 1 && !out[0].IsNil() {
		return out[0].Interface(), true, true
	}
	return nil, false, true
}

// errorText calls err.Error, reporting false when it panics, as it does for
// most typed nil pointers returned through an error.
func errorText(err error) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()
	return err.Error(), true
}

// quoted is the formatted text of err, or nil when it has none.
func quoted(err error) string {
	if text, ok := errorText(err); ok {
		return format.Value(text)
	}
	return "nil"
}

// errorAs is errors.As with panics from Unwrap or As methods on nil
// receivers treated as no match.
func errorAs[E error](err error) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	var target E
	return errors.As(err, &target)
}

// threwText describes a raised value as "threw <type>(<text>)" for errors
// and "threw unknown exception" otherwise.
func threwText(raised any) string {
	if err, ok := raised.(error); ok {
		return "threw " + format.TypeName(err) + "(" + quoted(err) + ")"
	}
	return "threw unknown exception"
}

type thrown struct{}

// Thrown matches a func() that panics, or a func() error that panics or
// returns a non-nil error.
func Thrown() Matcher { return thrown{} }

func (thrown) Description() string { return "threw exception" }

func (thrown) Match(subject any) Result {
	raised, threw, ok := raise(subject)
	switch {
	case !ok:
		return notA(subject, "callable")
	case !threw:
		return Result{Message: "threw nothing"}
	default:
		return Result{Matched: true, Message: threwText(raised)}
	}
}

type thrownError[E error] struct {
	what Matcher // nil when the error text is not checked
}

// ThrownError matches callables that raise an error for which errors.As
// finds an E in the chain.
func ThrownError[E error]() Matcher {
	return thrownError[E]{}
}

// ThrownErrorWith is ThrownError that also matches the error text against
// what.
func ThrownErrorWith[E error](what any) Matcher {
	return thrownError[E]{what: Ensure(what)}
}

func (m thrownError[E]) Description() string {
	if m.what == nil {
		return "threw " + format.TypeOf[E]() + "(anything)"
	}
	return "threw " + format.TypeOf[E]() + "(what: " + m.what.Description() + ")"
}

func (m thrownError[E]) Match(subject any) Result {
	raised, threw, ok := raise(subject)
	if !ok {
		return notA(subject, "callable")
	}
	if !threw {
		return Result{Message: "threw nothing"}
	}
	err, isErr := raised.(error)
	if !isErr {
		return Result{Message: threwText(raised)}
	}

	if !errorAs[E](err) {
		return Result{Message: threwText(err)}
	}
	if m.what == nil {
		return Result{Matched: true, Message: threwText(err)}
	}
	text, ok := errorText(err)
	if !ok {
		return Result{Message: "threw " + format.TypeName(err) + "(what: nil)"}
	}
	return Result{
		Matched: m.what.Match(text).Matched,
		Message: "threw " + format.TypeName(err) + "(what: " + format.Value(text) + ")",
	}
}

type thrownRaw[T any] struct {
	m Matcher
}

// ThrownRaw matches callables that panic with a value whose dynamic type is
// exactly T and that matches v.
func ThrownRaw[T any](v any) Matcher {
	return thrownRaw[T]{m: Ensure(v)}
}

func (m thrownRaw[T]) Description() string {
	return "threw " + format.TypeOf[T]() + "(" + m.m.Description() + ")"
}

func (m thrownRaw[T]) Match(subject any) Result {
	raised, threw, ok := raise(subject)
	switch {
	case !ok:
		return notA(subject, "callable")
	case !threw:
		return Result{Message: "threw nothing"}
	case reflect.TypeOf(raised) != reflect.TypeFor[T]():
		return Result{Message: threwText(raised)}
	default:
		return Result{Matched: m.m.Match(raised).Matched, Message: "threw " + format.Value(raised)}
	}
}
