package match

import (
	"fmt"

	"github.com/dkoosis/verdict/pkg/format"
)

type equalTo struct {
	want   any
	negate bool
}

// EqualTo matches subjects equal to want. Numbers of different types compare
// by value; composite values are compared field by field.
func EqualTo(want any) Matcher {
	return equalTo{want: want}
}

// NotEqualTo matches subjects that differ from want.
func NotEqualTo(want any) Matcher {
	return equalTo{want: want, negate: true}
}

func (m equalTo) Description() string {
	if m.negate {
		return "not " + format.Value(m.want)
	}
	return format.Value(m.want)
}

func (m equalTo) Match(subject any) Result {
	return resultOf(equal(subject, m.want) != m.negate)
}

type relation struct {
	op     string
	want   any
	accept func(order) bool
}

func (m relation) Description() string { return m.op + " " + format.Value(m.want) }

func (m relation) Match(subject any) Result {
	switch o := compare(subject, m.want); o {
	case incomparable:
		return Result{Message: fmt.Sprintf("cannot compare %s with %s", format.TypeName(subject), format.TypeName(m.want))}
	case unordered:
		return Result{}
	default:
		return resultOf(m.accept(o))
	}
}

// Greater matches subjects ordered after want.
func Greater(want any) Matcher {
	return relation{op: ">", want: want, accept: func(o order) bool { return o == greater }}
}

// GreaterEqual matches subjects not ordered before want.
func GreaterEqual(want any) Matcher {
	return relation{op: ">=", want: want, accept: func(o order) bool { return o == greater || o == same }}
}

// Less matches subjects ordered before want.
func Less(want any) Matcher {
	return relation{op: "<", want: want, accept: func(o order) bool { return o == less }}
}

// LessEqual matches subjects not ordered after want.
func LessEqual(want any) Matcher {
	return relation{op: "<=", want: want, accept: func(o order) bool { return o == less || o == same }}
}
