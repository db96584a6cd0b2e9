package match

import (
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// order is the result of comparing two values.
type order int

const (
	incomparable order = iota
	unordered          // at least one operand is NaN
	less
	same
	greater
)

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// equal reports whether a and b are equal. Values of one comparable type use
// ==, numbers of different types compare by value, and everything else is
// compared structurally with go-cmp. Any nil equals any other nil.
func equal(a, b any) (eq bool) {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == tb && ta.Comparable() && comparableEqual(a, b, &eq) {
		return eq
	}
	if na, ok := numberOf(reflect.ValueOf(a)); ok {
		if nb, ok := numberOf(reflect.ValueOf(b)); ok {
			return compareNumbers(na, nb) == same
		}
	}
	if ca, ok := complexOf(reflect.ValueOf(a)); ok {
		if cb, ok := complexOf(reflect.ValueOf(b)); ok {
			return ca == cb
		}
	}
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return cmp.Equal(a, b, exportAll)
}

// comparableEqual applies ==. Interface fields holding uncomparable values
// make == panic; ok is false in that case.
func comparableEqual(a, b any, eq *bool) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	*eq = a == b
	return true
}

type numberKind uint8

const (
	signed numberKind = iota
	unsigned
	float
)

type number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

func numberOf(v reflect.Value) (number, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: signed, i: v.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: unsigned, u: v.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: float, f: v.Float()}, true
	default:
		return number{}, false
	}
}

func complexOf(v reflect.Value) (complex128, bool) {
	switch v.Kind() {
	case reflect.Complex64, reflect.Complex128:
		return v.Complex(), true
	default:
		return 0, false
	}
}

func (n number) asFloat() float64 {
	switch n.kind {
	case signed:
		return float64(n.i)
	case unsigned:
		return float64(n.u)
	default:
		return n.f
	}
}

func orderOf[T int64 | uint64 | float64 | string](a, b T) order {
	switch {
	case a < b:
		return less
	case a > b:
		return greater
	default:
		return same
	}
}

func compareNumbers(a, b number) order {
	switch {
	case a.kind == float || b.kind == float:
		fa, fb := a.asFloat(), b.asFloat()
		if math.IsNaN(fa) || math.IsNaN(fb) {
			return unordered
		}
		return orderOf(fa, fb)
	case a.kind == signed && b.kind == signed:
		return orderOf(a.i, b.i)
	case a.kind == unsigned && b.kind == unsigned:
		return orderOf(a.u, b.u)
	case a.kind == signed:
		if a.i < 0 {
			return less
		}
		return orderOf(uint64(a.i), b.u)
	default:
		if b.i < 0 {
			return greater
		}
		return orderOf(a.u, uint64(b.i))
	}
}

// compare orders a against b. Numbers of any kind, strings, and values of one
// type with a Compare(T) int method (time.Time, for instance) are ordered.
func compare(a, b any) order {
	if a == nil || b == nil {
		return incomparable
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if na, ok := numberOf(va); ok {
		if nb, ok := numberOf(vb); ok {
			return compareNumbers(na, nb)
		}
		return incomparable
	}
	if va.Kind() == reflect.String && vb.Kind() == reflect.String {
		return orderOf(va.String(), vb.String())
	}
	if va.Type() == vb.Type() {
		if c, ok := compareMethod(va, vb); ok {
			return orderOf(int64(c), 0)
		}
	}
	return incomparable
}

func compareMethod(a, b reflect.Value) (int, bool) {
	m := a.MethodByName("Compare")
	if !m.IsValid() {
		return 0, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.In(0) != b.Type() || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Int {
		return 0, false
	}
	return int(m.Call([]reflect.Value{b})[0].Int()), true
}
