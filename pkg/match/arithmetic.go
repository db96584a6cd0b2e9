package match

import (
	"math"
	"reflect"

	"github.com/dkoosis/verdict/pkg/format"
)

// Float is the set of types NearTo accepts as the expected value.
type Float interface {
	~float32 | ~float64
}

// ulpFactor scales machine epsilon into the default tolerance. Ten units
// absorb the rounding accumulated by a handful of chained operations, such as
// summing 0.1 ten times.
const ulpFactor = 10

const (
	epsilon32 = 0x1p-23
	epsilon64 = 0x1p-52
)

type near struct {
	want     float64
	display  any
	eps      float64
	relative bool
	single   bool // want is a float32
}

// NearTo matches numbers within a precision-derived tolerance of want:
//
//	|subject - want| <= 10 * ε * max(|subject|, |want|)
//
// where ε is the machine epsilon of the less precise operand (float32 when
// either side is a float32). NaN never matches, and an infinity only matches
// an equal infinity.
func NearTo[F Float](want F) Matcher {
	return near{
		want:     float64(want),
		display:  want,
		relative: true,
		single:   reflect.TypeFor[F]().Kind() == reflect.Float32,
	}
}

// NearToEps matches numbers within eps of want. NaN never matches, and an
// infinity only matches an equal infinity.
func NearToEps[F Float](want, eps F) Matcher {
	return nearAbs("NearToEps", want, eps)
}

// NearToAbs matches numbers within the absolute bound eps of want. NaN never
// matches, and an infinity only matches an equal infinity.
func NearToAbs[F Float](want, eps F) Matcher {
	return nearAbs("NearToAbs", want, eps)
}

func nearAbs[F Float](name string, want, eps F) Matcher {
	e := float64(eps)
	if math.IsNaN(e) || e < 0 {
		invalid(name, "tolerance must be a non-negative number, got %s", format.Value(eps))
	}
	return near{want: float64(want), display: want, eps: e}
}

func (m near) Description() string { return "~= " + format.Value(m.display) }

func (m near) Match(subject any) Result {
	v := reflect.ValueOf(subject)
	n, ok := numberOf(v)
	if !ok {
		return notA(subject, "a number")
	}
	got := n.asFloat()
	if math.IsNaN(got) || math.IsNaN(m.want) {
		return Result{}
	}
	if got == m.want {
		return resultOf(true)
	}
	if math.IsInf(got, 0) || math.IsInf(m.want, 0) {
		return Result{}
	}
	eps := m.eps
	if m.relative {
		machine := epsilon64
		if m.single || v.Kind() == reflect.Float32 {
			machine = epsilon32
		}
		eps = ulpFactor * machine * math.Max(math.Abs(got), math.Abs(m.want))
	}
	return resultOf(math.Abs(got-m.want) <= eps)
}
