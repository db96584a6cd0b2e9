package format

// Tuple is a fixed-arity, heterogeneous value. Its elements render in order
// as "[e0, e1, ...]".
type Tuple interface {
	Arity() int
	Elem(i int) any
}

// Pair holds two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns a Pair of a and b.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Arity implements Tuple.
func (p Pair[A, B]) Arity() int { return 2 }

// Elem implements Tuple.
func (p Pair[A, B]) Elem(i int) any {
	switch i {
	case 0:
		return p.First
	case 1:
		return p.Second
	}
	return nil
}

// Triple holds three values of possibly different types.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// MakeTriple returns a Triple of a, b and c.
func MakeTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

// Arity implements Tuple.
func (t Triple[A, B, C]) Arity() int { return 3 }

// Elem implements Tuple.
func (t Triple[A, B, C]) Elem(i int) any {
	switch i {
	case 0:
		return t.First
	case 1:
		return t.Second
	case 2:
		return t.Third
	}
	return nil
}
