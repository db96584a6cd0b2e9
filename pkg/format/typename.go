package format

import (
	"reflect"
	"strings"
)

// TypeName returns the name of v's dynamic type, "nil" for a nil interface.
// Func types are rendered as their signature.
func TypeName(v any) string {
	if v == nil {
		return nilLiteral
	}
	return typeName(reflect.TypeOf(v))
}

// TypeOf returns the name of T. Interface types keep their declared name
// (TypeOf[error]() is "error").
func TypeOf[T any]() string {
	return typeName(reflect.TypeFor[T]())
}

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Func {
		return funcSignature(t)
	}
	if name := t.String(); name != "" {
		return name
	}
	return Placeholder
}

// funcSignature spells out a func type, so a named func type prints as what
// it accepts and returns rather than its name.
func funcSignature(t reflect.Type) string {
	var sb strings.Builder
	sb.WriteString("func(")
	for i := range t.NumIn() {
		if i > 0 {
			sb.WriteString(", ")
		}
		in := t.In(i)
		if t.IsVariadic() && i == t.NumIn()-1 {
			sb.WriteString("...")
			in = in.Elem()
		}
		sb.WriteString(typeName(in))
	}
	sb.WriteString(")")

	switch t.NumOut() {
	case 0:
	case 1:
		sb.WriteString(" ")
		sb.WriteString(typeName(t.Out(0)))
	default:
		sb.WriteString(" (")
		for i := range t.NumOut() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(typeName(t.Out(i)))
		}
		sb.WriteString(")")
	}
	return sb.String()
}
