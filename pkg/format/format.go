// Package format renders arbitrary Go values as diagnostic text for failed
// expectations.
//
// Value is total: it never panics and never returns an error. The strategy used
// for a value is chosen from its type's capabilities, in this order:
//
//  1. literals: nil, strings, Char, UTF16, UTF16Char and UTF32
//  2. directly printable values: error and fmt.Stringer implementations,
//     integers, floats and complex numbers
//  3. boolish values: bools, pointers (the pointee is rendered, never the
//     address), funcs (their signature), chans
//  4. sequences: slices, arrays and maps, as "[a, b, c]"
//  5. tuples: Tuple implementations and anonymous structs, as "[a, b]"
//  6. everything else: the type name
//
// A type that is both printable and iterable is printed.
package format

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
)

const (
	// Placeholder is rendered when nothing better can be produced, e.g. past
	// the recursion limit or for a type with no usable name.
	Placeholder = "..."

	// DefaultMaxDepth bounds recursion into nested values and pointer cycles.
	DefaultMaxDepth = 64

	nilLiteral = "nil"
)

var maxDepth atomic.Int64

func init() {
	maxDepth.Store(DefaultMaxDepth)
}

// SetMaxDepth changes the recursion limit. Values <= 0 restore the default.
func SetMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	maxDepth.Store(int64(n))
}

// MaxDepth returns the current recursion limit.
func MaxDepth() int {
	return int(maxDepth.Load())
}

// Value formats v for a diagnostic message.
func Value(v any) string {
	if v == nil {
		return nilLiteral
	}
	p := printer{limit: MaxDepth()}
	return p.value(reflect.ValueOf(v))
}

// Values formats each of vs and joins them the way sequences are rendered.
func Values(vs ...any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Value(v)
	}
	return Join(parts)
}

// Join renders already-formatted parts as a bracketed list.
func Join(parts []string) string {
	return "[" + strings.Join(parts, ", ") + "]"
}

type printer struct {
	depth int
	limit int
}

func (p *printer) value(v reflect.Value) string {
	if !v.IsValid() {
		return nilLiteral
	}
	if p.depth >= p.limit {
		return Placeholder
	}
	p.depth++
	defer func() { p.depth-- }()

	t := v.Type()
	prof := profileOf(t)

	if isNilLiteral(v) {
		return nilLiteral
	}

	switch prof.capability {
	case capText:
		if v.CanInterface() {
			if s, ok := callText(v.Interface()); ok {
				return s
			}
			return typeName(t)
		}
	case capTextPtr:
		if v.CanInterface() {
			ptr := reflect.New(t)
			ptr.Elem().Set(v)
			if s, ok := callText(ptr.Interface()); ok {
				return s
			}
			return typeName(t)
		}
	case capTuple:
		if v.CanInterface() {
			if tup, ok := v.Interface().(Tuple); ok {
				return p.tuple(tup)
			}
		}
	}

	switch prof.kind {
	case kindString:
		return Quote(v.String(), '"')
	case kindChar:
		return quoteChar(rune(v.Int()))
	case kindUTF16:
		return Quote(decodeUTF16(v), '"')
	case kindUTF16Char:
		return Quote(decodeUTF16Units([]uint16{uint16(v.Uint())}), '\'')
	case kindUTF32:
		return Quote(decodeUTF32(v), '"')
	case kindNumber:
		return formatNumber(v)
	case kindBool:
		return strconv.FormatBool(v.Bool())
	case kindPointer:
		return p.value(v.Elem())
	case kindCharPointer:
		return Quote(cString([]rune{rune(v.Elem().Int())}), '"')
	case kindFunc:
		return funcSignature(t)
	case kindInterface:
		return p.value(v.Elem())
	case kindCharArray:
		runes := make([]rune, v.Len())
		for i := range runes {
			runes[i] = rune(v.Index(i).Int())
		}
		return Quote(cString(runes), '"')
	case kindSequence:
		return p.sequence(v)
	case kindMap:
		return p.mapping(v)
	case kindStruct:
		return p.structure(v)
	default:
		return typeName(t)
	}
}

func (p *printer) sequence(v reflect.Value) string {
	parts := make([]string, v.Len())
	for i := range parts {
		parts[i] = p.value(v.Index(i))
	}
	return Join(parts)
}

type entry struct {
	key   string
	value string
}

// Map iteration order is random, so entries are ordered by their rendered key.
func (p *printer) mapping(v reflect.Value) string {
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, entry{
			key:   p.value(iter.Key()),
			value: p.value(iter.Value()),
		})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.key, b.key)
	})
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = Join([]string{e.key, e.value})
	}
	return Join(parts)
}

func (p *printer) tuple(t Tuple) string {
	n := t.Arity()
	parts := make([]string, n)
	for i := range n {
		parts[i] = p.any(t.Elem(i))
	}
	return Join(parts)
}

func (p *printer) structure(v reflect.Value) string {
	parts := make([]string, v.NumField())
	for i := range parts {
		parts[i] = p.value(v.Field(i))
	}
	return Join(parts)
}

func (p *printer) any(x any) string {
	if x == nil {
		return nilLiteral
	}
	return p.value(reflect.ValueOf(x))
}

// isNilLiteral reports whether v renders as the nil literal. Nil slices and
// maps are empty sequences, not nil.
func isNilLiteral(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// callText invokes Error or String. A panicking method yields ok == false.
func callText(x any) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()
	switch t := x.(type) {
	case error:
		return t.Error(), true
	case interface{ String() string }:
		return t.String(), true
	}
	return "", false
}

func formatNumber(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Complex64:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 64)
	case reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	default:
		return typeName(v.Type())
	}
}
