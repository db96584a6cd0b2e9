package format

import (
	"reflect"
	"sync"
)

// capability is a method-based strategy. It only applies to values whose
// methods can be called; unexported struct fields fall back to their kind.
type capability uint8

const (
	capNone capability = iota
	capText
	capTextPtr
	capTuple
)

type kind uint8

const (
	kindFallback kind = iota
	kindString
	kindChar
	kindUTF16
	kindUTF16Char
	kindUTF32
	kindNumber
	kindBool
	kindPointer
	kindCharPointer
	kindFunc
	kindInterface
	kindCharArray
	kindSequence
	kindMap
	kindStruct
)

type profile struct {
	capability capability
	kind       kind
}

var (
	profiles sync.Map // reflect.Type -> profile

	errorType    = reflect.TypeFor[error]()
	stringerType = reflect.TypeFor[interface{ String() string }]()
	tupleType    = reflect.TypeFor[Tuple]()
	charType     = reflect.TypeFor[Char]()
	utf16Type    = reflect.TypeFor[UTF16]()
	utf16Char    = reflect.TypeFor[UTF16Char]()
	utf32Type    = reflect.TypeFor[UTF32]()
)

func profileOf(t reflect.Type) profile {
	if p, ok := profiles.Load(t); ok {
		return p.(profile)
	}
	p := classify(t)
	profiles.Store(t, p)
	return p
}

func classify(t reflect.Type) profile {
	// Wide text types are literals; their methods, if any, are ignored.
	switch t {
	case charType:
		return profile{kind: kindChar}
	case utf16Type:
		return profile{kind: kindUTF16}
	case utf16Char:
		return profile{kind: kindUTF16Char}
	case utf32Type:
		return profile{kind: kindUTF32}
	}
	return profile{capability: capabilityOf(t), kind: kindOf(t)}
}

func capabilityOf(t reflect.Type) capability {
	switch {
	case t.Implements(errorType), t.Implements(stringerType):
		return capText
	case t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface &&
		(reflect.PointerTo(t).Implements(errorType) || reflect.PointerTo(t).Implements(stringerType)):
		return capTextPtr
	case t.Implements(tupleType):
		return capTuple
	default:
		return capNone
	}
}

func kindOf(t reflect.Type) kind {
	switch t.Kind() {
	case reflect.String:
		return kindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return kindNumber
	case reflect.Bool:
		return kindBool
	case reflect.Pointer:
		if t.Elem() == charType {
			return kindCharPointer
		}
		return kindPointer
	case reflect.Func:
		return kindFunc
	case reflect.Interface:
		return kindInterface
	case reflect.Array:
		if t.Elem() == charType {
			return kindCharArray
		}
		return kindSequence
	case reflect.Slice:
		return kindSequence
	case reflect.Map:
		return kindMap
	case reflect.Struct:
		if t.Name() == "" {
			return kindStruct
		}
		return kindFallback
	default:
		return kindFallback
	}
}
