package format

import (
	"encoding/binary"
	"reflect"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Char is a single character. Go has no distinct character type (rune is
// int32), so values meant to print as 'x' use Char.
type Char rune

// UTF16 is text held as UTF-16 code units.
type UTF16 []uint16

// UTF16Char is a single UTF-16 code unit.
type UTF16Char uint16

// UTF32 is text held as UTF-32 code points.
type UTF32 []rune

// Quote wraps s in delim, escaping delim and backslash with a backslash.
// Nothing else is escaped.
func Quote(s string, delim byte) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte(delim)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == delim || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	sb.WriteByte(delim)
	return sb.String()
}

func quoteChar(r rune) string {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	return Quote(string(r), '\'')
}

// cString returns the runes up to the first NUL.
func cString(runes []rune) string {
	var sb strings.Builder
	for _, r := range runes {
		if r == 0 {
			break
		}
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

var (
	utf16Decoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf32Decoding = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
)

func decodeUTF16(v reflect.Value) string {
	units := make([]uint16, v.Len())
	for i := range units {
		units[i] = uint16(v.Index(i).Uint())
	}
	return decodeUTF16Units(units)
}

// decodeUTF16Units transcodes to UTF-8. Unpaired surrogates become U+FFFD.
func decodeUTF16Units(units []uint16) string {
	raw := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(raw[2*i:], u)
	}
	out, err := utf16Decoding.NewDecoder().Bytes(raw)
	if err != nil {
		return Placeholder
	}
	return string(out)
}

func decodeUTF32(v reflect.Value) string {
	raw := make([]byte, 4*v.Len())
	for i := range v.Len() {
		binary.LittleEndian.PutUint32(raw[4*i:], uint32(v.Index(i).Int()))
	}
	out, err := utf32Decoding.NewDecoder().Bytes(raw)
	if err != nil {
		return Placeholder
	}
	return string(out)
}
