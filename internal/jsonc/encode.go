package jsonc

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// EncodeIndent renders v as JSON text indented with the given string per
// nesting level, preserving object member order. The result carries no
// trailing newline.
func EncodeIndent(v *Value, indent string) string {
	var b strings.Builder
	encodeValue(&b, v, indent, "")
	return b.String()
}

// String renders v as 2-space-indented JSON.
func (v *Value) String() string {
	return EncodeIndent(v, "  ")
}

// EncodeCompact renders v as single-line JSON.
func EncodeCompact(v *Value) string {
	var b strings.Builder
	encodeCompact(&b, v)
	return b.String()
}

func encodeCompact(b *strings.Builder, v *Value) {
	switch v.Kind() {
	case Object:
		b.WriteByte('{')
		for i, m := range v.Members() {
			if i > 0 {
				b.WriteString(", ")
			}
			encodeString(b, m.Key)
			b.WriteString(": ")
			encodeCompact(b, m.Value)
		}
		b.WriteByte('}')
	case Array:
		b.WriteByte('[')
		for i, e := range v.Elems() {
			if i > 0 {
				b.WriteString(", ")
			}
			encodeCompact(b, e)
		}
		b.WriteByte(']')
	default:
		encodeValue(b, v, "", "")
	}
}

func encodeValue(b *strings.Builder, v *Value, indent, prefix string) {
	switch v.Kind() {
	case Null:
		b.WriteString("null")
	case Bool:
		b.WriteString(strconv.FormatBool(v.boolean))
	case Number:
		if v.raw != "" {
			b.WriteString(v.raw)
		} else {
			b.WriteString(strconv.FormatFloat(v.num, 'g', -1, 64))
		}
	case String:
		encodeString(b, v.str)
	case Object:
		if len(v.members) == 0 {
			b.WriteString("{}")
			return
		}
		inner := prefix + indent
		b.WriteString("{\n")
		for i, m := range v.members {
			b.WriteString(inner)
			encodeString(b, m.Key)
			b.WriteString(": ")
			encodeValue(b, m.Value, indent, inner)
			if i < len(v.members)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(prefix)
		b.WriteByte('}')
	case Array:
		if len(v.elems) == 0 {
			b.WriteString("[]")
			return
		}
		inner := prefix + indent
		b.WriteString("[\n")
		for i, e := range v.elems {
			b.WriteString(inner)
			encodeValue(b, e, indent, inner)
			if i < len(v.elems)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(prefix)
		b.WriteByte(']')
	}
}

const hexDigits = "0123456789abcdef"

func encodeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[r>>4])
				b.WriteByte(hexDigits[r&0xf])
			} else if r == utf8.RuneError {
				b.WriteString(`�`)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
