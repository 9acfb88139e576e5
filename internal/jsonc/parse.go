package jsonc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// SyntaxError describes a malformed document, with a 1-based line and
// column of the offending byte.
type SyntaxError struct {
	Line, Col int
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("jsonc: line %d, column %d: %s", e.Line, e.Col, e.Msg)
}

// Parse decodes strict JSON into a Value.
func Parse(data []byte) (*Value, error) {
	return parse(data, false)
}

// ParseJSONC decodes JSON extended with // line comments, /* */ block
// comments, and trailing commas before } or ].
func ParseJSONC(data []byte) (*Value, error) {
	return parse(data, true)
}

func parse(data []byte, lenient bool) (*Value, error) {
	p := &parser{data: data, lenient: lenient}
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	if p.pos != len(p.data) {
		return nil, p.errorf("unexpected data after top-level value")
	}
	return v, nil
}

type parser struct {
	data    []byte
	pos     int
	lenient bool
}

func (p *parser) errorf(format string, args ...any) error {
	line, col := 1, 1
	for _, b := range p.data[:p.pos] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return &SyntaxError{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

// skipSpace advances past whitespace and, in lenient mode, comments.
// Comment detection happens here, outside string literals only, which is
// what keeps // sequences inside strings intact.
func (p *parser) skipSpace() error {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		case '/':
			if !p.lenient {
				return p.errorf("unexpected character %q", '/')
			}
			if err := p.skipComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (p *parser) skipComment() error {
	if p.pos+1 >= len(p.data) {
		return p.errorf("unterminated comment")
	}
	switch p.data[p.pos+1] {
	case '/':
		p.pos += 2
		for p.pos < len(p.data) && p.data[p.pos] != '\n' {
			p.pos++
		}
		return nil
	case '*':
		p.pos += 2
		for p.pos+1 < len(p.data) {
			if p.data[p.pos] == '*' && p.data[p.pos+1] == '/' {
				p.pos += 2
				return nil
			}
			p.pos++
		}
		p.pos = len(p.data)
		return p.errorf("unterminated block comment")
	default:
		return p.errorf("unexpected character %q", '/')
	}
}

func (p *parser) value() (*Value, error) {
	if p.pos >= len(p.data) {
		return nil, p.errorf("unexpected end of input")
	}
	switch c := p.data[p.pos]; {
	case c == '{':
		return p.object()
	case c == '[':
		return p.array()
	case c == '"':
		s, err := p.string()
		if err != nil {
			return nil, err
		}
		return &Value{kind: String, str: s}, nil
	case c == 't':
		if err := p.literal("true"); err != nil {
			return nil, err
		}
		return &Value{kind: Bool, boolean: true}, nil
	case c == 'f':
		if err := p.literal("false"); err != nil {
			return nil, err
		}
		return &Value{kind: Bool}, nil
	case c == 'n':
		if err := p.literal("null"); err != nil {
			return nil, err
		}
		return &Value{}, nil
	case c == '-' || (c >= '0' && c <= '9'):
		return p.number()
	default:
		return nil, p.errorf("unexpected character %q", c)
	}
}

func (p *parser) literal(want string) error {
	if !strings.HasPrefix(string(p.data[p.pos:]), want) {
		return p.errorf("invalid literal")
	}
	p.pos += len(want)
	return nil
}

func (p *parser) object() (*Value, error) {
	p.pos++ // consume {
	obj := NewObject()
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.data) {
			return nil, p.errorf("unterminated object")
		}
		if p.data[p.pos] == '}' {
			p.pos++
			return obj, nil
		}
		if len(obj.members) > 0 {
			if p.data[p.pos] != ',' {
				return nil, p.errorf("expected ',' or '}' in object")
			}
			p.pos++
			if err := p.skipSpace(); err != nil {
				return nil, err
			}
			if p.pos >= len(p.data) {
				return nil, p.errorf("unterminated object")
			}
			if p.data[p.pos] == '}' {
				if !p.lenient {
					return nil, p.errorf("trailing comma in object")
				}
				p.pos++
				return obj, nil
			}
		}
		if p.data[p.pos] != '"' {
			return nil, p.errorf("expected object key")
		}
		key, err := p.string()
		if err != nil {
			return nil, err
		}
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.data) || p.data[p.pos] != ':' {
			return nil, p.errorf("expected ':' after object key")
		}
		p.pos++
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		obj.members = append(obj.members, Member{Key: key, Value: val})
	}
}

func (p *parser) array() (*Value, error) {
	p.pos++ // consume [
	arr := NewArray()
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.data) {
			return nil, p.errorf("unterminated array")
		}
		if p.data[p.pos] == ']' {
			p.pos++
			return arr, nil
		}
		if len(arr.elems) > 0 {
			if p.data[p.pos] != ',' {
				return nil, p.errorf("expected ',' or ']' in array")
			}
			p.pos++
			if err := p.skipSpace(); err != nil {
				return nil, err
			}
			if p.pos >= len(p.data) {
				return nil, p.errorf("unterminated array")
			}
			if p.data[p.pos] == ']' {
				if !p.lenient {
					return nil, p.errorf("trailing comma in array")
				}
				p.pos++
				return arr, nil
			}
		}
		elem, err := p.value()
		if err != nil {
			return nil, err
		}
		arr.elems = append(arr.elems, elem)
	}
}

func (p *parser) string() (string, error) {
	p.pos++ // consume opening quote
	var b strings.Builder
	for {
		if p.pos >= len(p.data) {
			return "", p.errorf("unterminated string")
		}
		c := p.data[p.pos]
		switch {
		case c == '"':
			p.pos++
			return b.String(), nil
		case c == '\\':
			if err := p.escape(&b); err != nil {
				return "", err
			}
		case c < 0x20:
			return "", p.errorf("control character in string")
		default:
			r, size := utf8.DecodeRune(p.data[p.pos:])
			b.WriteRune(r)
			p.pos += size
		}
	}
}

func (p *parser) escape(b *strings.Builder) error {
	if p.pos+1 >= len(p.data) {
		return p.errorf("unterminated escape sequence")
	}
	switch c := p.data[p.pos+1]; c {
	case '"', '\\', '/':
		b.WriteByte(c)
		p.pos += 2
	case 'b':
		b.WriteByte('\b')
		p.pos += 2
	case 'f':
		b.WriteByte('\f')
		p.pos += 2
	case 'n':
		b.WriteByte('\n')
		p.pos += 2
	case 'r':
		b.WriteByte('\r')
		p.pos += 2
	case 't':
		b.WriteByte('\t')
		p.pos += 2
	case 'u':
		r, err := p.unicodeEscape(p.pos)
		if err != nil {
			return err
		}
		if utf16.IsSurrogate(r) {
			if p.pos+11 < len(p.data) && p.data[p.pos+6] == '\\' && p.data[p.pos+7] == 'u' {
				r2, err := p.unicodeEscape(p.pos + 6)
				if err != nil {
					return err
				}
				if combined := utf16.DecodeRune(r, r2); combined != utf8.RuneError {
					b.WriteRune(combined)
					p.pos += 12
					return nil
				}
			}
			b.WriteRune(utf8.RuneError)
			p.pos += 6
			return nil
		}
		b.WriteRune(r)
		p.pos += 6
	default:
		return p.errorf("invalid escape character %q", c)
	}
	return nil
}

// unicodeEscape decodes the four hex digits of a \uXXXX sequence starting
// at offset (which points at the backslash).
func (p *parser) unicodeEscape(offset int) (rune, error) {
	if offset+6 > len(p.data) {
		return 0, p.errorf("short unicode escape")
	}
	n, err := strconv.ParseUint(string(p.data[offset+2:offset+6]), 16, 32)
	if err != nil {
		return 0, p.errorf("invalid unicode escape")
	}
	return rune(n), nil
}

func (p *parser) number() (*Value, error) {
	start := p.pos
	if p.data[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
			p.pos++
			continue
		}
		break
	}
	raw := string(p.data[start:p.pos])
	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.pos = start
		return nil, p.errorf("invalid number literal %q", raw)
	}
	return &Value{kind: Number, num: num, raw: raw}, nil
}
