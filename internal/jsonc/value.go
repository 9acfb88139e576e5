package jsonc

// Kind identifies the variant held by a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Object
	Array
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Object:
		return "object"
	case Array:
		return "array"
	default:
		return "invalid"
	}
}

// Member is a single key/value pair of an object. Members keep the order
// in which they appeared in the source document.
type Member struct {
	Key   string
	Value *Value
}

// Value is a tagged variant over the JSON data model. The zero Value is
// null.
type Value struct {
	kind    Kind
	boolean bool
	num     float64
	raw     string // original number literal, kept for faithful re-encoding
	str     string
	members []Member
	elems   []*Value
}

// Kind reports which variant the value holds.
func (v *Value) Kind() Kind {
	if v == nil {
		return Null
	}
	return v.kind
}

// IsObject reports whether the value is an object.
func (v *Value) IsObject() bool { return v.Kind() == Object }

// IsArray reports whether the value is an array.
func (v *Value) IsArray() bool { return v.Kind() == Array }

// Bool returns the boolean value; false for non-bool kinds.
func (v *Value) Bool() bool {
	if v == nil || v.kind != Bool {
		return false
	}
	return v.boolean
}

// Float returns the numeric value; 0 for non-number kinds.
func (v *Value) Float() float64 {
	if v == nil || v.kind != Number {
		return 0
	}
	return v.num
}

// Str returns the string value; "" for non-string kinds.
func (v *Value) Str() string {
	if v == nil || v.kind != String {
		return ""
	}
	return v.str
}

// Members returns the object's key/value pairs in document order. Nil for
// non-object kinds.
func (v *Value) Members() []Member {
	if v == nil || v.kind != Object {
		return nil
	}
	return v.members
}

// Elems returns the array elements in document order. Nil for non-array
// kinds.
func (v *Value) Elems() []*Value {
	if v == nil || v.kind != Array {
		return nil
	}
	return v.elems
}

// Get looks up an object member by key.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.kind != Object {
		return nil, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Has reports whether an object member with the given key exists.
func (v *Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Len returns the member count for objects and the element count for
// arrays; 0 otherwise.
func (v *Value) Len() int {
	switch v.Kind() {
	case Object:
		return len(v.members)
	case Array:
		return len(v.elems)
	default:
		return 0
	}
}

// NewObject returns an empty object value.
func NewObject() *Value {
	return &Value{kind: Object}
}

// NewArray returns an array value holding the given elements.
func NewArray(elems ...*Value) *Value {
	return &Value{kind: Array, elems: elems}
}

// Set appends or replaces an object member, preserving the position of an
// existing key. No-op on non-object values.
func (v *Value) Set(key string, value *Value) {
	if v == nil || v.kind != Object {
		return
	}
	for i, m := range v.members {
		if m.Key == key {
			v.members[i].Value = value
			return
		}
	}
	v.members = append(v.members, Member{Key: key, Value: value})
}

// Append adds an element to an array value. No-op on non-array values.
func (v *Value) Append(elem *Value) {
	if v == nil || v.kind != Array {
		return
	}
	v.elems = append(v.elems, elem)
}

// Equal reports deep equality of two values. Objects compare by member
// set regardless of order; numbers compare numerically, so 1 and 1.0 are
// equal.
func Equal(a, b *Value) bool {
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		return false
	}
	switch ka {
	case Null:
		return true
	case Bool:
		return a.boolean == b.boolean
	case Number:
		return a.num == b.num
	case String:
		return a.str == b.str
	case Array:
		if len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !Equal(a.elems[i], b.elems[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.members) != len(b.members) {
			return false
		}
		for _, m := range a.members {
			other, ok := b.Get(m.Key)
			if !ok || !Equal(m.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
