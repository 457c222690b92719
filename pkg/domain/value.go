package domain

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the type tag of a Value.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

// String returns the name used for the kind in help text and menu files.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "str"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseKind maps a kind name ("str", "string", "int", "float", "bool") to its Kind.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "str", "string", "text":
		return KindString, true
	case "int", "integer", "number":
		return KindInt, true
	case "float", "real":
		return KindFloat, true
	case "bool", "boolean":
		return KindBool, true
	}
	return 0, false
}

// Value is a typed token. It is comparable: two values are equal only when
// both the kind and the payload are equal, so Int(1) != Float(1) != Str("1").
type Value struct {
	kind Kind
	text string
	num  int64
	real float64
	flag bool
}

// Str wraps a plain string.
func Str(s string) Value { return Value{kind: KindString, text: s} }

// Int wraps an integer.
func Int(n int64) Value { return Value{kind: KindInt, num: n} }

// Float wraps a floating point number.
func Float(f float64) Value { return Value{kind: KindFloat, real: f} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Kind returns the type tag.
func (v Value) Kind() Kind { return v.kind }

// Equal reports whether both values carry the same kind and payload.
func (v Value) Equal(o Value) bool { return v == o }

// AsString returns the payload of a string value.
func (v Value) AsString() (string, bool) {
	return v.text, v.kind == KindString
}

// AsInt returns the payload of an integer value.
func (v Value) AsInt() (int64, bool) {
	return v.num, v.kind == KindInt
}

// AsFloat returns the payload of a float value.
func (v Value) AsFloat() (float64, bool) {
	return v.real, v.kind == KindFloat
}

// AsBool returns the payload of a boolean value.
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// Any returns the payload as a native Go value (string, int64, float64 or bool).
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.num
	case KindFloat:
		return v.real
	case KindBool:
		return v.flag
	default:
		return v.text
	}
}

// String renders the payload the way a user would type it.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		return v.text
	}
}

// Quote renders the value for listings. Strings that would be ambiguous
// (empty, containing spaces, or parseable as another kind) are quoted.
func (v Value) Quote() string {
	if v.kind != KindString {
		return v.String()
	}
	if v.text == "" || needsQuote(v.text) {
		return strconv.Quote(v.text)
	}
	return v.text
}

func needsQuote(s string) bool {
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '"' || r == '\'' {
			return true
		}
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	switch s {
	case "true", "false", "True", "False", "TRUE", "FALSE":
		return true
	}
	return false
}

// ValueOf converts a native Go value into a Value. It accepts the types
// produced by YAML/JSON decoders. Unsupported types are rejected.
func ValueOf(x any) (Value, bool) {
	switch t := x.(type) {
	case Value:
		return t, true
	case string:
		return Str(t), true
	case bool:
		return Bool(t), true
	case int:
		return Int(int64(t)), true
	case int8:
		return Int(int64(t)), true
	case int16:
		return Int(int64(t)), true
	case int32:
		return Int(int64(t)), true
	case int64:
		return Int(t), true
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return Int(int64(t)), true
	case uint16:
		return Int(int64(t)), true
	case uint32:
		return Int(int64(t)), true
	case uint64:
		return fromUint(t)
	case float32:
		return Float(float64(t)), true
	case float64:
		return Float(t), true
	}
	return Value{}, false
}

// fromUint rejects unsigned values that do not fit in an int value.
func fromUint(n uint64) (Value, bool) {
	if n > math.MaxInt64 {
		return Value{}, false
	}
	return Int(int64(n)), true
}

// Lowercase is the stock InputModifier: it lower-cases string values and
// returns every other kind untouched.
func Lowercase(v Value) Value {
	s, ok := v.AsString()
	if !ok {
		return v
	}
	return Str(strings.ToLower(s))
}

