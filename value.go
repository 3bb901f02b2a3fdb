package dynaql

import (
	"fmt"
	"strconv"
)

// ValueKind identifies the variant held by a Value.
type ValueKind int

const (
	KindText    ValueKind = iota // quoted string literal
	KindInteger                  // 32-bit integer
	KindFloat                    // 64-bit floating point
	KindLong                     // 64-bit integer
	KindOther                    // anything else, rendered with fmt.Sprint
)

func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindLong:
		return "long"
	default:
		return "other"
	}
}

// Value is a scalar compared against an attribute. Use Text, Int, Float, Long
// or Other to construct one; the zero Value is an empty Text.
type Value struct {
	kind  ValueKind
	text  string
	num   int64
	float float64
	other any
}

// Text returns a string value, rendered in single quotes.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Int returns an integer value.
func Int(i int32) Value { return Value{kind: KindInteger, num: int64(i)} }

// Long returns a long integer value.
func Long(i int64) Value { return Value{kind: KindLong, num: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, float: f} }

// Other returns a value rendered with its default textual form. No validation
// takes place; the caller is responsible for v producing a safe literal.
func Other(v any) Value { return Value{kind: KindOther, other: v} }

// ValueOf picks the Value variant for a Go value. Strings become Text, int32
// and smaller integers become Int, int and int64 become Long, floats become
// Float. Everything else becomes Other.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case string:
		return Text(x)
	case int8:
		return Int(int32(x))
	case int16:
		return Int(int32(x))
	case int32:
		return Int(x)
	case uint8:
		return Int(int32(x))
	case uint16:
		return Int(int32(x))
	case int:
		return Long(int64(x))
	case int64:
		return Long(x)
	case uint32:
		return Long(int64(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	default:
		return Other(v)
	}
}

// Kind reports the variant held by v.
func (v Value) Kind() ValueKind { return v.kind }

// Literal renders v as a SQL literal. Text values are wrapped in single
// quotes; embedded quotes are not escaped.
func (v Value) Literal() string {
	switch v.kind {
	case KindText:
		return "'" + v.text + "'"
	case KindInteger, KindLong:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.float, 'f', -1, 64)
	default:
		return fmt.Sprint(v.other)
	}
}

// String implements fmt.Stringer and returns the literal form.
func (v Value) String() string { return v.Literal() }
