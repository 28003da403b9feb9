package filter

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
	KindObject
)

// Value is a JSON-like literal value with ordered object fields.
// Object field order is significant: it is preserved verbatim in both the
// inline literal and the JSON form, so serialization is deterministic and
// never depends on map iteration order.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	list []Value
	obj  []ObjectField
}

// ObjectField is a single key/value pair of an object Value.
type ObjectField struct {
	Key   string
	Value Value
}

// Null returns the null literal.
func Null() Value { return Value{kind: KindNull} }

// String returns a string literal.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric literal.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool returns a boolean literal.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// List returns a list literal of the given items.
func List(items ...Value) Value { return Value{kind: KindList, list: items} }

// Strings returns a list literal of string items, preserving input order.
func Strings(items []string) Value {
	list := make([]Value, 0, len(items))
	for _, s := range items {
		list = append(list, String(s))
	}
	return Value{kind: KindList, list: list}
}

// Object returns an object literal with the given fields, in order.
func Object(fields ...ObjectField) Value { return Value{kind: KindObject, obj: fields} }

// Kind reports the variant held by the value.
func (v Value) Kind() Kind { return v.kind }

// Literal renders the value in the inline GraphQL argument syntax:
// null, quoted strings, bare numbers and booleans, bracketed lists,
// and brace-delimited objects with unquoted keys.
func (v Value) Literal() string {
	var sb strings.Builder
	v.writeLiteral(&sb)
	return sb.String()
}

func (v Value) writeLiteral(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindString:
		sb.WriteString(strconv.Quote(v.str))
	case KindNumber:
		sb.WriteString(formatNumber(v.num))
	case KindBool:
		if v.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindList:
		sb.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				sb.WriteString(", ")
			}
			item.writeLiteral(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		if len(v.obj) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{ ")
		for i, f := range v.obj {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Key)
			sb.WriteString(": ")
			f.Value.writeLiteral(sb)
		}
		sb.WriteString(" }")
	}
}

// MarshalJSON serializes the value for bound-variable payloads.
// Produces the same structure as Literal, in JSON syntax.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindString:
		quoted, err := json.Marshal(v.str)
		if err != nil {
			return err
		}
		buf.Write(quoted)
	case KindNumber:
		buf.WriteString(formatNumber(v.num))
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindList:
		buf.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, f := range v.obj {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := f.Value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// formatNumber renders integral floats without a fractional part so
// identifier-like numbers round-trip as bare integers.
func formatNumber(n float64) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) && math.Abs(n) < 1e15 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
