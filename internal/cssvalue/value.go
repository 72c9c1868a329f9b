// Package cssvalue models the edit-time value of a control: either a bare
// scalar or a structured mapping whose shape depends on the control type.
package cssvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is implemented by Scalar and Structured.
type Value interface {
	isValue()
}

// Scalar is a plain string value such as a color or a length.
type Scalar string

func (Scalar) isValue() {}

// Structured is a nested key/value value. Leaves are strings, numbers,
// booleans, nested Structured maps or lists of them.
type Structured map[string]any

func (Structured) isValue() {}

// Has reports whether key is present, even when its value is empty.
func (s Structured) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// String returns the field stringified. Missing and nil fields are empty.
func (s Structured) String(key string) string {
	v, ok := s[key]
	if !ok {
		return ""
	}
	return Stringify(v)
}

// StringOr returns the field or fallback when the field is missing or nil.
// A present empty string is returned as is.
func (s Structured) StringOr(key, fallback string) string {
	v, ok := s[key]
	if !ok || v == nil {
		return fallback
	}
	return Stringify(v)
}

// Bool accepts a boolean true or the strings "true" and "1".
func (s Structured) Bool(key string) bool {
	switch v := s[key].(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1"
	case float64:
		return v == 1
	case int:
		return v == 1
	default:
		return false
	}
}

// Int returns the field as an integer or fallback when it is not numeric.
func (s Structured) Int(key string, fallback int) int {
	switch v := s[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return fallback
		}
		return n
	default:
		return fallback
	}
}

// Object returns a nested structure. Missing or non-map fields yield nil.
func (s Structured) Object(key string) Structured {
	return asStructured(s[key])
}

// Objects returns a list of nested structures, skipping non-map entries.
func (s Structured) Objects(key string) []Structured {
	var items []any
	switch v := s[key].(type) {
	case []any:
		items = v
	case []Structured:
		return v
	case []map[string]any:
		out := make([]Structured, 0, len(v))
		for _, item := range v {
			out = append(out, Structured(item))
		}
		return out
	default:
		return nil
	}

	out := make([]Structured, 0, len(items))
	for _, item := range items {
		if obj := asStructured(item); obj != nil {
			out = append(out, obj)
		}
	}
	return out
}

func asStructured(v any) Structured {
	switch m := v.(type) {
	case Structured:
		return m
	case map[string]any:
		return Structured(m)
	default:
		return nil
	}
}

// Stringify renders a leaf the way it would appear inside CSS text.
// Whole floats lose their fraction, true becomes "1" and false or nil become empty.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case Scalar:
		return string(t)
	case bool:
		if t {
			return "1"
		}
		return ""
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// From wraps a loosely typed Go value. Strings and numbers become Scalar,
// maps become Structured and nil yields nil.
func From(v any) Value {
	switch t := v.(type) {
	case nil:
		return nil
	case Value:
		return t
	case map[string]any:
		return Structured(t)
	case bool:
		return Scalar(strconv.FormatBool(t))
	default:
		return Scalar(Stringify(t))
	}
}

// Decode parses a JSON document into a Value. JSON null yields nil.
func Decode(data []byte) (Value, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode control value: %w", err)
	}
	if _, isList := raw.([]any); isList {
		return nil, fmt.Errorf("decode control value: expected object or scalar, got array")
	}
	return From(raw), nil
}
