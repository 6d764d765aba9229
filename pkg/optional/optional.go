// Package optional distinguishes a field that was omitted from one that was
// explicitly supplied, which plain Go zero values cannot express.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value holds a T that may be absent, explicitly null, or set.
type Value[T any] struct {
	value   T
	present bool
	null    bool
}

// Of returns a present, non-null Value.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// Null returns a present Value carrying an explicit null.
func Null[T any]() Value[T] {
	return Value[T]{present: true, null: true}
}

// Present reports whether the field was supplied at all.
func (v Value[T]) Present() bool {
	return v.present
}

// IsNull reports whether the field was supplied as an explicit null.
func (v Value[T]) IsNull() bool {
	return v.present && v.null
}

// Get returns the value and whether a non-null value was supplied.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.present && !v.null
}

// Apply writes the value into dst when a non-null value was supplied.
func (v Value[T]) Apply(dst *T) bool {
	if val, ok := v.Get(); ok {
		*dst = val
		return true
	}
	return false
}

// UnmarshalJSON is only invoked for keys present in the document.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		v.value = zero
		v.null = true
		return nil
	}
	v.null = false
	return json.Unmarshal(data, &v.value)
}

// MarshalJSON renders absent and null values as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if val, ok := v.Get(); ok {
		return json.Marshal(val)
	}
	return []byte("null"), nil
}
