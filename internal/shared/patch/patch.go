// Package patch carries partial-update fields that remember whether the
// client actually sent them.
package patch

import (
	"bytes"
	"encoding/json"
)

// Field is absent until it is decoded from a payload that names it. A JSON
// null yields a present field with Null set.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of builds a present, non-null field.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// NullOf builds a present field carrying an explicit null.
func NullOf[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Ptr returns nil for an absent or null field.
func (f Field[T]) Ptr() *T {
	if !f.Set || f.Null {
		return nil
	}
	v := f.Value
	return &v
}

// HasValue reports a present, non-null field.
func (f Field[T]) HasValue() bool {
	return f.Set && !f.Null
}

// ApplyOptional writes the field into an optional target: a value is stored,
// a null clears it, absence leaves it untouched.
func ApplyOptional[T any](f Field[T], dst **T) {
	if !f.Set {
		return
	}
	*dst = f.Ptr()
}

// ApplyRequired writes a present value into a required target; absence and
// null both leave it untouched.
func ApplyRequired[T any](f Field[T], dst *T) {
	if f.HasValue() {
		*dst = f.Value
	}
}
