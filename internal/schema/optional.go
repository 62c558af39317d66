package schema

import "encoding/json"

// Optional is a three-state field for Update and Query schemas: unset,
// explicitly null, or set to a value. Update semantics depend on the
// distinction (an absent field means "leave unchanged" while a null field
// means "clear"), so the two states must never collapse into one.
//
// The zero value is the unset state, which is what encoding/json leaves
// behind for keys absent from the payload. Declare fields with the
// `omitzero` option so unset fields stay absent when re-encoded.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// OptionalOf returns an Optional set to v.
func OptionalOf[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// OptionalNull returns an Optional explicitly set to null.
func OptionalNull[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsSet reports whether the field was present in the payload, whether null
// or a value.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// IsNull reports whether the field was explicitly null.
func (o Optional[T]) IsNull() bool {
	return o.set && o.null
}

// Value returns the field's value and whether one is present. It returns
// ok == false for both the unset and the null state.
func (o Optional[T]) Value() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// IsZero reports the unset state, letting `json:",omitzero"` drop unset
// fields on encode.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

// UnmarshalJSON is only invoked for keys present in the payload, so the
// unset state survives decoding untouched.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}

// MarshalJSON encodes the value, or null for the null and unset states.
// Unset fields are normally dropped before this runs via omitzero.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
