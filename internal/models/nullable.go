package models

import (
	"bytes"
	"encoding/json"
)

// Nullable distinguishes the three states a merge-payload field can be in:
// absent, explicit null, and present with a value. A plain pointer field
// cannot tell the first two apart after unmarshalling, so update fields
// that support null-to-clear use this instead.
type Nullable[T any] struct {
	Set   bool // field was present in the payload
	Valid bool // value was non-null
	Value T
}

// UnmarshalJSON records presence. It is only invoked for fields that
// appear in the payload, so a zero Nullable means the field was omitted.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Ptr returns the value as a pointer, nil for an explicit null.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
