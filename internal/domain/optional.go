package domain

import "encoding/json"

// Optional is a tri-state JSON field for PATCH requests: absent (Set=false),
// explicit null (Set=true, Valid=false), or a value (Set=true, Valid=true).
// A plain pointer cannot tell "clear this field" apart from "leave it alone",
// which matters for nullable columns like the RSVP message.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value as a nullable pointer: nil when the field is absent
// or explicitly null.
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
