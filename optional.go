package validation

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
)

// Optional is a value that may or may not be present.
// Its zero value is None. A nil *Optional stands for a missing container,
// which IsPresent reports separately from an empty one.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// OptionalOf returns None for a nil pointer and Some(*v) otherwise.
func OptionalOf[T any](v *T) Optional[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the value, or def when empty.
func (o Optional[T]) OrElse(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

// MarshalJSON encodes None as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Join(ErrInvalidOptional, err)
	}
	*o = Some(v)
	return nil
}

// UnmarshalText lets query and form binders fill an Optional.
// Strings are taken verbatim; other types go through their own
// UnmarshalText or, failing that, JSON decoding of the raw text.
func (o *Optional[T]) UnmarshalText(text []byte) error {
	var v T
	switch p := any(&v).(type) {
	case *string:
		*p = string(text)
	case encoding.TextUnmarshaler:
		if err := p.UnmarshalText(text); err != nil {
			return errors.Join(ErrInvalidOptional, err)
		}
	default:
		if err := json.Unmarshal(text, &v); err != nil {
			return errors.Join(ErrInvalidOptional, err)
		}
	}
	*o = Some(v)
	return nil
}
