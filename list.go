package ical

import (
	"strings"
)

// An EncodeFunc encodes one semantic value.
type EncodeFunc[T any] func(T) (string, error)

// List lifts enc to encode a sequence of values as a comma-separated list.
func List[T any](enc EncodeFunc[T]) EncodeFunc[[]T] {
	return ListSep(string(CharComma), enc)
}

// ListSep lifts enc to encode a sequence of values, joined with sep. Order is
// preserved and an empty sequence encodes to "".
func ListSep[T any](sep string, enc EncodeFunc[T]) EncodeFunc[[]T] {
	return func(values []T) (string, error) {
		out := make([]string, 0, len(values))
		for _, v := range values {
			s, err := enc(v)
			if err != nil {
				return "", err
			}
			out = append(out, s)
		}
		return strings.Join(out, sep), nil
	}
}

// Values is a multi-valued property value, e.g. EXDATE or CATEGORIES.
type Values []Value

func (vs Values) Encode() (string, error) {
	return List(encodeValue)(vs)
}

func encodeValue(v Value) (string, error) {
	if v == nil {
		return "", invalid("list", "", "list elements cannot be nil")
	}
	return v.Encode()
}
