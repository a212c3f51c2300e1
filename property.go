package ical

import (
	"strings"
)

// Encode returns the content line of p, without a line terminator.
func (p Property) Encode() (string, error) {
	return EncodeProperty(p.Name, p.Value, p.Params...)
}

// EncodeProperty assembles one content line:
//
//	contentline = name *(";" param ) ":" value
//
// The line terminator is not included. It fails with a *PropertyError when
// the name is empty or the value is nil or encodes to nothing.
func EncodeProperty(name string, value Value, params ...Param) (string, error) {
	if name == "" || value == nil {
		return "", &PropertyError{Name: name}
	}

	encodedParams, err := EncodeParams(params)
	if err != nil {
		return "", &PropertyError{Name: name, Err: err}
	}
	upper, err := ValidateName(name)
	if err != nil {
		return "", &PropertyError{Name: name, Err: err}
	}
	v, err := value.Encode()
	if err != nil {
		return "", &PropertyError{Name: upper, Err: err}
	}
	if v == "" {
		return "", &PropertyError{Name: upper}
	}

	var sb strings.Builder
	sb.Grow(len(upper) + len(encodedParams) + len(v) + 1)
	sb.WriteString(upper)
	sb.WriteString(encodedParams)
	sb.WriteByte(CharColon)
	sb.WriteString(v)
	return sb.String(), nil
}
