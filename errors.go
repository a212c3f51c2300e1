package ical

import (
	"fmt"
)

// A NameError reports a property, parameter or component name that violates
// its grammar.
type NameError struct {
	Name    string
	Grammar string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("ical: invalid name %q, must be %s", e.Name, e.Grammar)
}

// A ValidationError reports a value that does not satisfy the grammar of its
// value type.
type ValidationError struct {
	Type   string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ical: invalid %s value %q: %s", e.Type, e.Value, e.Reason)
}

// A ParameterError reports a parameter that could not be encoded: either its
// name matches no registered parameter and no naming grammar, or its value
// was rejected.
type ParameterError struct {
	Name string
	Err  error
}

func (e *ParameterError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("ical: invalid property parameter name %q", e.Name)
	}
	return fmt.Sprintf("ical: parameter %s: %v", e.Name, e.Err)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

// A PropertyError reports a content line that is missing its name or value,
// or whose parts failed to encode.
type PropertyError struct {
	Name string
	Err  error
}

func (e *PropertyError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("ical: property %q: content name or value was not provided", e.Name)
	}
	return fmt.Sprintf("ical: property %s: %v", e.Name, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

// A ComponentError reports a component rejected by one of its structural
// validators, or one whose content failed to encode.
type ComponentError struct {
	Name string
	Err  error
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("ical: invalid content provided for component %q: %v", e.Name, e.Err)
}

func (e *ComponentError) Unwrap() error {
	return e.Err
}

// A DocumentError reports a calendar object that lacks a PRODID, has no
// components, or whose content failed to encode.
type DocumentError struct {
	Reason string
	Err    error
}

func (e *DocumentError) Error() string {
	if e.Err == nil {
		return "ical: " + e.Reason
	}
	return fmt.Sprintf("ical: %s: %v", e.Reason, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

func invalid(typ, value, reason string) error {
	return &ValidationError{Type: typ, Value: value, Reason: reason}
}
