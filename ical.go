// Package ical implements an iCalendar encoder.
//
// iCalendar is defined in RFC 5545. The package turns typed descriptors
// (Document, Component, Property, Param and the Value types) into content
// lines that follow the RFC grammar. It does not parse iCalendar text, expand
// recurrence rules or look up time zones.
//
// Every encoder is a pure function of its input, so documents can be encoded
// from several goroutines at once.
package ical

// Component names.
const (
	CompCalendar = "VCALENDAR"
	CompEvent    = "VEVENT"
	CompAlarm    = "VALARM"
)

// DefaultVersion is the VERSION emitted when a Document does not set one.
const DefaultVersion = "2.0"

// A Document represents the whole iCalendar object
type Document struct {
	// ProdID is required.
	ProdID   string
	Version  string
	CalScale string
	Method   string

	// Properties holds any other calendar properties, emitted after METHOD.
	Properties []Property

	Events         []*Component
	IANAComponents []*Component
	XComponents    []*Component
}

// A Component represents a BEGIN:NAME ... END:NAME block. Properties and
// nested components are emitted in slice order.
type Component struct {
	Name       string
	Properties []Property
	Components []*Component
}

// A Property represents a named, optionally parameterized value
type Property struct {
	Name   string
	Params []Param
	Value  Value
}

// A Param represents a property parameter. Most parameters take a single
// value; DELEGATED-FROM, DELEGATED-TO, MEMBER and unregistered parameters take
// a list.
type Param struct {
	Name   string
	Values []string
}

// NewDocument creates a Document with the given product identifier
func NewDocument(prodID string) *Document {
	return &Document{ProdID: prodID, Version: DefaultVersion}
}

// NewComponent creates a Component
func NewComponent(name string, props ...Property) *Component {
	return &Component{Name: name, Properties: props}
}

// NewEvent creates a VEVENT Component
func NewEvent(props ...Property) *Component {
	return NewComponent(CompEvent, props...)
}

// NewAlarm creates a VALARM Component
func NewAlarm(props ...Property) *Component {
	return NewComponent(CompAlarm, props...)
}

// NewProperty creates a Property
func NewProperty(name string, value Value, params ...Param) Property {
	return Property{Name: name, Params: params, Value: value}
}

// NewParam creates a Param
func NewParam(name string, values ...string) Param {
	return Param{Name: name, Values: values}
}
