package ical

import (
	"fmt"
	"strings"
)

// Add appends a property and returns c.
func (c *Component) Add(name string, value Value, params ...Param) *Component {
	c.Properties = append(c.Properties, NewProperty(name, value, params...))
	return c
}

// AddComponent appends nested components and returns c.
func (c *Component) AddComponent(children ...*Component) *Component {
	c.Components = append(c.Components, children...)
	return c
}

// Count returns how many properties named name c has. Names are compared
// case-insensitively.
func (c *Component) Count(name string) int {
	n := 0
	for _, p := range c.Properties {
		if strings.EqualFold(p.Name, name) {
			n++
		}
	}
	return n
}

// A Validator checks the structure of a component before it is encoded.
type Validator func(c *Component) error

// RequireProperties rejects components missing any of the named properties.
func RequireProperties(names ...string) Validator {
	return func(c *Component) error {
		for _, name := range names {
			if c.Count(name) == 0 {
				return fmt.Errorf("missing required property %s", name)
			}
		}
		return nil
	}
}

// SingleProperties rejects components where any of the named properties
// occurs more than once.
func SingleProperties(names ...string) Validator {
	return func(c *Component) error {
		for _, name := range names {
			if c.Count(name) > 1 {
				return fmt.Errorf("property %s must not occur more than once", name)
			}
		}
		return nil
	}
}

// MutuallyExclusive rejects components that have both properties a and b.
func MutuallyExclusive(a, b string) Validator {
	return func(c *Component) error {
		if c.Count(a) > 0 && c.Count(b) > 0 {
			return fmt.Errorf("properties %s and %s cannot occur together", a, b)
		}
		return nil
	}
}

// A ComponentEncoder encodes components with a fixed name.
type ComponentEncoder struct {
	name       string
	validators []Validator
}

// NewComponentEncoder creates an encoder for components called name. The
// validators run, in order, before anything is emitted.
func NewComponentEncoder(name string, validators ...Validator) *ComponentEncoder {
	return &ComponentEncoder{name: name, validators: validators}
}

// Name returns the component name the encoder emits.
func (e *ComponentEncoder) Name() string {
	return strings.ToUpper(e.name)
}

var (
	// EventEncoder encodes VEVENT components (RFC 5545 section 3.6.1).
	EventEncoder = NewComponentEncoder(CompEvent,
		RequireProperties("UID", "DTSTAMP"),
		SingleProperties("UID", "DTSTAMP", "DTSTART", "CLASS", "CREATED", "DESCRIPTION", "GEO",
			"LAST-MODIFIED", "LOCATION", "ORGANIZER", "PRIORITY", "SEQUENCE", "STATUS", "SUMMARY",
			"TRANSP", "URL", "RECURRENCE-ID", "DTEND", "DURATION"),
		MutuallyExclusive("DTEND", "DURATION"),
	)

	// AlarmEncoder encodes VALARM components (RFC 5545 section 3.6.6).
	AlarmEncoder = NewComponentEncoder(CompAlarm,
		RequireProperties("ACTION", "TRIGGER"),
		SingleProperties("ACTION", "TRIGGER", "DURATION", "REPEAT"),
	)
)

// Encode returns the CRLF-terminated block for c. It fails with a
// *ComponentError if a validator rejects c or any of its content fails to
// encode.
func (e *ComponentEncoder) Encode(c *Component) (string, error) {
	name, err := ValidateName(e.name)
	if err != nil {
		return "", &ComponentError{Name: e.name, Err: err}
	}
	if c == nil {
		return "", &ComponentError{Name: name, Err: fmt.Errorf("component is nil")}
	}
	if c.Name != "" && !strings.EqualFold(c.Name, name) {
		return "", &ComponentError{Name: name, Err: fmt.Errorf("got a %s component", c.Name)}
	}
	for _, validate := range e.validators {
		if err := validate(c); err != nil {
			return "", &ComponentError{Name: name, Err: err}
		}
	}

	lines := make([]string, 0, len(c.Properties)+1)
	begin, err := EncodeProperty("BEGIN", Raw(name))
	if err != nil {
		return "", &ComponentError{Name: name, Err: err}
	}
	lines = append(lines, begin)
	for _, p := range c.Properties {
		line, err := p.Encode()
		if err != nil {
			return "", &ComponentError{Name: name, Err: err}
		}
		lines = append(lines, line)
	}

	var sb strings.Builder
	sb.WriteString(Lines(lines...))
	for _, child := range c.Components {
		block, err := EncodeComponent(child)
		if err != nil {
			return "", &ComponentError{Name: name, Err: err}
		}
		sb.WriteString(block)
	}
	end, err := EncodeProperty("END", Raw(name))
	if err != nil {
		return "", &ComponentError{Name: name, Err: err}
	}
	sb.WriteString(Lines(end))
	return sb.String(), nil
}

// knownComponents maps component names to the encoder that validates them.
var knownComponents = map[string]*ComponentEncoder{
	CompEvent: EventEncoder,
	CompAlarm: AlarmEncoder,
}

// EncodeComponent encodes c with the encoder registered for its name. Other
// names must be x-names or iana-tokens and are encoded without structural
// validation.
func EncodeComponent(c *Component) (string, error) {
	if c == nil {
		return "", &ComponentError{Err: fmt.Errorf("component is nil")}
	}
	if enc, ok := knownComponents[strings.ToUpper(c.Name)]; ok {
		return enc.Encode(c)
	}
	if isXName(c.Name) {
		return EncodeXComponent(c)
	}
	return EncodeIANAComponent(c)
}

// EncodeIANAComponent encodes a component whose name must be an iana-token.
func EncodeIANAComponent(c *Component) (string, error) {
	if c == nil {
		return "", &ComponentError{Err: fmt.Errorf("component is nil")}
	}
	name, err := ValidateIANAToken(c.Name)
	if err != nil {
		return "", &ComponentError{Name: c.Name, Err: err}
	}
	return NewComponentEncoder(name).Encode(c)
}

// EncodeXComponent encodes a vendor component whose name must be an x-name.
func EncodeXComponent(c *Component) (string, error) {
	if c == nil {
		return "", &ComponentError{Err: fmt.Errorf("component is nil")}
	}
	name, err := ValidateXName(c.Name)
	if err != nil {
		return "", &ComponentError{Name: c.Name, Err: err}
	}
	return NewComponentEncoder(name).Encode(c)
}

// EncodeComponents lifts enc over a sequence of components, concatenating
// the blocks.
func EncodeComponents(enc EncodeFunc[*Component], comps []*Component) (string, error) {
	return ListSep("", enc)(comps)
}
