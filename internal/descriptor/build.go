package descriptor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	ical "github.com/luxifer/icalgen"
)

// Options control how a File becomes a document.
type Options struct {
	// ProdID is used when the file does not set one.
	ProdID string
	// GenerateUID gives events without a UID a random one.
	GenerateUID bool
}

// Document builds the ical document described by f. It only converts
// values; the grammar checks happen when the document is encoded.
func (f *File) Document(opts Options) (*ical.Document, error) {
	prodID := f.ProdID
	if prodID == "" {
		prodID = opts.ProdID
	}
	doc := ical.NewDocument(prodID)
	if f.Version != "" {
		doc.Version = f.Version
	}
	doc.CalScale = f.CalScale
	doc.Method = f.Method

	props, err := properties(f.Properties)
	if err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}
	doc.Properties = props

	for i, e := range f.Events {
		if e.Name != "" && !strings.EqualFold(e.Name, ical.CompEvent) {
			return nil, fmt.Errorf("events[%d]: %s component listed as an event", i, e.Name)
		}
		e.Name = ical.CompEvent
		event, err := e.component()
		if err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}
		if opts.GenerateUID && event.Count("UID") == 0 {
			uid := ical.NewProperty("UID", ical.Text(uuid.NewString()))
			event.Properties = append([]ical.Property{uid}, event.Properties...)
		}
		doc.Events = append(doc.Events, event)
	}

	for i, c := range f.Components {
		if strings.EqualFold(c.Name, ical.CompEvent) {
			return nil, fmt.Errorf("components[%d]: events belong in the events list", i)
		}
		comp, err := c.component()
		if err != nil {
			return nil, fmt.Errorf("components[%d]: %w", i, err)
		}
		if _, err := ical.ValidateXName(comp.Name); err == nil {
			doc.XComponents = append(doc.XComponents, comp)
		} else {
			doc.IANAComponents = append(doc.IANAComponents, comp)
		}
	}
	return doc, nil
}

func (c Component) component() (*ical.Component, error) {
	if c.Name == "" {
		return nil, errors.New("component has no name")
	}
	props, err := properties(c.Properties)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}
	comp := ical.NewComponent(c.Name, props...)
	for _, child := range c.Components {
		sub, err := child.component()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		comp.AddComponent(sub)
	}
	return comp, nil
}

func properties(ps []Property) ([]ical.Property, error) {
	out := make([]ical.Property, 0, len(ps))
	for _, p := range ps {
		prop, err := p.property()
		if err != nil {
			return nil, err
		}
		out = append(out, prop)
	}
	return out, nil
}

func (p Property) property() (ical.Property, error) {
	if p.Name == "" {
		return ical.Property{}, errors.New("property has no name")
	}
	value, err := p.value()
	if err != nil {
		return ical.Property{}, fmt.Errorf("property %s: %w", p.Name, err)
	}
	params := make([]ical.Param, 0, len(p.Params))
	for _, param := range p.Params {
		if param.Value != "" && len(param.Values) > 0 {
			return ical.Property{}, fmt.Errorf("property %s: parameter %s sets both value and values", p.Name, param.Name)
		}
		values := param.Values
		if param.Value != "" {
			values = []string{param.Value}
		}
		params = append(params, ical.NewParam(param.Name, values...))
	}
	return ical.NewProperty(p.Name, value, params...), nil
}

func (p Property) value() (ical.Value, error) {
	parse, err := parserFor(p.Type)
	if err != nil {
		return nil, err
	}
	if len(p.Values) == 0 {
		v, err := parse(p.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", p.typeName(), p.Value, err)
		}
		return v, nil
	}

	if p.Value != "" {
		return nil, errors.New("sets both value and values")
	}
	values := make(ical.Values, 0, len(p.Values))
	for _, s := range p.Values {
		v, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", p.typeName(), s, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func (p Property) typeName() string {
	if p.Type == "" {
		return TypeText
	}
	return strings.ToLower(p.Type)
}
