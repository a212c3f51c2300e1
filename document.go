package ical

import (
	"strings"
)

func (d *Document) componentCount() int {
	return len(d.Events) + len(d.IANAComponents) + len(d.XComponents)
}

// Marshal encodes doc as an iCalendar object. Lines are CRLF-terminated and
// not folded. It fails with a *DocumentError if doc has no PRODID or no
// components, or if any of its content fails to encode; no partial output is
// returned.
func Marshal(doc *Document) (string, error) {
	if doc == nil {
		return "", &DocumentError{Reason: "no document provided"}
	}
	if doc.ProdID == "" {
		return "", &DocumentError{Reason: "no prodId provided"}
	}
	if doc.componentCount() == 0 {
		return "", &DocumentError{Reason: "you must include at least one component"}
	}

	version := doc.Version
	if version == "" {
		version = DefaultVersion
	}
	props := []Property{
		NewProperty("PRODID", Text(doc.ProdID)),
		NewProperty("VERSION", Text(version)),
	}
	if doc.CalScale != "" {
		props = append(props, NewProperty("CALSCALE", Text(doc.CalScale)))
	}
	if doc.Method != "" {
		props = append(props, NewProperty("METHOD", Text(doc.Method)))
	}
	props = append(props, doc.Properties...)

	lines := make([]string, 0, len(props)+1)
	begin, err := EncodeProperty("BEGIN", Raw(CompCalendar))
	if err != nil {
		return "", &DocumentError{Reason: "cannot encode calendar", Err: err}
	}
	lines = append(lines, begin)
	for _, p := range props {
		line, err := p.Encode()
		if err != nil {
			return "", &DocumentError{Reason: "cannot encode calendar property", Err: err}
		}
		lines = append(lines, line)
	}

	var sb strings.Builder
	sb.WriteString(Lines(lines...))
	for _, group := range []struct {
		enc   EncodeFunc[*Component]
		comps []*Component
	}{
		{EventEncoder.Encode, doc.Events},
		{EncodeIANAComponent, doc.IANAComponents},
		{EncodeXComponent, doc.XComponents},
	} {
		block, err := EncodeComponents(group.enc, group.comps)
		if err != nil {
			return "", &DocumentError{Reason: "cannot encode component", Err: err}
		}
		sb.WriteString(block)
	}
	end, err := EncodeProperty("END", Raw(CompCalendar))
	if err != nil {
		return "", &DocumentError{Reason: "cannot encode calendar", Err: err}
	}
	sb.WriteString(Lines(end))
	return sb.String(), nil
}
