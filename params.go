package ical

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// paramEncoder encodes the values of one parameter, without the "NAME=" part.
type paramEncoder func(values []string) (string, error)

// registeredParams holds the property parameters of RFC 5545 section 3.2.
var registeredParams = map[string]paramEncoder{
	"ALTREP":         single(quotedURI),
	"CN":             single(paramValue),
	"CUTYPE":         single(enum("INDIVIDUAL", "GROUP", "RESOURCE", "ROOM", "UNKNOWN")),
	"DELEGATED-FROM": list(quotedCalAddress),
	"DELEGATED-TO":   list(quotedCalAddress),
	"DIR":            single(quotedURI),
	"ENCODING":       single(closedEnum("8BIT", "BASE64")),
	"FMTTYPE":        single(formatType),
	"FBTYPE":         single(enum("FREE", "BUSY", "BUSY-UNAVAILABLE", "BUSY-TENTATIVE")),
	"LANGUAGE":       single(languageTag),
	"MEMBER":         list(quotedCalAddress),
	"PARTSTAT":       single(enum("NEEDS-ACTION", "ACCEPTED", "DECLINED", "TENTATIVE", "DELEGATED", "COMPLETED", "IN-PROCESS")),
	"RANGE":          single(closedEnum("THISANDFUTURE")),
	"RELATED":        single(closedEnum("START", "END")),
	"RELTYPE":        single(enum("PARENT", "CHILD", "SIBLING")),
	"ROLE":           single(enum("CHAIR", "REQ-PARTICIPANT", "OPT-PARTICIPANT", "NON-PARTICIPANT")),
	"RSVP":           single(closedEnum("TRUE", "FALSE")),
	"SENT-BY":        single(quotedCalAddress),
	"TZID":           single(tzid),
	"VALUE":          single(enum(valueTypes...)),
}

// valueTypes are the value data types of RFC 5545 section 3.3.
var valueTypes = []string{
	"BINARY", "BOOLEAN", "CAL-ADDRESS", "DATE", "DATE-TIME", "DURATION", "FLOAT",
	"INTEGER", "PERIOD", "RECUR", "TEXT", "TIME", "URI", "UTC-OFFSET",
}

// extensionParam encodes x-param and iana-param values.
var extensionParam = list(paramValue)

// resolveParam picks the encoder for a parameter name: a registered
// parameter, then an x-name, then an iana-token.
func resolveParam(name string) (string, paramEncoder, error) {
	upper := strings.ToUpper(name)
	if enc, ok := registeredParams[upper]; ok {
		return upper, enc, nil
	}
	if isXName(name) {
		return upper, extensionParam, nil
	}
	if isIANAToken(name) {
		return upper, extensionParam, nil
	}
	return "", nil, &ParameterError{Name: name}
}

// EncodeParams encodes params in order as ";NAME=VALUE" pairs. No parameters
// encode to "".
func EncodeParams(params []Param) (string, error) {
	var sb strings.Builder
	for _, p := range params {
		name, enc, err := resolveParam(p.Name)
		if err != nil {
			return "", err
		}
		v, err := enc(p.Values)
		if err != nil {
			return "", &ParameterError{Name: name, Err: err}
		}
		sb.WriteByte(CharSemicolon)
		sb.WriteString(name)
		sb.WriteByte(CharEqual)
		sb.WriteString(v)
	}
	return sb.String(), nil
}

func single(enc func(string) (string, error)) paramEncoder {
	return func(values []string) (string, error) {
		if len(values) != 1 {
			return "", invalid("parameter", strings.Join(values, ","), fmt.Sprintf("expected exactly one value, got %d", len(values)))
		}
		return enc(values[0])
	}
}

func list(enc func(string) (string, error)) paramEncoder {
	lifted := List(EncodeFunc[string](enc))
	return func(values []string) (string, error) {
		if len(values) == 0 {
			return "", invalid("parameter", "", "expected at least one value")
		}
		return lifted(values)
	}
}

// paramValue encodes a param-value, quoting it when it contains a colon,
// semicolon or comma.
func paramValue(v string) (string, error) {
	if !utf8.ValidString(v) {
		return "", invalid("parameter", v, "parameter values must be valid UTF-8")
	}
	for _, r := range v {
		if !isQSafeChar(r) {
			return "", invalid("parameter", v, "parameter values cannot contain double quotes or control characters")
		}
	}
	if strings.ContainsAny(v, ":;,") {
		return quote(v), nil
	}
	return v, nil
}

func quote(v string) string {
	return string(CharDQuote) + v + string(CharDQuote)
}

func quotedURI(v string) (string, error) {
	u, err := EncodeURI(URI(v))
	if err != nil {
		return "", err
	}
	return quote(u), nil
}

func quotedCalAddress(v string) (string, error) {
	a, err := EncodeCalAddress(CalAddress(v))
	if err != nil {
		return "", err
	}
	return quote(a), nil
}

// enum accepts one of the listed values, an x-name or an iana-token.
func enum(allowed ...string) func(string) (string, error) {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(v string) (string, error) {
		upper := strings.ToUpper(v)
		if _, ok := set[upper]; ok || isXName(v) || isIANAToken(v) {
			return upper, nil
		}
		return "", invalid("parameter", v, "expected one of "+strings.Join(allowed, ", ")+", an x-name or an iana-token")
	}
}

// closedEnum accepts only the listed values.
func closedEnum(allowed ...string) func(string) (string, error) {
	return func(v string) (string, error) {
		upper := strings.ToUpper(v)
		for _, a := range allowed {
			if upper == a {
				return upper, nil
			}
		}
		return "", invalid("parameter", v, "expected one of "+strings.Join(allowed, ", "))
	}
}

// type-name "/" subtype-name, RFC 4288 section 4.2
var formatTypeRegexp = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9!#$&.+^_-]*/[A-Za-z0-9][A-Za-z0-9!#$&.+^_-]*$`)

func formatType(v string) (string, error) {
	if !formatTypeRegexp.MatchString(v) {
		return "", invalid("FMTTYPE", v, "expected a media type such as text/plain")
	}
	return v, nil
}

func languageTag(v string) (string, error) {
	tag, err := language.Parse(v)
	if err != nil {
		return "", invalid("LANGUAGE", v, err.Error())
	}
	return tag.String(), nil
}

// tzid = [tzidprefix] paramtext
func tzid(v string) (string, error) {
	text := strings.TrimPrefix(v, string(CharSolidus))
	if text == "" {
		return "", invalid("TZID", v, "time zone identifier is empty")
	}
	for _, r := range text {
		if !isSafeChar(r) {
			return "", invalid("TZID", v, fmt.Sprintf("character %q is not allowed", r))
		}
	}
	return v, nil
}
