package ical

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

type genericKind int

const (
	genericMap genericKind = iota
	genericBool
	genericNumber
	genericString
)

// A Generic is a structured value built from booleans, numbers, strings and
// nested maps. The zero Generic is an empty map.
type Generic struct {
	kind    genericKind
	b       bool
	n       float64
	s       string
	members []GenericMember
}

// A GenericMember is one KEY=VALUE entry of a Generic map.
type GenericMember struct {
	Key   string
	Value Generic
}

// GenericBool returns a boolean Generic.
func GenericBool(b bool) Generic { return Generic{kind: genericBool, b: b} }

// GenericNumber returns a numeric Generic.
func GenericNumber(n float64) Generic { return Generic{kind: genericNumber, n: n} }

// GenericString returns a string Generic.
func GenericString(s string) Generic { return Generic{kind: genericString, s: s} }

// GenericMap returns a map Generic whose members encode in the given order.
func GenericMap(members ...GenericMember) Generic {
	return Generic{kind: genericMap, members: members}
}

// M is shorthand for a GenericMember.
func M(key string, value Generic) GenericMember {
	return GenericMember{Key: key, Value: value}
}

func (g Generic) Encode() (string, error) { return EncodeGeneric(g) }

// EncodeGeneric renders g. Booleans become TRUE/FALSE, numbers their decimal
// form, strings are upper-cased, and every map member becomes ";KEY=VALUE"
// with nested maps encoded recursively. Map keys must be iana-tokens and
// strings cannot contain control characters, DQUOTE, ";", ":" or "=".
//
//	EncodeGeneric(GenericMap(M("freq", GenericString("daily")), M("count", GenericNumber(3))))
//	// ";FREQ=DAILY;COUNT=3"
func EncodeGeneric(g Generic) (string, error) {
	switch g.kind {
	case genericBool:
		return EncodeBoolean(g.b)
	case genericNumber:
		if math.IsNaN(g.n) || math.IsInf(g.n, 0) {
			return "", invalid("structured", fmt.Sprint(g.n), "not a finite number")
		}
		return strconv.FormatFloat(g.n, 'f', -1, 64), nil
	case genericString:
		if err := checkGenericString(g.s); err != nil {
			return "", err
		}
		return strings.ToUpper(g.s), nil
	case genericMap:
		var sb strings.Builder
		for _, m := range g.members {
			if !isIANAToken(m.Key) {
				return "", invalid("structured", m.Key, "map keys must be iana-tokens")
			}
			v, err := EncodeGeneric(m.Value)
			if err != nil {
				return "", err
			}
			sb.WriteByte(CharSemicolon)
			sb.WriteString(strings.ToUpper(m.Key))
			sb.WriteByte(CharEqual)
			sb.WriteString(v)
		}
		return sb.String(), nil
	}
	panic(fmt.Sprintf("ical: unknown generic kind %d", g.kind))
}

// checkGenericString rejects strings that would break out of a KEY=VALUE
// member or the content line. Commas are kept for list values.
func checkGenericString(s string) error {
	if !utf8.ValidString(s) {
		return invalid("structured", s, "strings must be valid UTF-8")
	}
	for _, r := range s {
		switch {
		case isControl(r):
			return invalid("structured", s, fmt.Sprintf("control character %U is not allowed", r))
		case r == CharDQuote, r == CharSemicolon, r == CharColon, r == CharEqual:
			return invalid("structured", s, fmt.Sprintf("character %q is not allowed", r))
		}
	}
	return nil
}
