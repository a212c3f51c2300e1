package ical

import (
	"regexp"
	"strings"
)

var (
	// x-name = "X-" [vendorid "-"] 1*(ALPHA / DIGIT / "-")
	// vendorid = 3*(ALPHA / DIGIT)
	xNameRegexp = regexp.MustCompile(`^[Xx]-(?:[A-Za-z0-9]{3,}-)?[A-Za-z0-9-]+$`)

	// iana-token = 1*(ALPHA / DIGIT / "-")
	ianaTokenRegexp = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	lettersRegexp   = regexp.MustCompile(`^[A-Za-z]+$`)
)

const (
	grammarXName     = `an x-name ("X-" [vendorid "-"] 1*(ALPHA / DIGIT / "-"))`
	grammarIANAToken = `an iana-token (1*(ALPHA / DIGIT / "-"))`
	grammarName      = "letters, an x-name or an iana-token"
)

func isXName(s string) bool     { return xNameRegexp.MatchString(s) }
func isIANAToken(s string) bool { return ianaTokenRegexp.MatchString(s) }

// ValidateName checks a property or component name and returns it upper-cased.
func ValidateName(name string) (string, error) {
	switch {
	case lettersRegexp.MatchString(name), isXName(name), isIANAToken(name):
		return strings.ToUpper(name), nil
	}
	return "", &NameError{Name: name, Grammar: grammarName}
}

// ValidateXName checks name against the x-name grammar and returns it
// upper-cased.
func ValidateXName(name string) (string, error) {
	if !isXName(name) {
		return "", &NameError{Name: name, Grammar: grammarXName}
	}
	return strings.ToUpper(name), nil
}

// ValidateIANAToken checks name against the iana-token grammar and returns it
// upper-cased.
func ValidateIANAToken(name string) (string, error) {
	if !isIANAToken(name) {
		return "", &NameError{Name: name, Grammar: grammarIANAToken}
	}
	return strings.ToUpper(name), nil
}
