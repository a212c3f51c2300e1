package ical

import (
	"unicode"
)

// Characters from the RFC 5545 formatting conventions (section 2.1).
const (
	CharHTab      = '\t'
	CharLF        = '\n'
	CharCR        = '\r'
	CharDQuote    = '"'
	CharSpace     = ' '
	CharPlus      = '+'
	CharComma     = ','
	CharHyphen    = '-'
	CharPeriod    = '.'
	CharSolidus   = '/'
	CharColon     = ':'
	CharSemicolon = ';'
	CharEqual     = '='
	CharCapitalN  = 'N'
	CharCapitalT  = 'T'
	CharCapitalX  = 'X'
	CharCapitalZ  = 'Z'
	CharBackslash = '\\'
	CharSmallN    = 'n'
)

// Chars maps the semantic character names used by RFC 5545 to their literal
// characters.
var Chars = map[string]string{
	"HTAB":         string(CharHTab),
	"LF":           string(CharLF),
	"CR":           string(CharCR),
	"DQUOTE":       string(CharDQuote),
	"SPACE":        string(CharSpace),
	"PLUS_SIGN":    string(CharPlus),
	"COMMA":        string(CharComma),
	"HYPHEN_MINUS": string(CharHyphen),
	"PERIOD":       string(CharPeriod),
	"SOLIDUS":      string(CharSolidus),
	"COLON":        string(CharColon),
	"SEMICOLON":    string(CharSemicolon),
	"EQUALS":       string(CharEqual),
	"L_CAP_N":      string(CharCapitalN),
	"L_CAP_T":      string(CharCapitalT),
	"L_CAP_X":      string(CharCapitalX),
	"L_CAP_Z":      string(CharCapitalZ),
	"BACKSLASH":    string(CharBackslash),
	"L_SMALL_N":    string(CharSmallN),
}

// isName reports whether r may appear in an iana-token or x-name.
func isName(r rune) bool {
	return r == CharHyphen || isAlpha(r) || isDigit(r)
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isControl reports whether r is a CONTROL character in the RFC sense: any
// control except HTAB.
func isControl(r rune) bool {
	return r != CharHTab && unicode.IsControl(r)
}

// isQSafeChar reports whether r may appear inside a quoted-string.
func isQSafeChar(r rune) bool {
	return !isControl(r) && r != CharDQuote
}

// isSafeChar reports whether r may appear in an unquoted param-text.
func isSafeChar(r rune) bool {
	return isQSafeChar(r) && r != CharSemicolon && r != CharColon && r != CharComma
}

// isValueChar reports whether r may appear in a property value.
func isValueChar(r rune) bool {
	return !isControl(r)
}
