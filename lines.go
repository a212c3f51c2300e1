package ical

import (
	"strings"
	"unicode/utf8"
)

// CRLF terminates every content line.
const CRLF = "\r\n"

// maxLineOctets is the folding limit from RFC 5545 section 3.1, excluding
// the line break.
const maxLineOctets = 75

// Lines joins lines into a block of text, terminating each one with CRLF.
// Empty lines are skipped, so callers can pass optional lines as "".
//
//	Lines("foo")            // "foo\r\n"
//	Lines("foo", "", "bar") // "foo\r\nbar\r\n"
//	Lines()                 // ""
func Lines(lines ...string) string {
	var sb strings.Builder
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		sb.WriteString(ln)
		sb.WriteString(CRLF)
	}
	return sb.String()
}

// Fold splits a single unterminated content line into physical lines of at
// most 75 octets. Continuation lines start with a space. A UTF-8 sequence is
// never split. The returned text has no trailing CRLF.
func Fold(line string) string {
	if len(line) <= maxLineOctets {
		return line
	}

	var sb strings.Builder
	limit := maxLineOctets
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		if cut == 0 {
			// no rune start in the window, so the bytes are not UTF-8
			cut = limit
		}
		sb.WriteString(line[:cut])
		sb.WriteString(CRLF)
		sb.WriteByte(CharSpace)
		line = line[cut:]
		// the leading space counts against the limit
		limit = maxLineOctets - 1
	}
	sb.WriteString(line)
	return sb.String()
}

// splitLines is the inverse of Lines for text produced by this package.
func splitLines(block string) []string {
	block = strings.TrimSuffix(block, CRLF)
	if block == "" {
		return nil
	}
	return strings.Split(block, CRLF)
}
