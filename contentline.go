package ical

import (
	"fmt"
	"unicode/utf8"
)

const eof = -1

// stateFn represents the state of the checker as a function that returns the
// next state.
type stateFn func(*checker) stateFn

// checker scans one unfolded content line and records the first grammar
// violation.
type checker struct {
	input string // the line being scanned
	start int    // start position of the current token
	pos   int    // current position in the input
	width int    // width of last rune read from input
	err   error
}

// CheckContentLine reports whether line, without its terminator, matches
//
//	contentline = name *(";" param ) ":" value
//
// It returns a *ValidationError describing the first violation.
func CheckContentLine(line string) error {
	if !utf8.ValidString(line) {
		return invalid("content line", line, "not valid UTF-8")
	}
	c := &checker{input: line}
	for state := checkName; state != nil; {
		state = state(c)
	}
	return c.err
}

// next returns the next rune in the input.
func (c *checker) next() rune {
	if c.pos >= len(c.input) {
		c.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(c.input[c.pos:])
	c.width = w
	c.pos += c.width
	return r
}

// backup steps back one rune. Can be called only once per call of next.
func (c *checker) backup() {
	c.pos -= c.width
}

// acceptRun consumes a run of runes matching valid.
func (c *checker) acceptRun(valid func(rune) bool) {
	for {
		r := c.next()
		if r == eof {
			return
		}
		if !valid(r) {
			c.backup()
			return
		}
	}
}

// errorf records an error and terminates the scan.
func (c *checker) errorf(format string, args ...interface{}) stateFn {
	c.err = invalid("content line", c.input, fmt.Sprintf("at offset %d: ", c.pos)+fmt.Sprintf(format, args...))
	return nil
}

// checkName scans the property name.
func checkName(c *checker) stateFn {
	c.start = c.pos
	c.acceptRun(isName)
	if c.pos == c.start {
		return c.errorf("expected a property name")
	}
	switch r := c.next(); r {
	case CharSemicolon:
		return checkParamName
	case CharColon:
		return checkValue
	case eof:
		return c.errorf("missing ':' before the value")
	default:
		return c.errorf("unexpected %q in property name", r)
	}
}

// checkParamName scans a parameter name up to its '='.
func checkParamName(c *checker) stateFn {
	c.start = c.pos
	c.acceptRun(isName)
	if c.pos == c.start {
		return c.errorf("expected a parameter name")
	}
	if r := c.next(); r != CharEqual {
		return c.errorf("expected '=' after parameter name, got %q", r)
	}
	return checkParamValue
}

// checkParamValue scans one param-value, quoted or not, and what follows it.
func checkParamValue(c *checker) stateFn {
	if r := c.next(); r == CharDQuote {
		c.acceptRun(isQSafeChar)
		if c.next() != CharDQuote {
			return c.errorf("unterminated quoted parameter value")
		}
	} else if r != eof {
		c.backup()
		c.acceptRun(isSafeChar)
	}

	switch r := c.next(); r {
	case CharComma:
		return checkParamValue
	case CharSemicolon:
		return checkParamName
	case CharColon:
		return checkValue
	case eof:
		return c.errorf("missing ':' before the value")
	default:
		return c.errorf("unexpected %q in parameter value", r)
	}
}

// checkValue scans the value up to the end of the line.
func checkValue(c *checker) stateFn {
	c.start = c.pos
	c.acceptRun(isValueChar)
	if c.pos != len(c.input) {
		r, _ := utf8.DecodeRuneInString(c.input[c.pos:])
		return c.errorf("control character %U in value", r)
	}
	return nil
}
