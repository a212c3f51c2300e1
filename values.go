package ical

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/teambition/rrule-go"
)

// A Value is a typed property value. Encode returns its RFC 5545 text form.
// Implementations must be pure: the same value always encodes the same way.
type Value interface {
	Encode() (string, error)
}

// Pad encodes a non-negative integer x as exactly n decimal digits, padded
// with leading zeros. n defaults to 2 when it is less than 1.
//
//	Pad(1, 2)   // "01"
//	Pad(9, 4)   // "0009"
//	Pad(100, 2) // error
func Pad(x, n int) (string, error) {
	if n < 1 {
		n = 2
	}
	s := strconv.Itoa(x)
	if x < 0 || len(s) > n {
		return "", invalid("number", s, fmt.Sprintf("expected a non-negative number with at most %d digits", n))
	}
	return strings.Repeat("0", n-len(s)) + s, nil
}

// Boolean is a BOOLEAN value (RFC 5545 section 3.3.2).
type Boolean bool

func (b Boolean) Encode() (string, error) { return EncodeBoolean(bool(b)) }

// EncodeBoolean encodes b as TRUE or FALSE.
func EncodeBoolean(b bool) (string, error) {
	if b {
		return "TRUE", nil
	}
	return "FALSE", nil
}

// Date is a DATE value (RFC 5545 section 3.3.4). Only the calendar date of the
// underlying time is used, in the time's own location.
type Date time.Time

func (d Date) Encode() (string, error) { return EncodeDate(time.Time(d)) }

// EncodeDate encodes the calendar date of t as YYYYMMDD.
func EncodeDate(t time.Time) (string, error) {
	year, month, day := t.Date()
	y, err := Pad(year, 4)
	if err != nil {
		return "", invalid("DATE", t.String(), "year must have four digits")
	}
	m, _ := Pad(int(month), 2)
	d, _ := Pad(day, 2)
	return y + m + d, nil
}

// Time is a TIME value (RFC 5545 section 3.3.12). Each field holds exactly
// two digits; an empty field means "00".
type Time struct {
	Hour   string
	Minute string
	Second string
}

// TimeOf returns the time of day of t.
func TimeOf(t time.Time) Time {
	hour, minute, sec := t.Clock()
	h, _ := Pad(hour, 2)
	m, _ := Pad(minute, 2)
	s, _ := Pad(sec, 2)
	return Time{Hour: h, Minute: m, Second: s}
}

func (t Time) Encode() (string, error) { return EncodeTime(t) }

// EncodeTime encodes t as HHMMSS.
func EncodeTime(t Time) (string, error) {
	parts := []string{t.Hour, t.Minute, t.Second}
	for i, p := range parts {
		if p == "" {
			parts[i] = "00"
			continue
		}
		if len(p) != 2 || !isDigit(rune(p[0])) || !isDigit(rune(p[1])) {
			return "", invalid("TIME", strings.Join([]string{t.Hour, t.Minute, t.Second}, ":"),
				"time components must be exactly two digits")
		}
	}
	return strings.Join(parts, ""), nil
}

// DateTime is a DATE-TIME value (RFC 5545 section 3.3.5). It is always
// encoded in UTC.
type DateTime time.Time

func (dt DateTime) Encode() (string, error) { return EncodeDateTime(time.Time(dt)) }

// EncodeDateTime encodes t in UTC as YYYYMMDDTHHMMSSZ, the RFC 5545 form #2
// (date with UTC time). Floating and TZID-relative forms are never produced.
func EncodeDateTime(t time.Time) (string, error) {
	t = t.UTC()
	date, err := EncodeDate(t)
	if err != nil {
		return "", err
	}
	clock, err := EncodeTime(TimeOf(t))
	if err != nil {
		return "", err
	}
	return date + string(CharCapitalT) + clock + string(CharCapitalZ), nil
}

// Text is a TEXT value (RFC 5545 section 3.3.11).
type Text string

func (t Text) Encode() (string, error) { return EncodeText(string(t)) }

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n\r", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

// EncodeText escapes backslashes, semicolons, commas and line breaks in s. The
// escapes are applied in a single pass, so an escape is never escaped again.
// If the result still contains a colon, semicolon or comma it is wrapped in
// double quotes. Text containing a double quote or another control
// character is rejected.
func EncodeText(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", invalid("TEXT", s, "text values must be valid UTF-8")
	}
	for _, r := range s {
		switch {
		case r == CharDQuote:
			return "", invalid("TEXT", s, "text values cannot contain double quotes")
		case r == CharCR || r == CharLF:
		case isControl(r):
			return "", invalid("TEXT", s, fmt.Sprintf("control character %U is not allowed", r))
		}
	}

	s = textEscaper.Replace(s)
	if strings.ContainsAny(s, ":;,") {
		return string(CharDQuote) + s + string(CharDQuote), nil
	}
	return s, nil
}

// URI is a URI value (RFC 5545 section 3.3.13).
type URI string

// URIFromURL returns the URI value of u.
func URIFromURL(u *url.URL) URI {
	return URI(u.String())
}

func (u URI) Encode() (string, error) { return EncodeURI(u) }

// EncodeURI normalizes u to its canonical string form. u must be an absolute
// URI.
func EncodeURI(u URI) (string, error) {
	return normalizeURI("URI", string(u))
}

// CalAddress is a CAL-ADDRESS value (RFC 5545 section 3.3.3), usually a
// mailto: URI.
type CalAddress string

// CalAddressFromURL returns the CAL-ADDRESS value of u.
func CalAddressFromURL(u *url.URL) CalAddress {
	return CalAddress(u.String())
}

func (a CalAddress) Encode() (string, error) { return EncodeCalAddress(a) }

// EncodeCalAddress normalizes a like EncodeURI.
func EncodeCalAddress(a CalAddress) (string, error) {
	return normalizeURI("CAL-ADDRESS", string(a))
}

func normalizeURI(typ, s string) (string, error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", invalid(typ, s, err.Error())
	}
	if u.Scheme == "" {
		return "", invalid(typ, s, "URI must be absolute")
	}
	return u.String(), nil
}

// Integer is an INTEGER value (RFC 5545 section 3.3.8).
type Integer int32

func (i Integer) Encode() (string, error) {
	return strconv.FormatInt(int64(i), 10), nil
}

// Float is a FLOAT value (RFC 5545 section 3.3.7).
type Float float64

func (f Float) Encode() (string, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", invalid("FLOAT", strconv.FormatFloat(v, 'g', -1, 64), "not a finite number")
	}
	return strconv.FormatFloat(v, 'f', -1, 64), nil
}

// Duration is a DURATION value (RFC 5545 section 3.3.6). It must be a whole
// number of seconds.
type Duration time.Duration

func (d Duration) Encode() (string, error) { return EncodeDuration(time.Duration(d)) }

// EncodeDuration encodes d as an RFC 5545 duration, e.g. PT1H30M, -P1D or P2W.
func EncodeDuration(d time.Duration) (string, error) {
	if d%time.Second != 0 {
		return "", invalid("DURATION", d.String(), "durations must be a whole number of seconds")
	}

	secs := int64(d / time.Second)
	var sb strings.Builder
	if secs < 0 {
		sb.WriteByte(CharHyphen)
		secs = -secs
	}
	sb.WriteByte('P')
	if secs == 0 {
		sb.WriteString("T0S")
		return sb.String(), nil
	}

	days := secs / 86400
	secs %= 86400
	h, m, s := secs/3600, secs%3600/60, secs%60

	if days > 0 && days%7 == 0 && secs == 0 {
		fmt.Fprintf(&sb, "%dW", days/7)
		return sb.String(), nil
	}
	if days > 0 {
		fmt.Fprintf(&sb, "%dD", days)
	}
	if secs == 0 {
		return sb.String(), nil
	}

	sb.WriteByte(CharCapitalT)
	if h > 0 {
		fmt.Fprintf(&sb, "%dH", h)
	}
	// dur-hour may only be followed by dur-minute
	if m > 0 || (h > 0 && s > 0) {
		fmt.Fprintf(&sb, "%dM", m)
	}
	if s > 0 {
		fmt.Fprintf(&sb, "%dS", s)
	}
	return sb.String(), nil
}

// UTCOffset is a UTC-OFFSET value (RFC 5545 section 3.3.14).
type UTCOffset time.Duration

// OffsetOf returns the UTC offset of t in its location.
func OffsetOf(t time.Time) UTCOffset {
	_, offset := t.Zone()
	return UTCOffset(time.Duration(offset) * time.Second)
}

func (o UTCOffset) Encode() (string, error) { return EncodeUTCOffset(time.Duration(o)) }

// EncodeUTCOffset encodes d as +HHMM or +HHMMSS.
func EncodeUTCOffset(d time.Duration) (string, error) {
	if d%time.Second != 0 || d <= -24*time.Hour || d >= 24*time.Hour {
		return "", invalid("UTC-OFFSET", d.String(), "offsets must be whole seconds within a day")
	}

	sign := string(CharPlus)
	if d < 0 {
		sign = string(CharHyphen)
		d = -d
	}
	secs := int(d / time.Second)
	h, _ := Pad(secs/3600, 2)
	m, _ := Pad(secs%3600/60, 2)
	out := sign + h + m
	if s := secs % 60; s != 0 {
		ss, _ := Pad(s, 2)
		out += ss
	}
	return out, nil
}

// Recur is a RECUR value (RFC 5545 section 3.3.10). The rule text is
// produced by rrule-go.
type Recur rrule.ROption

func (r Recur) Encode() (string, error) {
	opt := rrule.ROption(r)
	if _, err := rrule.NewRRule(opt); err != nil {
		return "", invalid("RECUR", opt.RRuleString(), err.Error())
	}
	return opt.RRuleString(), nil
}

// Raw is a value that is already encoded. It is emitted verbatim after
// checking that it fits on one content line.
type Raw string

func (r Raw) Encode() (string, error) {
	if !utf8.ValidString(string(r)) {
		return "", invalid("raw", string(r), "raw values must be valid UTF-8")
	}
	for _, c := range r {
		if !isValueChar(c) {
			return "", invalid("raw", string(r), fmt.Sprintf("control character %U is not allowed", c))
		}
	}
	return string(r), nil
}
