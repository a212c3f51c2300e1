package descriptor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	ical "github.com/luxifer/icalgen"
	"github.com/teambition/rrule-go"
)

// TypeText is the value type of properties that do not name one.
const TypeText = "text"

type valueParser func(s string) (ical.Value, error)

var valueParsers = map[string]valueParser{
	TypeText:      func(s string) (ical.Value, error) { return ical.Text(s), nil },
	"raw":         func(s string) (ical.Value, error) { return ical.Raw(s), nil },
	"uri":         func(s string) (ical.Value, error) { return ical.URI(s), nil },
	"cal-address": func(s string) (ical.Value, error) { return ical.CalAddress(s), nil },
	"boolean":     parseBoolean,
	"integer":     parseInteger,
	"float":       parseFloat,
	"date":        parseDate,
	"date-time":   parseDateTime,
	"time":        parseTime,
	"duration":    parseDuration,
	"utc-offset":  parseUTCOffset,
	"recur":       parseRecur,
}

// Types returns the value types a descriptor property may name.
func Types() []string {
	types := make([]string, 0, len(valueParsers))
	for t := range valueParsers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func parserFor(typ string) (valueParser, error) {
	if typ == "" {
		typ = TypeText
	}
	parse, ok := valueParsers[strings.ToLower(typ)]
	if !ok {
		return nil, fmt.Errorf("unknown value type %q, expected one of %s", typ, strings.Join(Types(), ", "))
	}
	return parse, nil
}

func parseBoolean(s string) (ical.Value, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, err
	}
	return ical.Boolean(b), nil
}

func parseInteger(s string) (ical.Value, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil, err
	}
	return ical.Integer(n), nil
}

func parseFloat(s string) (ical.Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return ical.Float(f), nil
}

func parseDate(s string) (ical.Value, error) {
	t, err := parseLayouts(s, time.DateOnly, "20060102")
	if err != nil {
		return nil, err
	}
	return ical.Date(t), nil
}

func parseDateTime(s string) (ical.Value, error) {
	t, err := parseLayouts(s, time.RFC3339, "20060102T150405Z07:00")
	if err != nil {
		return nil, err
	}
	return ical.DateTime(t), nil
}

func parseTime(s string) (ical.Value, error) {
	t, err := parseLayouts(s, time.TimeOnly, "150405")
	if err != nil {
		return nil, err
	}
	return ical.TimeOf(t), nil
}

func parseDuration(s string) (ical.Value, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return nil, err
	}
	return ical.Duration(d), nil
}

func parseUTCOffset(s string) (ical.Value, error) {
	t, err := parseLayouts(s, "-07:00", "-0700", "-07:00:00", "-070000")
	if err != nil {
		return nil, err
	}
	return ical.OffsetOf(t), nil
}

func parseRecur(s string) (ical.Value, error) {
	opt, err := rrule.StrToROption(strings.TrimPrefix(s, "RRULE:"))
	if err != nil {
		return nil, err
	}
	return ical.Recur(*opt), nil
}

func parseLayouts(s string, layouts ...string) (time.Time, error) {
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("expected one of the layouts %s: %w", strings.Join(layouts, ", "), err)
}
