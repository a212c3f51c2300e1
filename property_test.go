package ical

import (
	"errors"
	"testing"
	"time"
)

func TestEncodeProperty(t *testing.T) {
	tests := []struct {
		prop Property
		want string
	}{
		{NewProperty("uid", Text("abc")), "UID:abc"},
		{NewProperty("SUMMARY", Text("Lunch; then coffee")), `SUMMARY:"Lunch\; then coffee"`},
		{NewProperty("RSVP-DONE", Boolean(false)), "RSVP-DONE:FALSE"},
		{
			NewProperty("DESCRIPTION", Text("x"),
				NewParam("ALTREP", "http://example.com/d.txt"),
				NewParam("LANGUAGE", "en-us")),
			`DESCRIPTION;ALTREP="http://example.com/d.txt";LANGUAGE=en-US:x`,
		},
		{
			NewProperty("DTSTART", Date(time.Date(1997, 11, 2, 0, 0, 0, 0, time.UTC)), NewParam("VALUE", "DATE")),
			"DTSTART;VALUE=DATE:19971102",
		},
		{
			NewProperty("ATTENDEE", CalAddress("mailto:jdoe@example.com"),
				NewParam("ROLE", "REQ-PARTICIPANT"),
				NewParam("CN", "Jane Doe")),
			"ATTENDEE;ROLE=REQ-PARTICIPANT;CN=Jane Doe:mailto:jdoe@example.com",
		},
		{NewProperty("X-WR-CALNAME", Text("Holidays")), "X-WR-CALNAME:Holidays"},
		{NewProperty("RRULE", GenericMap(M("freq", GenericString("weekly")))), "RRULE:;FREQ=WEEKLY"},
	}
	for _, test := range tests {
		got, err := test.prop.Encode()
		if err != nil {
			t.Errorf("%+v.Encode() = %v", test.prop, err)
			continue
		}
		if got != test.want {
			t.Errorf("%+v.Encode() = %q, want %q", test.prop, got, test.want)
		}
		if err := CheckContentLine(got); err != nil {
			t.Errorf("%+v.Encode() = %q is not a content line: %v", test.prop, got, err)
		}
	}
}

func TestEncodePropertyErrors(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		params []Param
		cause  interface{}
	}{
		{"", Text("x"), nil, nil},
		{"SUMMARY", nil, nil, nil},
		{"SUMMARY", Text(""), nil, nil},
		{"SUMMARY", Generic{}, nil, nil},
		{"BAD NAME", Text("x"), nil, new(*NameError)},
		{"SUMMARY", Text("x"), []Param{NewParam("bad param", "x")}, new(*ParameterError)},
		{"SUMMARY", Text(`"quoted"`), nil, new(*ValidationError)},
	}
	for _, test := range tests {
		_, err := EncodeProperty(test.name, test.value, test.params...)
		var perr *PropertyError
		if !errors.As(err, &perr) {
			t.Errorf("EncodeProperty(%q, %v) = %v, want a *PropertyError", test.name, test.value, err)
			continue
		}
		if test.cause == nil {
			if perr.Err != nil {
				t.Errorf("EncodeProperty(%q, %v) wraps %v, want nothing", test.name, test.value, perr.Err)
			}
			continue
		}
		if !errors.As(err, test.cause) {
			t.Errorf("EncodeProperty(%q, %v) = %v, want it to wrap %T", test.name, test.value, err, test.cause)
		}
	}
}
