package ical

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

var dtstamp = DateTime(time.Date(1997, 9, 1, 13, 0, 0, 0, time.UTC))

func minimalEvent() *Component {
	return NewEvent().
		Add("UID", Text("19970901T130000Z-123401@example.com")).
		Add("DTSTAMP", dtstamp)
}

func TestEventEncoder(t *testing.T) {
	event := minimalEvent().
		Add("DTSTART", DateTime(time.Date(1997, 9, 3, 16, 30, 0, 0, time.UTC))).
		Add("DURATION", Duration(time.Hour)).
		Add("CATEGORIES", Values{Text("BUSINESS"), Text("HUMAN RESOURCES")})
	event.AddComponent(NewAlarm().
		Add("ACTION", Text("DISPLAY")).
		Add("TRIGGER", Duration(-15*time.Minute), NewParam("RELATED", "START")).
		Add("DESCRIPTION", Text("Reminder")))

	want := Lines(
		"BEGIN:VEVENT",
		"UID:19970901T130000Z-123401@example.com",
		"DTSTAMP:19970901T130000Z",
		"DTSTART:19970903T163000Z",
		"DURATION:PT1H",
		"CATEGORIES:BUSINESS,HUMAN RESOURCES",
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"TRIGGER;RELATED=START:-PT15M",
		"DESCRIPTION:Reminder",
		"END:VALARM",
		"END:VEVENT",
	)

	got, err := EventEncoder.Encode(event)
	if err != nil {
		t.Fatalf("EventEncoder.Encode() = %v", err)
	}
	if got != want {
		t.Errorf("EventEncoder.Encode() = \n%v\n but want \n%v", got, want)
	}
}

func TestEventEncoderValidation(t *testing.T) {
	tests := map[string]*Component{
		"nil":             nil,
		"wrong name":      NewComponent("VTODO").Add("UID", Text("x")).Add("DTSTAMP", dtstamp),
		"missing UID":     NewEvent().Add("DTSTAMP", dtstamp),
		"missing DTSTAMP": NewEvent().Add("UID", Text("x")),
		"duplicate SUMMARY": minimalEvent().
			Add("SUMMARY", Text("a")).
			Add("summary", Text("b")),
		"DTEND and DURATION": minimalEvent().
			Add("DTEND", dtstamp).
			Add("DURATION", Duration(time.Hour)),
		"bad property": minimalEvent().Add("BAD NAME", Text("x")),
		"bad alarm":    minimalEvent().AddComponent(NewAlarm().Add("ACTION", Text("AUDIO"))),
	}
	for name, event := range tests {
		_, err := EventEncoder.Encode(event)
		var cerr *ComponentError
		if !errors.As(err, &cerr) {
			t.Errorf("%s: EventEncoder.Encode() = %v, want a *ComponentError", name, err)
			continue
		}
		if cerr.Name != CompEvent {
			t.Errorf("%s: ComponentError.Name = %q, want %q", name, cerr.Name, CompEvent)
		}
	}
}

func TestEventEncoderAllowsRepeatedProperties(t *testing.T) {
	event := minimalEvent().
		Add("ATTENDEE", CalAddress("mailto:a@example.com")).
		Add("ATTENDEE", CalAddress("mailto:b@example.com")).
		Add("COMMENT", Text("one")).
		Add("COMMENT", Text("two"))
	if _, err := EventEncoder.Encode(event); err != nil {
		t.Errorf("EventEncoder.Encode() = %v", err)
	}
}

func TestAlarmEncoder(t *testing.T) {
	alarm := NewAlarm().
		Add("ACTION", Text("AUDIO")).
		Add("TRIGGER", DateTime(time.Date(1997, 3, 17, 13, 30, 0, 0, time.UTC)), NewParam("VALUE", "DATE-TIME")).
		Add("REPEAT", Integer(4)).
		Add("DURATION", Duration(15*time.Minute))

	got, err := AlarmEncoder.Encode(alarm)
	if err != nil {
		t.Fatalf("AlarmEncoder.Encode() = %v", err)
	}
	want := Lines(
		"BEGIN:VALARM",
		"ACTION:AUDIO",
		"TRIGGER;VALUE=DATE-TIME:19970317T133000Z",
		"REPEAT:4",
		"DURATION:PT15M",
		"END:VALARM",
	)
	if got != want {
		t.Errorf("AlarmEncoder.Encode() = \n%v\n but want \n%v", got, want)
	}

	if _, err := AlarmEncoder.Encode(NewAlarm().Add("ACTION", Text("DISPLAY"))); err == nil {
		t.Error("AlarmEncoder.Encode() succeeded without TRIGGER")
	}
}

func TestNewComponentEncoder(t *testing.T) {
	todo := NewComponentEncoder("vtodo", func(c *Component) error {
		if c.Count("SUMMARY") == 0 {
			return fmt.Errorf("a todo needs a summary")
		}
		return nil
	})
	if todo.Name() != "VTODO" {
		t.Errorf("Name() = %q, want VTODO", todo.Name())
	}

	got, err := todo.Encode(NewComponent("VTODO").Add("SUMMARY", Text("Submit report")))
	if err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	if want := Lines("BEGIN:VTODO", "SUMMARY:Submit report", "END:VTODO"); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}

	// an unnamed component takes the encoder's name
	if _, err := todo.Encode(&Component{Properties: []Property{NewProperty("SUMMARY", Text("x"))}}); err != nil {
		t.Errorf("Encode() of an unnamed component = %v", err)
	}

	_, err = todo.Encode(NewComponent("VTODO"))
	if err == nil || !strings.Contains(err.Error(), "a todo needs a summary") {
		t.Errorf("Encode() = %v, want the validator's error", err)
	}

	if _, err := NewComponentEncoder("V TODO").Encode(NewComponent("")); err == nil {
		t.Error("Encode() succeeded with an invalid encoder name")
	}
}

func TestEncodeExtensionComponents(t *testing.T) {
	got, err := EncodeXComponent(NewComponent("x-abc-thing").Add("X-ABC-COLOR", Text("blue")))
	if err != nil {
		t.Fatalf("EncodeXComponent() = %v", err)
	}
	if want := Lines("BEGIN:X-ABC-THING", "X-ABC-COLOR:blue", "END:X-ABC-THING"); got != want {
		t.Errorf("EncodeXComponent() = %q, want %q", got, want)
	}

	var nerr *NameError
	if _, err := EncodeXComponent(NewComponent("VTODO")); !errors.As(err, &nerr) {
		t.Errorf("EncodeXComponent(VTODO) = %v, want a *NameError", err)
	}

	got, err = EncodeIANAComponent(NewComponent("VJOURNAL").Add("UID", Text("j1")))
	if err != nil {
		t.Fatalf("EncodeIANAComponent() = %v", err)
	}
	if want := Lines("BEGIN:VJOURNAL", "UID:j1", "END:VJOURNAL"); got != want {
		t.Errorf("EncodeIANAComponent() = %q, want %q", got, want)
	}

	if _, err := EncodeIANAComponent(NewComponent("V JOURNAL")); !errors.As(err, &nerr) {
		t.Errorf("EncodeIANAComponent(V JOURNAL) = %v, want a *NameError", err)
	}
}

func TestEncodeComponentDispatch(t *testing.T) {
	// VEVENT goes through EventEncoder and its validators
	if _, err := EncodeComponent(NewEvent()); err == nil {
		t.Error("EncodeComponent(VEVENT) skipped event validation")
	}
	// nested components of unknown kinds are encoded as they are
	parent := NewComponent("VTIMEZONE").
		Add("TZID", Text("Europe/Paris")).
		AddComponent(NewComponent("STANDARD").
			Add("TZOFFSETFROM", UTCOffset(2*time.Hour)).
			Add("TZOFFSETTO", UTCOffset(time.Hour)))

	got, err := EncodeComponent(parent)
	if err != nil {
		t.Fatalf("EncodeComponent() = %v", err)
	}
	want := Lines(
		"BEGIN:VTIMEZONE",
		"TZID:Europe/Paris",
		"BEGIN:STANDARD",
		"TZOFFSETFROM:+0200",
		"TZOFFSETTO:+0100",
		"END:STANDARD",
		"END:VTIMEZONE",
	)
	if got != want {
		t.Errorf("EncodeComponent() = \n%v\n but want \n%v", got, want)
	}
}

func TestEncodeComponents(t *testing.T) {
	got, err := EncodeComponents(EncodeXComponent, []*Component{
		NewComponent("X-A").Add("X-N", Integer(1)),
		NewComponent("X-B").Add("X-N", Integer(2)),
	})
	if err != nil {
		t.Fatalf("EncodeComponents() = %v", err)
	}
	want := Lines("BEGIN:X-A", "X-N:1", "END:X-A", "BEGIN:X-B", "X-N:2", "END:X-B")
	if got != want {
		t.Errorf("EncodeComponents() = %q, want %q", got, want)
	}

	if got, err := EncodeComponents(EncodeXComponent, nil); err != nil || got != "" {
		t.Errorf("EncodeComponents(nil) = %q, %v, want empty", got, err)
	}
}
