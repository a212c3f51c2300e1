package ical

import (
	"math"
	"testing"
	"time"
)

func TestEncodeGeneric(t *testing.T) {
	testValues(t, []valueTest{
		{GenericBool(true), "TRUE"},
		{GenericNumber(3), "3"},
		{GenericNumber(1.5), "1.5"},
		{GenericString("daily"), "DAILY"},
		{Generic{}, ""},
		{GenericMap(), ""},
		{GenericMap(
			M("freq", GenericString("daily")),
			M("count", GenericNumber(3)),
			M("wkst", GenericBool(false)),
		), ";FREQ=DAILY;COUNT=3;WKST=FALSE"},
		{GenericMap(M("a", GenericMap(M("b", GenericNumber(1.5))))), ";A=;B=1.5"},
		{GenericMap(M("byday", GenericString("mo,we"))), ";BYDAY=MO,WE"},
		{GenericMap(M("x-name", GenericString("Réunion"))), ";X-NAME=RÉUNION"},
	})
	testInvalidValues(t, []Value{
		GenericNumber(math.Inf(-1)),
		GenericMap(M("", GenericBool(true))),
		GenericMap(M("ok", GenericNumber(math.NaN()))),
		GenericMap(M("k", GenericString("a\r\nEND:VCALENDAR"))),
		GenericMap(M("k", GenericString("tab\x00"))),
		GenericMap(M("k", GenericString("a;b"))),
		GenericMap(M("k", GenericString("a:b"))),
		GenericMap(M("k", GenericString("a=b"))),
		GenericMap(M("k", GenericString(`"a"`))),
		GenericMap(M("k", GenericString("\xff"))),
		GenericMap(M("bad key", GenericBool(true))),
		GenericMap(M("k=v", GenericBool(true))),
		GenericMap(M("k\r\nEND:VEVENT", GenericBool(true))),
		GenericString("line\nbreak"),
	})
}

func TestList(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}
	got, err := List(EncodeDate)(dates)
	if err != nil {
		t.Fatalf("List(EncodeDate) = %v", err)
	}
	if want := "20240101,20240102,20240103"; got != want {
		t.Errorf("List(EncodeDate) = %q, want %q", got, want)
	}

	got, err = ListSep(";", EncodeDate)(dates[:2])
	if err != nil {
		t.Fatalf("ListSep(EncodeDate) = %v", err)
	}
	if want := "20240101;20240102"; got != want {
		t.Errorf("ListSep(EncodeDate) = %q, want %q", got, want)
	}

	if got, err := List(EncodeDate)(nil); err != nil || got != "" {
		t.Errorf("List(EncodeDate)(nil) = %q, %v, want empty", got, err)
	}

	if _, err := List(EncodeTime)([]Time{{"09", "00", "00"}, {"9", "0", "0"}}); err == nil {
		t.Error("List(EncodeTime) succeeded with an invalid element")
	}
}

func TestValues(t *testing.T) {
	testValues(t, []valueTest{
		{Values{Text("work"), Text("travel")}, "work,travel"},
		{Values{Text("a"), Integer(1), Boolean(true)}, "a,1,TRUE"},
		{Values{DateTime(time.Date(2020, 2, 11, 9, 0, 0, 0, time.UTC))}, "20200211T090000Z"},
	})
	testInvalidValues(t, []Value{
		Values{Text("a"), nil},
		Values{Text(`"`)},
	})
}
