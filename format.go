package ical

import (
	"bytes"
	"io"
)

// MIMEType is the media type of iCalendar documents.
const MIMEType = "text/calendar"

// FileExtension is the usual file extension of iCalendar documents.
const FileExtension = ".ics"

// An Encoder writes iCalendar documents to an output stream.
type Encoder struct {
	w    io.Writer
	fold bool
}

// An EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithoutFolding disables 75-octet line folding.
func WithoutFolding() EncoderOption {
	return func(e *Encoder) {
		e.fold = false
	}
}

// NewEncoder returns an Encoder that writes to w. Lines are folded at 75
// octets unless WithoutFolding is given.
func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	e := &Encoder{w: w, fold: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes the encoded document to the stream. Every content line is
// checked against the content line grammar first; nothing is written if the
// document fails to encode.
func (e *Encoder) Encode(doc *Document) error {
	text, err := Marshal(doc)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.Grow(len(text) + len(text)/maxLineOctets*len(CRLF+" "))
	for _, line := range splitLines(text) {
		if err := CheckContentLine(line); err != nil {
			return &DocumentError{Reason: "encoded an invalid content line", Err: err}
		}
		if e.fold {
			line = Fold(line)
		}
		buf.WriteString(line)
		buf.WriteString(CRLF)
	}

	_, err = buf.WriteTo(e.w)
	return err
}

// Format writes the calendar to the provided io.Writer, folding long lines.
func Format(w io.Writer, doc *Document) error {
	return NewEncoder(w).Encode(doc)
}
