package token

import (
	"encoding/json"
	"io"
)

// jsonWriter emits compact JSON text for a pushed token sequence. It keeps a
// separator flag per open container; the caller guarantees the sequence is
// well-formed. Errors from the underlying writer are sticky.
type jsonWriter struct {
	w         io.Writer
	needComma []bool
	afterName bool
	err       error
}

// NewJSONWriter returns a Writer emitting compact JSON to w.
//
// Parameters:
//
//	w io.Writer: Destination for the JSON text.
//
// Returns:
//
//	Writer: A push-based token sink.
func NewJSONWriter(w io.Writer) Writer {
	return &jsonWriter{w: w}
}

func (e *jsonWriter) ObjectStart() error { return e.open('{') }
func (e *jsonWriter) ArrayStart() error  { return e.open('[') }

func (e *jsonWriter) ObjectEnd() error { return e.close('}') }
func (e *jsonWriter) ArrayEnd() error  { return e.close(']') }

// Name writes a property name followed by the key separator. The subsequent
// value write attaches without a comma.
func (e *jsonWriter) Name(name string) error {
	if e.err != nil {
		return e.err
	}
	e.separate()
	e.writeQuoted(name)
	e.write(":")
	e.afterName = true
	return e.err
}

func (e *jsonWriter) String(v string) error {
	if e.err != nil {
		return e.err
	}
	e.separate()
	e.writeQuoted(v)
	e.valueDone()
	return e.err
}

func (e *jsonWriter) Number(v json.Number) error {
	if e.err != nil {
		return e.err
	}
	if v == "" {
		v = "0"
	}
	e.separate()
	e.write(v.String())
	e.valueDone()
	return e.err
}

func (e *jsonWriter) Bool(v bool) error {
	if e.err != nil {
		return e.err
	}
	e.separate()
	if v {
		e.write("true")
	} else {
		e.write("false")
	}
	e.valueDone()
	return e.err
}

func (e *jsonWriter) Null() error {
	if e.err != nil {
		return e.err
	}
	e.separate()
	e.write("null")
	e.valueDone()
	return e.err
}

func (e *jsonWriter) open(delim byte) error {
	if e.err != nil {
		return e.err
	}
	e.separate()
	e.write(string(delim))
	e.needComma = append(e.needComma, false)
	return e.err
}

func (e *jsonWriter) close(delim byte) error {
	if e.err != nil {
		return e.err
	}
	if n := len(e.needComma); n > 0 {
		e.needComma = e.needComma[:n-1]
	}
	e.write(string(delim))
	e.valueDone()
	return e.err
}

// separate writes the element separator when a sibling already occupies the
// current container. A value directly after its name never takes one.
func (e *jsonWriter) separate() {
	if e.afterName {
		e.afterName = false
		return
	}
	if n := len(e.needComma); n > 0 && e.needComma[n-1] {
		e.write(",")
	}
}

// valueDone marks that the current container has at least one element.
func (e *jsonWriter) valueDone() {
	if n := len(e.needComma); n > 0 {
		e.needComma[n-1] = true
	}
}

func (e *jsonWriter) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

// writeQuoted emits a JSON string literal with full escaping.
func (e *jsonWriter) writeQuoted(s string) {
	if e.err != nil {
		return
	}
	b, merr := json.Marshal(s)
	if merr != nil {
		e.err = merr
		return
	}
	_, e.err = e.w.Write(b)
}
