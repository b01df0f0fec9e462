// Package token defines the forward-only structural token grammar shared by
// all decoders and encoders: object/array delimiters, property names, and
// scalar values. Token production is delegated to a streaming JSON tokenizer;
// the package assumes well-formed (balanced) input and never validates
// nesting on its own.
package token

import (
	"encoding/json"
)

// Kind identifies the structural or scalar role of a token.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindObjectStart
	KindObjectEnd
	KindArrayStart
	KindArrayEnd
	KindName
	KindString
	KindNumber
	KindBool
	KindNull
)

// String returns a short human-readable name for the kind, used in error
// messages.
func (k Kind) String() string {
	switch k {
	case KindObjectStart:
		return "object start"
	case KindObjectEnd:
		return "object end"
	case KindArrayStart:
		return "array start"
	case KindArrayEnd:
		return "array end"
	case KindName:
		return "property name"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "invalid"
	}
}

// Token is a single event in the stream. Str carries the payload for
// KindName and KindString, Num for KindNumber, and Bool for KindBool; the
// remaining kinds have no payload.
type Token struct {
	Kind Kind
	Str  string
	Num  json.Number
	Bool bool
}

// IsScalar reports whether the token is a scalar value (string, number,
// boolean, or null).
func (t Token) IsScalar() bool {
	switch t.Kind {
	case KindString, KindNumber, KindBool, KindNull:
		return true
	default:
		return false
	}
}

// Reader is a pull-based token source. Next returns io.EOF once the stream
// is exhausted; any other error is fatal to the stream.
type Reader interface {
	Next() (Token, error)
}

// Writer is a push-based token sink. Implementations are expected to reject
// nothing: callers are responsible for emitting a well-formed sequence.
type Writer interface {
	ObjectStart() error
	ObjectEnd() error
	ArrayStart() error
	ArrayEnd() error
	Name(name string) error
	String(v string) error
	Number(v json.Number) error
	Bool(v bool) error
	Null() error
}
