package token

import (
	"encoding/json"
	"fmt"
	"io"
)

// frame tracks one open container while reading. keyNext is meaningful only
// for object frames and reports whether the next token must be a property
// name (or the closing brace).
type frame struct {
	object  bool
	keyNext bool
}

// jsonReader adapts the standard streaming JSON tokenizer to the Reader
// interface. The underlying json.Decoder returns object keys and string
// values as the same Go type, so the reader keeps a container stack to tell
// the two apart by position.
type jsonReader struct {
	dec   *json.Decoder
	stack []frame
}

// NewJSONReader returns a Reader producing tokens from JSON text. Numbers are
// surfaced as json.Number so their literal form survives a round trip.
//
// Parameters:
//
//	r io.Reader: JSON source text.
//
// Returns:
//
//	Reader: A pull-based token stream over the input.
func NewJSONReader(r io.Reader) Reader {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &jsonReader{dec: dec}
}

// Next returns the next token, or io.EOF when the input is exhausted.
func (r *jsonReader) Next() (Token, error) {
	raw, err := r.dec.Token()
	if err != nil {
		if err == io.EOF {
			return Token{}, io.EOF
		}
		return Token{}, fmt.Errorf("tokenize: %w", err)
	}

	if top := r.top(); top != nil && top.object && top.keyNext {
		switch v := raw.(type) {
		case string:
			top.keyNext = false
			return Token{Kind: KindName, Str: v}, nil
		case json.Delim:
			if v == '}' {
				r.pop()
				return Token{Kind: KindObjectEnd}, nil
			}
		}
		return Token{}, fmt.Errorf("tokenize: unexpected %v in key position", raw)
	}

	switch v := raw.(type) {
	case json.Delim:
		switch v {
		case '{':
			r.stack = append(r.stack, frame{object: true, keyNext: true})
			return Token{Kind: KindObjectStart}, nil
		case '[':
			r.stack = append(r.stack, frame{})
			return Token{Kind: KindArrayStart}, nil
		case ']':
			r.pop()
			return Token{Kind: KindArrayEnd}, nil
		case '}':
			// Unreachable for well-formed input: object closers are handled
			// in key position above.
			r.pop()
			return Token{Kind: KindObjectEnd}, nil
		}
		return Token{}, fmt.Errorf("tokenize: unknown delimiter %v", v)
	case string:
		r.valueDone()
		return Token{Kind: KindString, Str: v}, nil
	case json.Number:
		r.valueDone()
		return Token{Kind: KindNumber, Num: v}, nil
	case bool:
		r.valueDone()
		return Token{Kind: KindBool, Bool: v}, nil
	case nil:
		r.valueDone()
		return Token{Kind: KindNull}, nil
	}
	return Token{}, fmt.Errorf("tokenize: unsupported token %T", raw)
}

func (r *jsonReader) top() *frame {
	if len(r.stack) == 0 {
		return nil
	}
	return &r.stack[len(r.stack)-1]
}

// pop closes the current container and marks the value complete in the
// enclosing frame.
func (r *jsonReader) pop() {
	if len(r.stack) > 0 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	r.valueDone()
}

// valueDone flips an enclosing object frame back to key position after a
// complete value has been read.
func (r *jsonReader) valueDone() {
	if top := r.top(); top != nil && top.object {
		top.keyNext = true
	}
}
