package record

import (
	"fmt"

	perr "github.com/vhavlena/polstream/pkg/err"
	"github.com/vhavlena/polstream/pkg/token"
)

// DecodeOptions controls decoder behavior that the token grammar leaves open.
//
// Fields:
//
//	MaxDepth int: Maximum container nesting accepted before the decode fails.
//	LastFieldWins bool: When set, a duplicated property name overwrites the
//	earlier occurrence instead of appending a second field. The source data
//	this model was built for appends every occurrence, so the default is
//	false; flip it only when downstream consumers require unique names.
type DecodeOptions struct {
	MaxDepth      int
	LastFieldWins bool
}

// DefaultMaxDepth bounds recursion for inputs of unknown provenance.
const DefaultMaxDepth = 512

// DefaultDecodeOptions returns the options used by the plain entry points.
//
// Returns:
//
//	DecodeOptions: MaxDepth set to DefaultMaxDepth, duplicates appended.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{MaxDepth: DefaultMaxDepth}
}

// Decode consumes one complete object from the stream and returns it as a
// Record. The next token must be an object start; anything else is a fatal
// malformed-input error and no partial result is returned.
//
// Parameters:
//
//	r token.Reader: Token stream positioned at the object start.
//
// Returns:
//
//	Record: The decoded field sequence.
//	error: Malformed-input failure, or a propagated stream error.
func Decode(r token.Reader) (Record, error) {
	return DecodeWith(r, DefaultDecodeOptions())
}

// DecodeWith is Decode with explicit options.
//
// Parameters:
//
//	r token.Reader: Token stream positioned at the object start.
//	opts DecodeOptions: Depth limit and duplicate-name policy.
//
// Returns:
//
//	Record: The decoded field sequence.
//	error: Malformed-input failure, or a propagated stream error.
func DecodeWith(r token.Reader, opts DecodeOptions) (Record, error) {
	tok, err := r.Next()
	if err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	if tok.Kind != token.KindObjectStart {
		return nil, perr.ErrUnexpectedToken(token.KindObjectStart.String(), tok.Kind.String())
	}
	return DecodeBodyWith(r, opts)
}

// DecodeBody decodes the remainder of an object whose object-start token has
// already been consumed, through the matching object end. Shape-specific
// decoders use it to delegate leaf objects without re-reading the opener.
//
// Parameters:
//
//	r token.Reader: Token stream positioned just after an object start.
//
// Returns:
//
//	Record: The decoded field sequence.
//	error: Malformed-input failure, or a propagated stream error.
func DecodeBody(r token.Reader) (Record, error) {
	return DecodeBodyWith(r, DefaultDecodeOptions())
}

// DecodeBodyWith is DecodeBody with explicit options.
func DecodeBodyWith(r token.Reader, opts DecodeOptions) (Record, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return decodeBody(r, opts, 1)
}

// DecodeRootSequence normalizes an ambiguous root into a uniform sequence of
// records. A single object yields a one-element sequence; an array yields one
// record per element. Every array element must itself be an object: root
// arrays of scalars or nested arrays are not part of the model.
//
// Parameters:
//
//	r token.Reader: Token stream positioned at the root token.
//
// Returns:
//
//	[]Record: One record per source object.
//	error: Malformed-input failure, or a propagated stream error.
func DecodeRootSequence(r token.Reader) ([]Record, error) {
	return DecodeRootSequenceWith(r, DefaultDecodeOptions())
}

// DecodeRootSequenceWith is DecodeRootSequence with explicit options.
func DecodeRootSequenceWith(r token.Reader, opts DecodeOptions) ([]Record, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	tok, err := r.Next()
	if err != nil {
		return nil, fmt.Errorf("decode root: %w", err)
	}
	switch tok.Kind {
	case token.KindObjectStart:
		rec, err := decodeBody(r, opts, 1)
		if err != nil {
			return nil, err
		}
		return []Record{rec}, nil
	case token.KindArrayStart:
		var seq []Record
		for {
			tok, err := r.Next()
			if err != nil {
				return nil, fmt.Errorf("decode root: %w", err)
			}
			switch tok.Kind {
			case token.KindArrayEnd:
				return seq, nil
			case token.KindObjectStart:
				rec, err := decodeBody(r, opts, 2)
				if err != nil {
					return nil, err
				}
				seq = append(seq, rec)
			default:
				return nil, perr.ErrUnexpectedToken(token.KindObjectStart.String(), tok.Kind.String())
			}
		}
	default:
		return nil, perr.ErrUnexpectedToken("object or array start", tok.Kind.String())
	}
}

// decodeBody reads fields until the matching object end.
func decodeBody(r token.Reader, opts DecodeOptions, depth int) (Record, error) {
	if depth > opts.MaxDepth {
		return nil, perr.ErrDepthExceeded(opts.MaxDepth)
	}
	rec := Record{}
	for {
		tok, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		switch tok.Kind {
		case token.KindObjectEnd:
			return rec, nil
		case token.KindName:
			v, err := decodeValue(r, opts, depth)
			if err != nil {
				return nil, err
			}
			rec = rec.set(tok.Str, v, opts.LastFieldWins)
		default:
			return nil, perr.ErrUnexpectedToken("property name or object end", tok.Kind.String())
		}
	}
}

// decodeValue reads one complete value starting at the next token.
func decodeValue(r token.Reader, opts DecodeOptions, depth int) (Value, error) {
	tok, err := r.Next()
	if err != nil {
		return Value{}, fmt.Errorf("decode value: %w", err)
	}
	return decodeValueFrom(r, tok, opts, depth)
}

// decodeValueFrom reads the remainder of the value introduced by tok.
func decodeValueFrom(r token.Reader, tok token.Token, opts DecodeOptions, depth int) (Value, error) {
	switch tok.Kind {
	case token.KindObjectStart:
		rec, err := decodeBody(r, opts, depth+1)
		if err != nil {
			return Value{}, err
		}
		return NewRecordValue(rec), nil
	case token.KindArrayStart:
		items, err := decodeArray(r, opts, depth+1)
		if err != nil {
			return Value{}, err
		}
		return NewArrayValue(items), nil
	case token.KindString:
		return NewStringValue(tok.Str), nil
	case token.KindNumber:
		return NewNumberValue(tok.Num), nil
	case token.KindBool:
		return NewBoolValue(tok.Bool), nil
	case token.KindNull:
		return NewNullValue(), nil
	default:
		return Value{}, perr.ErrUnexpectedToken("value", tok.Kind.String())
	}
}

// decodeArray reads elements until the matching array end.
func decodeArray(r token.Reader, opts DecodeOptions, depth int) ([]Value, error) {
	if depth > opts.MaxDepth {
		return nil, perr.ErrDepthExceeded(opts.MaxDepth)
	}
	items := []Value{}
	for {
		tok, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("decode array: %w", err)
		}
		if tok.Kind == token.KindArrayEnd {
			return items, nil
		}
		v, err := decodeValueFrom(r, tok, opts, depth)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}
