package record

import (
	"encoding/json"
	"os"
	"strconv"

	perr "github.com/vhavlena/polstream/pkg/err"
	"github.com/vhavlena/polstream/pkg/token"
)

// Property is one enumerated entry of a live object. Readable is false when
// the value cannot be read safely (for example a handle whose backing
// resource mutates concurrently); such properties are skipped entirely.
type Property struct {
	Name     string
	Readable bool
	Value    any
}

// PropertySource is the capability the generic encoder requires of a source
// object: an ordered enumeration of its named properties. Concrete adapter
// types implement it for whatever live-object concept they wrap; the encoder
// never depends on a specific one.
type PropertySource interface {
	Properties() []Property
}

// FileReference identifies a property value backed by a filesystem entry.
// File references are serialized as their fully qualified path rather than
// their structural expansion; directory references are live handles over
// externally mutable listings and are skipped.
type FileReference interface {
	FullPath() string
	IsDir() bool
}

// Encode writes src as an object token sequence. Unreadable properties,
// directory references, and values of unknown types are omitted; a nil source
// is a fatal invalid-argument error.
//
// Parameters:
//
//	w token.Writer: Token sink receiving the object.
//	src PropertySource: Enumerable source object; must be non-nil.
//
// Returns:
//
//	error: Invalid-argument failure, or a propagated writer error.
func Encode(w token.Writer, src PropertySource) error {
	if src == nil {
		return perr.ErrNilEncodeSource("property source")
	}
	if err := w.ObjectStart(); err != nil {
		return err
	}
	for _, p := range src.Properties() {
		if !p.Readable {
			continue
		}
		if err := encodeProperty(w, p.Name, p.Value); err != nil {
			return err
		}
	}
	return w.ObjectEnd()
}

// EncodeValue writes a single dynamic value as a token sequence. An invalid
// (zero) value is a fatal invalid-argument error.
//
// Parameters:
//
//	w token.Writer: Token sink receiving the value.
//	v Value: Value to serialize.
//
// Returns:
//
//	error: Invalid-argument failure, or a propagated writer error.
func EncodeValue(w token.Writer, v Value) error {
	switch v.Kind() {
	case ValueNull:
		return w.Null()
	case ValueBool:
		return w.Bool(v.boolVal)
	case ValueNumber:
		return w.Number(v.numVal)
	case ValueString:
		return w.String(v.strVal)
	case ValueArray:
		if err := w.ArrayStart(); err != nil {
			return err
		}
		for _, item := range v.arrVal {
			if err := EncodeValue(w, item); err != nil {
				return err
			}
		}
		return w.ArrayEnd()
	case ValueRecord:
		if err := w.ObjectStart(); err != nil {
			return err
		}
		for _, f := range v.recVal {
			if err := w.Name(f.Name); err != nil {
				return err
			}
			if err := EncodeValue(w, f.Value); err != nil {
				return err
			}
		}
		return w.ObjectEnd()
	default:
		return perr.ErrNilEncodeSource("value")
	}
}

// encodeProperty writes one named property, applying the exclusion and
// filesystem special-case rules. A skipped property writes neither its name
// nor a value.
func encodeProperty(w token.Writer, name string, v any) error {
	switch t := v.(type) {
	case FileReference:
		if t == nil || t.IsDir() {
			return nil
		}
		if err := w.Name(name); err != nil {
			return err
		}
		return w.String(t.FullPath())
	case *os.File:
		if t == nil {
			return nil
		}
		info, serr := t.Stat()
		if serr != nil || info.IsDir() {
			return nil
		}
		if err := w.Name(name); err != nil {
			return err
		}
		return w.String(t.Name())
	case Value:
		if t.Kind() == ValueInvalid {
			return nil
		}
		if err := w.Name(name); err != nil {
			return err
		}
		return EncodeValue(w, t)
	case Record:
		if err := w.Name(name); err != nil {
			return err
		}
		return EncodeValue(w, NewRecordValue(t))
	case PropertySource:
		if t == nil {
			return nil
		}
		if err := w.Name(name); err != nil {
			return err
		}
		return Encode(w, t)
	case []Value:
		if err := w.Name(name); err != nil {
			return err
		}
		return EncodeValue(w, NewArrayValue(t))
	case string:
		if err := w.Name(name); err != nil {
			return err
		}
		return w.String(t)
	case bool:
		if err := w.Name(name); err != nil {
			return err
		}
		return w.Bool(t)
	case json.Number:
		if err := w.Name(name); err != nil {
			return err
		}
		return w.Number(t)
	case int:
		return encodeNumber(w, name, json.Number(strconv.FormatInt(int64(t), 10)))
	case int64:
		return encodeNumber(w, name, json.Number(strconv.FormatInt(t, 10)))
	case float64:
		num, merr := json.Marshal(t)
		if merr != nil {
			return nil
		}
		return encodeNumber(w, name, json.Number(num))
	case nil:
		if err := w.Name(name); err != nil {
			return err
		}
		return w.Null()
	default:
		// Not safely readable as dynamic data; skipped by the exclusion rule.
		return nil
	}
}

func encodeNumber(w token.Writer, name string, num json.Number) error {
	if err := w.Name(name); err != nil {
		return err
	}
	return w.Number(num)
}
