// Package ruleproj projects an in-memory rule definition into the token
// shape the external policy consumer expects. The projection renames and
// regroups fields; it is strictly one-directional, and the reverse decode is
// rejected rather than producing a partial rule.
package ruleproj

import (
	"encoding/json"
	"sort"

	"github.com/iancoleman/strcase"

	perr "github.com/vhavlena/polstream/pkg/err"
	"github.com/vhavlena/polstream/pkg/record"
	"github.com/vhavlena/polstream/pkg/token"
)

// RuleDefinition is the domain rule object handed to the projection encoder.
// Condition carries the rule's matching expression as a dynamic value; an
// unset (invalid) condition projects as null.
type RuleDefinition struct {
	Name        string
	DisplayName string
	Description string
	Mode        string
	Condition   record.Value
	Effect      string
	Metadata    map[string]any
}

// Encode writes the rule in the external consumer's schema:
//
//	{
//	  "name": ...,
//	  "properties": {
//	    "displayName": ..., "description": ..., "mode": ...,
//	    "metadata": { <lowerCamel keys> },
//	    "policyRule": { "if": <condition>, "then": { "effect": ... } }
//	  }
//	}
//
// Metadata keys are renamed to lowerCamelCase and emitted in sorted order so
// the projection is deterministic.
//
// Parameters:
//
//	w token.Writer: Token sink receiving the projected rule.
//	rule *RuleDefinition: Rule to project; must be non-nil.
//
// Returns:
//
//	error: Invalid-argument failure for a nil rule, or a writer error.
func Encode(w token.Writer, rule *RuleDefinition) error {
	if rule == nil {
		return perr.ErrNilEncodeSource("rule definition")
	}
	if err := w.ObjectStart(); err != nil {
		return err
	}
	if err := writeString(w, "name", rule.Name); err != nil {
		return err
	}
	if err := w.Name("properties"); err != nil {
		return err
	}
	if err := w.ObjectStart(); err != nil {
		return err
	}
	if err := writeString(w, "displayName", rule.DisplayName); err != nil {
		return err
	}
	if err := writeString(w, "description", rule.Description); err != nil {
		return err
	}
	if err := writeString(w, "mode", rule.Mode); err != nil {
		return err
	}
	if len(rule.Metadata) > 0 {
		if err := w.Name("metadata"); err != nil {
			return err
		}
		if err := writeMetadata(w, rule.Metadata); err != nil {
			return err
		}
	}
	if err := w.Name("policyRule"); err != nil {
		return err
	}
	if err := w.ObjectStart(); err != nil {
		return err
	}
	if err := w.Name("if"); err != nil {
		return err
	}
	if rule.Condition.Kind() == record.ValueInvalid {
		if err := w.Null(); err != nil {
			return err
		}
	} else if err := record.EncodeValue(w, rule.Condition); err != nil {
		return err
	}
	if err := w.Name("then"); err != nil {
		return err
	}
	if err := w.ObjectStart(); err != nil {
		return err
	}
	if err := writeString(w, "effect", rule.Effect); err != nil {
		return err
	}
	if err := w.ObjectEnd(); err != nil { // then
		return err
	}
	if err := w.ObjectEnd(); err != nil { // policyRule
		return err
	}
	if err := w.ObjectEnd(); err != nil { // properties
		return err
	}
	return w.ObjectEnd()
}

// Decode is intentionally unimplemented: the projected shape drops fields and
// cannot be inverted into a complete RuleDefinition. It fails fast instead of
// silently returning a partial rule.
//
// Returns:
//
//	*RuleDefinition: Always nil.
//	error: Always an unsupported-operation error.
func Decode(token.Reader) (*RuleDefinition, error) {
	return nil, perr.ErrDecodeUnsupported("rule projection")
}

// Codec adapts the projection to the two-way codec shape some downstream
// tooling expects. Only the encode direction works.
type Codec struct{}

// Encode projects the rule; see the package-level Encode.
func (Codec) Encode(w token.Writer, rule *RuleDefinition) error {
	return Encode(w, rule)
}

// Decode always fails with an unsupported-operation error; see the
// package-level Decode.
func (Codec) Decode(r token.Reader) (*RuleDefinition, error) {
	return Decode(r)
}

// writeString writes a name/string pair.
func writeString(w token.Writer, name, v string) error {
	if err := w.Name(name); err != nil {
		return err
	}
	return w.String(v)
}

// writeMetadata emits the metadata map with lowerCamelCase keys in sorted
// order. Values are plain JSON-ish Go data (strings, bools, numbers, nested
// maps and slices); unsupported types project as null.
func writeMetadata(w token.Writer, meta map[string]any) error {
	if err := w.ObjectStart(); err != nil {
		return err
	}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.Name(strcase.ToLowerCamel(k)); err != nil {
			return err
		}
		if err := writeAny(w, meta[k]); err != nil {
			return err
		}
	}
	return w.ObjectEnd()
}

// writeAny emits one metadata value.
func writeAny(w token.Writer, v any) error {
	switch t := v.(type) {
	case string:
		return w.String(t)
	case bool:
		return w.Bool(t)
	case json.Number:
		return w.Number(t)
	case float64:
		b, merr := json.Marshal(t)
		if merr != nil {
			return merr
		}
		return w.Number(json.Number(b))
	case int:
		b, _ := json.Marshal(t)
		return w.Number(json.Number(b))
	case map[string]any:
		return writeMetadata(w, t)
	case []any:
		if err := w.ArrayStart(); err != nil {
			return err
		}
		for _, item := range t {
			if err := writeAny(w, item); err != nil {
				return err
			}
		}
		return w.ArrayEnd()
	case nil:
		return w.Null()
	default:
		return w.Null()
	}
}
