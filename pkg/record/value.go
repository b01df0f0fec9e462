// Package record implements the dynamic record model: an order-preserving,
// schema-free tree of objects, arrays, and scalars decoded from (and encoded
// back to) a structural token stream.
package record

import (
	"encoding/json"
)

// ValueKind enumerates the supported value categories in a dynamic record
// tree.
//
// Values:
//
//	ValueInvalid | ValueNull | ValueBool | ValueNumber | ValueString |
//	ValueArray | ValueRecord
type ValueKind string

const (
	ValueInvalid ValueKind = "invalid"
	ValueNull    ValueKind = "null"
	ValueBool    ValueKind = "bool"
	ValueNumber  ValueKind = "number"
	ValueString  ValueKind = "string"
	ValueArray   ValueKind = "array"
	ValueRecord  ValueKind = "record"
)

// Value is a simple tagged-union over the scalar, array, and record payloads
// a token stream can carry. Numbers keep their literal form (json.Number) so
// that encoding a decoded tree reproduces the source text.
//
// Fields:
//
//	kind ValueKind: Discriminator.
//	boolVal bool: Payload for booleans.
//	numVal json.Number: Payload for numbers.
//	strVal string: Payload for strings.
//	arrVal []Value: Payload for arrays.
//	recVal Record: Payload for nested records.
type Value struct {
	kind    ValueKind
	boolVal bool
	numVal  json.Number
	strVal  string
	arrVal  []Value
	recVal  Record
}

// NewNullValue creates a Value representing an explicit null.
//
// Returns:
//
//	Value: A Value tagged as ValueNull.
func NewNullValue() Value {
	return Value{kind: ValueNull}
}

// NewBoolValue creates a Value that stores a boolean.
//
// Parameters:
//
//	v bool: Boolean payload to wrap.
//
// Returns:
//
//	Value: A Value tagged as ValueBool.
func NewBoolValue(v bool) Value {
	return Value{kind: ValueBool, boolVal: v}
}

// NewNumberValue creates a Value that stores a number in literal form.
//
// Parameters:
//
//	v json.Number: Numeric literal to wrap.
//
// Returns:
//
//	Value: A Value tagged as ValueNumber.
func NewNumberValue(v json.Number) Value {
	return Value{kind: ValueNumber, numVal: v}
}

// NewStringValue creates a Value that stores a UTF-8 string.
//
// Parameters:
//
//	v string: String payload to wrap.
//
// Returns:
//
//	Value: A Value tagged as ValueString.
func NewStringValue(v string) Value {
	return Value{kind: ValueString, strVal: v}
}

// NewArrayValue creates a Value that stores an ordered collection.
//
// Parameters:
//
//	items []Value: Elements of the resulting array.
//
// Returns:
//
//	Value: A Value tagged as ValueArray with a defensive copy of items.
func NewArrayValue(items []Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: ValueArray, arrVal: cp}
}

// NewRecordValue creates a Value that stores a nested record.
//
// Parameters:
//
//	rec Record: Ordered field sequence to wrap.
//
// Returns:
//
//	Value: A Value tagged as ValueRecord with a defensive copy of rec.
func NewRecordValue(rec Record) Value {
	cp := make(Record, len(rec))
	copy(cp, rec)
	return Value{kind: ValueRecord, recVal: cp}
}

// Kind returns the discriminator for the stored data.
//
// Returns:
//
//	ValueKind: The stored kind, defaulting to ValueInvalid when unset.
func (v Value) Kind() ValueKind {
	if v.kind == "" {
		return ValueInvalid
	}
	return v.kind
}

// IsNull reports whether the Value is an explicit null.
func (v Value) IsNull() bool {
	return v.kind == ValueNull
}

// Bool returns the boolean payload when the Value represents a bool.
//
// Returns:
//
//	bool: Stored boolean value.
//	bool: True when the Value actually contains a boolean.
func (v Value) Bool() (bool, bool) {
	if v.kind != ValueBool {
		return false, false
	}
	return v.boolVal, true
}

// Number returns the numeric payload when the Value represents a number.
//
// Returns:
//
//	json.Number: Stored numeric literal.
//	bool: True when the Value actually contains a number.
func (v Value) Number() (json.Number, bool) {
	if v.kind != ValueNumber {
		return "", false
	}
	return v.numVal, true
}

// String returns the string payload when the Value represents a string.
//
// Returns:
//
//	string: Stored string value.
//	bool: True when the Value actually contains a string.
func (v Value) String() (string, bool) {
	if v.kind != ValueString {
		return "", false
	}
	return v.strVal, true
}

// Array returns the slice payload when the Value represents an array.
//
// Returns:
//
//	[]Value: Defensive copy of the stored slice.
//	bool: True when the Value actually contains an array.
func (v Value) Array() ([]Value, bool) {
	if v.kind != ValueArray {
		return nil, false
	}
	cp := make([]Value, len(v.arrVal))
	copy(cp, v.arrVal)
	return cp, true
}

// Record returns the record payload when the Value represents a nested
// record.
//
// Returns:
//
//	Record: Defensive copy of the stored field sequence.
//	bool: True when the Value actually contains a record.
func (v Value) Record() (Record, bool) {
	if v.kind != ValueRecord {
		return nil, false
	}
	cp := make(Record, len(v.recVal))
	copy(cp, v.recVal)
	return cp, true
}

// AsInterface returns the closest built-in Go representation (nil, bool,
// json.Number, string, []any, map[string]any) for the stored value,
// recursively converting nested elements. Duplicate field names collapse to
// the last occurrence; order is lost. Use the typed accessors when either
// matters.
//
// Returns:
//
//	any: Native Go value matching the stored payload.
func (v Value) AsInterface() any {
	switch v.kind {
	case ValueBool:
		return v.boolVal
	case ValueNumber:
		return v.numVal
	case ValueString:
		return v.strVal
	case ValueArray:
		arr := make([]any, len(v.arrVal))
		for i, item := range v.arrVal {
			arr[i] = item.AsInterface()
		}
		return arr
	case ValueRecord:
		mp := make(map[string]any, len(v.recVal))
		for _, f := range v.recVal {
			mp[f.Name] = f.Value.AsInterface()
		}
		return mp
	default:
		return nil
	}
}
