package record

// Field is a single named entry in a dynamic record.
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered sequence of named fields. Traversal order equals the
// order properties were encountered in the source stream. Names are not
// required to be unique: a duplicated property in the source appears once per
// occurrence unless decoding ran with LastFieldWins.
type Record []Field

// Get returns the value of the first field with the given name.
//
// Parameters:
//
//	name string: Field name to look up (case-sensitive).
//
// Returns:
//
//	Value: The first matching value.
//	bool: True when a field with that name exists.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Names returns the field names in traversal order, including duplicates.
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// Properties implements PropertySource so a decoded record can be handed
// straight back to the generic encoder. Every field is readable.
func (r Record) Properties() []Property {
	props := make([]Property, len(r))
	for i, f := range r {
		props[i] = Property{Name: f.Name, Readable: true, Value: f.Value}
	}
	return props
}

// set appends the field, or overwrites the first occurrence of the name when
// lastWins is set.
func (r Record) set(name string, v Value, lastWins bool) Record {
	if lastWins {
		for i := range r {
			if r[i].Name == name {
				r[i].Value = v
				return r
			}
		}
	}
	return append(r, Field{Name: name, Value: v})
}
