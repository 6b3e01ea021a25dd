package inputform

import "github.com/pkg/errors"

// Entry is a single named field of a Data set.
type Entry struct {
	Name  string
	Value Value
}

// Data is an ordered set of named values. Row order in the dialog follows
// insertion order.
type Data struct {
	entries []Entry
}

// NewData returns a Data holding the given entries. Later duplicates
// overwrite earlier ones.
func NewData(entries ...Entry) *Data {
	d := &Data{}
	for _, e := range entries {
		d.Set(e.Name, e.Value)
	}
	return d
}

// Set stores v under name. An existing name keeps its position.
func (d *Data) Set(name string, v Value) {
	for i := range d.entries {
		if d.entries[i].Name == name {
			d.entries[i].Value = v
			return
		}
	}
	d.entries = append(d.entries, Entry{Name: name, Value: v})
}

// Get returns the value stored under name.
func (d *Data) Get(name string) (Value, bool) {
	for _, e := range d.entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return nil, false
}

func (d *Data) Len() int {
	return len(d.entries)
}

func (d *Data) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		keys = append(keys, e.Name)
	}
	return keys
}

// Entries returns a copy of the entries in order.
func (d *Data) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Validate reports the first entry whose value has no editor.
func (d *Data) Validate() error {
	for _, e := range d.entries {
		if e.Value == nil {
			return errors.WithStack(&UnsupportedValueTypeError{Field: e.Name, Type: "nil"})
		}
	}
	return nil
}

// Clone returns an independent copy of d.
func (d *Data) Clone() *Data {
	c := &Data{entries: make([]Entry, len(d.entries))}
	for i, e := range d.entries {
		if l, ok := e.Value.(List); ok {
			e.Value = append(List(nil), l...)
		}
		c.entries[i] = e
	}
	return c
}

// At returns the value under name as T. The second result is false when
// the name is missing or holds a different kind.
func At[T Value](d *Data, name string) (T, bool) {
	var zero T
	v, ok := d.Get(name)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
