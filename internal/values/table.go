package values

import "strings"

// Table is an insertion-ordered associative mapping with a declared key
// type and value type (spec §3 Data Model, GLOSSARY "Table").
type Table struct {
	KeyType   ElemType
	ValueType ElemType
	keys      []string // insertion order, keyed by String() of the key value
	index     map[string]int
	pairs     []tablePair
}

type tablePair struct {
	Key   Value
	Value Value
}

// NewTable builds an empty Table of the given key/value types.
func NewTable(keyType, valueType ElemType) *Table {
	return &Table{KeyType: keyType, ValueType: valueType, index: map[string]int{}}
}

func (t *Table) Type() string  { return "Table(" + t.KeyType.String() + "," + t.ValueType.String() + ")" }
func (t *Table) IsEmpty() bool { return len(t.pairs) == 0 }
func (t *Table) String() string {
	parts := make([]string, len(t.pairs))
	for i, p := range t.pairs {
		parts[i] = p.Key.String() + ":" + p.Value.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Copy deep-copies the table and every value it holds.
func (t *Table) Copy() Value {
	cp := NewTable(t.KeyType, t.ValueType)
	for _, p := range t.pairs {
		v := p.Value
		if c, ok := v.(Copyable); ok {
			v = c.Copy()
		}
		cp.Set(p.Key, v)
	}
	return cp
}

// Has reports whether key is present (Existe built-in).
func (t *Table) Has(key Value) bool {
	_, ok := t.index[key.String()]
	return ok
}

// Get returns the value for key.
func (t *Table) Get(key Value) (Value, bool) {
	i, ok := t.index[key.String()]
	if !ok {
		return nil, false
	}
	return t.pairs[i].Value, true
}

// Set inserts or overwrites key→value, preserving first-insertion order.
func (t *Table) Set(key, value Value) {
	k := key.String()
	if i, ok := t.index[k]; ok {
		t.pairs[i].Value = value
		return
	}
	t.index[k] = len(t.pairs)
	t.pairs = append(t.pairs, tablePair{Key: key, Value: value})
}

// Keys returns the table's keys in insertion order (Clefs built-in).
func (t *Table) Keys() []Value {
	out := make([]Value, len(t.pairs))
	for i, p := range t.pairs {
		out[i] = p.Key
	}
	return out
}

// Vals returns the table's values in insertion order (Valeurs built-in).
func (t *Table) Vals() []Value {
	out := make([]Value, len(t.pairs))
	for i, p := range t.pairs {
		out[i] = p.Value
	}
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.pairs) }
