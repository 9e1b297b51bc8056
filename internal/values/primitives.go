package values

import (
	"strconv"
	"strings"
)

// Boolean is VRAI/FAUX, or empty (declared but never assigned).
type Boolean struct {
	Value   bool
	Defined bool
}

// NewBoolean wraps a concrete bool.
func NewBoolean(b bool) *Boolean { return &Boolean{Value: b, Defined: true} }

// UndefinedBoolean is a declared-but-unassigned Booléen slot.
func UndefinedBoolean() *Boolean { return &Boolean{} }

func (b *Boolean) Type() string   { return "Booléen" }
func (b *Boolean) IsEmpty() bool  { return !b.Defined }
func (b *Boolean) String() string {
	if !b.Defined {
		return "?"
	}
	if b.Value {
		return "VRAI"
	}
	return "FAUX"
}
func (b *Boolean) Copy() Value { return &Boolean{Value: b.Value, Defined: b.Defined} }

// Integer is a signed integer value, or empty.
type Integer struct {
	Value   int64
	Defined bool
}

func NewInteger(v int64) *Integer  { return &Integer{Value: v, Defined: true} }
func UndefinedInteger() *Integer   { return &Integer{} }
func (i *Integer) Type() string    { return "Entier" }
func (i *Integer) IsEmpty() bool   { return !i.Defined }
func (i *Integer) String() string {
	if !i.Defined {
		return "?"
	}
	return strconv.FormatInt(i.Value, 10)
}
func (i *Integer) Copy() Value { return &Integer{Value: i.Value, Defined: i.Defined} }

// Float is an IEEE-754 double value, or empty.
type Float struct {
	Value   float64
	Defined bool
}

func NewFloat(v float64) *Float  { return &Float{Value: v, Defined: true} }
func UndefinedFloat() *Float     { return &Float{} }
func (f *Float) Type() string    { return "Numérique" }
func (f *Float) IsEmpty() bool   { return !f.Defined }
func (f *Float) String() string {
	if !f.Defined {
		return "?"
	}
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}
func (f *Float) Copy() Value { return &Float{Value: f.Value, Defined: f.Defined} }

// String is free-form text, or empty.
type String struct {
	Value   string
	Defined bool
}

func NewString(v string) *String { return &String{Value: v, Defined: true} }
func UndefinedString() *String   { return &String{} }
func (s *String) Type() string   { return "Chaîne" }
func (s *String) IsEmpty() bool  { return !s.Defined }
func (s *String) String() string {
	if !s.Defined {
		return "?"
	}
	return s.Value
}
func (s *String) Copy() Value { return &String{Value: s.Value, Defined: s.Defined} }

// SizedChar is a fixed-length text value, right-padded with spaces to Size
// and truncated on overlong assignment (spec §9 Open Question, resolved:
// truncation is silent).
type SizedChar struct {
	Value   string
	Size    int
	Defined bool
}

// NewSizedChar builds a SizedChar, padding/truncating v to size.
func NewSizedChar(v string, size int) *SizedChar {
	return &SizedChar{Value: padOrTruncate(v, size), Size: size, Defined: true}
}

// UndefinedSizedChar is a declared-but-unassigned Caractère*N slot.
func UndefinedSizedChar(size int) *SizedChar { return &SizedChar{Size: size} }

func padOrTruncate(v string, size int) string {
	r := []rune(v)
	if len(r) < size {
		return v + strings.Repeat(" ", size-len(r))
	}
	return string(r[:size])
}

// Set assigns and re-pads/truncates v into the slot, preserving Size.
func (c *SizedChar) Set(v string) {
	c.Value = padOrTruncate(v, c.Size)
	c.Defined = true
}

func (c *SizedChar) Type() string  { return "Caractère*" + strconv.Itoa(c.Size) }
func (c *SizedChar) IsEmpty() bool { return !c.Defined }
func (c *SizedChar) String() string {
	if !c.Defined {
		return "?"
	}
	return c.Value
}
func (c *SizedChar) Copy() Value { return &SizedChar{Value: c.Value, Size: c.Size, Defined: c.Defined} }

// Nothing represents a declared-but-undefined value of no particular type
// yet (spec §3: "declared but undefined", prints as "?", false in boolean
// contexts).
type Nothing struct{}

func (Nothing) Type() string   { return "Rien" }
func (Nothing) IsEmpty() bool  { return true }
func (Nothing) String() string { return "?" }

// Truthy reports whether v is considered "true" in a boolean context: a
// Boolean holding true, or any other non-Nothing, non-false value is an
// error at the call site (callers should type-check first) — Nothing itself
// is always false.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case *Boolean:
		return t.Defined && t.Value
	case Nothing:
		return false
	}
	return false
}
