package values

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrZeroDivide is returned by Div/Mod/DivideBy on a zero divisor.
var ErrZeroDivide = errors.New("division par zéro")

// ErrConversion is returned by the explicit Entier/Numérique/Chaîne/Booléen
// conversion built-ins when the source value cannot be read as the target
// type.
var ErrConversion = errors.New("conversion impossible")

func isNumeric(v Value) bool {
	switch v.(type) {
	case *Integer, *Float:
		return true
	}
	return false
}

func asFloat(v Value) float64 {
	switch t := v.(type) {
	case *Integer:
		return float64(t.Value)
	case *Float:
		return t.Value
	}
	return 0
}

func bothInt(a, b Value) (*Integer, *Integer, bool) {
	ai, aok := a.(*Integer)
	bi, bok := b.(*Integer)
	return ai, bi, aok && bok
}

// Add implements `+`: numeric addition, promoting to Float unless both
// operands are Entier (spec §4.3 BinOp).
func Add(a, b Value) (Value, error) {
	if ai, bi, ok := bothInt(a, b); ok {
		return NewInteger(ai.Value + bi.Value), nil
	}
	if isNumeric(a) && isNumeric(b) {
		return NewFloat(asFloat(a) + asFloat(b)), nil
	}
	return nil, NewTypeMismatch("Entier ou Numérique", a.Type())
}

// Sub implements `-`.
func Sub(a, b Value) (Value, error) {
	if ai, bi, ok := bothInt(a, b); ok {
		return NewInteger(ai.Value - bi.Value), nil
	}
	if isNumeric(a) && isNumeric(b) {
		return NewFloat(asFloat(a) - asFloat(b)), nil
	}
	return nil, NewTypeMismatch("Entier ou Numérique", a.Type())
}

// Mul implements `*`.
func Mul(a, b Value) (Value, error) {
	if ai, bi, ok := bothInt(a, b); ok {
		return NewInteger(ai.Value * bi.Value), nil
	}
	if isNumeric(a) && isNumeric(b) {
		return NewFloat(asFloat(a) * asFloat(b)), nil
	}
	return nil, NewTypeMismatch("Entier ou Numérique", a.Type())
}

// Div implements `/`: integer floor division when both operands are Entier,
// floating division otherwise (spec §4.3 BinOp).
func Div(a, b Value) (Value, error) {
	if ai, bi, ok := bothInt(a, b); ok {
		if bi.Value == 0 {
			return nil, ErrZeroDivide
		}
		return NewInteger(floorDivInt(ai.Value, bi.Value)), nil
	}
	if isNumeric(a) && isNumeric(b) {
		d := asFloat(b)
		if d == 0 {
			return nil, ErrZeroDivide
		}
		return NewFloat(asFloat(a) / d), nil
	}
	return nil, NewTypeMismatch("Entier ou Numérique", a.Type())
}

func floorDivInt(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Mod implements `%`.
func Mod(a, b Value) (Value, error) {
	ai, bi, ok := bothInt(a, b)
	if !ok {
		return nil, NewTypeMismatch("Entier", a.Type())
	}
	if bi.Value == 0 {
		return nil, ErrZeroDivide
	}
	m := ai.Value % bi.Value
	if m != 0 && ((m < 0) != (bi.Value < 0)) {
		m += bi.Value
	}
	return NewInteger(m), nil
}

// Pow implements `^`, always yielding Numérique.
func Pow(a, b Value) (Value, error) {
	if !isNumeric(a) || !isNumeric(b) {
		return nil, NewTypeMismatch("Entier ou Numérique", a.Type())
	}
	return NewFloat(math.Pow(asFloat(a), asFloat(b))), nil
}

// DivideBy implements the `DP` ("divise par") boolean operator: VRAI when b
// evenly divides a.
func DivideBy(a, b Value) (Value, error) {
	ai, bi, ok := bothInt(a, b)
	if !ok {
		return nil, NewTypeMismatch("Entier", a.Type())
	}
	if bi.Value == 0 {
		return nil, ErrZeroDivide
	}
	return NewBoolean(ai.Value%bi.Value == 0), nil
}

func asText(v Value) (string, bool) {
	switch t := v.(type) {
	case *String:
		return t.Value, true
	case *SizedChar:
		return t.Value, true
	}
	return "", false
}

// Concat implements `&`: both operands must be text (spec §4.3 BinOp).
func Concat(a, b Value) (Value, error) {
	as, aok := asText(a)
	bs, bok := asText(b)
	if !aok || !bok {
		return nil, NewTypeMismatch("Chaîne", a.Type())
	}
	return NewString(as + bs), nil
}

// Neg implements unary `-`.
func Neg(v Value) (Value, error) {
	switch t := v.(type) {
	case *Integer:
		return NewInteger(-t.Value), nil
	case *Float:
		return NewFloat(-t.Value), nil
	}
	return nil, NewTypeMismatch("Entier ou Numérique", v.Type())
}

// And implements the logical `ET` operator.
func And(a, b Value) (Value, error) {
	ab, aok := a.(*Boolean)
	bb, bok := b.(*Boolean)
	if !aok || !bok {
		return nil, NewTypeMismatch("Booléen", a.Type())
	}
	return NewBoolean(Truthy(ab) && Truthy(bb)), nil
}

// Or implements the logical `OU` operator.
func Or(a, b Value) (Value, error) {
	ab, aok := a.(*Boolean)
	bb, bok := b.(*Boolean)
	if !aok || !bok {
		return nil, NewTypeMismatch("Booléen", a.Type())
	}
	return NewBoolean(Truthy(ab) || Truthy(bb)), nil
}

// Xor implements the logical `OUX` operator.
func Xor(a, b Value) (Value, error) {
	ab, aok := a.(*Boolean)
	bb, bok := b.(*Boolean)
	if !aok || !bok {
		return nil, NewTypeMismatch("Booléen", a.Type())
	}
	return NewBoolean(Truthy(ab) != Truthy(bb)), nil
}

// Not implements the logical `NON` operator.
func Not(v Value) (Value, error) {
	b, ok := v.(*Boolean)
	if !ok {
		return nil, NewTypeMismatch("Booléen", v.Type())
	}
	return NewBoolean(!Truthy(b)), nil
}

// ToEntier implements the Entier() explicit conversion.
func ToEntier(v Value) (Value, error) {
	switch t := v.(type) {
	case *Integer:
		return NewInteger(t.Value), nil
	case *Float:
		return NewInteger(int64(t.Value)), nil
	case *String:
		n, err := strconv.ParseInt(strings.TrimSpace(t.Value), 10, 64)
		if err != nil {
			return nil, ErrConversion
		}
		return NewInteger(n), nil
	case *SizedChar:
		n, err := strconv.ParseInt(strings.TrimSpace(t.Value), 10, 64)
		if err != nil {
			return nil, ErrConversion
		}
		return NewInteger(n), nil
	case *Boolean:
		if Truthy(t) {
			return NewInteger(1), nil
		}
		return NewInteger(0), nil
	}
	return nil, ErrConversion
}

// ToNumerique implements the Numérique() explicit conversion.
func ToNumerique(v Value) (Value, error) {
	switch t := v.(type) {
	case *Float:
		return NewFloat(t.Value), nil
	case *Integer:
		return NewFloat(float64(t.Value)), nil
	case *String:
		f, err := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
		if err != nil {
			return nil, ErrConversion
		}
		return NewFloat(f), nil
	case *SizedChar:
		f, err := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
		if err != nil {
			return nil, ErrConversion
		}
		return NewFloat(f), nil
	}
	return nil, ErrConversion
}

// ToChaine implements the Chaîne() explicit conversion: every value
// type converts via its own String().
func ToChaine(v Value) (Value, error) {
	return NewString(v.String()), nil
}

// ToBooleen implements the Booléen() explicit conversion.
func ToBooleen(v Value) (Value, error) {
	switch t := v.(type) {
	case *Boolean:
		return NewBoolean(Truthy(t)), nil
	case *Integer:
		return NewBoolean(t.Value != 0), nil
	case *String:
		switch strings.ToUpper(strings.TrimSpace(t.Value)) {
		case "VRAI":
			return NewBoolean(true), nil
		case "FAUX":
			return NewBoolean(false), nil
		}
		return nil, ErrConversion
	}
	return nil, ErrConversion
}
