package interp

import (
	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/environment"
	"github.com/teegre/fralgo-go/internal/values"
)

// elemTypeOf resolves a parsed type expression into the closed ElemType
// descriptor the value model understands, evaluating a sized-character's
// size expression and looking up structure names against the current
// namespace's registry.
func (it *Interp) elemTypeOf(t *ast.TypeExpr) (values.ElemType, error) {
	switch t.Name {
	case "Entier", "Numérique", "Chaîne", "Booléen", "Quelconque":
		return values.ElemType{Kind: t.Name}, nil
	case "Caractère":
		if t.CharSize == nil {
			return values.ElemType{}, environment.New(environment.InvalidCharSize, "Caractère : taille manquante")
		}
		sizeVal, err := it.eval(t.CharSize)
		if err != nil {
			return values.ElemType{}, err
		}
		iv, ok := sizeVal.(*values.Integer)
		if !ok || !iv.Defined || iv.Value < 1 || iv.Value > 255 {
			return values.ElemType{}, environment.New(environment.InvalidCharSize, "Caractère : taille invalide")
		}
		return values.ElemType{Kind: "Caractère", CharSize: int(iv.Value)}, nil
	default:
		if _, err := it.NS.Current().GetStructure(t.Name); err != nil {
			return values.ElemType{}, err
		}
		return values.ElemType{Kind: "Structure", StructName: t.Name}, nil
	}
}

// zeroValue builds the "declared but unassigned" runtime value for et.
func (it *Interp) zeroValue(et values.ElemType) values.Value {
	switch et.Kind {
	case "Entier":
		return values.UndefinedInteger()
	case "Numérique":
		return values.UndefinedFloat()
	case "Chaîne":
		return values.UndefinedString()
	case "Booléen":
		return values.UndefinedBoolean()
	case "Caractère":
		return values.UndefinedSizedChar(et.CharSize)
	case "Structure":
		def, err := it.NS.Current().GetStructure(et.StructName)
		if err != nil {
			return values.Nothing{}
		}
		return it.zeroRecord(def)
	}
	return values.Nothing{} // Quelconque, or an unresolved kind
}

// zeroRecord builds a fresh instance of def, leaving self-referential
// fields as Nothing until assigned (spec §3 Invariants).
func (it *Interp) zeroRecord(def *values.Structure) *values.RecordValue {
	return values.NewRecord(def, func(f values.StructureField) values.Value {
		if f.Type.Kind == "Structure" && f.Type.StructName == def.Name {
			return values.Nothing{}
		}
		return it.zeroValue(f.Type)
	})
}

// copyIfNeeded deep-copies v when it is a composite (array/record/table)
// value, so assignment never aliases storage (spec §3 Invariants: "record
// field assignment copies, it does not alias").
func copyIfNeeded(v values.Value) values.Value {
	if c, ok := v.(values.Copyable); ok {
		return c.Copy()
	}
	return v
}

// checkElemType coerces v to the declared element type decl, applying the
// same coercions the evaluator's FunctionCall parameter binding uses
// (spec §4.3): String accepted where SizedChar is declared, Integer
// promotes to Float, Quelconque accepts anything, and a recursive
// structure field in its Nothing (unset) state accepts the defined type.
func checkElemType(decl values.ElemType, v values.Value) (values.Value, error) {
	v = copyIfNeeded(v)
	switch decl.Kind {
	case "Entier":
		if iv, ok := v.(*values.Integer); ok {
			return iv, nil
		}
	case "Numérique":
		switch t := v.(type) {
		case *values.Float:
			return t, nil
		case *values.Integer:
			if !t.Defined {
				return values.UndefinedFloat(), nil
			}
			return values.NewFloat(float64(t.Value)), nil
		}
	case "Chaîne":
		if sv, ok := v.(*values.String); ok {
			return sv, nil
		}
	case "Booléen":
		if bv, ok := v.(*values.Boolean); ok {
			return bv, nil
		}
	case "Caractère":
		switch t := v.(type) {
		case *values.String:
			return values.NewSizedChar(t.Value, decl.CharSize), nil
		case *values.SizedChar:
			return values.NewSizedChar(t.Value, decl.CharSize), nil
		}
	case "Quelconque":
		return v, nil
	case "Structure":
		if rv, ok := v.(*values.RecordValue); ok && rv.Def.Name == decl.StructName {
			return rv, nil
		}
		if _, ok := v.(values.Nothing); ok {
			return v, nil
		}
	}
	return nil, environment.New(environment.TypeMismatch, "%s attendu, %s fourni", decl.String(), v.Type())
}
