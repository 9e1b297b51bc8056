package interp

import (
	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/environment"
	"github.com/teegre/fralgo-go/internal/lexer"
	"github.com/teegre/fralgo-go/internal/values"
)

// eval evaluates expr to a Value (spec §4.3 Expression evaluation).
func (it *Interp) eval(expr ast.Expression) (values.Value, error) {
	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		return values.NewInteger(n.Value), nil
	case *ast.FloatLiteral:
		return values.NewFloat(n.Value), nil
	case *ast.StringLiteral:
		return values.NewString(n.Value), nil
	case *ast.BoolLiteral:
		return values.NewBoolean(n.Value), nil
	case *ast.ArrayLiteral:
		return it.evalArrayLiteral(n)
	case *ast.TupleLiteral:
		return nil, environment.New(environment.TypeMismatch, "un tuple n'est valide que pour initialiser une structure")
	case *ast.BinaryExpr:
		return it.evalBinary(n)
	case *ast.UnaryExpr:
		return it.evalUnary(n)
	case *ast.ConversionExpr:
		return it.evalConversion(n)
	case *ast.BuiltinCall:
		return it.evalBuiltin(n)
	case *ast.CallExpr:
		return it.evalCall(n)
	case *ast.RefExpr:
		return nil, environment.New(environment.TypeMismatch, "une référence n'est valide que comme argument")
	case *ast.Path:
		return it.evalPath(n)
	}
	return nil, environment.New(environment.Fatal, "expression non prise en charge : %T", expr)
}

// evalArrayLiteral evaluates a bracketed literal into a one-dimensional
// Array, inferring the element type from the first element and validating
// every other element against it (spec §3: "on a plain-literal array
// assignment, mixed-type elements fail"). A nested literal (the first
// element itself an Array) instead requires every element to be an Array
// of the same length ("arrays are rectangular ... every sub-array must
// have the same length").
func (it *Interp) evalArrayLiteral(n *ast.ArrayLiteral) (values.Value, error) {
	elems := make([]values.Value, len(n.Elements))
	for i, e := range n.Elements {
		v, err := it.eval(e)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	et := values.ElemType{Kind: "Quelconque"}
	firstIsArray := false
	subLen := -1
	if len(elems) > 0 {
		if sub, ok := elems[0].(*values.Array); ok {
			firstIsArray = true
			subLen = sub.Length()
		} else {
			et = inferElemType(elems[0])
		}
	}
	for i, v := range elems {
		sub, isArray := v.(*values.Array)
		switch {
		case firstIsArray && !isArray:
			return nil, environment.New(environment.TypeMismatch, "élément %d : sous-tableau attendu, %s fourni", i, v.Type())
		case firstIsArray:
			if sub.Length() != subLen {
				return nil, environment.New(environment.TypeMismatch, "élément %d : sous-tableau de %d élément(s) attendu, %d fourni(s)", i, subLen, sub.Length())
			}
		case isArray:
			return nil, environment.New(environment.TypeMismatch, "élément %d : %s attendu, sous-tableau fourni", i, et.String())
		default:
			coerced, err := checkElemType(et, v)
			if err != nil {
				return nil, environment.New(environment.TypeMismatch, "élément %d : %s attendu, %s fourni", i, et.String(), v.Type())
			}
			elems[i] = coerced
		}
	}
	maxIdx := len(elems) - 1
	if maxIdx < 0 {
		maxIdx = -1
	}
	arr := values.NewArray(et, []int{maxIdx}, func() values.Value { return it.zeroValue(et) })
	for i, v := range elems {
		if err := arr.Set([]int{i}, v); err != nil {
			return nil, environment.New(environment.IndexOutOfRange, "%v", err)
		}
	}
	return arr, nil
}

func inferElemType(v values.Value) values.ElemType {
	switch t := v.(type) {
	case *values.Integer:
		return values.ElemType{Kind: "Entier"}
	case *values.Float:
		return values.ElemType{Kind: "Numérique"}
	case *values.String:
		return values.ElemType{Kind: "Chaîne"}
	case *values.Boolean:
		return values.ElemType{Kind: "Booléen"}
	case *values.SizedChar:
		return values.ElemType{Kind: "Caractère", CharSize: t.Size}
	case *values.RecordValue:
		return values.ElemType{Kind: "Structure", StructName: t.Def.Name}
	}
	return values.ElemType{Kind: "Quelconque"}
}

func (it *Interp) evalBinary(n *ast.BinaryExpr) (values.Value, error) {
	l, err := it.eval(n.Left)
	if err != nil {
		return nil, err
	}
	r, err := it.eval(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case lexer.PLUS:
		return wrapArith(values.Add(l, r))
	case lexer.MINUS:
		return wrapArith(values.Sub(l, r))
	case lexer.STAR:
		return wrapArith(values.Mul(l, r))
	case lexer.SLASH:
		return wrapDiv(values.Div(l, r))
	case lexer.PERCENT:
		return wrapDiv(values.Mod(l, r))
	case lexer.CARET:
		return wrapArith(values.Pow(l, r))
	case lexer.AMP:
		return wrapArith(values.Concat(l, r))
	case lexer.DP:
		return wrapDiv(values.DivideBy(l, r))
	case lexer.ET:
		return wrapArith(values.And(l, r))
	case lexer.OU:
		return wrapArith(values.Or(l, r))
	case lexer.OUX:
		return wrapArith(values.Xor(l, r))
	case lexer.EQ:
		return wrapCompare(values.Equal(l, r))
	case lexer.NEQ:
		eq, err := values.Equal(l, r)
		if err != nil {
			return nil, environment.New(environment.TypeMismatch, "%v", err)
		}
		return values.NewBoolean(!eq), nil
	case lexer.GT:
		return wrapOrder(values.Compare(l, r), func(c int) bool { return c > 0 })
	case lexer.LT:
		return wrapOrder(values.Compare(l, r), func(c int) bool { return c < 0 })
	case lexer.GE:
		return wrapOrder(values.Compare(l, r), func(c int) bool { return c >= 0 })
	case lexer.LE:
		return wrapOrder(values.Compare(l, r), func(c int) bool { return c <= 0 })
	}
	return nil, environment.New(environment.Fatal, "opérateur non pris en charge : %s", n.Op)
}

func wrapArith(v values.Value, err error) (values.Value, error) {
	if err != nil {
		return nil, environment.New(environment.TypeMismatch, "%v", err)
	}
	return v, nil
}

func wrapDiv(v values.Value, err error) (values.Value, error) {
	if err == values.ErrZeroDivide {
		return nil, environment.New(environment.ZeroDivide, "%v", err)
	}
	if err != nil {
		return nil, environment.New(environment.TypeMismatch, "%v", err)
	}
	return v, nil
}

func wrapCompare(eq bool, err error) (values.Value, error) {
	if err != nil {
		return nil, environment.New(environment.TypeMismatch, "%v", err)
	}
	return values.NewBoolean(eq), nil
}

func wrapOrder(c int, err error, pred func(int) bool) (values.Value, error) {
	if err != nil {
		return nil, environment.New(environment.TypeMismatch, "%v", err)
	}
	return values.NewBoolean(pred(c)), nil
}

func (it *Interp) evalUnary(n *ast.UnaryExpr) (values.Value, error) {
	if n.Op == lexer.AMP {
		return nil, environment.New(environment.TypeMismatch, "une référence n'est valide que comme argument")
	}
	v, err := it.eval(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case lexer.MINUS:
		return wrapArith(values.Neg(v))
	case lexer.NON:
		return wrapArith(values.Not(v))
	}
	return nil, environment.New(environment.Fatal, "opérateur unaire non pris en charge : %s", n.Op)
}

func (it *Interp) evalConversion(n *ast.ConversionExpr) (values.Value, error) {
	v, err := it.eval(n.Arg)
	if err != nil {
		return nil, err
	}
	var out values.Value
	switch n.Target {
	case lexer.ENTIER:
		out, err = values.ToEntier(v)
	case lexer.NUMERIQUE:
		out, err = values.ToNumerique(v)
	case lexer.CHAINE:
		out, err = values.ToChaine(v)
	case lexer.BOOLEEN:
		out, err = values.ToBooleen(v)
	default:
		return nil, environment.New(environment.Fatal, "conversion non prise en charge : %s", n.Target)
	}
	if err != nil {
		return nil, environment.New(environment.TypeMismatch, "%v", err)
	}
	return out, nil
}
