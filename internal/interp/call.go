package interp

import (
	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/environment"
	"github.com/teegre/fralgo-go/internal/values"
)

// evalCall resolves and invokes a user-defined function/procedure (spec
// §4.3 FunctionCall, §4.6 namespace-qualified calls).
func (it *Interp) evalCall(n *ast.CallExpr) (values.Value, error) {
	target := it.NS.Current()
	if n.Namespace != "" {
		target = it.NS.Get(n.Namespace)
		if target == nil {
			return nil, environment.New(environment.Undeclared, "%s : espace de noms non déclaré", n.Namespace)
		}
	}
	fn, err := target.GetFunction(n.Name)
	if err != nil {
		return nil, err
	}
	return it.call(target, fn, n.Args)
}

// call binds arguments, pushes a frame, executes the body, and validates the
// return value against the declaration, unwinding the frame on every exit
// path (spec §4.3/§4.4).
func (it *Interp) call(target *environment.Namespace, fn *ast.FuncDecl, argExprs []ast.Expression) (values.Value, error) {
	if len(argExprs) != len(fn.Params) {
		return nil, environment.New(environment.InvalidParamCount, "%s : %d paramètre(s) attendu(s), %d fourni(s)", fn.Name, len(fn.Params), len(argExprs))
	}
	it.depth++
	if it.depth > maxCallDepth {
		it.depth--
		return nil, environment.New(environment.Recursion, "%s : excès de récursivité", fn.Name)
	}
	defer func() { it.depth-- }()

	hasRef := false
	for _, p := range fn.Params {
		if p.ByRef {
			hasRef = true
			break
		}
	}

	callerNS := it.NS.CurrentName()
	target.PushFrame(environment.Context{Name: fn.Name, Dereference: hasRef})
	defer target.PopFrame()

	for i, p := range fn.Params {
		if p.ByRef {
			refPath, ok := argExprs[i].(*ast.RefExpr)
			if !ok {
				return nil, environment.New(environment.TypeMismatch, "%s : référence attendue pour %s", fn.Name, p.Name)
			}
			if !refPath.Target.Simple() {
				return nil, environment.New(environment.TypeMismatch, "%s : une référence ne peut cibler qu'une variable simple", fn.Name)
			}
			target.BindReference(p.Name, environment.RefTarget{Namespace: callerNS, Name: refPath.Target.Base})
			continue
		}
		v, err := it.eval(argExprs[i])
		if err != nil {
			return nil, err
		}
		et, err := it.elemTypeOf(p.Type)
		if err != nil {
			return nil, err
		}
		coerced, err := checkElemType(et, v)
		if err != nil {
			return nil, err
		}
		if err := target.DeclareVariable(p.Name, coerced, false, false); err != nil {
			return nil, err
		}
	}

	sig, err := it.execBlock(fn.Body)
	if err != nil {
		return nil, err
	}

	if fn.IsProcedure() {
		if sig != nil && sig.Kind == SigReturn && sig.Value != nil {
			return nil, environment.New(environment.TypeMismatch, "%s : une procédure ne retourne pas de valeur", fn.Name)
		}
		return values.Nothing{}, nil
	}

	if sig == nil || sig.Kind != SigReturn || sig.Value == nil {
		return nil, environment.New(environment.TypeMismatch, "%s : aucune valeur retournée", fn.Name)
	}
	et, err := it.elemTypeOf(fn.ReturnType)
	if err != nil {
		return nil, err
	}
	return checkElemType(et, sig.Value)
}
