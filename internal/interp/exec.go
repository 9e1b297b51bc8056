package interp

import (
	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/environment"
	"github.com/teegre/fralgo-go/internal/values"
)

// exec dispatches one statement or declaration node. Declarations are
// accepted here too since the parser allows them inside any block (spec
// §4.2's grammar note that func bodies may interleave local declarations
// with statements).
func (it *Interp) exec(stmt ast.Statement) (*Signal, error) {
	switch n := stmt.(type) {
	case *ast.VarDecl:
		return nil, it.execVarDecl(n)
	case *ast.ArrayDecl:
		return nil, it.execArrayDecl(n)
	case *ast.TableDecl:
		return nil, it.execTableDecl(n)
	case *ast.ConstDecl:
		return nil, it.execConstDecl(n)
	case *ast.StructDecl:
		return nil, it.execStructDecl(n)
	case *ast.FuncDecl:
		return nil, it.execFuncDecl(n)
	case *ast.ImportDecl:
		return nil, it.execImportDecl(n)

	case *ast.AssignStmt:
		return nil, it.execAssign(n)
	case *ast.PrintStmt:
		return nil, it.execPrint(n)
	case *ast.ReadStmt:
		return nil, it.execRead(n)
	case *ast.ResizeStmt:
		return nil, it.execResize(n)
	case *ast.FileOpenStmt:
		return nil, it.execFileOpen(n)
	case *ast.FileCloseStmt:
		return nil, it.execFileClose(n)
	case *ast.FileReadStmt:
		return nil, it.execFileRead(n)
	case *ast.FileWriteStmt:
		return nil, it.execFileWrite(n)
	case *ast.IfStmt:
		return it.execIf(n)
	case *ast.WhileStmt:
		return it.execWhile(n)
	case *ast.ForStmt:
		return it.execFor(n)
	case *ast.PanicStmt:
		return nil, it.execPanic(n)
	case *ast.ContinueStmt:
		return &Signal{Kind: SigContinue}, nil
	case *ast.ExitStmt:
		return &Signal{Kind: SigExit}, nil
	case *ast.ReturnStmt:
		return it.execReturn(n)
	case *ast.ExprStmt:
		_, err := it.eval(n.Expr)
		return nil, err
	case *ast.Block:
		return it.execBlock(n)
	}
	return nil, environment.New(environment.Fatal, "nœud non pris en charge : %T", stmt)
}

func (it *Interp) execAssign(n *ast.AssignStmt) error {
	if n.ByRef {
		src, ok := n.Value.(*ast.Path)
		if !ok {
			return environment.New(environment.TypeMismatch, "référence attendue")
		}
		if !n.Target.Simple() {
			return environment.New(environment.TypeMismatch, "une référence ne peut cibler qu'une variable simple")
		}
		ns := it.NS.Current()
		if ns.CurrentContext().Name == "" {
			return environment.New(environment.Fatal, "une référence nécessite un contexte d'appel")
		}
		ns.BindReference(n.Target.Base, environment.RefTarget{Namespace: it.NS.CurrentName(), Name: src.Base})
		ns.SetDereference(true)
		return nil
	}
	if tup, ok := n.Value.(*ast.TupleLiteral); ok {
		return it.assignTuple(n.Target, tup)
	}
	v, err := it.eval(n.Value)
	if err != nil {
		return err
	}
	return it.assignPath(n.Target, v)
}

// assignTuple assigns a parenthesized value list positionally into the
// record at target (spec §3: "records assigned from tuples of values
// require matching arity").
func (it *Interp) assignTuple(target *ast.Path, tup *ast.TupleLiteral) error {
	cur, err := it.evalPath(target)
	if err != nil {
		return err
	}
	rec, ok := cur.(*values.RecordValue)
	if !ok {
		return environment.New(environment.TypeMismatch, "structure attendue pour une initialisation par tuple")
	}
	if len(tup.Elements) != len(rec.Values) {
		return environment.New(environment.TypeMismatch, "nombre de valeurs invalide pour %s", rec.Def.Name)
	}
	vals := make([]values.Value, len(tup.Elements))
	for i, e := range tup.Elements {
		v, err := it.eval(e)
		if err != nil {
			return err
		}
		coerced, err := checkElemType(rec.Def.Fields[i].Type, v)
		if err != nil {
			return err
		}
		vals[i] = coerced
	}
	if err := rec.SetAll(vals); err != nil {
		return environment.New(environment.TypeMismatch, "%v", err)
	}
	return nil
}

func (it *Interp) execIf(n *ast.IfStmt) (*Signal, error) {
	cond, err := it.eval(n.Cond)
	if err != nil {
		return nil, err
	}
	truthy, err := asBoolean(cond)
	if err != nil {
		return nil, err
	}
	if truthy {
		return it.execBlock(n.Then)
	}
	for _, ei := range n.ElseIfs {
		c, err := it.eval(ei.Cond)
		if err != nil {
			return nil, err
		}
		t, err := asBoolean(c)
		if err != nil {
			return nil, err
		}
		if t {
			return it.execBlock(ei.Body)
		}
	}
	if n.Else != nil {
		return it.execBlock(n.Else)
	}
	return nil, nil
}

func (it *Interp) execWhile(n *ast.WhileStmt) (*Signal, error) {
	for {
		cond, err := it.eval(n.Cond)
		if err != nil {
			return nil, err
		}
		truthy, err := asBoolean(cond)
		if err != nil {
			return nil, err
		}
		if !truthy {
			return nil, nil
		}
		sig, err := it.execBlock(n.Body)
		if err != nil {
			return nil, err
		}
		if sig == nil {
			continue
		}
		switch sig.Kind {
		case SigContinue:
			continue
		case SigExit:
			return nil, nil
		default: // SigReturn: propagate out of the loop
			return sig, nil
		}
	}
}

func (it *Interp) execFor(n *ast.ForStmt) (*Signal, error) {
	startV, err := it.eval(n.Start)
	if err != nil {
		return nil, err
	}
	endV, err := it.eval(n.End)
	if err != nil {
		return nil, err
	}
	start, err := asInteger(startV)
	if err != nil {
		return nil, err
	}
	end, err := asInteger(endV)
	if err != nil {
		return nil, err
	}
	step := int64(1)
	if n.Step != nil {
		stepV, err := it.eval(n.Step)
		if err != nil {
			return nil, err
		}
		step, err = asInteger(stepV)
		if err != nil {
			return nil, err
		}
	}
	if step == 0 {
		return nil, environment.New(environment.TypeMismatch, "Pour : le pas ne peut pas être nul")
	}
	path := &ast.Path{Position: n.Position, Base: n.Var}
	if err := it.assignPath(path, values.NewInteger(start)); err != nil {
		return nil, err
	}
	for (step > 0 && start <= end) || (step < 0 && start >= end) {
		sig, err := it.execBlock(n.Body)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			switch sig.Kind {
			case SigContinue:
				// fall through to increment
			case SigExit:
				return nil, nil
			default:
				return sig, nil
			}
		}
		start += step
		if err := it.assignPath(path, values.NewInteger(start)); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (it *Interp) execPanic(n *ast.PanicStmt) error {
	v, err := it.eval(n.Value)
	if err != nil {
		return err
	}
	return environment.New(environment.Panic, "%s", v.String())
}

func (it *Interp) execReturn(n *ast.ReturnStmt) (*Signal, error) {
	if n.Value == nil {
		return &Signal{Kind: SigReturn}, nil
	}
	v, err := it.eval(n.Value)
	if err != nil {
		return nil, err
	}
	return &Signal{Kind: SigReturn, Value: v}, nil
}
