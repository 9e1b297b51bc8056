package interp

import (
	"path/filepath"
	"strings"

	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/environment"
	"github.com/teegre/fralgo-go/internal/values"
)

// execDeclarations runs a declaration list in order (spec §4.2 "Program":
// declarations precede the main/Initialise body).
func (it *Interp) execDeclarations(decls []ast.Statement) error {
	for _, d := range decls {
		if _, err := it.exec(d); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interp) execVarDecl(n *ast.VarDecl) error {
	et, err := it.elemTypeOf(n.Type)
	if err != nil {
		return err
	}
	ns := it.NS.Current()
	for _, name := range n.Names {
		if err := ns.DeclareVariable(name, it.zeroValue(et), false, false); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interp) execArrayDecl(n *ast.ArrayDecl) error {
	et, err := it.elemTypeOf(n.ElemType)
	if err != nil {
		return err
	}
	var maxIdx []int
	if n.Undimensioned {
		maxIdx = []int{-1}
	} else {
		maxIdx = make([]int, len(n.Dims))
		for i, d := range n.Dims {
			v, err := it.eval(d)
			if err != nil {
				return err
			}
			iv, ok := v.(*values.Integer)
			if !ok || !iv.Defined {
				return environment.New(environment.TypeMismatch, "%s : index maximum entier attendu", n.Name)
			}
			maxIdx[i] = int(iv.Value)
		}
	}
	arr := values.NewArray(et, maxIdx, func() values.Value { return it.zeroValue(et) })
	return it.NS.Current().DeclareVariable(n.Name, arr, false, false)
}

func (it *Interp) execTableDecl(n *ast.TableDecl) error {
	kt, err := it.elemTypeOf(n.KeyType)
	if err != nil {
		return err
	}
	vt, err := it.elemTypeOf(n.ValueType)
	if err != nil {
		return err
	}
	return it.NS.Current().DeclareVariable(n.Name, values.NewTable(kt, vt), false, false)
}

func (it *Interp) execConstDecl(n *ast.ConstDecl) error {
	et, err := it.elemTypeOf(n.Type)
	if err != nil {
		return err
	}
	val, err := it.eval(n.Value)
	if err != nil {
		return err
	}
	coerced, err := checkElemType(et, val)
	if err != nil {
		return err
	}
	return it.NS.Current().DeclareVariable(n.Name, coerced, true, false)
}

func (it *Interp) execStructDecl(n *ast.StructDecl) error {
	fields := make([]values.StructureField, len(n.Fields))
	for i, f := range n.Fields {
		var et values.ElemType
		if f.Type.Name == n.Name {
			et = values.ElemType{Kind: "Structure", StructName: n.Name}
		} else {
			var err error
			et, err = it.elemTypeOf(f.Type)
			if err != nil {
				return err
			}
		}
		fields[i] = values.StructureField{Name: f.Name, Type: et}
	}
	return it.NS.Current().DeclareStructure(&values.Structure{Name: n.Name, Fields: fields})
}

func (it *Interp) execFuncDecl(n *ast.FuncDecl) error {
	return it.NS.Current().DeclareLocalFunction(n)
}

// execImportDecl resolves and evaluates a library file into a freshly
// declared namespace (spec §4.6 Library loader).
func (it *Interp) execImportDecl(n *ast.ImportDecl) error {
	prog, err := it.Libs.Load(n.Libfile)
	if err != nil {
		return err
	}
	alias := n.Alias
	if alias == "" {
		base := filepath.Base(n.Libfile)
		alias = strings.TrimSuffix(base, filepath.Ext(base))
	}
	outer := it.NS.CurrentName()
	if _, err := it.NS.DeclareNamespace(alias); err != nil {
		return err
	}
	it.NS.SetCurrent(outer)
	it.NS.PushImport(alias)
	defer it.NS.PopImport()

	if err := it.execDeclarations(prog.Declarations); err != nil {
		it.NS.Drop(alias)
		return err
	}
	if prog.Body != nil {
		if _, err := it.execBlock(prog.Body); err != nil {
			it.NS.Drop(alias)
			return err
		}
	}
	return nil
}
