package interp

import (
	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/environment"
	"github.com/teegre/fralgo-go/internal/values"
)

// evalPath reads the value at p, walking any `.field`/`[i,...]` accessors
// (spec §4.3 StructureGetItem/ArrayGetItem, unified through the Path node).
func (it *Interp) evalPath(p *ast.Path) (values.Value, error) {
	ns := it.NS.Current()
	cur, err := ns.GetVariable(p.Base, ns.Name)
	if err != nil {
		return nil, err
	}
	for _, acc := range p.Accessors {
		cur, err = it.applyGet(cur, acc)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// assignPath writes v at the location named by p, coercing against the
// existing value's type (spec §4.3 Assign/ArraySetItem/StructureSetItem).
func (it *Interp) assignPath(p *ast.Path, v values.Value) error {
	ns := it.NS.Current()
	if len(p.Accessors) == 0 {
		old, err := ns.GetVariable(p.Base, ns.Name)
		if err != nil {
			return err
		}
		coerced, err := coerceAssign(old, v)
		if err != nil {
			return err
		}
		return ns.SetVariable(p.Base, coerced)
	}
	container, err := ns.GetVariable(p.Base, ns.Name)
	if err != nil {
		return err
	}
	for _, acc := range p.Accessors[:len(p.Accessors)-1] {
		container, err = it.applyGet(container, acc)
		if err != nil {
			return err
		}
	}
	return it.applySet(container, p.Accessors[len(p.Accessors)-1], v)
}

// applyGet resolves one accessor step against a container value: a field
// name against a record, or a bracketed index list against an array or (a
// single key against) a table.
func (it *Interp) applyGet(container values.Value, acc ast.PathAccessor) (values.Value, error) {
	if acc.Field != "" {
		rec, ok := container.(*values.RecordValue)
		if !ok {
			return nil, environment.New(environment.TypeMismatch, "structure attendue pour .%s", acc.Field)
		}
		return rec.Get(acc.Field)
	}
	switch c := container.(type) {
	case *values.Array:
		idx, err := it.evalIndexes(acc.Indexes)
		if err != nil {
			return nil, err
		}
		v, err := c.Get(idx)
		if err != nil {
			return nil, environment.New(environment.IndexOutOfRange, "%v", err)
		}
		return v, nil
	case *values.Table:
		if len(acc.Indexes) != 1 {
			return nil, environment.New(environment.TypeMismatch, "une seule clé attendue")
		}
		key, err := it.eval(acc.Indexes[0])
		if err != nil {
			return nil, err
		}
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		return values.Nothing{}, nil
	}
	return nil, environment.New(environment.TypeMismatch, "tableau ou table attendu pour []")
}

// applySet writes v through one terminal accessor step against a container.
func (it *Interp) applySet(container values.Value, acc ast.PathAccessor, v values.Value) error {
	if acc.Field != "" {
		rec, ok := container.(*values.RecordValue)
		if !ok {
			return environment.New(environment.TypeMismatch, "structure attendue pour .%s", acc.Field)
		}
		declared, ok := rec.FieldType(acc.Field)
		if !ok {
			return environment.New(environment.UnknownField, "%s : %v", acc.Field, values.ErrUnknownField)
		}
		coerced, err := checkElemType(declared, v)
		if err != nil {
			return err
		}
		return rec.Set(acc.Field, coerced)
	}
	switch c := container.(type) {
	case *values.Array:
		idx, err := it.evalIndexes(acc.Indexes)
		if err != nil {
			return err
		}
		coerced, err := checkElemType(c.ElemType, v)
		if err != nil {
			return err
		}
		if err := c.Set(idx, coerced); err != nil {
			return environment.New(environment.IndexOutOfRange, "%v", err)
		}
		return nil
	case *values.Table:
		if len(acc.Indexes) != 1 {
			return environment.New(environment.TypeMismatch, "une seule clé attendue")
		}
		key, err := it.eval(acc.Indexes[0])
		if err != nil {
			return err
		}
		coercedKey, err := checkElemType(c.KeyType, key)
		if err != nil {
			return err
		}
		coercedVal, err := checkElemType(c.ValueType, v)
		if err != nil {
			return err
		}
		c.Set(coercedKey, coercedVal)
		return nil
	}
	return environment.New(environment.TypeMismatch, "tableau ou table attendu pour []")
}

// evalIndexes evaluates a bracketed index list into Array.Get/Set
// coordinates, requiring each to be an Entier.
func (it *Interp) evalIndexes(exprs []ast.Expression) ([]int, error) {
	idx := make([]int, len(exprs))
	for i, e := range exprs {
		v, err := it.eval(e)
		if err != nil {
			return nil, err
		}
		iv, ok := v.(*values.Integer)
		if !ok || !iv.Defined {
			return nil, environment.New(environment.TypeMismatch, "index entier attendu")
		}
		idx[i] = int(iv.Value)
	}
	return idx, nil
}

// coerceAssign coerces a new scalar value against the current value held
// in a variable slot (spec §4.3 Assign). Composite values are deep-copied
// rather than aliased.
func coerceAssign(old, new values.Value) (values.Value, error) {
	new = copyIfNeeded(new)
	if _, ok := old.(values.Nothing); ok {
		return new, nil
	}
	if sc, ok := old.(*values.SizedChar); ok {
		switch t := new.(type) {
		case *values.String:
			return values.NewSizedChar(t.Value, sc.Size), nil
		case *values.SizedChar:
			return values.NewSizedChar(t.Value, sc.Size), nil
		}
		return nil, environment.New(environment.TypeMismatch, "%s attendu, %s fourni", old.Type(), new.Type())
	}
	if old.Type() == new.Type() {
		return new, nil
	}
	if _, ok := old.(*values.Float); ok {
		if ni, ok2 := new.(*values.Integer); ok2 {
			if !ni.Defined {
				return values.UndefinedFloat(), nil
			}
			return values.NewFloat(float64(ni.Value)), nil
		}
	}
	return nil, environment.New(environment.TypeMismatch, "%s attendu, %s fourni", old.Type(), new.Type())
}
