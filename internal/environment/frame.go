package environment

import (
	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/values"
)

// Context is the descriptor carried by every pushed Frame: a display name
// (the function/procedure being evaluated) and the dereference flag that
// gates reference-map lookups (spec §4.3 "Reference handling").
type Context struct {
	Name        string
	Dereference bool
}

// Symbol records whether a declared name is read-only (spec §7: assignment
// to a constant raises Read-only).
type Symbol struct {
	Value    values.Value
	ReadOnly bool
}

// Frame is a dynamic scope pushed on call entry and popped on call exit
// (GLOSSARY "Frame"). It owns local variables, local functions (to allow
// closures-of-sorts, per spec §4.4), and the context descriptor that
// controls reference resolution during its lifetime.
type Frame struct {
	Locals     map[string]*Symbol
	LocalFuncs map[string]*ast.FuncDecl
	Context    Context
}

// NewFrame builds an empty frame for the given call context.
func NewFrame(ctx Context) *Frame {
	return &Frame{
		Locals:     map[string]*Symbol{},
		LocalFuncs: map[string]*ast.FuncDecl{},
		Context:    ctx,
	}
}
