package environment

import (
	"strings"

	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/values"
)

// Namespace owns global variables, the structure registry, the
// function/procedure map, and a stack of local frames (GLOSSARY
// "Namespace"). A reference map is kept aligned, one per pushed frame, so
// frame N's reference bindings live at refs[N].
type Namespace struct {
	Name       string
	Globals    map[string]*Symbol
	Structures map[string]*values.Structure
	Functions  map[string]*ast.FuncDecl
	frames     []*Frame
	refs       []map[string]RefTarget

	owner *Namespaces
}

func newNamespace(name string, owner *Namespaces) *Namespace {
	return &Namespace{
		Name:       name,
		Globals:    map[string]*Symbol{},
		Structures: map[string]*values.Structure{},
		Functions:  map[string]*ast.FuncDecl{},
		owner:      owner,
	}
}

// isPrivate reports whether name is private-to-namespace (spec §9 Open
// Question: `@`-prefixed names).
func isPrivate(name string) bool { return strings.HasPrefix(name, "@") }

func (n *Namespace) currentFrame() *Frame {
	if len(n.frames) == 0 {
		return nil
	}
	return n.frames[len(n.frames)-1]
}

// PushFrame pushes a new local frame and its aligned (empty) reference map.
func (n *Namespace) PushFrame(ctx Context) {
	n.frames = append(n.frames, NewFrame(ctx))
	n.refs = append(n.refs, map[string]RefTarget{})
}

// PopFrame pops the top local frame and its reference map. Called on every
// control-flow exit from a call — normal return, propagated error, panic,
// or user interrupt (spec §5 "Scoped resource discipline").
func (n *Namespace) PopFrame() {
	if len(n.frames) == 0 {
		return
	}
	n.frames = n.frames[:len(n.frames)-1]
	n.refs = n.refs[:len(n.refs)-1]
}

// BindReference registers name, in the current frame, as a reference to a
// variable descriptor in another (or the same) namespace.
func (n *Namespace) BindReference(name string, target RefTarget) {
	if len(n.refs) == 0 {
		return
	}
	n.refs[len(n.refs)-1][name] = target
}

// SetDereference sets or clears the current frame's dereference flag (spec
// §4.4: "set/dereference the local reference context flag").
func (n *Namespace) SetDereference(on bool) {
	if f := n.currentFrame(); f != nil {
		f.Context.Dereference = on
	}
}

// CurrentContext returns the top frame's context, or a zero Context if no
// frame is pushed.
func (n *Namespace) CurrentContext() Context {
	if f := n.currentFrame(); f != nil {
		return f.Context
	}
	return Context{}
}

// DeclareVariable declares name in the current scope: the local frame if
// one is pushed, else the namespace globals, or the shared superglobal map
// when superglobal is true (spec §4.4).
func (n *Namespace) DeclareVariable(name string, v values.Value, readOnly, superglobal bool) error {
	if superglobal {
		if _, ok := n.owner.Superglobals[name]; ok {
			return New(Redeclared, "%s : déjà déclaré", name)
		}
		n.owner.Superglobals[name] = &Symbol{Value: v, ReadOnly: readOnly}
		return nil
	}
	if f := n.currentFrame(); f != nil {
		if _, ok := f.Locals[name]; ok {
			return New(Redeclared, "%s : déjà déclaré", name)
		}
		f.Locals[name] = &Symbol{Value: v, ReadOnly: readOnly}
		return nil
	}
	if _, ok := n.Globals[name]; ok {
		return New(Redeclared, "%s : déjà déclaré", name)
	}
	n.Globals[name] = &Symbol{Value: v, ReadOnly: readOnly}
	return nil
}

// DeclareFunction registers a function/procedure; these always live at
// namespace scope, never inside a frame (spec §4.4).
func (n *Namespace) DeclareFunction(fn *ast.FuncDecl) error {
	if _, ok := n.Functions[fn.Name]; ok {
		return New(Redeclared, "%s : déjà déclaré", fn.Name)
	}
	n.Functions[fn.Name] = fn
	return nil
}

// DeclareLocalFunction registers a closure-like function inside the
// current frame (spec §4.4 local function map).
func (n *Namespace) DeclareLocalFunction(fn *ast.FuncDecl) error {
	f := n.currentFrame()
	if f == nil {
		return n.DeclareFunction(fn)
	}
	if _, ok := f.LocalFuncs[fn.Name]; ok {
		return New(Redeclared, "%s : déjà déclaré", fn.Name)
	}
	f.LocalFuncs[fn.Name] = fn
	return nil
}

// DeclareStructure registers a structure skeleton at namespace scope.
func (n *Namespace) DeclareStructure(s *values.Structure) error {
	if _, ok := n.Structures[s.Name]; ok {
		return New(Redeclared, "%s : déjà déclaré", s.Name)
	}
	n.Structures[s.Name] = s
	return nil
}

// resolveReference follows target through the owning namespaces graph,
// tracking visited (namespace, name) pairs so a reference cycle terminates
// (spec §3 Invariants, §9 design note).
func (n *Namespace) resolveReference(target RefTarget, visited map[string]bool) (*Symbol, error) {
	key := refKey(target.Namespace, target.Name)
	if visited[key] {
		return nil, New(Undeclared, "%s : référence cyclique", target.Name)
	}
	visited[key] = true
	ns := n.owner.Get(target.Namespace)
	return ns.lookupSymbol(target.Name, visited)
}

// lookupSymbol implements the full get-variable cascade described in
// spec §4.4: local frames top-down (consulting the reference map when the
// top frame's dereference flag is set), then namespace globals, then the
// main namespace globals, then superglobals.
func (n *Namespace) lookupSymbol(name string, visited map[string]bool) (*Symbol, error) {
	for i := len(n.frames) - 1; i >= 0; i-- {
		f := n.frames[i]
		if sym, ok := f.Locals[name]; ok {
			return sym, nil
		}
		if i == len(n.frames)-1 && f.Context.Dereference {
			if target, ok := n.refs[i][name]; ok {
				return n.resolveReference(target, visited)
			}
		}
	}
	if sym, ok := n.Globals[name]; ok {
		return sym, nil
	}
	if n.Name != "main" {
		if main := n.owner.Get("main"); main != nil {
			if sym, ok := main.Globals[name]; ok {
				return sym, nil
			}
		}
	}
	if sym, ok := n.owner.Superglobals[name]; ok {
		return sym, nil
	}
	return nil, New(Undeclared, "%s : non déclaré", name)
}

// GetVariable reads a variable by the full cascade, enforcing the
// cross-namespace privacy rule for `@`-prefixed names (spec §9).
func (n *Namespace) GetVariable(name string, fromNamespace string) (values.Value, error) {
	sym, err := n.lookupSymbol(name, map[string]bool{})
	if err != nil {
		return nil, err
	}
	if isPrivate(name) && fromNamespace != n.Name {
		return nil, New(PrivateAccess, "%s : symbole privé", name)
	}
	return sym.Value, nil
}

// SetVariable writes a variable reached by the same cascade as
// GetVariable, refusing writes to read-only symbols.
func (n *Namespace) SetVariable(name string, v values.Value) error {
	sym, err := n.lookupSymbol(name, map[string]bool{})
	if err != nil {
		return err
	}
	if sym.ReadOnly {
		return New(ReadOnly, "%s : valeur en lecture seule", name)
	}
	sym.Value = v
	return nil
}

// GetFunction looks up a function/procedure: local functions in the
// current frame first, then namespace functions (analogous cascade to
// GetVariable, spec §4.4).
func (n *Namespace) GetFunction(name string) (*ast.FuncDecl, error) {
	if f := n.currentFrame(); f != nil {
		if fn, ok := f.LocalFuncs[name]; ok {
			return fn, nil
		}
	}
	if fn, ok := n.Functions[name]; ok {
		return fn, nil
	}
	if n.Name != "main" {
		if main := n.owner.Get("main"); main != nil {
			if fn, ok := main.Functions[name]; ok {
				return fn, nil
			}
		}
	}
	return nil, New(Undeclared, "%s : fonction non déclarée", name)
}

// GetStructure looks up a structure skeleton by the same cascade.
func (n *Namespace) GetStructure(name string) (*values.Structure, error) {
	if s, ok := n.Structures[name]; ok {
		return s, nil
	}
	if n.Name != "main" {
		if main := n.owner.Get("main"); main != nil {
			if s, ok := main.Structures[name]; ok {
				return s, nil
			}
		}
	}
	return nil, New(Undeclared, "%s : structure non déclarée", name)
}
