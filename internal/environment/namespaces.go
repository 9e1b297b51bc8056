package environment

import (
	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/values"
)

// Namespaces is the process-wide collection of namespaces, plus the two
// shared maps described in spec §4.4: the superglobal map (program
// arguments, working-directory constant) and the notion of "current"
// namespace, which is the top of the import stack (spec §9 design note:
// "explicit import stack").
type Namespaces struct {
	byName       map[string]*Namespace
	current      string
	importStack  []string
	Superglobals map[string]*Symbol
}

// NewNamespaces builds a fresh collection with only the "main" namespace
// declared.
func NewNamespaces() *Namespaces {
	ns := &Namespaces{
		byName:       map[string]*Namespace{},
		Superglobals: map[string]*Symbol{},
	}
	main := newNamespace("main", ns)
	ns.byName["main"] = main
	ns.current = "main"
	return ns
}

// DeclareNamespace creates a new, empty namespace and makes it current. It
// fails if the name already exists (spec §4.4).
func (ns *Namespaces) DeclareNamespace(name string) (*Namespace, error) {
	if _, ok := ns.byName[name]; ok {
		return nil, New(Redeclared, "%s : espace de noms déjà déclaré", name)
	}
	n := newNamespace(name, ns)
	ns.byName[name] = n
	ns.current = name
	return n, nil
}

// Get returns the named namespace, or the "main" namespace when name is
// empty (spec §4.4: "returns the namespace or a default 'main' namespace
// when the name is null/empty").
func (ns *Namespaces) Get(name string) *Namespace {
	if name == "" {
		return ns.byName["main"]
	}
	if n, ok := ns.byName[name]; ok {
		return n
	}
	return nil
}

// Drop removes a namespace entirely, used to roll back a failed import
// (spec §4.6 "On failure the namespace is dropped").
func (ns *Namespaces) Drop(name string) {
	delete(ns.byName, name)
}

// Current returns the current namespace (top of the import stack).
func (ns *Namespaces) Current() *Namespace { return ns.byName[ns.current] }

// CurrentName returns the current namespace's name.
func (ns *Namespaces) CurrentName() string { return ns.current }

// SetCurrent switches the current namespace without touching the import
// stack; used by the shell's `.espaces`-adjacent flows.
func (ns *Namespaces) SetCurrent(name string) {
	if _, ok := ns.byName[name]; ok {
		ns.current = name
	}
}

// PushImport switches to namespace name, remembering the previous current
// namespace on the import stack so it can be restored (spec §4.6).
func (ns *Namespaces) PushImport(name string) {
	ns.importStack = append(ns.importStack, ns.current)
	ns.current = name
}

// PopImport restores the namespace that was current before the matching
// PushImport.
func (ns *Namespaces) PopImport() {
	if len(ns.importStack) == 0 {
		return
	}
	last := len(ns.importStack) - 1
	ns.current = ns.importStack[last]
	ns.importStack = ns.importStack[:last]
}

// Names returns every declared namespace name (`.espaces` shell command).
func (ns *Namespaces) Names() []string {
	out := make([]string, 0, len(ns.byName))
	for name := range ns.byName {
		out = append(out, name)
	}
	return out
}

// Reset drops every namespace except "main" and clears the import stack
// (spec §4.4 "reset: drops all namespaces except main").
func (ns *Namespaces) Reset() {
	ns.byName = map[string]*Namespace{"main": newNamespace("main", ns)}
	ns.current = "main"
	ns.importStack = nil
}

// ResetCurrent drops all user declarations from the current namespace,
// keeping the namespace itself (spec §4.4 Namespace.reset).
func (n *Namespace) ResetCurrent() {
	n.Globals = map[string]*Symbol{}
	n.Structures = map[string]*values.Structure{}
	n.Functions = map[string]*ast.FuncDecl{}
	n.frames = nil
	n.refs = nil
}
