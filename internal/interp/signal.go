package interp

import "github.com/teegre/fralgo-go/internal/values"

// SignalKind tags a non-local control transfer produced by a statement
// (spec §4.3: "Node (block): ... if any child yields a non-nil control
// value (Return/Continue/Exit/Panic), propagates it to the enclosing loop
// or function body"). Panic is not modeled here: it is raised as an
// ordinary Go error (environment.RuntimeError{Kind: environment.Panic})
// since it unwinds past loops and function calls alike, all the way to the
// top level, rather than being consumed by the nearest enclosing construct.
type SignalKind int

const (
	SigNone SignalKind = iota
	SigReturn
	SigContinue
	SigExit
)

// Signal is the sentinel value a Block's execution may yield instead of
// running its next statement.
type Signal struct {
	Kind  SignalKind
	Value values.Value // set only for SigReturn with an expression
}
