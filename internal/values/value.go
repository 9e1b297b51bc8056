// Package values implements the Algo runtime value model: a discriminated
// union of tagged variants (spec §3 Data Model), each carrying enough
// information to recover its own type at any point during evaluation.
package values

import "fmt"

// Value is implemented by every runtime value variant.
type Value interface {
	// Type returns the value's French type name, e.g. "Entier", "Chaîne".
	// Composite types embed structure: arrays render as "Tableau(Entier)",
	// sized characters as "Caractère*N".
	Type() string
	// String renders the value the way `Ecrire` prints it.
	String() string
	// IsEmpty reports whether the value represents "no value assigned yet".
	IsEmpty() bool
}

// Copyable is implemented by values that must be deep-copied on assignment
// (arrays, records) rather than shared by reference, per spec §3 Invariants.
type Copyable interface {
	Value
	Copy() Value
}

// TypeMismatchError is returned whenever an operation combines values of
// incompatible variants, or an assignment target rejects a value's type.
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Type %s attendu [%s]", e.Expected, e.Got)
}

// NewTypeMismatch builds a TypeMismatchError.
func NewTypeMismatch(expected, got string) error {
	return &TypeMismatchError{Expected: expected, Got: got}
}
