package ast

import "github.com/teegre/fralgo-go/internal/lexer"

// TypeExpr names a declared Algo type: a primitive keyword (Entier,
// Numérique, Chaîne, Booléen, Quelconque), a sized character (Caractère *
// N), or a user-defined structure name.
type TypeExpr struct {
	Position lexer.Position
	Name     string       // "Entier", "Numérique", "Chaîne", "Booléen", "Quelconque", or a structure name
	CharSize Expression   // non-nil only when Name == "Caractère"
}

func (t *TypeExpr) Pos() lexer.Position { return t.Position }
func (t *TypeExpr) String() string      { return t.Name }
