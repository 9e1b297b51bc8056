package ast

import "github.com/teegre/fralgo-go/internal/lexer"

// Param is one formal parameter of a function or procedure declaration.
type Param struct {
	Name  string
	Type  *TypeExpr
	ByRef bool // declared with a leading `&`
}

// FuncDecl declares a function (ReturnType != nil) or procedure
// (ReturnType == nil).
type FuncDecl struct {
	Position   lexer.Position
	Name       string
	Params     []Param
	ReturnType *TypeExpr
	Body       *Block
}

func (n *FuncDecl) Pos() lexer.Position { return n.Position }
func (n *FuncDecl) String() string {
	if n.ReturnType == nil {
		return "Procédure " + n.Name
	}
	return "Fonction " + n.Name
}
func (n *FuncDecl) statementNode() {}

// IsProcedure reports whether the declaration has no return type.
func (n *FuncDecl) IsProcedure() bool { return n.ReturnType == nil }
