package ast

import "github.com/teegre/fralgo-go/internal/lexer"

// ElseIf is one `SinonSi cond Alors ...` clause chained off an If.
type ElseIf struct {
	Cond Expression
	Body *Block
}

// IfStmt is `Si cond Alors ... (SinonSi ...)* (Sinon ...)? FinSi`.
type IfStmt struct {
	Position lexer.Position
	Cond     Expression
	Then     *Block
	ElseIfs  []ElseIf
	Else     *Block // nil if absent
}

func (n *IfStmt) Pos() lexer.Position { return n.Position }
func (n *IfStmt) String() string      { return "Si " + n.Cond.String() }
func (n *IfStmt) statementNode()      {}

// WhileStmt is `TantQue cond ... FinTantQue`.
type WhileStmt struct {
	Position lexer.Position
	Cond     Expression
	Body     *Block
}

func (n *WhileStmt) Pos() lexer.Position { return n.Position }
func (n *WhileStmt) String() string      { return "TantQue " + n.Cond.String() }
func (n *WhileStmt) statementNode()      {}

// ForStmt is `Pour v ← start à end [Pas step] ... v Suivant`. Step is nil
// when omitted (defaults to 1 at evaluation time).
type ForStmt struct {
	Position lexer.Position
	Var      string
	Start    Expression
	End      Expression
	Step     Expression
	Body     *Block
	EndVar   string // must equal Var; checked by the parser
}

func (n *ForStmt) Pos() lexer.Position { return n.Position }
func (n *ForStmt) String() string      { return "Pour " + n.Var }
func (n *ForStmt) statementNode()      {}
