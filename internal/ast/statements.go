package ast

import "github.com/teegre/fralgo-go/internal/lexer"

// AssignStmt writes the value of Value into Target (scalar, array element,
// or record field, possibly nested).
type AssignStmt struct {
	Position lexer.Position
	Target   *Path
	Value    Expression
	ByRef    bool // `target ← &source` : bind as reference instead of copy (simple variable target only)
}

func (n *AssignStmt) Pos() lexer.Position { return n.Position }
func (n *AssignStmt) String() string      { return n.Target.String() + " ← " + n.Value.String() }
func (n *AssignStmt) statementNode()      {}

// PrintStmt is Ecrire (ToErr == false) or EcrireErr (ToErr == true). A
// trailing `\` before the newline suppresses the newline that Ecrire
// otherwise appends.
type PrintStmt struct {
	Position  lexer.Position
	Args      []Expression
	ToErr     bool
	NoNewline bool
}

func (n *PrintStmt) Pos() lexer.Position { return n.Position }
func (n *PrintStmt) String() string {
	if n.ToErr {
		return "EcrireErr ..."
	}
	return "Ecrire ..."
}
func (n *PrintStmt) statementNode() {}

// ReadStmt reads a line from standard input into Target.
type ReadStmt struct {
	Position lexer.Position
	Target   *Path
}

func (n *ReadStmt) Pos() lexer.Position { return n.Position }
func (n *ReadStmt) String() string      { return "Lire " + n.Target.String() }
func (n *ReadStmt) statementNode()      {}

// ResizeStmt is `Redim target[d1,d2,...]`.
type ResizeStmt struct {
	Position lexer.Position
	Target   *Path
	Dims     []Expression
}

func (n *ResizeStmt) Pos() lexer.Position { return n.Position }
func (n *ResizeStmt) String() string      { return "Redim " + n.Target.String() }
func (n *ResizeStmt) statementNode()      {}

// FileOpenStmt is `Ouvrir filename sur channel en mode`.
type FileOpenStmt struct {
	Position lexer.Position
	Filename Expression
	Channel  Expression
	Mode     lexer.TokenType // LECTURE, ECRITURE, AJOUT
}

func (n *FileOpenStmt) Pos() lexer.Position { return n.Position }
func (n *FileOpenStmt) String() string      { return "Ouvrir ..." }
func (n *FileOpenStmt) statementNode()      {}

// FileCloseStmt is `Fermer channel`.
type FileCloseStmt struct {
	Position lexer.Position
	Channel  Expression
}

func (n *FileCloseStmt) Pos() lexer.Position { return n.Position }
func (n *FileCloseStmt) String() string      { return "Fermer ..." }
func (n *FileCloseStmt) statementNode()      {}

// FileReadStmt is `LireFichier channel, target`.
type FileReadStmt struct {
	Position lexer.Position
	Channel  Expression
	Target   *Path
}

func (n *FileReadStmt) Pos() lexer.Position { return n.Position }
func (n *FileReadStmt) String() string      { return "LireFichier ..." }
func (n *FileReadStmt) statementNode()      {}

// FileWriteStmt is `EcrireFichier channel, value`.
type FileWriteStmt struct {
	Position lexer.Position
	Channel  Expression
	Value    Expression
}

func (n *FileWriteStmt) Pos() lexer.Position { return n.Position }
func (n *FileWriteStmt) String() string      { return "EcrireFichier ..." }
func (n *FileWriteStmt) statementNode()      {}

// ExprStmt is an expression evaluated purely for effect: a procedure call,
// or the Dormir(...) built-in used as a statement.
type ExprStmt struct {
	Position lexer.Position
	Expr     Expression
}

func (n *ExprStmt) Pos() lexer.Position { return n.Position }
func (n *ExprStmt) String() string      { return n.Expr.String() }
func (n *ExprStmt) statementNode()      {}

// PanicStmt is `Panique expr`.
type PanicStmt struct {
	Position lexer.Position
	Value    Expression
}

func (n *PanicStmt) Pos() lexer.Position { return n.Position }
func (n *PanicStmt) String() string      { return "Panique " + n.Value.String() }
func (n *PanicStmt) statementNode()      {}

// ContinueStmt is `Continuer`.
type ContinueStmt struct{ Position lexer.Position }

func (n *ContinueStmt) Pos() lexer.Position { return n.Position }
func (n *ContinueStmt) String() string      { return "Continuer" }
func (n *ContinueStmt) statementNode()      {}

// ExitStmt is `Sortir`.
type ExitStmt struct{ Position lexer.Position }

func (n *ExitStmt) Pos() lexer.Position { return n.Position }
func (n *ExitStmt) String() string      { return "Sortir" }
func (n *ExitStmt) statementNode()      {}

// ReturnStmt is `Retourne [expr]`.
type ReturnStmt struct {
	Position lexer.Position
	Value    Expression // nil for a bare `Retourne` inside a procedure
}

func (n *ReturnStmt) Pos() lexer.Position { return n.Position }
func (n *ReturnStmt) String() string      { return "Retourne" }
func (n *ReturnStmt) statementNode()      {}
