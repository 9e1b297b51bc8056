package ast

import (
	"strings"

	"github.com/teegre/fralgo-go/internal/lexer"
)

// VarDecl declares one or more scalar variables of the same type
// (`Variable x en Entier`, `Variables x, y en Entier`).
type VarDecl struct {
	Position lexer.Position
	Names    []string
	Type     *TypeExpr
}

func (n *VarDecl) Pos() lexer.Position { return n.Position }
func (n *VarDecl) String() string {
	return "Variable " + strings.Join(n.Names, ", ") + " en " + n.Type.String()
}
func (n *VarDecl) statementNode() {}

// ArrayDecl declares a fixed or undimensioned array
// (`Tableau T[9] en Entier`, `Tableau T[] en Entier`).
// An undimensioned array ("T[]") has Undimensioned set and an empty Dims.
type ArrayDecl struct {
	Position    lexer.Position
	Name        string
	ElemType    *TypeExpr
	Dims        []Expression // max index per dimension; empty => undimensioned
	Undimensioned bool
}

func (n *ArrayDecl) Pos() lexer.Position { return n.Position }
func (n *ArrayDecl) String() string      { return "Tableau " + n.Name }
func (n *ArrayDecl) statementNode()      {}

// TableDecl declares an associative Table (`Table T en Entier, Chaîne`).
type TableDecl struct {
	Position  lexer.Position
	Name      string
	KeyType   *TypeExpr
	ValueType *TypeExpr
}

func (n *TableDecl) Pos() lexer.Position { return n.Position }
func (n *TableDecl) String() string      { return "Table " + n.Name }
func (n *TableDecl) statementNode()      {}

// ConstDecl declares an immutable constant (`Constante PI en Numérique = 3.14`).
type ConstDecl struct {
	Position lexer.Position
	Name     string
	Type     *TypeExpr
	Value    Expression
}

func (n *ConstDecl) Pos() lexer.Position { return n.Position }
func (n *ConstDecl) String() string      { return "Constante " + n.Name }
func (n *ConstDecl) statementNode()      {}

// StructField is one ordered name/type pair within a Structure declaration.
type StructField struct {
	Name string
	Type *TypeExpr
}

// StructDecl declares a record type skeleton (`Structure S ... FinStructure`).
type StructDecl struct {
	Position lexer.Position
	Name     string
	Fields   []StructField
}

func (n *StructDecl) Pos() lexer.Position { return n.Position }
func (n *StructDecl) String() string      { return "Structure " + n.Name }
func (n *StructDecl) statementNode()      {}

// ImportDecl imports a library file into a new namespace (`Importer "util"
// Alias u`).
type ImportDecl struct {
	Position lexer.Position
	Libfile  string
	Alias    string // empty => derive from libfile basename
}

func (n *ImportDecl) Pos() lexer.Position { return n.Position }
func (n *ImportDecl) String() string      { return "Importer " + n.Libfile }
func (n *ImportDecl) statementNode()      {}
