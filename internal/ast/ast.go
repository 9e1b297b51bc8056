// Package ast defines the Algo abstract syntax tree produced by the parser
// and walked by the evaluator.
package ast

import (
	"bytes"
	"strings"

	"github.com/teegre/fralgo-go/internal/lexer"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	Pos() lexer.Position
	String() string
}

// Statement is a Node that executes for effect.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that evaluates to a value.
type Expression interface {
	Node
	expressionNode()
}

// Block is a sequence of statements executed in order. It is the "Node"
// mentioned in spec §4.3: it propagates the first non-nil control signal
// any child statement produces instead of continuing to the next statement.
type Block struct {
	Position   lexer.Position
	Statements []Statement
}

func (b *Block) Pos() lexer.Position { return b.Position }
func (b *Block) String() string {
	var buf bytes.Buffer
	for _, s := range b.Statements {
		buf.WriteString(s.String())
		buf.WriteByte('\n')
	}
	return buf.String()
}
func (b *Block) statementNode() {}

// Program is the root of a parsed source file: either a main program
// (declarations + Début/Fin body), a library (Librairie + declarations +
// optional Initialise body), or a bare declaration list (imported module
// parsed without an explicit Librairie header, or a single interactive
// statement).
type Program struct {
	Position     lexer.Position
	IsLibrary    bool
	Declarations []Statement
	Body         *Block // main Début…Fin block, or library Initialise block; nil if absent
}

func (p *Program) Pos() lexer.Position { return p.Position }
func (p *Program) String() string {
	var buf bytes.Buffer
	if p.IsLibrary {
		buf.WriteString("Librairie\n")
	}
	for _, d := range p.Declarations {
		buf.WriteString(d.String())
		buf.WriteByte('\n')
	}
	if p.Body != nil {
		buf.WriteString("Début\n")
		buf.WriteString(p.Body.String())
		buf.WriteString("Fin\n")
	}
	return buf.String()
}

// PathAccessor is one step ("a.b.c[i].d") in a canonicalized access Path, per
// the grammar-unification design note in spec §9: every structure-field and
// array-index chain becomes one Path node with an ordered accessor list,
// instead of a tangle of grammar productions for each combination.
type PathAccessor struct {
	Field   string       // non-empty for ".field"
	Indexes []Expression // non-empty for "[i,j,...]"
}

// Path is a base identifier followed by zero or more field/index accessors.
// It is used both as an expression (read) and, wherever the grammar expects
// an lvalue, as an assignment/resize/read target.
type Path struct {
	Position lexer.Position
	Base     string
	Accessors []PathAccessor
}

func (p *Path) Pos() lexer.Position { return p.Position }
func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteString(p.Base)
	for _, acc := range p.Accessors {
		if acc.Field != "" {
			sb.WriteByte('.')
			sb.WriteString(acc.Field)
			continue
		}
		sb.WriteByte('[')
		for i, idx := range acc.Indexes {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(idx.String())
		}
		sb.WriteByte(']')
	}
	return sb.String()
}
func (p *Path) expressionNode() {}

// Simple reports whether the path is a bare identifier with no accessors.
func (p *Path) Simple() bool { return len(p.Accessors) == 0 }
