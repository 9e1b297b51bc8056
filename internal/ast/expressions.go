package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/teegre/fralgo-go/internal/lexer"
)

// IntegerLiteral is an Entier literal.
type IntegerLiteral struct {
	Position lexer.Position
	Value    int64
}

func (n *IntegerLiteral) Pos() lexer.Position { return n.Position }
func (n *IntegerLiteral) String() string      { return strconv.FormatInt(n.Value, 10) }
func (n *IntegerLiteral) expressionNode()     {}

// FloatLiteral is a Numérique literal.
type FloatLiteral struct {
	Position lexer.Position
	Value    float64
}

func (n *FloatLiteral) Pos() lexer.Position { return n.Position }
func (n *FloatLiteral) String() string      { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (n *FloatLiteral) expressionNode()     {}

// StringLiteral is a Chaîne literal.
type StringLiteral struct {
	Position lexer.Position
	Value    string
}

func (n *StringLiteral) Pos() lexer.Position { return n.Position }
func (n *StringLiteral) String() string      { return "\"" + n.Value + "\"" }
func (n *StringLiteral) expressionNode()     {}

// BoolLiteral is VRAI or FAUX.
type BoolLiteral struct {
	Position lexer.Position
	Value    bool
}

func (n *BoolLiteral) Pos() lexer.Position { return n.Position }
func (n *BoolLiteral) String() string {
	if n.Value {
		return "VRAI"
	}
	return "FAUX"
}
func (n *BoolLiteral) expressionNode() {}

// ArrayLiteral is a bracketed list used to assign a whole array at once.
type ArrayLiteral struct {
	Position lexer.Position
	Elements []Expression
}

func (n *ArrayLiteral) Pos() lexer.Position { return n.Position }
func (n *ArrayLiteral) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}
func (n *ArrayLiteral) expressionNode() {}

// TupleLiteral is a parenthesized comma-separated value list used to
// initialize a record from positional values.
type TupleLiteral struct {
	Position lexer.Position
	Elements []Expression
}

func (n *TupleLiteral) Pos() lexer.Position { return n.Position }
func (n *TupleLiteral) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}
func (n *TupleLiteral) expressionNode() {}

// BinaryExpr is a two-operand arithmetic/comparison/logical/concat
// expression, e.g. `a + b`, `a & b`, `a = b`.
type BinaryExpr struct {
	Position lexer.Position
	Op       lexer.TokenType
	Left     Expression
	Right    Expression
}

func (n *BinaryExpr) Pos() lexer.Position { return n.Position }
func (n *BinaryExpr) String() string {
	var buf bytes.Buffer
	buf.WriteByte('(')
	buf.WriteString(n.Left.String())
	buf.WriteString(" " + n.Op.String() + " ")
	buf.WriteString(n.Right.String())
	buf.WriteByte(')')
	return buf.String()
}
func (n *BinaryExpr) expressionNode() {}

// UnaryExpr is a prefix unary operator: numeric negation `-x` or reference
// `&x`.
type UnaryExpr struct {
	Position lexer.Position
	Op       lexer.TokenType
	Operand  Expression
}

func (n *UnaryExpr) Pos() lexer.Position { return n.Position }
func (n *UnaryExpr) String() string      { return n.Op.String() + n.Operand.String() }
func (n *UnaryExpr) expressionNode()     {}

// ConversionExpr is an explicit type-conversion call:
// Entier/Numérique/Chaîne/Booléen(x).
type ConversionExpr struct {
	Position lexer.Position
	Target   lexer.TokenType // ENTIER, NUMERIQUE, CHAINE, BOOLEEN
	Arg      Expression
}

func (n *ConversionExpr) Pos() lexer.Position { return n.Position }
func (n *ConversionExpr) String() string      { return n.Target.String() + "(" + n.Arg.String() + ")" }
func (n *ConversionExpr) expressionNode()     {}

// BuiltinCall is a call to one of the fixed built-in functions named in
// spec §4.3 (Type, Taille, Longueur, Extraire, Gauche, Droite, Trouve, Car,
// CodeCar, Aléa, Dormir, TempsUnix, Existe, Clefs, Valeurs).
type BuiltinCall struct {
	Position lexer.Position
	Name     string
	Args     []Expression
}

func (n *BuiltinCall) Pos() lexer.Position { return n.Position }
func (n *BuiltinCall) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return n.Name + "(" + strings.Join(parts, ",") + ")"
}
func (n *BuiltinCall) expressionNode() {}

// RefExpr is `&path`: a pass-by-reference argument.
type RefExpr struct {
	Position lexer.Position
	Target   *Path
}

func (n *RefExpr) Pos() lexer.Position { return n.Position }
func (n *RefExpr) String() string      { return "&" + n.Target.String() }
func (n *RefExpr) expressionNode()     {}

// CallExpr invokes a user-defined function or procedure, optionally
// qualified by an imported namespace (`ns:f(...)`, spec §4.6/§8 scenario 6).
type CallExpr struct {
	Position  lexer.Position
	Namespace string // empty means "current namespace"
	Name      string
	Args      []Expression
}

func (n *CallExpr) Pos() lexer.Position { return n.Position }
func (n *CallExpr) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	prefix := n.Name
	if n.Namespace != "" {
		prefix = n.Namespace + ":" + n.Name
	}
	return prefix + "(" + strings.Join(parts, ",") + ")"
}
func (n *CallExpr) expressionNode() {}
