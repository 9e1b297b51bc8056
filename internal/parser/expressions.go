package parser

import (
	"strconv"

	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/lexer"
)

// Precedence levels, low to high, per spec §4.2: `= <>` (nonassoc),
// `< > <= >=`, `&`, `+ -`, `* / %`, `^`, unary `-`, unary reference `&`.
// Logical `OU`/`ET`/`NON` and the `DP` divides-by operator are not named
// in the spec's explicit table (its keyword list is stated as partial);
// they are grounded on the original implementation's own precedence,
// which places logical combinators below comparison and `DP` alongside
// comparison.
const precLowest = 0

// parseExpression parses a full expression. The prec parameter is kept for
// callers that want to express intent at a call site; the climb itself is
// a fixed chain of precedence levels starting at logical "ou".
func (p *Parser) parseExpression(prec int) (ast.Expression, error) {
	_ = prec
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.OU || p.cur.Type == lexer.OUX {
		op, pos := p.cur.Type, p.cur.Pos
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Position: pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expression, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.ET {
		pos := p.cur.Pos
		p.next()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Position: pos, Op: lexer.ET, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseNot() (ast.Expression, error) {
	if p.cur.Type == lexer.NON {
		pos := p.cur.Pos
		p.next()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Position: pos, Op: lexer.NON, Operand: operand}, nil
	}
	return p.parseEquality()
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if p.cur.Type == lexer.EQ || p.cur.Type == lexer.NEQ {
		op, pos := p.cur.Type, p.cur.Pos
		p.next()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Position: pos, Op: op, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	switch p.cur.Type {
	case lexer.LT, lexer.GT, lexer.LE, lexer.GE, lexer.DP:
		op, pos := p.cur.Type, p.cur.Pos
		p.next()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Position: pos, Op: op, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseConcat() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.AMP {
		pos := p.cur.Pos
		p.next()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Position: pos, Op: lexer.AMP, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.PLUS || p.cur.Type == lexer.MINUS {
		op, pos := p.cur.Type, p.cur.Pos
		p.next()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Position: pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.STAR || p.cur.Type == lexer.SLASH || p.cur.Type == lexer.PERCENT {
		op, pos := p.cur.Type, p.cur.Pos
		p.next()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Position: pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parsePower() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.cur.Type == lexer.CARET {
		pos := p.cur.Pos
		p.next()
		right, err := p.parsePower() // right-associative
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Position: pos, Op: lexer.CARET, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	switch p.cur.Type {
	case lexer.MINUS:
		pos := p.cur.Pos
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Position: pos, Op: lexer.MINUS, Operand: operand}, nil
	case lexer.AMP:
		pos := p.cur.Pos
		p.next()
		path, err := p.parsePath()
		if err != nil {
			return nil, err
		}
		return &ast.RefExpr{Position: pos, Target: path}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	pos := p.cur.Pos
	switch p.cur.Type {
	case lexer.INT:
		lit := p.cur.Literal
		p.next()
		n, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return nil, p.errorf("entier invalide : %s", lit)
		}
		return &ast.IntegerLiteral{Position: pos, Value: n}, nil
	case lexer.FLOAT:
		lit := p.cur.Literal
		p.next()
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, p.errorf("nombre invalide : %s", lit)
		}
		return &ast.FloatLiteral{Position: pos, Value: f}, nil
	case lexer.STRING:
		lit := p.cur.Literal
		p.next()
		return &ast.StringLiteral{Position: pos, Value: lit}, nil
	case lexer.TRUE:
		p.next()
		return &ast.BoolLiteral{Position: pos, Value: true}, nil
	case lexer.FALSE:
		p.next()
		return &ast.BoolLiteral{Position: pos, Value: false}, nil
	case lexer.LPAREN:
		p.next()
		first, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		if p.cur.Type == lexer.COMMA {
			elems := []ast.Expression{first}
			for p.cur.Type == lexer.COMMA {
				p.next()
				e, err := p.parseExpression(precLowest)
				if err != nil {
					return nil, err
				}
				elems = append(elems, e)
			}
			if err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
			return &ast.TupleLiteral{Position: pos, Elements: elems}, nil
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return first, nil
	case lexer.LBRACK:
		p.next()
		lit := &ast.ArrayLiteral{Position: pos}
		for p.cur.Type != lexer.RBRACK {
			e, err := p.parseExpression(precLowest)
			if err != nil {
				return nil, err
			}
			lit.Elements = append(lit.Elements, e)
			if p.cur.Type == lexer.COMMA {
				p.next()
				continue
			}
			break
		}
		if err := p.expect(lexer.RBRACK); err != nil {
			return nil, err
		}
		return lit, nil
	case lexer.ENTIER, lexer.NUMERIQUE, lexer.CHAINE, lexer.BOOLEEN:
		target := p.cur.Type
		p.next()
		if err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		arg, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return &ast.ConversionExpr{Position: pos, Target: target, Arg: arg}, nil
	case lexer.TYPE, lexer.TAILLE, lexer.LONGUEUR, lexer.EXTRAIRE, lexer.GAUCHE,
		lexer.DROITE, lexer.TROUVE, lexer.CAR, lexer.CODECAR, lexer.ALEA,
		lexer.DORMIR, lexer.TEMPSUNIX, lexer.EXISTE, lexer.CLEFS, lexer.VALEURS,
		lexer.FDF:
		return p.parseBuiltinCall()
	case lexer.IDENT:
		return p.parseIdentOrCall()
	}
	return nil, p.unexpected("une expression")
}

func (p *Parser) parseBuiltinCall() (ast.Expression, error) {
	pos := p.cur.Pos
	name := p.cur.Type.String()
	p.next()
	call := &ast.BuiltinCall{Position: pos, Name: name}
	if p.cur.Type != lexer.LPAREN {
		// A built-in named without an argument list is a call with no
		// arguments; FDF has no default channel and then fails its
		// argument-count check.
		return call, nil
	}
	p.next()
	for p.cur.Type != lexer.RPAREN {
		arg, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.cur.Type == lexer.COMMA {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return call, nil
}

// parseIdentOrCall disambiguates a bare identifier: a function/procedure
// call `f(...)`, a namespace-qualified call `ns:f(...)`, or a path
// expression `a.b[i]`.
func (p *Parser) parseIdentOrCall() (ast.Expression, error) {
	pos := p.cur.Pos
	name := p.cur.Literal
	p.next()

	if p.cur.Type == lexer.COLON {
		p.next()
		fname, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		return &ast.CallExpr{Position: pos, Namespace: name, Name: fname, Args: args}, nil
	}

	if p.cur.Type == lexer.LPAREN {
		p.next()
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		return &ast.CallExpr{Position: pos, Name: name, Args: args}, nil
	}

	return p.parsePathFrom(pos, name)
}

func (p *Parser) parseArgList() ([]ast.Expression, error) {
	var args []ast.Expression
	for p.cur.Type != lexer.RPAREN {
		arg, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Type == lexer.COMMA {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}
