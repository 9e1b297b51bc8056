package parser

import (
	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/lexer"
)

// parseStatement parses one non-declaration statement.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Type {
	case lexer.ECRIRE, lexer.ECRIREERR:
		return p.parsePrintStmt()
	case lexer.LIRE:
		return p.parseReadStmt()
	case lexer.REDIM:
		return p.parseResizeStmt()
	case lexer.OUVRIR:
		return p.parseFileOpenStmt()
	case lexer.FERMER:
		return p.parseFileCloseStmt()
	case lexer.LIREFICHIER:
		return p.parseFileReadStmt()
	case lexer.ECRIREFICHIER:
		return p.parseFileWriteStmt()
	case lexer.SI:
		return p.parseIfStmt()
	case lexer.TANTQUE:
		return p.parseWhileStmt()
	case lexer.POUR:
		return p.parseForStmt()
	case lexer.PANIQUE:
		return p.parsePanicStmt()
	case lexer.CONTINUER:
		pos := p.cur.Pos
		p.next()
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{Position: pos}, nil
	case lexer.SORTIR:
		pos := p.cur.Pos
		p.next()
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		return &ast.ExitStmt{Position: pos}, nil
	case lexer.RETOURNE:
		return p.parseReturnStmt()
	case lexer.IDENT:
		return p.parseAssignOrCallStmt()
	}
	return nil, p.unexpected("une instruction")
}

// parsePrintStmt parses `Ecrire e1, e2, ...` / `EcrireErr ...`, with an
// optional trailing `\` suppressing the newline.
func (p *Parser) parsePrintStmt() (*ast.PrintStmt, error) {
	pos := p.cur.Pos
	toErr := p.cur.Type == lexer.ECRIREERR
	p.next()
	stmt := &ast.PrintStmt{Position: pos, ToErr: toErr}
	for {
		arg, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		stmt.Args = append(stmt.Args, arg)
		if p.cur.Type == lexer.COMMA {
			p.next()
			continue
		}
		break
	}
	if p.cur.Type == lexer.BACKSLASH {
		stmt.NoNewline = true
		p.next()
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseReadStmt parses `Lire target`.
func (p *Parser) parseReadStmt() (*ast.ReadStmt, error) {
	pos := p.cur.Pos
	p.next()
	target, err := p.parsePath()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &ast.ReadStmt{Position: pos, Target: target}, nil
}

// parseResizeStmt parses `Redim target[d1,d2,...]`.
func (p *Parser) parseResizeStmt() (*ast.ResizeStmt, error) {
	pos := p.cur.Pos
	p.next()
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	target := &ast.Path{Position: pos, Base: name}
	if err := p.expect(lexer.LBRACK); err != nil {
		return nil, err
	}
	stmt := &ast.ResizeStmt{Position: pos, Target: target}
	for {
		dim, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		stmt.Dims = append(stmt.Dims, dim)
		if p.cur.Type == lexer.COMMA {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(lexer.RBRACK); err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseFileOpenStmt parses `Ouvrir filename sur channel en mode`.
func (p *Parser) parseFileOpenStmt() (*ast.FileOpenStmt, error) {
	pos := p.cur.Pos
	p.next()
	filename, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.SUR); err != nil {
		return nil, err
	}
	channel, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.EN); err != nil {
		return nil, err
	}
	var mode lexer.TokenType
	switch p.cur.Type {
	case lexer.LECTURE, lexer.ECRITURE, lexer.AJOUT:
		mode = p.cur.Type
		p.next()
	default:
		return nil, p.unexpected("Lecture, Ecriture ou Ajout")
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &ast.FileOpenStmt{Position: pos, Filename: filename, Channel: channel, Mode: mode}, nil
}

// parseFileCloseStmt parses `Fermer channel`.
func (p *Parser) parseFileCloseStmt() (*ast.FileCloseStmt, error) {
	pos := p.cur.Pos
	p.next()
	channel, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &ast.FileCloseStmt{Position: pos, Channel: channel}, nil
}

// parseFileReadStmt parses `LireFichier channel, target`.
func (p *Parser) parseFileReadStmt() (*ast.FileReadStmt, error) {
	pos := p.cur.Pos
	p.next()
	channel, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.COMMA); err != nil {
		return nil, err
	}
	target, err := p.parsePath()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &ast.FileReadStmt{Position: pos, Channel: channel, Target: target}, nil
}

// parseFileWriteStmt parses `EcrireFichier channel, value`.
func (p *Parser) parseFileWriteStmt() (*ast.FileWriteStmt, error) {
	pos := p.cur.Pos
	p.next()
	channel, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.COMMA); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &ast.FileWriteStmt{Position: pos, Channel: channel, Value: value}, nil
}

// parseIfStmt parses `Si cond Alors ... (SinonSi cond Alors ...)* (Sinon
// ...)? FinSi`.
func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	pos := p.cur.Pos
	p.next()
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.ALORS); err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{Position: pos, Cond: cond}
	then, err := p.parseStatementsUntil(lexer.SINONSI)
	if err != nil {
		return nil, err
	}
	stmt.Then = then
	// parseStatementsUntil stops at the first of {stop, EOF}; to support
	// chained SinonSi/Sinon/FinSi we re-scan manually here.
	for p.cur.Type == lexer.SINONSI {
		p.next()
		econd, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.ALORS); err != nil {
			return nil, err
		}
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		ebody, err := p.parseStatementsUntilAny(lexer.SINONSI, lexer.SINON, lexer.FINSI)
		if err != nil {
			return nil, err
		}
		stmt.ElseIfs = append(stmt.ElseIfs, ast.ElseIf{Cond: econd, Body: ebody})
	}
	if p.cur.Type == lexer.SINON {
		p.next()
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		ebody, err := p.parseStatementsUntil(lexer.FINSI)
		if err != nil {
			return nil, err
		}
		stmt.Else = ebody
	}
	if err := p.expect(lexer.FINSI); err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseStatementsUntilAny is like parseStatementsUntil but stops at any of
// several possible terminator tokens (used for If's SinonSi/Sinon/FinSi
// chain, where the exact next clause is not known in advance).
func (p *Parser) parseStatementsUntilAny(stops ...lexer.TokenType) (*ast.Block, error) {
	block := &ast.Block{Position: p.cur.Pos}
	p.skipNewlines()
	for !p.atAny(stops...) && p.cur.Type != lexer.EOF {
		if decl, matched, err := p.tryParseDeclaration(); matched {
			if err != nil {
				if p.Interactive {
					p.recover()
					continue
				}
				return block, err
			}
			if decl != nil {
				block.Statements = append(block.Statements, decl)
			}
			p.skipNewlines()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			if p.Interactive {
				p.recover()
				continue
			}
			return block, err
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.skipNewlines()
	}
	return block, nil
}

func (p *Parser) atAny(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.cur.Type == t {
			return true
		}
	}
	return false
}

// parseWhileStmt parses `TantQue cond ... FinTantQue`.
func (p *Parser) parseWhileStmt() (*ast.WhileStmt, error) {
	pos := p.cur.Pos
	p.next()
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	body, err := p.parseStatementsUntil(lexer.FINTANTQUE)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.FINTANTQUE); err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Position: pos, Cond: cond, Body: body}, nil
}

// parseForStmt parses `Pour v ← start à end [Pas step] ... v Suivant`.
func (p *Parser) parseForStmt() (*ast.ForStmt, error) {
	pos := p.cur.Pos
	p.next()
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	start, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.A); err != nil {
		return nil, err
	}
	end, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	stmt := &ast.ForStmt{Position: pos, Var: name, Start: start, End: end}
	if p.cur.Type == lexer.PAS {
		p.next()
		step, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		stmt.Step = step
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	body, err := p.parseForBody()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	endVar, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.SUIVANT); err != nil {
		return nil, err
	}
	stmt.EndVar = endVar
	if endVar != name {
		return nil, p.errorf("la variable de boucle %q ne correspond pas à %q", endVar, name)
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseForBody parses statements up to the loop's trailing "<var> Suivant"
// terminator (original_source/fralgo/fralgoparse.py:615), recognized by
// lookahead since an identifier alone also starts an ordinary assignment
// or call statement.
func (p *Parser) parseForBody() (*ast.Block, error) {
	block := &ast.Block{Position: p.cur.Pos}
	p.skipNewlines()
	for !(p.cur.Type == lexer.IDENT && p.peek.Type == lexer.SUIVANT) && p.cur.Type != lexer.EOF {
		if decl, matched, err := p.tryParseDeclaration(); matched {
			if err != nil {
				if p.Interactive {
					p.recover()
					continue
				}
				return block, err
			}
			if decl != nil {
				block.Statements = append(block.Statements, decl)
			}
			p.skipNewlines()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			if p.Interactive {
				p.recover()
				continue
			}
			return block, err
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.skipNewlines()
	}
	return block, nil
}

// parsePanicStmt parses `Panique expr`.
func (p *Parser) parsePanicStmt() (*ast.PanicStmt, error) {
	pos := p.cur.Pos
	p.next()
	val, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &ast.PanicStmt{Position: pos, Value: val}, nil
}

// parseReturnStmt parses `Retourne [expr]`.
func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	pos := p.cur.Pos
	p.next()
	stmt := &ast.ReturnStmt{Position: pos}
	if p.cur.Type != lexer.NEWLINE && p.cur.Type != lexer.EOF {
		val, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		stmt.Value = val
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseAssignOrCallStmt disambiguates, from a leading identifier, an
// assignment to a path (`x ← expr`, `x ← &source`) from an expression
// statement (a procedure call or a bare expression such as `Dormir(1)`).
func (p *Parser) parseAssignOrCallStmt() (ast.Statement, error) {
	pos := p.cur.Pos
	name := p.cur.Literal
	p.next()

	if p.cur.Type == lexer.COLON || p.cur.Type == lexer.LPAREN {
		expr, err := p.finishIdentExpression(pos, name)
		if err != nil {
			return nil, err
		}
		return p.finishExprStmt(pos, expr)
	}

	path, err := p.parsePathFrom(pos, name)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.ASSIGN {
		return p.finishExprStmt(pos, path)
	}
	p.next()
	if p.cur.Type == lexer.AMP {
		p.next()
		src, err := p.parsePath()
		if err != nil {
			return nil, err
		}
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Position: pos, Target: path, Value: src, ByRef: true}, nil
	}
	val, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &ast.AssignStmt{Position: pos, Target: path, Value: val}, nil
}

// finishIdentExpression continues parsing a call expression whose leading
// identifier has already been consumed (mirrors parseIdentOrCall but is
// entered from statement context).
func (p *Parser) finishIdentExpression(pos lexer.Position, name string) (ast.Expression, error) {
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
	p.next() // consume LPAREN
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Position: pos, Name: name, Args: args}, nil
}

func (p *Parser) finishExprStmt(pos lexer.Position, expr ast.Expression) (ast.Statement, error) {
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Position: pos, Expr: expr}, nil
}
