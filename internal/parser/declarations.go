package parser

import (
	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/lexer"
)

// tryParseDeclaration parses one top-level declaration if cur starts one.
// matched is false when cur is not a declaration keyword at all, in which
// case the caller falls back to parsing a bare statement list.
func (p *Parser) tryParseDeclaration() (stmt ast.Statement, matched bool, err error) {
	switch p.cur.Type {
	case lexer.VARIABLE, lexer.VARIABLES:
		stmt, err = p.parseVarDecl()
	case lexer.TABLEAU, lexer.TABLEAUX:
		stmt, err = p.parseArrayDecl()
	case lexer.TABLE:
		stmt, err = p.parseTableDecl()
	case lexer.CONSTANTE:
		stmt, err = p.parseConstDecl()
	case lexer.STRUCTURE:
		stmt, err = p.parseStructDecl()
	case lexer.FONCTION, lexer.PROCEDURE:
		stmt, err = p.parseFuncDecl()
	case lexer.IMPORTER:
		stmt, err = p.parseImportDecl()
	default:
		return nil, false, nil
	}
	return stmt, true, err
}

// parseTypeExpr parses `en Entier`, `en Caractère*N`, `en Quelconque`, or
// `en <StructureName>` (the `en` keyword is consumed by the caller before
// calling this for some productions; here we parse from the type keyword).
func (p *Parser) parseTypeExpr() (*ast.TypeExpr, error) {
	pos := p.cur.Pos
	switch p.cur.Type {
	case lexer.ENTIER:
		p.next()
		return &ast.TypeExpr{Position: pos, Name: "Entier"}, nil
	case lexer.NUMERIQUE:
		p.next()
		return &ast.TypeExpr{Position: pos, Name: "Numérique"}, nil
	case lexer.CHAINE:
		p.next()
		return &ast.TypeExpr{Position: pos, Name: "Chaîne"}, nil
	case lexer.BOOLEEN:
		p.next()
		return &ast.TypeExpr{Position: pos, Name: "Booléen"}, nil
	case lexer.QUELCONQUE:
		p.next()
		return &ast.TypeExpr{Position: pos, Name: "Quelconque"}, nil
	case lexer.CARACTERE:
		p.next()
		var size ast.Expression
		if p.cur.Type == lexer.STAR {
			p.next()
			n, err := p.parseExpression(precLowest)
			if err != nil {
				return nil, err
			}
			size = n
		}
		return &ast.TypeExpr{Position: pos, Name: "Caractère", CharSize: size}, nil
	case lexer.IDENT:
		name := p.cur.Literal
		p.next()
		return &ast.TypeExpr{Position: pos, Name: name}, nil
	}
	return nil, p.unexpected("un type")
}

// parseVarDecl parses `Variable x en Entier` / `Variables x, y, z en Entier`.
func (p *Parser) parseVarDecl() (*ast.VarDecl, error) {
	pos := p.cur.Pos
	p.next()
	var names []string
	for {
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		if p.cur.Type == lexer.COMMA {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(lexer.EN); err != nil {
		return nil, err
	}
	typ, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Position: pos, Names: names, Type: typ}, nil
}

// parseArrayDecl parses `Tableau T[9] en Entier` or `Tableau T[] en Entier`.
func (p *Parser) parseArrayDecl() (*ast.ArrayDecl, error) {
	pos := p.cur.Pos
	p.next()
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LBRACK); err != nil {
		return nil, err
	}
	decl := &ast.ArrayDecl{Position: pos, Name: name}
	if p.cur.Type == lexer.RBRACK {
		decl.Undimensioned = true
	} else {
		for {
			dim, err := p.parseExpression(precLowest)
			if err != nil {
				return nil, err
			}
			decl.Dims = append(decl.Dims, dim)
			if p.cur.Type == lexer.COMMA {
				p.next()
				continue
			}
			break
		}
	}
	if err := p.expect(lexer.RBRACK); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.EN); err != nil {
		return nil, err
	}
	typ, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	decl.ElemType = typ
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseTableDecl parses `Table T en Entier, Chaîne` (key type, value type).
func (p *Parser) parseTableDecl() (*ast.TableDecl, error) {
	pos := p.cur.Pos
	p.next()
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.EN); err != nil {
		return nil, err
	}
	keyType, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.COMMA); err != nil {
		return nil, err
	}
	valType, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &ast.TableDecl{Position: pos, Name: name, KeyType: keyType, ValueType: valType}, nil
}

// parseConstDecl parses `Constante PI en Numérique = 3.14`.
func (p *Parser) parseConstDecl() (*ast.ConstDecl, error) {
	pos := p.cur.Pos
	p.next()
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.EN); err != nil {
		return nil, err
	}
	typ, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.EQ); err != nil {
		return nil, err
	}
	val, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &ast.ConstDecl{Position: pos, Name: name, Type: typ, Value: val}, nil
}

// parseStructDecl parses `Structure S \n f en T \n ... FinStructure`.
func (p *Parser) parseStructDecl() (*ast.StructDecl, error) {
	pos := p.cur.Pos
	p.next()
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	decl := &ast.StructDecl{Position: pos, Name: name}
	for p.cur.Type != lexer.FINSTRUCTURE && p.cur.Type != lexer.EOF {
		fname, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.EN); err != nil {
			return nil, err
		}
		ftyp, err := p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		decl.Fields = append(decl.Fields, ast.StructField{Name: fname, Type: ftyp})
	}
	if err := p.expect(lexer.FINSTRUCTURE); err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseFuncDecl parses a `Fonction ... FinFonction` or `Procédure ...
// FinProcédure` declaration.
func (p *Parser) parseFuncDecl() (*ast.FuncDecl, error) {
	isFunc := p.cur.Type == lexer.FONCTION
	pos := p.cur.Pos
	endTok := lexer.FINPROCEDURE
	if isFunc {
		endTok = lexer.FINFONCTION
	}
	p.next()
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	decl := &ast.FuncDecl{Position: pos, Name: name}
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	for p.cur.Type != lexer.RPAREN {
		byRef := false
		if p.cur.Type == lexer.AMP {
			byRef = true
			p.next()
		}
		pname, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.EN); err != nil {
			return nil, err
		}
		ptyp, err := p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
		decl.Params = append(decl.Params, ast.Param{Name: pname, Type: ptyp, ByRef: byRef})
		if p.cur.Type == lexer.COMMA {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	if isFunc {
		if err := p.expect(lexer.EN); err != nil {
			return nil, err
		}
		rtyp, err := p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
		decl.ReturnType = rtyp
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	body, err := p.parseStatementsUntil(endTok)
	if err != nil {
		return nil, err
	}
	decl.Body = body
	if err := p.expect(endTok); err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseImportDecl parses `Importer "libfile"` optionally followed by
// `Alias name`.
func (p *Parser) parseImportDecl() (*ast.ImportDecl, error) {
	pos := p.cur.Pos
	p.next()
	if p.cur.Type != lexer.STRING {
		return nil, p.unexpected("un nom de fichier")
	}
	libfile := p.cur.Literal
	p.next()
	decl := &ast.ImportDecl{Position: pos, Libfile: libfile}
	if p.cur.Type == lexer.ALIAS {
		p.next()
		alias, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		decl.Alias = alias
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return decl, nil
}
