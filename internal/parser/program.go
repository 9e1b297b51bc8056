package parser

import (
	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/lexer"
)

// ParseProgram recognizes one of the four program forms described in spec
// §4.2: a library (`Librairie` header, declarations, optional
// `Initialise` block), a main program (declarations then `Début … Fin`), a
// bare declaration list (an imported file with no `Librairie` header), or
// a bare statement list (interactive mode, or a script with no explicit
// `Début`/`Fin`).
func (p *Parser) ParseProgram() (*ast.Program, error) {
	pos := p.cur.Pos
	p.skipNewlines()

	prog := &ast.Program{Position: pos}

	if p.cur.Type == lexer.LIBRAIRIE {
		prog.IsLibrary = true
		p.next()
		if err := p.endOfStatement(); err != nil {
			return prog, err
		}
	}

	for p.cur.Type != lexer.EOF && p.cur.Type != lexer.DEBUT && p.cur.Type != lexer.INITIALISE {
		decl, matched, err := p.tryParseDeclaration()
		if matched {
			if err != nil {
				if p.Interactive {
					p.recover()
					continue
				}
				return prog, err
			}
			if decl != nil {
				prog.Declarations = append(prog.Declarations, decl)
			}
			p.skipNewlines()
			continue
		}
		// No more declarations recognized: the remainder is a bare
		// statement list (interactive single statement, or a script body
		// with no Début/Fin wrapper).
		body, err := p.parseStatementsUntil(lexer.EOF)
		if err != nil {
			return prog, err
		}
		prog.Body = body
		return prog, nil
	}

	if p.cur.Type == lexer.INITIALISE {
		p.next()
		p.skipNewlines()
		body, err := p.parseStatementsUntil(lexer.FIN)
		if err != nil {
			return prog, err
		}
		prog.Body = body
		if err := p.expect(lexer.FIN); err != nil {
			return prog, err
		}
		p.skipNewlines()
		return prog, nil
	}

	if p.cur.Type == lexer.DEBUT {
		p.next()
		p.skipNewlines()
		body, err := p.parseStatementsUntil(lexer.FIN)
		if err != nil {
			return prog, err
		}
		prog.Body = body
		if err := p.expect(lexer.FIN); err != nil {
			return prog, err
		}
		p.skipNewlines()
	}

	return prog, nil
}

// parseStatementsUntil parses statements until the current token is stop
// or EOF.
func (p *Parser) parseStatementsUntil(stop lexer.TokenType) (*ast.Block, error) {
	block := &ast.Block{Position: p.cur.Pos}
	p.skipNewlines()
	for p.cur.Type != stop && p.cur.Type != lexer.EOF {
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
