// Package parser builds an Algo AST from a token stream (spec §4.2).
package parser

import (
	"fmt"

	algoerrors "github.com/teegre/fralgo-go/internal/errors"
	"github.com/teegre/fralgo-go/internal/lexer"
)

// Parser is a recursive-descent parser with one token of lookahead.
type Parser struct {
	l      *lexer.Lexer
	source string

	// Interactive controls error recoverability (spec §4.2: "In interactive
	// mode errors are recoverable; in file mode they are fatal").
	Interactive bool

	cur  lexer.Token
	peek lexer.Token

	errors []*algoerrors.SyntaxError
}

// New builds a Parser over source, priming both lookahead tokens.
func New(source string) *Parser {
	p := &Parser{l: lexer.New(source), source: source}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// Errors returns every syntax error accumulated while parsing. In
// interactive mode parsing continues past an error (panic-mode recovery to
// the next NEWLINE); in file mode the first error stops parsing.
func (p *Parser) Errors() []*algoerrors.SyntaxError { return p.errors }

func (p *Parser) errorf(format string, args ...any) *algoerrors.SyntaxError {
	err := algoerrors.New(p.cur.Pos, p.source, format, args...)
	p.errors = append(p.errors, err)
	return err
}

func (p *Parser) unexpected(want string) *algoerrors.SyntaxError {
	return p.errorf("symbole inattendu %q, attendu : %s", p.cur.Display(), want)
}

// skipNewlines consumes zero or more NEWLINE tokens; statements are
// terminated by a newline and blank lines between them are insignificant.
func (p *Parser) skipNewlines() {
	for p.cur.Type == lexer.NEWLINE {
		p.next()
	}
}

// expect advances past cur if it has type tt, else records a syntax error.
func (p *Parser) expect(tt lexer.TokenType) error {
	if p.cur.Type != tt {
		return p.unexpected(tt.String())
	}
	p.next()
	return nil
}

// expectIdent returns cur's literal and advances, requiring cur to be an
// IDENT.
func (p *Parser) expectIdent() (string, error) {
	if p.cur.Type != lexer.IDENT {
		return "", p.unexpected("identificateur")
	}
	name := p.cur.Literal
	p.next()
	return name, nil
}

// endOfStatement consumes the NEWLINE (or EOF) terminating a statement.
func (p *Parser) endOfStatement() error {
	if p.cur.Type == lexer.EOF {
		return nil
	}
	if p.cur.Type != lexer.NEWLINE {
		return p.unexpected("fin de ligne")
	}
	p.next()
	p.skipNewlines()
	return nil
}

// recover discards tokens up to and including the next NEWLINE, used in
// interactive mode to resume parsing after a syntax error (spec §4.2).
func (p *Parser) recover() {
	for p.cur.Type != lexer.NEWLINE && p.cur.Type != lexer.EOF {
		p.next()
	}
	p.skipNewlines()
}

func (p *Parser) fatalf(format string, args ...any) error {
	return fmt.Errorf("%s", p.errorf(format, args...).Format())
}
