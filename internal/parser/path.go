package parser

import (
	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/lexer"
)

// parsePath parses a base identifier followed by zero or more `.field` /
// `[i,j,...]` accessors into a single canonicalized Path node (spec §9
// design note).
func (p *Parser) parsePath() (*ast.Path, error) {
	pos := p.cur.Pos
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	return p.parsePathFrom(pos, name)
}

// parsePathFrom continues accessor parsing for a base identifier already
// consumed by the caller (used when disambiguating calls vs. paths).
func (p *Parser) parsePathFrom(pos lexer.Position, base string) (*ast.Path, error) {
	path := &ast.Path{Position: pos, Base: base}
	for {
		switch p.cur.Type {
		case lexer.DOT:
			p.next()
			field, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			path.Accessors = append(path.Accessors, ast.PathAccessor{Field: field})
		case lexer.LBRACK:
			p.next()
			var idxs []ast.Expression
			for {
				idx, err := p.parseExpression(precLowest)
				if err != nil {
					return nil, err
				}
				idxs = append(idxs, idx)
				if p.cur.Type == lexer.COMMA {
					p.next()
					continue
				}
				break
			}
			if err := p.expect(lexer.RBRACK); err != nil {
				return nil, err
			}
			path.Accessors = append(path.Accessors, ast.PathAccessor{Indexes: idxs})
		default:
			return path, nil
		}
	}
}
