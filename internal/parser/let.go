package parser

import (
	"graviton/internal/ast"
	"graviton/internal/diag"
	"graviton/internal/source"
	"graviton/internal/token"
)

// parseLetExpr — 'let' ['mut'] name [':' Type] ['=' expr]
// Тип и инициализатор опциональны по отдельности.
func (p *Parser) parseLetExpr() (ast.ExprID, bool) {
	letTok := p.advance() // 'let'

	mutable := false
	if p.at(token.KwMut) {
		p.advance()
		mutable = true
	}

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected binding name after 'let'")
	if !ok {
		return ast.NoExprID, false
	}

	typ := source.NoStringID
	if p.at(token.Colon) {
		p.advance()
		typeTok, ok := p.expect(token.Ident, diag.SynExpectType, "expected type name after ':'")
		if !ok {
			return ast.NoExprID, false
		}
		typ = p.arenas.Strings.Intern(typeTok.Text)
	}

	init := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		init, ok = p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
	}

	span := letTok.Span.Cover(p.lastSpan)
	name := p.arenas.Strings.Intern(nameTok.Text)
	return p.arenas.Exprs.NewLet(span, name, nameTok.Span, mutable, typ, init), true
}
