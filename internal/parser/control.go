package parser

import (
	"graviton/internal/ast"
	"graviton/internal/diag"
	"graviton/internal/token"
)

// parseIfExpr — 'if' cond body ('else' 'if' cond body)* ('else' body)?
// Тело ветки — любое выражение; блок — частный случай. Вся цепочка else-if
// сворачивается в один узел с списком веток.
func (p *Parser) parseIfExpr() (ast.ExprID, bool) {
	ifTok := p.advance() // 'if'

	var branches []ast.IfBranch
	elseBody := ast.NoExprID

	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	body, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	branches = append(branches, ast.IfBranch{Cond: cond, Body: body})

	for p.at(token.KwElse) {
		p.advance() // 'else'

		if p.at(token.KwIf) {
			p.advance() // 'if'
			cond, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			body, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			branches = append(branches, ast.IfBranch{Cond: cond, Body: body})
			continue
		}

		elseBody, ok = p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		break
	}

	span := ifTok.Span.Cover(p.lastSpan)
	return p.arenas.Exprs.NewIf(span, branches, elseBody), true
}

// parseWhileExpr — 'while' cond body; тело — любое выражение
func (p *Parser) parseWhileExpr() (ast.ExprID, bool) {
	whileTok := p.advance() // 'while'

	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	body, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	span := whileTok.Span.Cover(p.arenas.Exprs.Span(body))
	return p.arenas.Exprs.NewWhile(span, cond, body), true
}

// parseReturnExpr — 'return' expr. Операнд обязателен.
func (p *Parser) parseReturnExpr() (ast.ExprID, bool) {
	retTok := p.advance() // 'return'

	if p.atOr(token.Semicolon, token.RBrace, token.RParen, token.EOF) {
		p.err(diag.SynExpectReturnValue, "expected expression after 'return'")
		return ast.NoExprID, false
	}

	value, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	span := retTok.Span.Cover(p.arenas.Exprs.Span(value))
	return p.arenas.Exprs.NewReturn(span, value), true
}
