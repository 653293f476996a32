package parser

import (
	"graviton/internal/ast"
	"graviton/internal/diag"
	"graviton/internal/source"
	"graviton/internal/token"
)

// parseFnDefExpr — 'fn' '(' params ')' ['->' Type] body
// Анонимная функция-значение; имя даёт связывание через let.
// Тело — любое выражение, обычно блок.
func (p *Parser) parseFnDefExpr() (ast.ExprID, bool) {
	fnTok := p.advance() // 'fn'

	if _, ok := p.expect(token.LParen, diag.SynExpectFnSignature, "expected '(' to begin function signature"); !ok {
		return ast.NoExprID, false
	}

	params, ok := p.parseFnParams()
	if !ok {
		return ast.NoExprID, false
	}

	ret, ok := p.parseArrowType()
	if !ok {
		return ast.NoExprID, false
	}

	body, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	span := fnTok.Span.Cover(p.arenas.Exprs.Span(body))
	return p.arenas.Exprs.NewFnDef(span, params, ret, body), true
}

// parseFnExternExpr — 'extern' name '(' params ')' ['->' Type]
// Объявление без тела.
func (p *Parser) parseFnExternExpr() (ast.ExprID, bool) {
	externTok := p.advance() // 'extern'

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected function name after 'extern'")
	if !ok {
		return ast.NoExprID, false
	}

	if _, ok := p.expect(token.LParen, diag.SynExpectFnSignature, "expected '(' to begin extern signature"); !ok {
		return ast.NoExprID, false
	}

	params, ok := p.parseFnParams()
	if !ok {
		return ast.NoExprID, false
	}

	ret, ok := p.parseArrowType()
	if !ok {
		return ast.NoExprID, false
	}

	span := externTok.Span.Cover(p.lastSpan)
	name := p.arenas.Strings.Intern(nameTok.Text)
	return p.arenas.Exprs.NewFnExtern(span, name, params, ret), true
}

// parseFnParams — список параметров после уже съеденного '('.
// Форма параметра: name [':' Type]; разделитель — запятая.
func (p *Parser) parseFnParams() ([]ast.FnParam, bool) {
	var params []ast.FnParam

	for !p.at(token.RParen) && !p.at(token.EOF) {
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
		if !ok {
			return nil, false
		}

		param := ast.FnParam{
			Name: p.arenas.Strings.Intern(nameTok.Text),
			Span: nameTok.Span,
		}

		if p.at(token.Colon) {
			p.advance()
			typeTok, ok := p.expect(token.Ident, diag.SynExpectType, "expected parameter type after ':'")
			if !ok {
				return nil, false
			}
			param.Type = p.arenas.Strings.Intern(typeTok.Text)
			param.Span = nameTok.Span.Cover(typeTok.Span)
		}

		params = append(params, param)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parameter list"); !ok {
		return nil, false
	}
	return params, true
}

// parseArrowType — опциональная аннотация возвращаемого типа '->' Type
func (p *Parser) parseArrowType() (source.StringID, bool) {
	if !p.at(token.Arrow) {
		return source.NoStringID, true
	}
	p.advance() // '->'

	typeTok, ok := p.expect(token.Ident, diag.SynExpectArrowType, "expected return type after '->'")
	if !ok {
		return source.NoStringID, false
	}
	return p.arenas.Strings.Intern(typeTok.Text), true
}
