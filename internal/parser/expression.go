package parser

import (
	"graviton/internal/ast"
	"graviton/internal/diag"
	"graviton/internal/source"
	"graviton/internal/token"
)

// parseExpr — главная точка входа для парсинга выражений
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(0) // минимальный приоритет = 0
}

// parseBinaryExpr реализует precedence climbing для бинарных операторов.
// minPrec — минимальный приоритет для текущего уровня.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		tok := p.lx.Peek()

		prec, isRightAssoc := binaryOperatorPrec(tok.Kind)
		if prec < minPrec || prec < 0 {
			break
		}

		opTok := p.advance()

		// для левоассоциативных правую часть парсим со строго большим
		// приоритетом; для правоассоциативного '=' — с тем же
		nextMinPrec := prec + 1
		if isRightAssoc {
			nextMinPrec = prec
		}

		// при провале правой части диагностика уже выдана глубже,
		// второй раз не репортим
		right, ok := p.parseBinaryExpr(nextMinPrec)
		if !ok {
			return ast.NoExprID, false
		}

		op := tokenKindToBinaryOp(opTok.Kind)
		span := p.arenas.Exprs.Span(left).Cover(p.arenas.Exprs.Span(right))
		left = p.arenas.Exprs.NewBinary(span, op, left, right)
	}

	return left, true
}

// parseUnaryExpr обрабатывает унарные префиксы ('-', '!'); они связывают
// сильнее любых бинарных операторов.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	type prefixOp struct {
		op   ast.UnaryOp
		span source.Span
	}

	var prefixes []prefixOp
	for {
		op, ok := unaryOperator(p.lx.Peek().Kind)
		if !ok {
			break
		}
		opTok := p.advance()
		prefixes = append(prefixes, prefixOp{op: op, span: opTok.Span})
	}

	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	// применяем префиксы справа налево
	for i := len(prefixes) - 1; i >= 0; i-- {
		span := prefixes[i].span.Cover(p.arenas.Exprs.Span(expr))
		expr = p.arenas.Exprs.NewUnary(span, prefixes[i].op, expr)
	}

	return expr, true
}

// parsePrimaryExpr — литералы, идентификаторы/вызовы, группировка и все
// конструкции с ключевым словом в голове. '(' в позиции выражения — всегда
// группировка; сигнатуры функций начинаются с '(' только внутри fn/extern.
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.IntLit:
		lit := p.advance()
		return p.arenas.Exprs.NewLiteral(lit.Span, ast.LitInt, p.arenas.Strings.Intern(lit.Text)), true

	case token.FloatLit:
		lit := p.advance()
		return p.arenas.Exprs.NewLiteral(lit.Span, ast.LitFloat, p.arenas.Strings.Intern(lit.Text)), true

	case token.StringLit:
		lit := p.advance()
		return p.arenas.Exprs.NewLiteral(lit.Span, ast.LitString, p.arenas.Strings.Intern(unquote(lit.Text))), true

	case token.KwTrue, token.KwFalse:
		lit := p.advance()
		return p.arenas.Exprs.NewLiteral(lit.Span, ast.LitBool, p.arenas.Strings.Intern(lit.Text)), true

	case token.Ident:
		identTok := p.advance()
		if p.at(token.LParen) {
			return p.parseCallExpr(identTok)
		}
		return p.arenas.Exprs.NewIdent(identTok.Span, p.arenas.Strings.Intern(identTok.Text)), true

	case token.LParen:
		return p.parseGroupExpr()

	case token.LBrace:
		return p.parseBlockExpr()

	case token.KwIf:
		return p.parseIfExpr()

	case token.KwWhile:
		return p.parseWhileExpr()

	case token.KwLet:
		return p.parseLetExpr()

	case token.KwImport:
		return p.parseImportExpr()

	case token.KwFn:
		return p.parseFnDefExpr()

	case token.KwExtern:
		return p.parseFnExternExpr()

	case token.KwReturn:
		return p.parseReturnExpr()

	default:
		p.err(diag.SynExpectExpression, "expected expression, found "+tok.Kind.String())
		return ast.NoExprID, false
	}
}

// parseGroupExpr — '(' expr ')'. Группировка не создаёт отдельного узла:
// возвращается внутреннее выражение.
func (p *Parser) parseGroupExpr() (ast.ExprID, bool) {
	p.advance() // '('
	inner, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close grouping"); !ok {
		return ast.NoExprID, false
	}
	return inner, true
}

// parseCallExpr — identTok уже съеден, текущий токен '('.
func (p *Parser) parseCallExpr(identTok token.Token) (ast.ExprID, bool) {
	p.advance() // '('

	var args []ast.ExprID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		arg, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		args = append(args, arg)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close argument list")
	if !ok {
		return ast.NoExprID, false
	}

	span := identTok.Span.Cover(closeTok.Span)
	callee := p.arenas.Strings.Intern(identTok.Text)
	return p.arenas.Exprs.NewCall(span, callee, identTok.Span, args), true
}

// unquote снимает кавычки и обрабатывает стандартные escape-последовательности.
// Лексер уже гарантировал форму токена; неизвестные escape оставляем как есть.
func unquote(text string) string {
	if len(text) >= 2 && text[0] == '"' {
		end := len(text)
		if text[end-1] == '"' {
			end--
		}
		text = text[1:end]
	}

	// быстрый путь: без escape
	hasEscape := false
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' {
			hasEscape = true
			break
		}
	}
	if !hasEscape {
		return text
	}

	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b != '\\' || i+1 >= len(text) {
			out = append(out, b)
			continue
		}
		i++
		switch text[i] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case '0':
			out = append(out, 0)
		case '"':
			out = append(out, '"')
		case '\\':
			out = append(out, '\\')
		default:
			out = append(out, '\\', text[i])
		}
	}
	return string(out)
}
