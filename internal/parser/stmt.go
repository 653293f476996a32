package parser

import (
	"graviton/internal/ast"
	"graviton/internal/diag"
	"graviton/internal/token"
)

// parseStmtSeq — разбор последовательности `statement* [trailing-expr]` до
// closing или EOF. Используется и на уровне модуля (closing == EOF), и внутри
// блоков (closing == RBrace). Возвращает список терминированных statements и
// опциональное хвостовое выражение.
//
// Восстановление после ошибки: прокрутка до ';' / closing / EOF, съедание ';'
// и продолжение. Прогресс вперёд гарантирован на каждой итерации.
func (p *Parser) parseStmtSeq(closing token.Kind) ([]ast.ExprID, ast.ExprID) {
	var stmts []ast.ExprID
	tail := ast.NoExprID

	for !p.at(closing) && !p.at(token.EOF) {
		expr, ok := p.parseExpr()
		if !ok {
			p.recoverStatement(closing)
			continue
		}

		if p.at(token.Semicolon) {
			semi := p.advance()
			span := p.arenas.Exprs.Span(expr).Cover(semi.Span)
			stmts = append(stmts, p.arenas.Exprs.NewStmt(span, expr))
			continue
		}

		if p.at(closing) || p.at(token.EOF) {
			tail = expr
			break
		}

		// выражение разобрано, но за ним ни ';', ни closing:
		// понижаем до statement и синхронизируемся
		p.err(diag.SynExpectSemicolon, "expected ';' after expression")
		stmts = append(stmts, p.arenas.Exprs.NewStmt(p.arenas.Exprs.Span(expr), expr))
		p.recoverStatement(closing)
	}

	return stmts, tail
}

// recoverStatement — прокрутить до точки синхронизации и съесть ';', если
// остановились на нём.
func (p *Parser) recoverStatement(closing token.Kind) {
	p.resyncStatement(closing)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

// parseBlockExpr — '{' stmt* [tail] '}'. Значение блока — хвостовое выражение,
// если оно есть.
func (p *Parser) parseBlockExpr() (ast.ExprID, bool) {
	openTok := p.advance() // '{'

	stmts, tail := p.parseStmtSeq(token.RBrace)

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block")
	span := openTok.Span
	if ok {
		span = span.Cover(closeTok.Span)
	} else {
		span = span.Cover(p.lastSpan)
	}

	return p.arenas.Exprs.NewBlock(span, stmts, tail), true
}
