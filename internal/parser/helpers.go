package parser

import (
	"graviton/internal/diag"
	"graviton/internal/source"
	"graviton/internal/token"
)

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan — возвращает лучший span для диагностики.
// Для EOF с пустым span используем позицию сразу после lastSpan.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && peek.Span.Empty() {
		if p.lastSpan.End > 0 {
			return p.lastSpan.ZeroideToEnd()
		}
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

// err репортует ошибку с текущим диагностическим span
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

// errAt репортует ошибку с явным span
func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) bool {
	return p.report(code, diag.SevError, sp, msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if p.opts.Enough() {
		return false // достигли максимального количества ошибок
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

// resyncUntil — восстановление после ошибки: прокручиваем вход до одного из
// стоп-токенов или EOF. Всегда двигается вперёд минимум на один токен,
// если текущий токен не является стоп-токеном.
func (p *Parser) resyncUntil(stop ...token.Kind) {
	for !p.at(token.EOF) && !p.atOr(stop...) {
		p.advance()
	}
}

// resyncStatement — точка синхронизации уровня statement: ';', закрывающий
// делимитер блока или EOF.
func (p *Parser) resyncStatement(closing token.Kind) {
	p.resyncUntil(token.Semicolon, closing)
}
