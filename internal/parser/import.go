package parser

import (
	"graviton/internal/ast"
	"graviton/internal/diag"
	"graviton/internal/token"
)

// parseImportExpr — 'import' "path". Путь — только строковый литерал;
// диагностика указывает на неверный операнд, а не на ключевое слово.
func (p *Parser) parseImportExpr() (ast.ExprID, bool) {
	importTok := p.advance() // 'import'

	if !p.at(token.StringLit) {
		p.errAt(diag.SynExpectImportPath, p.getDiagnosticSpan(), "expected module path string after 'import'")
		return ast.NoExprID, false
	}
	pathTok := p.advance()

	span := importTok.Span.Cover(pathTok.Span)
	path := p.arenas.Strings.Intern(unquote(pathTok.Text))
	return p.arenas.Exprs.NewImport(span, path), true
}
