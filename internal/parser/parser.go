package parser

import (
	"slices"

	"graviton/internal/ast"
	"graviton/internal/diag"
	"graviton/internal/lexer"
	"graviton/internal/source"
	"graviton/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough — проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Module ast.ModuleID
	Bag    *diag.Bag
}

// Parser — состояние парсера на один файл. Одно значимое слово lookahead
// через lx.Peek(); дальше заглядывать не нужно.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	module   ast.ModuleID
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseModule — входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
// Всегда возвращает best-effort модуль, даже при ошибках.
func ParseModule(
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		module:   arenas.Modules.New(lx.EmptySpan()),
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseModuleBody()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		Module: p.module,
		Bag:    bag,
	}
}

// parseModuleBody — statement* [trailing-expr] до EOF; зеркало правила блока
// на уровне файла.
func (p *Parser) parseModuleBody() {
	startSpan := p.lx.Peek().Span
	stmts, tail := p.parseStmtSeq(token.EOF)

	m := p.arenas.Modules.Get(p.module)
	m.Stmts = stmts
	m.Tail = tail

	span := startSpan.Cover(p.lastSpan)
	if tail.IsValid() {
		span = span.Cover(p.arenas.Exprs.Span(tail))
	}
	m.Span = span
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}
