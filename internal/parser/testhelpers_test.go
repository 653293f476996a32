package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"graviton/internal/ast"
	"graviton/internal/diag"
	"graviton/internal/lexer"
	"graviton/internal/parser"
	"graviton/internal/source"
)

// parseSource разбирает строку как один модуль; bag собирает диагностики
// лексера и парсера вместе.
func parseSource(t *testing.T, src string) (*ast.Builder, *ast.Module, *diag.Bag) {
	t.Helper()
	return parseSourceOpts(t, src, 0)
}

func parseSourceOpts(t *testing.T, src string, maxErrors uint) (*ast.Builder, *ast.Module, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.grv", []byte(src))

	bag := diag.NewBag(0)
	lx := lexer.New(fs.Get(fileID), lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	builder := ast.NewBuilder(ast.Hints{}, nil)

	res := parser.ParseModule(lx, builder, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})
	if !res.Module.IsValid() {
		t.Fatalf("ParseModule returned invalid module for %q", src)
	}
	return builder, builder.Modules.Get(res.Module), bag
}

// parseTailExpr разбирает src и требует, чтобы результат был единственным
// хвостовым выражением без statements и без ошибок.
func parseTailExpr(t *testing.T, src string) (*ast.Builder, ast.ExprID) {
	t.Helper()
	b, m, bag := parseSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors for %q: %s", src, diagnosticsSummary(bag))
	}
	if len(m.Stmts) != 0 {
		t.Fatalf("expected no statements for %q, got %d", src, len(m.Stmts))
	}
	if !m.Tail.IsValid() {
		t.Fatalf("expected tail expression for %q", src)
	}
	return b, m.Tail
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// requireKind проверяет вид узла и возвращает его заголовок.
func requireKind(t *testing.T, b *ast.Builder, id ast.ExprID, kind ast.ExprKind) *ast.Expr {
	t.Helper()
	expr := b.Exprs.Get(id)
	if expr == nil {
		t.Fatalf("expected %v node, got invalid ID", kind)
	}
	if expr.Kind != kind {
		t.Fatalf("expected %v node, got %v", kind, expr.Kind)
	}
	return expr
}

// unwrapStmt достаёт выражение из statement-обёртки.
func unwrapStmt(t *testing.T, b *ast.Builder, id ast.ExprID) ast.ExprID {
	t.Helper()
	requireKind(t, b, id, ast.ExprStmt)
	d, _ := b.Exprs.Stmt(id)
	return d.Inner
}

// identName возвращает имя Ident-узла.
func identName(t *testing.T, b *ast.Builder, id ast.ExprID) string {
	t.Helper()
	requireKind(t, b, id, ast.ExprIdent)
	d, _ := b.Exprs.Ident(id)
	return b.Lookup(d.Name)
}

// litValue возвращает вид и текст литерала.
func litValue(t *testing.T, b *ast.Builder, id ast.ExprID) (ast.LitKind, string) {
	t.Helper()
	requireKind(t, b, id, ast.ExprLit)
	d, _ := b.Exprs.Literal(id)
	return d.Kind, b.Lookup(d.Value)
}

// binaryParts раскладывает Binary-узел.
func binaryParts(t *testing.T, b *ast.Builder, id ast.ExprID) (ast.BinaryOp, ast.ExprID, ast.ExprID) {
	t.Helper()
	requireKind(t, b, id, ast.ExprBinary)
	d, _ := b.Exprs.Binary(id)
	return d.Op, d.Left, d.Right
}
