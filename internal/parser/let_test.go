package parser_test

import (
	"testing"

	"graviton/internal/ast"
	"graviton/internal/diag"
	"graviton/internal/source"
)

func parseLet(t *testing.T, src string) (*ast.Builder, *ast.ExprLetData) {
	t.Helper()
	b, m, bag := parseSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors for %q: %s", src, diagnosticsSummary(bag))
	}
	if len(m.Stmts) != 1 {
		t.Fatalf("expected one statement for %q, got %d", src, len(m.Stmts))
	}
	inner := unwrapStmt(t, b, m.Stmts[0])
	requireKind(t, b, inner, ast.ExprLet)
	d, _ := b.Exprs.Let(inner)
	return b, d
}

func TestLetPlain(t *testing.T) {
	b, d := parseLet(t, "let x;")
	if b.Lookup(d.Name) != "x" {
		t.Errorf("name: got %q", b.Lookup(d.Name))
	}
	if d.Mutable || d.Type != source.NoStringID || d.Init.IsValid() {
		t.Errorf("plain let must have no mut, no type, no init: %+v", d)
	}
}

func TestLetMut(t *testing.T) {
	_, d := parseLet(t, "let mut count;")
	if !d.Mutable {
		t.Errorf("expected mutable binding")
	}
}

func TestLetTyped(t *testing.T) {
	b, d := parseLet(t, "let x: I32;")
	if b.Lookup(d.Type) != "I32" {
		t.Errorf("type: got %q", b.Lookup(d.Type))
	}
	if d.Init.IsValid() {
		t.Errorf("unexpected init")
	}
}

func TestLetInitialized(t *testing.T) {
	b, d := parseLet(t, "let x = 1 + 2;")
	if d.Type != source.NoStringID {
		t.Errorf("unexpected type")
	}
	op, _, _ := binaryParts(t, b, d.Init)
	if op != ast.BinaryAdd {
		t.Errorf("init op: got %v, want Add", op)
	}
}

func TestLetTypedAndInitialized(t *testing.T) {
	b, d := parseLet(t, "let mut x: F64 = 3.14;")
	if !d.Mutable || b.Lookup(d.Type) != "F64" {
		t.Errorf("got mutable=%v type=%q", d.Mutable, b.Lookup(d.Type))
	}
	if k, v := litValue(t, b, d.Init); k != ast.LitFloat || v != "3.14" {
		t.Errorf("init: got %v %q", k, v)
	}
}

func TestLetNameSpan(t *testing.T) {
	_, d := parseLet(t, "let answer = 42;")
	if d.NameSpan.Start != 4 || d.NameSpan.End != 10 {
		t.Errorf("name span: got %v, want 4-10", d.NameSpan)
	}
}

func TestLetMissingName(t *testing.T) {
	_, _, bag := parseSource(t, "let = 1;")
	if !hasCode(bag, diag.SynExpectIdentifier) {
		t.Errorf("expected SynExpectIdentifier, got: %s", diagnosticsSummary(bag))
	}
}

func TestLetMissingTypeAfterColon(t *testing.T) {
	_, _, bag := parseSource(t, "let x: = 1;")
	if !hasCode(bag, diag.SynExpectType) {
		t.Errorf("expected SynExpectType, got: %s", diagnosticsSummary(bag))
	}
}
