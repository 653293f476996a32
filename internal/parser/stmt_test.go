package parser_test

import (
	"testing"

	"graviton/internal/ast"
	"graviton/internal/diag"
)

func TestStatementsAndTail(t *testing.T) {
	b, m, bag := parseSource(t, "1; 2; 3")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}
	if len(m.Stmts) != 2 {
		t.Fatalf("stmts: got %d, want 2", len(m.Stmts))
	}
	if !m.Tail.IsValid() {
		t.Fatalf("expected tail")
	}
	if _, v := litValue(t, b, m.Tail); v != "3" {
		t.Errorf("tail: got %q, want 3", v)
	}
}

func TestTerminatedExprIsNotTail(t *testing.T) {
	_, m, bag := parseSource(t, "1 + 2;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}
	if len(m.Stmts) != 1 || m.Tail.IsValid() {
		t.Errorf("terminated expression must be a statement, not a tail")
	}
}

func TestStmtWrapsExpression(t *testing.T) {
	b, m, _ := parseSource(t, "42;")
	inner := unwrapStmt(t, b, m.Stmts[0])
	if _, v := litValue(t, b, inner); v != "42" {
		t.Errorf("stmt inner: got %q", v)
	}
}

func TestStmtSpanIncludesSemicolon(t *testing.T) {
	b, m, _ := parseSource(t, "42;")
	expr := b.Exprs.Get(m.Stmts[0])
	if expr.Span.Start != 0 || expr.Span.End != 3 {
		t.Errorf("stmt span: got %v, want 0-3", expr.Span)
	}
}

func TestBlockWithTrailingExpr(t *testing.T) {
	b, tail := parseTailExpr(t, "{ let x: I32 = 1; x }")

	requireKind(t, b, tail, ast.ExprBlock)
	block, _ := b.Exprs.Block(tail)
	if len(block.Stmts) != 1 {
		t.Fatalf("block stmts: got %d, want 1", len(block.Stmts))
	}
	if !block.Tail.IsValid() {
		t.Fatalf("expected block tail")
	}
	if name := identName(t, b, block.Tail); name != "x" {
		t.Errorf("block tail: got %q, want x", name)
	}

	inner := unwrapStmt(t, b, block.Stmts[0])
	requireKind(t, b, inner, ast.ExprLet)
}

func TestBlockWithoutTail(t *testing.T) {
	b, tail := parseTailExpr(t, "{ 1; 2; }")
	block, _ := b.Exprs.Block(tail)
	if len(block.Stmts) != 2 || block.Tail.IsValid() {
		t.Errorf("got %d stmts, tail=%v; want 2 stmts, no tail", len(block.Stmts), block.Tail.IsValid())
	}
}

func TestEmptyBlock(t *testing.T) {
	b, tail := parseTailExpr(t, "{}")
	block, _ := b.Exprs.Block(tail)
	if len(block.Stmts) != 0 || block.Tail.IsValid() {
		t.Errorf("empty block must have no stmts and no tail")
	}
}

func TestNestedBlocks(t *testing.T) {
	b, tail := parseTailExpr(t, "{ { 1 } }")
	outer, _ := b.Exprs.Block(tail)
	if !outer.Tail.IsValid() {
		t.Fatalf("outer tail missing")
	}
	requireKind(t, b, outer.Tail, ast.ExprBlock)
	inner, _ := b.Exprs.Block(outer.Tail)
	if _, v := litValue(t, b, inner.Tail); v != "1" {
		t.Errorf("inner tail: got %q", v)
	}
}

func TestBlockAsStatement(t *testing.T) {
	b, m, bag := parseSource(t, "{ 1 }; 2")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}
	if len(m.Stmts) != 1 {
		t.Fatalf("stmts: got %d, want 1", len(m.Stmts))
	}
	inner := unwrapStmt(t, b, m.Stmts[0])
	requireKind(t, b, inner, ast.ExprBlock)
	if _, v := litValue(t, b, m.Tail); v != "2" {
		t.Errorf("tail: got %q", v)
	}
}

func TestUnclosedBrace(t *testing.T) {
	b, m, bag := parseSource(t, "{ 1")
	if !bag.HasErrors() {
		t.Fatalf("expected an error for unclosed brace")
	}
	if !hasCode(bag, diag.SynUnclosedBrace) {
		t.Errorf("expected SynUnclosedBrace, got: %s", diagnosticsSummary(bag))
	}
	// best-effort: блок всё равно построен
	if !m.Tail.IsValid() {
		t.Fatalf("expected best-effort tail block")
	}
	requireKind(t, b, m.Tail, ast.ExprBlock)
}

func TestModuleSpanCoversInput(t *testing.T) {
	b, m, _ := parseSource(t, "let x = 1;\nx")
	_ = b
	if m.Span.Start != 0 {
		t.Errorf("module span start: got %d, want 0", m.Span.Start)
	}
	if m.Span.End != 12 { // до конца "x"
		t.Errorf("module span end: got %d, want 12", m.Span.End)
	}
}
