package parser_test

import (
	"testing"

	"graviton/internal/ast"
	"graviton/internal/diag"
)

func TestErrorIsolationBetweenStatements(t *testing.T) {
	b, m, bag := parseSource(t, "let = 1; let y = 2;")

	if !hasCode(bag, diag.SynExpectIdentifier) {
		t.Fatalf("expected SynExpectIdentifier, got: %s", diagnosticsSummary(bag))
	}

	// второй statement должен пережить ошибку первого
	if len(m.Stmts) != 1 {
		t.Fatalf("stmts: got %d, want 1", len(m.Stmts))
	}
	inner := unwrapStmt(t, b, m.Stmts[0])
	d, _ := b.Exprs.Let(inner)
	if b.Lookup(d.Name) != "y" {
		t.Errorf("surviving binding: got %q, want y", b.Lookup(d.Name))
	}
	if _, v := litValue(t, b, d.Init); v != "2" {
		t.Errorf("init: got %q", v)
	}
}

func TestMissingSemicolonDemotesToStatement(t *testing.T) {
	b, m, bag := parseSource(t, "1 2")

	if !hasCode(bag, diag.SynExpectSemicolon) {
		t.Fatalf("expected SynExpectSemicolon, got: %s", diagnosticsSummary(bag))
	}
	if len(m.Stmts) != 1 {
		t.Fatalf("stmts: got %d, want 1", len(m.Stmts))
	}
	if m.Tail.IsValid() {
		t.Errorf("expression without terminator must not become the tail")
	}
	inner := unwrapStmt(t, b, m.Stmts[0])
	if _, v := litValue(t, b, inner); v != "1" {
		t.Errorf("stmt inner: got %q", v)
	}
}

func TestRecoveryEatsUpToSemicolon(t *testing.T) {
	b, m, bag := parseSource(t, "let = 1 + 2 * 3; 42")
	if !bag.HasErrors() {
		t.Fatal("expected an error")
	}
	if !m.Tail.IsValid() {
		t.Fatalf("expected tail after recovery")
	}
	if _, v := litValue(t, b, m.Tail); v != "42" {
		t.Errorf("tail: got %q", v)
	}
}

func TestMaxErrorsStopsReporting(t *testing.T) {
	_, _, bag := parseSourceOpts(t, "let; let; let;", 2)
	if bag.ErrorCount() != 2 {
		t.Errorf("ErrorCount: got %d, want 2", bag.ErrorCount())
	}
}

func TestBinaryMissingOperandSingleDiagnostic(t *testing.T) {
	_, _, bag := parseSource(t, "1 + ;")
	if !hasCode(bag, diag.SynExpectExpression) {
		t.Fatalf("expected SynExpectExpression, got: %s", diagnosticsSummary(bag))
	}
	if bag.ErrorCount() != 1 {
		t.Errorf("ErrorCount: got %d, want 1 (%s)", bag.ErrorCount(), diagnosticsSummary(bag))
	}
}

func TestUnclosedParen(t *testing.T) {
	_, _, bag := parseSource(t, "(1 + 2")
	if !hasCode(bag, diag.SynUnclosedParen) {
		t.Errorf("expected SynUnclosedParen, got: %s", diagnosticsSummary(bag))
	}
}

func TestExpectExpressionAtStray(t *testing.T) {
	_, _, bag := parseSource(t, "+ 1;")
	if !hasCode(bag, diag.SynExpectExpression) {
		t.Errorf("expected SynExpectExpression, got: %s", diagnosticsSummary(bag))
	}
}

func TestLexerErrorsStillYieldAST(t *testing.T) {
	b, m, bag := parseSource(t, "let x = 1 @ ;")
	if !hasCode(bag, diag.LexUnknownChar) {
		t.Fatalf("expected LexUnknownChar, got: %s", diagnosticsSummary(bag))
	}
	// лексер пропускает мусорный символ; let разбирается целиком
	if len(m.Stmts) != 1 {
		t.Fatalf("stmts: got %d, want 1", len(m.Stmts))
	}
	inner := unwrapStmt(t, b, m.Stmts[0])
	requireKind(t, b, inner, ast.ExprLet)
}

func TestEveryInputYieldsModule(t *testing.T) {
	inputs := []string{
		";",
		";;;",
		"let",
		"((((",
		"}",
		"if",
		"fn",
		`"unterminated`,
	}
	for _, src := range inputs {
		t.Run(src, func(t *testing.T) {
			_, m, _ := parseSource(t, src)
			if m == nil {
				t.Fatalf("no module for %q", src)
			}
		})
	}
}
