package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"graviton/internal/diag"
	"graviton/internal/lexer"
	"graviton/internal/source"
	"graviton/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) ErrorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.grv", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

// collectAllTokens собирает все токены до EOF (EOF включается)
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens проверяет последовательность токенов (без EOF)
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	tokens = tokens[:len(tokens)-1] // убираем EOF

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

// expectSingleToken проверяет, что вход даёт ровно один значимый токен
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("expected text %q, got %q", expectedText, tok.Text)
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Errorf("expected EOF after single token, got %v", next.Kind)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== идентификаторы и ключевые слова ======

func TestIdentifiers(t *testing.T) {
	tests := []string{"foo", "_bar", "__test", "x123", "camelCase", "UPPER"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

func TestIdentifiersUnicode(t *testing.T) {
	tests := []string{"переменная", "αβγ", "名前"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"let", token.KwLet},
		{"mut", token.KwMut},
		{"if", token.KwIf},
		{"else", token.KwElse},
		{"while", token.KwWhile},
		{"import", token.KwImport},
		{"return", token.KwReturn},
		{"extern", token.KwExtern},
		{"fn", token.KwFn},
		{"true", token.KwTrue},
		{"false", token.KwFalse},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestKeywordsCaseSensitive(t *testing.T) {
	// капитализированные версии — обычные идентификаторы
	for _, input := range []string{"Let", "IF", "While", "TRUE", "Fn"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

func TestKeywordPrefixIsIdent(t *testing.T) {
	// идентификатор, начинающийся с ключевого слова, не режется
	expectSingleToken(t, "letter", token.Ident, "letter")
	expectSingleToken(t, "iffy", token.Ident, "iffy")
}

// ====== числа ======

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"7", token.IntLit},
		{"1234567890", token.IntLit},
		{"3.14", token.FloatLit},
		{"0.5", token.FloatLit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestNumberDotWithoutDigits(t *testing.T) {
	// "1." — это IntLit и отдельный неизвестный символ '.',
	// точка становится частью числа только перед цифрой
	lx, reporter := makeTestLexer("1.")
	tok := lx.Next()
	if tok.Kind != token.IntLit || tok.Text != "1" {
		t.Fatalf("expected IntLit \"1\", got %v %q", tok.Kind, tok.Text)
	}
	// '.' не входит в алфавит языка — репортится и пропускается
	if lx.Next().Kind != token.EOF {
		t.Errorf("expected EOF after skipped '.'")
	}
	if reporter.ErrorCount() != 1 {
		t.Errorf("expected 1 error for stray '.', got %d", reporter.ErrorCount())
	}
}

func TestNumberTooManyDots(t *testing.T) {
	lx, reporter := makeTestLexer("1.2.3")
	tok := lx.Next()

	if tok.Kind != token.FloatLit {
		t.Fatalf("expected FloatLit, got %v", tok.Kind)
	}
	if tok.Text != "1.2.3" {
		t.Errorf("bad number must consume the whole run, got %q", tok.Text)
	}
	if reporter.ErrorCount() != 1 {
		t.Errorf("expected exactly 1 diagnostic, got %d: %v",
			reporter.ErrorCount(), reporter.ErrorMessages())
	}
	if reporter.diagnostics[0].Code != diag.LexBadNumber {
		t.Errorf("expected LexBadNumber, got %v", reporter.diagnostics[0].Code)
	}
}

// ====== строки ======

func TestStrings(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{`"hello"`, `"hello"`},
		{`""`, `""`},
		{`"with \"escape\""`, `"with \"escape\""`},
		{`"tab\tnewline\n"`, `"tab\tnewline\n"`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.StringLit, tt.text)
		})
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer(`"no closing quote`)
	tok := lx.Next()

	if tok.Kind != token.StringLit {
		t.Fatalf("expected best-effort StringLit, got %v", tok.Kind)
	}
	if reporter.ErrorCount() != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d", reporter.ErrorCount())
	}
	d := reporter.diagnostics[0]
	if d.Code != diag.LexUnterminatedString {
		t.Errorf("expected LexUnterminatedString, got %v", d.Code)
	}
	// span до конца входа
	if d.Primary.Start != 0 || d.Primary.End != uint32(len(`"no closing quote`)) {
		t.Errorf("bad span: %v", d.Primary)
	}
	if lx.Next().Kind != token.EOF {
		t.Errorf("expected EOF after unterminated string")
	}
}

// ====== операторы ======

func TestOperatorsLongestFirst(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Kind
	}{
		{"==", []token.Kind{token.EqEq}},
		{"=", []token.Kind{token.Assign}},
		{"= =", []token.Kind{token.Assign, token.Assign}},
		{"!=", []token.Kind{token.BangEq}},
		{"!", []token.Kind{token.Bang}},
		{"<=", []token.Kind{token.LtEq}},
		{"<", []token.Kind{token.Lt}},
		{">=", []token.Kind{token.GtEq}},
		{">", []token.Kind{token.Gt}},
		{"->", []token.Kind{token.Arrow}},
		{"- >", []token.Kind{token.Minus, token.Gt}},
		{"<==", []token.Kind{token.LtEq, token.Assign}},
		{"===", []token.Kind{token.EqEq, token.Assign}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, ": ; , ( ) { }", []token.Kind{
		token.Colon, token.Semicolon, token.Comma,
		token.LParen, token.RParen, token.LBrace, token.RBrace,
	})
}

// ====== trivia ======

func TestLineComment(t *testing.T) {
	lx, _ := makeTestLexer("// comment\nx")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "x" {
		t.Fatalf("expected Ident x, got %v %q", tok.Kind, tok.Text)
	}
	// комментарий и перевод строки приклеены как leading trivia
	var kinds []token.TriviaKind
	for _, tr := range tok.Leading {
		kinds = append(kinds, tr.Kind)
	}
	if len(kinds) != 2 || kinds[0] != token.TriviaLineComment || kinds[1] != token.TriviaNewline {
		t.Errorf("leading trivia: got %v", kinds)
	}
}

func TestBlockCommentNested(t *testing.T) {
	lx, reporter := makeTestLexer("/* outer /* inner */ still */ x")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "x" {
		t.Fatalf("expected Ident x after nested comment, got %v %q", tok.Kind, tok.Text)
	}
	if reporter.ErrorCount() != 0 {
		t.Errorf("unexpected errors: %v", reporter.ErrorMessages())
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("/* never closed")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if reporter.ErrorCount() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", reporter.ErrorCount())
	}
	if reporter.diagnostics[0].Code != diag.LexUnterminatedBlockComment {
		t.Errorf("expected LexUnterminatedBlockComment, got %v", reporter.diagnostics[0].Code)
	}
}

func TestSlashIsDivision(t *testing.T) {
	expectTokens(t, "a / b", []token.Kind{token.Ident, token.Slash, token.Ident})
}

// ====== восстановление после неизвестных символов ======

func TestUnknownCharSkipped(t *testing.T) {
	lx, reporter := makeTestLexer("a @ b")
	tokens := collectAllTokens(lx)
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != 2 || tokens[0].Text != "a" || tokens[1].Text != "b" {
		t.Fatalf("expected [a b], got %v", tokensToString(tokens))
	}
	if reporter.ErrorCount() != 1 {
		t.Errorf("expected 1 error, got %d", reporter.ErrorCount())
	}
	if reporter.diagnostics[0].Code != diag.LexUnknownChar {
		t.Errorf("expected LexUnknownChar, got %v", reporter.diagnostics[0].Code)
	}
}

func TestUnknownCharEachReportedOnce(t *testing.T) {
	lx, reporter := makeTestLexer("@#$")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if reporter.ErrorCount() != 3 {
		t.Errorf("expected 3 errors (one per char), got %d", reporter.ErrorCount())
	}
}

// ====== спаны и Peek ======

func TestTokenSpans(t *testing.T) {
	lx, _ := makeTestLexer("let x = 42;")
	expected := []struct {
		start, end uint32
	}{
		{0, 3},   // let
		{4, 5},   // x
		{6, 7},   // =
		{8, 10},  // 42
		{10, 11}, // ;
	}
	for i, want := range expected {
		tok := lx.Next()
		if tok.Span.Start != want.start || tok.Span.End != want.end {
			t.Errorf("token %d (%q): span %d-%d, want %d-%d",
				i, tok.Text, tok.Span.Start, tok.Span.End, want.start, want.end)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")

	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1.Text != "a" || p2.Text != "a" {
		t.Fatalf("Peek consumed input: %q, %q", p1.Text, p2.Text)
	}

	n := lx.Next()
	if n.Text != "a" {
		t.Fatalf("Next after Peek: got %q", n.Text)
	}
	if lx.Peek().Text != "b" {
		t.Errorf("expected b after consuming a")
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("")
	for range 3 {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", tok.Kind)
		}
	}
}

func TestRealisticProgram(t *testing.T) {
	src := `let mut count: I32 = 0;
while count < 10 {
    count = count + 1; // increment
}
`
	expectTokens(t, src, []token.Kind{
		token.KwLet, token.KwMut, token.Ident, token.Colon, token.Ident,
		token.Assign, token.IntLit, token.Semicolon,
		token.KwWhile, token.Ident, token.Lt, token.IntLit, token.LBrace,
		token.Ident, token.Assign, token.Ident, token.Plus, token.IntLit, token.Semicolon,
		token.RBrace,
	})
}
