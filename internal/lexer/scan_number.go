package lexer

import (
	"graviton/internal/diag"
	"graviton/internal/token"
)

// scanNumber: десятичные целые и дроби: [0-9]+ (опц. .[0-9]+).
// Вторая десятичная точка — LexBadNumber; токен по возможности завершаем,
// чтобы парсер мог продолжить.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть: '.' только если за ней цифра
	if lx.dotThenDigit() {
		kind = token.FloatLit
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// лишние точки: 1.2.3 и т.п.
	if lx.dotThenDigit() {
		for lx.dotThenDigit() {
			lx.cursor.Bump() // '.'
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "number literal has more than one decimal point")
		return token.Token{Kind: token.FloatLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// dotThenDigit: текущая точка, за ней цифра?
func (lx *Lexer) dotThenDigit() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}
