package lexer

import (
	"graviton/internal/diag"
	"graviton/internal/source"
	"graviton/internal/token"
)

// Lexer converts the raw bytes of one compilation unit into tokens.
// It holds no state beyond the cursor and a one-token lookahead buffer;
// after the final EOF token it is inert.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1-элементный буфер для Peek
	hold   []token.Trivia // накопленные leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий значимый токен с уже собранным Leading.
// После EOF всегда возвращает EOF. Нераспознанные символы репортятся
// по одному разу и пропускаются — скан продолжается.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		lx.collectLeadingTrivia()

		if lx.cursor.EOF() {
			return token.Token{
				Kind: token.EOF,
				Span: lx.EmptySpan(),
				Text: "",
			}
		}

		ch := lx.cursor.Peek()
		var tok token.Token

		switch {
		case isIdentStartByte(ch) || ch >= utf8RuneSelf:
			tok = lx.scanIdentOrKeyword()

		case isDec(ch):
			tok = lx.scanNumber()

		case ch == '"':
			tok = lx.scanString()

		default:
			tok = lx.scanOperatorOrPunct()
		}

		if tok.Kind == token.Invalid {
			// уже зарепорчено сканером; пропускаем и ищем следующий токен
			continue
		}

		tok.Leading = lx.hold
		lx.hold = nil
		return tok
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-length span at the current cursor offset.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// File returns the file this lexer scans.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// scanUnknownChar reports a single unrecognized character and skips it.
func (lx *Lexer) scanUnknownChar(start Mark) token.Token {
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unrecognized character "+string(lx.file.Content[sp.Start:sp.End]))
	return token.Token{Kind: token.Invalid, Span: sp}
}
