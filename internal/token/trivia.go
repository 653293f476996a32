package token

import (
	"graviton/internal/source"
)

// TriviaKind classifies non-semantic source text: whitespace and comments.
type TriviaKind uint8

const (
	// TriviaSpace covers runs of spaces and tabs.
	TriviaSpace TriviaKind = iota
	// TriviaNewline covers runs of newlines.
	TriviaNewline
	// TriviaLineComment covers a // comment up to the end of line.
	TriviaLineComment
	// TriviaBlockComment covers a /* ... */ comment, nesting allowed.
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "space"
	case TriviaNewline:
		return "newline"
	case TriviaLineComment:
		return "line comment"
	case TriviaBlockComment:
		return "block comment"
	}
	return "unknown"
}

// Trivia is discarded by the parser but kept on tokens so tooling can
// reconstruct the original text.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
