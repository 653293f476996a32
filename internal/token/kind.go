package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents the string literal token.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the equality operator token.
	EqEq // ==
	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=

	// Colon represents the colon punctuation token.
	Colon // :
	// Semicolon represents the semicolon punctuation token.
	Semicolon // ;
	// Comma represents the comma punctuation token.
	Comma // ,
	// Arrow represents the arrow punctuation token.
	Arrow // ->
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
)

var kindNames = [...]string{
	Invalid:   "invalid",
	EOF:       "end of file",
	Ident:     "identifier",
	KwLet:     "'let'",
	KwMut:     "'mut'",
	KwIf:      "'if'",
	KwElse:    "'else'",
	KwWhile:   "'while'",
	KwImport:  "'import'",
	KwReturn:  "'return'",
	KwExtern:  "'extern'",
	KwFn:      "'fn'",
	KwTrue:    "'true'",
	KwFalse:   "'false'",
	IntLit:    "integer literal",
	FloatLit:  "float literal",
	StringLit: "string literal",
	Plus:      "'+'",
	Minus:     "'-'",
	Star:      "'*'",
	Slash:     "'/'",
	Assign:    "'='",
	EqEq:      "'=='",
	Bang:      "'!'",
	BangEq:    "'!='",
	Lt:        "'<'",
	LtEq:      "'<='",
	Gt:        "'>'",
	GtEq:      "'>='",
	Colon:     "':'",
	Semicolon: "';'",
	Comma:     "','",
	Arrow:     "'->'",
	LParen:    "'('",
	RParen:    "')'",
	LBrace:    "'{'",
	RBrace:    "'}'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}
