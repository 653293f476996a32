package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Синтаксические
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectSemicolon   Code = 2002
	SynExpectExpression  Code = 2003
	SynExpectIdentifier  Code = 2004
	SynExpectType        Code = 2005
	SynUnclosedParen     Code = 2006
	SynUnclosedBrace     Code = 2007
	SynExpectImportPath  Code = 2008
	SynExpectFnSignature Code = 2009
	SynExpectReturnValue Code = 2010
	SynTrailingExpr      Code = 2011
	SynExpectArrowType   Code = 2012

	// I/O и драйвер
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001

	// Артефакты (binary AST interchange)
	ArtInfo          Code = 5000
	ArtBadSchema     Code = 5001
	ArtCorruptedNode Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexInfo:                     "lexer note",
	LexUnknownChar:              "unrecognized character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed number literal",

	SynInfo:              "parser note",
	SynUnexpectedToken:   "unexpected token",
	SynExpectSemicolon:   "missing semicolon",
	SynExpectExpression:  "expected expression",
	SynExpectIdentifier:  "expected identifier",
	SynExpectType:        "expected type name",
	SynUnclosedParen:     "unclosed parenthesis",
	SynUnclosedBrace:     "unclosed brace",
	SynExpectImportPath:  "import requires a string literal",
	SynExpectFnSignature: "expected function signature",
	SynExpectReturnValue: "return requires an operand",
	SynTrailingExpr:      "only the last expression may omit its terminator",
	SynExpectArrowType:   "expected return type after '->'",

	IOInfo:          "I/O note",
	IOLoadFileError: "failed to load source file",

	ArtInfo:          "artifact note",
	ArtBadSchema:     "unsupported AST artifact schema",
	ArtCorruptedNode: "corrupted AST artifact node",
}

// ID returns the stable, human-facing code identifier, e.g. SYN2001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("ART%04d", ic)
	default:
		return fmt.Sprintf("GRV%04d", ic)
	}
}

// Title returns the short description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
