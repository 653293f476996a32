package ast

import (
	"graviton/internal/source"
)

// ExprKind enumerates the closed set of node variants, one per grammar
// production. Consumers are expected to switch exhaustively.
type ExprKind uint8

const (
	// ExprIdent is a bare identifier reference.
	ExprIdent ExprKind = iota
	// ExprLit is a number, string, or boolean literal.
	ExprLit
	// ExprUnary is a prefix operator applied to an operand.
	ExprUnary
	// ExprBinary is an infix operator with left and right children;
	// assignment included.
	ExprBinary
	// ExprBlock is `{ stmt* tail? }`; the optional tail expression is the
	// block's value.
	ExprBlock
	// ExprIf is a chain of (condition, body) branches plus an optional else
	// body.
	ExprIf
	// ExprWhile is a condition and a body expression.
	ExprWhile
	// ExprLet is a binding with mutability flag, optional type name, and
	// optional initializer.
	ExprLet
	// ExprImport names a module path string.
	ExprImport
	// ExprFnDef is an anonymous function: parameters, optional return type,
	// body.
	ExprFnDef
	// ExprFnExtern is a named foreign declaration: parameters and optional
	// return type, no body.
	ExprFnExtern
	// ExprCall is a named callee applied to argument expressions.
	ExprCall
	// ExprReturn carries a mandatory operand.
	ExprReturn
	// ExprStmt wraps a terminated expression: its value is discarded.
	ExprStmt
)

var exprKindNames = [...]string{
	ExprIdent:    "Ident",
	ExprLit:      "Lit",
	ExprUnary:    "Unary",
	ExprBinary:   "Binary",
	ExprBlock:    "Block",
	ExprIf:       "If",
	ExprWhile:    "While",
	ExprLet:      "Let",
	ExprImport:   "Import",
	ExprFnDef:    "FnDef",
	ExprFnExtern: "FnExtern",
	ExprCall:     "Call",
	ExprReturn:   "Return",
	ExprStmt:     "Stmt",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Unknown"
}

// Expr is the per-node header; kind-specific data lives in payload arenas
// addressed by Payload.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload uint32
}

// LitKind distinguishes literal forms inside ExprLit.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitBool
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitString:
		return "string"
	case LitBool:
		return "bool"
	}
	return "?"
}

// ===== payload types =====

type ExprIdentData struct {
	Name source.StringID
}

type ExprLiteralData struct {
	Kind  LitKind
	Value source.StringID // raw text for numbers/strings, "true"/"false" for bools
}

type ExprUnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

type ExprBlockData struct {
	Stmts []ExprID // terminated statements, in source order
	Tail  ExprID   // optional trailing value expression
}

// IfBranch is one (condition, body) pair of an if/else-if chain.
type IfBranch struct {
	Cond ExprID
	Body ExprID
}

type ExprIfData struct {
	Branches []IfBranch
	Else     ExprID // optional
}

type ExprWhileData struct {
	Cond ExprID
	Body ExprID
}

type ExprLetData struct {
	Name     source.StringID
	NameSpan source.Span
	Mutable  bool
	Type     source.StringID // optional declared type name
	Init     ExprID          // optional initializer
}

type ExprImportData struct {
	Path source.StringID // module path without quotes
}

// FnParam is one parameter of a fn_def/fn_extern signature.
type FnParam struct {
	Name source.StringID
	Type source.StringID // optional
	Span source.Span
}

type ExprFnDefData struct {
	Params []FnParam
	Ret    source.StringID // optional return type name
	Body   ExprID
}

type ExprFnExternData struct {
	Name   source.StringID
	Params []FnParam
	Ret    source.StringID // optional
}

type ExprCallData struct {
	Callee     source.StringID
	CalleeSpan source.Span
	Args       []ExprID
}

type ExprReturnData struct {
	Value ExprID
}

type ExprStmtData struct {
	Inner ExprID
}
