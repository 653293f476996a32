package ast

import (
	"graviton/internal/source"
)

// Exprs manages allocation of expression nodes.
type Exprs struct {
	Arena     *Arena[Expr]
	Idents    *Arena[ExprIdentData]
	Literals  *Arena[ExprLiteralData]
	Unaries   *Arena[ExprUnaryData]
	Binaries  *Arena[ExprBinaryData]
	Blocks    *Arena[ExprBlockData]
	Ifs       *Arena[ExprIfData]
	Whiles    *Arena[ExprWhileData]
	Lets      *Arena[ExprLetData]
	Imports   *Arena[ExprImportData]
	FnDefs    *Arena[ExprFnDefData]
	FnExterns *Arena[ExprFnExternData]
	Calls     *Arena[ExprCallData]
	Returns   *Arena[ExprReturnData]
	Stmts     *Arena[ExprStmtData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using
// capHint as the initial capacity.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:     NewArena[Expr](capHint),
		Idents:    NewArena[ExprIdentData](capHint),
		Literals:  NewArena[ExprLiteralData](capHint),
		Unaries:   NewArena[ExprUnaryData](capHint),
		Binaries:  NewArena[ExprBinaryData](capHint),
		Blocks:    NewArena[ExprBlockData](capHint),
		Ifs:       NewArena[ExprIfData](capHint),
		Whiles:    NewArena[ExprWhileData](capHint),
		Lets:      NewArena[ExprLetData](capHint),
		Imports:   NewArena[ExprImportData](capHint),
		FnDefs:    NewArena[ExprFnDefData](capHint),
		FnExterns: NewArena[ExprFnExternData](capHint),
		Calls:     NewArena[ExprCallData](capHint),
		Returns:   NewArena[ExprReturnData](capHint),
		Stmts:     NewArena[ExprStmtData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression header with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// Span returns the span of id, or the zero span for the invalid ID.
func (e *Exprs) Span(id ExprID) source.Span {
	if expr := e.Get(id); expr != nil {
		return expr.Span
	}
	return source.Span{}
}

// NewIdent creates a new identifier reference.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, payload)
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(expr.Payload), true
}

// NewLiteral creates a new literal expression.
func (e *Exprs) NewLiteral(span source.Span, kind LitKind, value source.StringID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Kind: kind, Value: value})
	return e.new(ExprLit, span, payload)
}

// Literal returns the literal data for the given expression ID.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(expr.Payload), true
}

// NewUnary creates a new unary expression.
func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, payload)
}

// Unary returns the unary data for the given expression ID.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(expr.Payload), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, payload)
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(expr.Payload), true
}

// NewBlock creates a new block expression.
func (e *Exprs) NewBlock(span source.Span, stmts []ExprID, tail ExprID) ExprID {
	payload := e.Blocks.Allocate(ExprBlockData{
		Stmts: append([]ExprID(nil), stmts...),
		Tail:  tail,
	})
	return e.new(ExprBlock, span, payload)
}

// Block returns the block data for the given expression ID.
func (e *Exprs) Block(id ExprID) (*ExprBlockData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBlock {
		return nil, false
	}
	return e.Blocks.Get(expr.Payload), true
}

// NewIf creates a new if expression.
func (e *Exprs) NewIf(span source.Span, branches []IfBranch, elseBody ExprID) ExprID {
	payload := e.Ifs.Allocate(ExprIfData{
		Branches: append([]IfBranch(nil), branches...),
		Else:     elseBody,
	})
	return e.new(ExprIf, span, payload)
}

// If returns the if data for the given expression ID.
func (e *Exprs) If(id ExprID) (*ExprIfData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIf {
		return nil, false
	}
	return e.Ifs.Get(expr.Payload), true
}

// NewWhile creates a new while expression.
func (e *Exprs) NewWhile(span source.Span, cond, body ExprID) ExprID {
	payload := e.Whiles.Allocate(ExprWhileData{Cond: cond, Body: body})
	return e.new(ExprWhile, span, payload)
}

// While returns the while data for the given expression ID.
func (e *Exprs) While(id ExprID) (*ExprWhileData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprWhile {
		return nil, false
	}
	return e.Whiles.Get(expr.Payload), true
}

// NewLet creates a new let expression.
func (e *Exprs) NewLet(span source.Span, name source.StringID, nameSpan source.Span, mutable bool, typ source.StringID, init ExprID) ExprID {
	payload := e.Lets.Allocate(ExprLetData{
		Name:     name,
		NameSpan: nameSpan,
		Mutable:  mutable,
		Type:     typ,
		Init:     init,
	})
	return e.new(ExprLet, span, payload)
}

// Let returns the let data for the given expression ID.
func (e *Exprs) Let(id ExprID) (*ExprLetData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLet {
		return nil, false
	}
	return e.Lets.Get(expr.Payload), true
}

// NewImport creates a new import expression.
func (e *Exprs) NewImport(span source.Span, path source.StringID) ExprID {
	payload := e.Imports.Allocate(ExprImportData{Path: path})
	return e.new(ExprImport, span, payload)
}

// Import returns the import data for the given expression ID.
func (e *Exprs) Import(id ExprID) (*ExprImportData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprImport {
		return nil, false
	}
	return e.Imports.Get(expr.Payload), true
}

// NewFnDef creates a new anonymous function expression.
func (e *Exprs) NewFnDef(span source.Span, params []FnParam, ret source.StringID, body ExprID) ExprID {
	payload := e.FnDefs.Allocate(ExprFnDefData{
		Params: append([]FnParam(nil), params...),
		Ret:    ret,
		Body:   body,
	})
	return e.new(ExprFnDef, span, payload)
}

// FnDef returns the fn data for the given expression ID.
func (e *Exprs) FnDef(id ExprID) (*ExprFnDefData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprFnDef {
		return nil, false
	}
	return e.FnDefs.Get(expr.Payload), true
}

// NewFnExtern creates a new extern declaration.
func (e *Exprs) NewFnExtern(span source.Span, name source.StringID, params []FnParam, ret source.StringID) ExprID {
	payload := e.FnExterns.Allocate(ExprFnExternData{
		Name:   name,
		Params: append([]FnParam(nil), params...),
		Ret:    ret,
	})
	return e.new(ExprFnExtern, span, payload)
}

// FnExtern returns the extern data for the given expression ID.
func (e *Exprs) FnExtern(id ExprID) (*ExprFnExternData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprFnExtern {
		return nil, false
	}
	return e.FnExterns.Get(expr.Payload), true
}

// NewCall creates a new call expression.
func (e *Exprs) NewCall(span source.Span, callee source.StringID, calleeSpan source.Span, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{
		Callee:     callee,
		CalleeSpan: calleeSpan,
		Args:       append([]ExprID(nil), args...),
	})
	return e.new(ExprCall, span, payload)
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(expr.Payload), true
}

// NewReturn creates a new return expression.
func (e *Exprs) NewReturn(span source.Span, value ExprID) ExprID {
	payload := e.Returns.Allocate(ExprReturnData{Value: value})
	return e.new(ExprReturn, span, payload)
}

// Return returns the return data for the given expression ID.
func (e *Exprs) Return(id ExprID) (*ExprReturnData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprReturn {
		return nil, false
	}
	return e.Returns.Get(expr.Payload), true
}

// NewStmt wraps a terminated expression.
func (e *Exprs) NewStmt(span source.Span, inner ExprID) ExprID {
	payload := e.Stmts.Allocate(ExprStmtData{Inner: inner})
	return e.new(ExprStmt, span, payload)
}

// Stmt returns the statement data for the given expression ID.
func (e *Exprs) Stmt(id ExprID) (*ExprStmtData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprStmt {
		return nil, false
	}
	return e.Stmts.Get(expr.Payload), true
}
