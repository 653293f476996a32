package ast

import (
	"graviton/internal/source"
)

// Module is the parse root of one compilation unit: ordered top-level
// statements plus an optional trailing value expression (the file-scope
// mirror of the block rule).
type Module struct {
	Span  source.Span
	Stmts []ExprID
	Tail  ExprID
}

// Modules manages allocation of parse roots.
type Modules struct {
	Arena *Arena[Module]
}

func NewModules(capHint uint) *Modules {
	return &Modules{
		Arena: NewArena[Module](capHint),
	}
}

func (m *Modules) New(span source.Span) ModuleID {
	return ModuleID(m.Arena.Allocate(Module{Span: span}))
}

func (m *Modules) Get(id ModuleID) *Module {
	return m.Arena.Get(uint32(id))
}
