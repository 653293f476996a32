package ast

import (
	"graviton/internal/source"
)

// Hints preallocates arena capacities.
type Hints struct{ Modules, Exprs uint }

// Builder owns the arenas for one (or more) parsed compilation units and
// the string interner shared across parallel parses.
type Builder struct {
	Modules *Modules
	Exprs   *Exprs
	Strings *source.Interner
}

func NewBuilder(hints Hints, interner *source.Interner) *Builder {
	if hints.Modules == 0 {
		hints.Modules = 1 << 2
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if interner == nil {
		interner = source.NewInterner()
	}
	return &Builder{
		Modules: NewModules(hints.Modules),
		Exprs:   NewExprs(hints.Exprs),
		Strings: interner,
	}
}

// PushStmt appends a terminated top-level statement to the module.
func (b *Builder) PushStmt(module ModuleID, stmt ExprID) {
	m := b.Modules.Get(module)
	m.Stmts = append(m.Stmts, stmt)
}

// SetTail records the module's trailing value expression.
func (b *Builder) SetTail(module ModuleID, tail ExprID) {
	b.Modules.Get(module).Tail = tail
}

// Lookup resolves an interned string; the empty string for NoStringID.
func (b *Builder) Lookup(id source.StringID) string {
	s, _ := b.Strings.Lookup(id)
	return s
}
