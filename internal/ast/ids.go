package ast

type (
	// ModuleID identifies the parse root of one compilation unit.
	ModuleID uint32
	// ExprID identifies one node; everything in this language is an
	// expression, including let, import, and fn declarations.
	ExprID uint32
)

const (
	NoModuleID ModuleID = 0
	NoExprID   ExprID   = 0
)

func (id ModuleID) IsValid() bool { return id != NoModuleID }
func (id ExprID) IsValid() bool   { return id != NoExprID }
