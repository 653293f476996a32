package astcodec

import (
	"fmt"

	"graviton/internal/ast"
	"graviton/internal/source"
)

// validate проверяет, что все ссылки снимка попадают в границы своих арен.
// Обязательные ссылки не могут быть нулевыми; опциональные — могут.
func validate(snap *Snapshot) error {
	v := &validator{snap: snap}

	exprCount := uint32(len(snap.Exprs))
	payloadLens := map[ast.ExprKind]uint32{
		ast.ExprIdent:    uint32(len(snap.Idents)),
		ast.ExprLit:      uint32(len(snap.Literals)),
		ast.ExprUnary:    uint32(len(snap.Unaries)),
		ast.ExprBinary:   uint32(len(snap.Binaries)),
		ast.ExprBlock:    uint32(len(snap.Blocks)),
		ast.ExprIf:       uint32(len(snap.Ifs)),
		ast.ExprWhile:    uint32(len(snap.Whiles)),
		ast.ExprLet:      uint32(len(snap.Lets)),
		ast.ExprImport:   uint32(len(snap.Imports)),
		ast.ExprFnDef:    uint32(len(snap.FnDefs)),
		ast.ExprFnExtern: uint32(len(snap.FnExterns)),
		ast.ExprCall:     uint32(len(snap.Calls)),
		ast.ExprReturn:   uint32(len(snap.Returns)),
		ast.ExprStmt:     uint32(len(snap.Stmts)),
	}

	for i, e := range snap.Exprs {
		limit, known := payloadLens[e.Kind]
		if !known {
			return fmt.Errorf("%w: node %d has unknown kind %d", ErrCorrupted, i+1, e.Kind)
		}
		if e.Payload == 0 || e.Payload > limit {
			return fmt.Errorf("%w: node %d (%s) payload %d out of range", ErrCorrupted, i+1, e.Kind, e.Payload)
		}
	}

	for _, d := range snap.Unaries {
		v.require(d.Operand, exprCount, "unary operand")
	}
	for _, d := range snap.Binaries {
		v.require(d.Left, exprCount, "binary left")
		v.require(d.Right, exprCount, "binary right")
	}
	for _, d := range snap.Blocks {
		for _, s := range d.Stmts {
			v.require(s, exprCount, "block statement")
		}
		v.optional(d.Tail, exprCount, "block tail")
	}
	for _, d := range snap.Ifs {
		for _, br := range d.Branches {
			v.require(br.Cond, exprCount, "if condition")
			v.require(br.Body, exprCount, "if body")
		}
		v.optional(d.Else, exprCount, "else body")
	}
	for _, d := range snap.Whiles {
		v.require(d.Cond, exprCount, "while condition")
		v.require(d.Body, exprCount, "while body")
	}
	for _, d := range snap.Lets {
		v.optional(d.Init, exprCount, "let initializer")
	}
	for _, d := range snap.FnDefs {
		v.require(d.Body, exprCount, "fn body")
	}
	for _, d := range snap.Calls {
		for _, a := range d.Args {
			v.require(a, exprCount, "call argument")
		}
	}
	for _, d := range snap.Returns {
		v.require(d.Value, exprCount, "return value")
	}
	for _, d := range snap.Stmts {
		v.require(d.Inner, exprCount, "statement inner")
	}

	for _, s := range snap.Module.Stmts {
		v.require(s, exprCount, "module statement")
	}
	v.optional(snap.Module.Tail, exprCount, "module tail")

	if v.err != nil {
		return v.err
	}
	return v.validateStrings()
}

type validator struct {
	snap *Snapshot
	err  error
}

func (v *validator) require(id ast.ExprID, limit uint32, what string) {
	if v.err != nil {
		return
	}
	if id == ast.NoExprID || uint32(id) > limit {
		v.err = fmt.Errorf("%w: %s reference %d out of range", ErrCorrupted, what, id)
	}
}

func (v *validator) optional(id ast.ExprID, limit uint32, what string) {
	if v.err != nil || id == ast.NoExprID {
		return
	}
	if uint32(id) > limit {
		v.err = fmt.Errorf("%w: %s reference %d out of range", ErrCorrupted, what, id)
	}
}

// validateStrings проверяет ссылки в таблицу строк.
func (v *validator) validateStrings() error {
	limit := source.StringID(len(v.snap.Strings))

	check := func(id source.StringID, what string, required bool) error {
		if id == source.NoStringID {
			if required {
				return fmt.Errorf("%w: %s has no name", ErrCorrupted, what)
			}
			return nil
		}
		if id >= limit {
			return fmt.Errorf("%w: %s string %d out of range", ErrCorrupted, what, id)
		}
		return nil
	}

	for _, d := range v.snap.Idents {
		if err := check(d.Name, "identifier", true); err != nil {
			return err
		}
	}
	for _, d := range v.snap.Literals {
		if err := check(d.Value, "literal", false); err != nil {
			return err
		}
	}
	for _, d := range v.snap.Lets {
		if err := check(d.Name, "let binding", true); err != nil {
			return err
		}
		if err := check(d.Type, "let type", false); err != nil {
			return err
		}
	}
	for _, d := range v.snap.Imports {
		if err := check(d.Path, "import path", false); err != nil {
			return err
		}
	}
	for _, d := range v.snap.FnDefs {
		for _, p := range d.Params {
			if err := check(p.Name, "fn parameter", true); err != nil {
				return err
			}
			if err := check(p.Type, "fn parameter type", false); err != nil {
				return err
			}
		}
		if err := check(d.Ret, "fn return type", false); err != nil {
			return err
		}
	}
	for _, d := range v.snap.FnExterns {
		if err := check(d.Name, "extern name", true); err != nil {
			return err
		}
		for _, p := range d.Params {
			if err := check(p.Name, "extern parameter", true); err != nil {
				return err
			}
			if err := check(p.Type, "extern parameter type", false); err != nil {
				return err
			}
		}
		if err := check(d.Ret, "extern return type", false); err != nil {
			return err
		}
	}
	for _, d := range v.snap.Calls {
		if err := check(d.Callee, "callee", true); err != nil {
			return err
		}
	}
	return nil
}
