// Package astcodec serializes a parsed module to a compact binary artifact
// and restores it losslessly. Формат — msgpack-снимок арен и таблицы строк;
// позиционные индексы (1-based) сохраняются как есть, поэтому восстановленный
// Builder структурно эквивалентен исходному.
package astcodec

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"graviton/internal/ast"
	"graviton/internal/source"
)

// SchemaVersion — increment when the Snapshot layout changes.
const SchemaVersion uint16 = 1

var (
	ErrBadSchema = errors.New("unsupported AST artifact schema")
	ErrCorrupted = errors.New("corrupted AST artifact")
)

// Snapshot — плоский слепок одного модуля: заголовки узлов, payload-арены
// по видам и таблица строк. Порядок элементов определяет ID.
type Snapshot struct {
	Schema uint16

	Strings []string

	Exprs     []ast.Expr
	Idents    []ast.ExprIdentData
	Literals  []ast.ExprLiteralData
	Unaries   []ast.ExprUnaryData
	Binaries  []ast.ExprBinaryData
	Blocks    []ast.ExprBlockData
	Ifs       []ast.ExprIfData
	Whiles    []ast.ExprWhileData
	Lets      []ast.ExprLetData
	Imports   []ast.ExprImportData
	FnDefs    []ast.ExprFnDefData
	FnExterns []ast.ExprFnExternData
	Calls     []ast.ExprCallData
	Returns   []ast.ExprReturnData
	Stmts     []ast.ExprStmtData

	Module ast.Module
}

// Capture строит Snapshot для одного модуля из builder'а.
func Capture(b *ast.Builder, module ast.ModuleID) (*Snapshot, error) {
	m := b.Modules.Get(module)
	if m == nil {
		return nil, fmt.Errorf("%w: no module %d", ErrCorrupted, module)
	}
	return &Snapshot{
		Schema: SchemaVersion,

		Strings: b.Strings.Snapshot(),

		Exprs:     b.Exprs.Arena.Slice(),
		Idents:    b.Exprs.Idents.Slice(),
		Literals:  b.Exprs.Literals.Slice(),
		Unaries:   b.Exprs.Unaries.Slice(),
		Binaries:  b.Exprs.Binaries.Slice(),
		Blocks:    b.Exprs.Blocks.Slice(),
		Ifs:       b.Exprs.Ifs.Slice(),
		Whiles:    b.Exprs.Whiles.Slice(),
		Lets:      b.Exprs.Lets.Slice(),
		Imports:   b.Exprs.Imports.Slice(),
		FnDefs:    b.Exprs.FnDefs.Slice(),
		FnExterns: b.Exprs.FnExterns.Slice(),
		Calls:     b.Exprs.Calls.Slice(),
		Returns:   b.Exprs.Returns.Slice(),
		Stmts:     b.Exprs.Stmts.Slice(),

		Module: *m,
	}, nil
}

// Encode пишет msgpack-артефакт модуля в w.
func Encode(w io.Writer, b *ast.Builder, module ast.ModuleID) error {
	snap, err := Capture(b, module)
	if err != nil {
		return err
	}
	return msgpack.NewEncoder(w).Encode(snap)
}

// Decode читает артефакт и восстанавливает Builder с одним модулем.
func Decode(r io.Reader) (*ast.Builder, ast.ModuleID, error) {
	var snap Snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, ast.NoModuleID, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	return Restore(&snap)
}

// Restore воссоздаёт Builder из снимка. Проверяет версию схемы и
// валидность всех ссылок между аренами.
func Restore(snap *Snapshot) (*ast.Builder, ast.ModuleID, error) {
	if snap.Schema != SchemaVersion {
		return nil, ast.NoModuleID, fmt.Errorf("%w: got %d, want %d", ErrBadSchema, snap.Schema, SchemaVersion)
	}
	if err := validate(snap); err != nil {
		return nil, ast.NoModuleID, err
	}

	b := ast.NewBuilder(ast.Hints{
		Modules: 1,
		Exprs:   uint(len(snap.Exprs)),
	}, nil)

	// строки интернируются в исходном порядке; ID совпадают с исходными
	for i, s := range snap.Strings {
		if i == 0 {
			continue // slot 0 — NoStringID
		}
		if got := b.Strings.Intern(s); got != source.StringID(i) {
			return nil, ast.NoModuleID, fmt.Errorf("%w: string table has duplicates", ErrCorrupted)
		}
	}

	for _, e := range snap.Exprs {
		b.Exprs.Arena.Allocate(e)
	}
	restoreArena(b.Exprs.Idents, snap.Idents)
	restoreArena(b.Exprs.Literals, snap.Literals)
	restoreArena(b.Exprs.Unaries, snap.Unaries)
	restoreArena(b.Exprs.Binaries, snap.Binaries)
	restoreArena(b.Exprs.Blocks, snap.Blocks)
	restoreArena(b.Exprs.Ifs, snap.Ifs)
	restoreArena(b.Exprs.Whiles, snap.Whiles)
	restoreArena(b.Exprs.Lets, snap.Lets)
	restoreArena(b.Exprs.Imports, snap.Imports)
	restoreArena(b.Exprs.FnDefs, snap.FnDefs)
	restoreArena(b.Exprs.FnExterns, snap.FnExterns)
	restoreArena(b.Exprs.Calls, snap.Calls)
	restoreArena(b.Exprs.Returns, snap.Returns)
	restoreArena(b.Exprs.Stmts, snap.Stmts)

	module := b.Modules.New(snap.Module.Span)
	m := b.Modules.Get(module)
	m.Stmts = append([]ast.ExprID(nil), snap.Module.Stmts...)
	m.Tail = snap.Module.Tail

	return b, module, nil
}

func restoreArena[T any](dst *ast.Arena[T], src []T) {
	for _, v := range src {
		dst.Allocate(v)
	}
}
