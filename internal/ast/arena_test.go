package ast

import (
	"testing"

	"graviton/internal/source"
)

func TestArenaOneBasedIDs(t *testing.T) {
	a := NewArena[int](4)

	first := a.Allocate(10)
	second := a.Allocate(20)
	if first != 1 || second != 2 {
		t.Fatalf("ids: got %d, %d; want 1, 2", first, second)
	}

	if got := *a.Get(first); got != 10 {
		t.Errorf("Get(1): got %d", got)
	}
	if a.Get(0) != nil {
		t.Errorf("Get(0) must be nil")
	}
	if a.Len() != 2 {
		t.Errorf("Len: got %d", a.Len())
	}
}

func TestArenaGetReturnsMutablePointer(t *testing.T) {
	a := NewArena[Module](1)
	id := a.Allocate(Module{})

	a.Get(id).Tail = ExprID(7)
	if a.Get(id).Tail != ExprID(7) {
		t.Errorf("mutation through Get pointer lost")
	}
}

func TestNoIDsAreInvalid(t *testing.T) {
	if NoExprID.IsValid() || NoModuleID.IsValid() {
		t.Errorf("zero IDs must be invalid")
	}
	if !ExprID(1).IsValid() || !ModuleID(1).IsValid() {
		t.Errorf("nonzero IDs must be valid")
	}
}

func TestBuilderModuleAssembly(t *testing.T) {
	b := NewBuilder(Hints{}, nil)

	module := b.Modules.New(source.Span{})
	lit := b.Exprs.NewLiteral(source.Span{Start: 0, End: 1}, LitInt, b.Strings.Intern("1"))
	stmt := b.Exprs.NewStmt(source.Span{Start: 0, End: 2}, lit)
	tail := b.Exprs.NewIdent(source.Span{Start: 3, End: 4}, b.Strings.Intern("x"))

	b.PushStmt(module, stmt)
	b.SetTail(module, tail)

	m := b.Modules.Get(module)
	if len(m.Stmts) != 1 || m.Stmts[0] != stmt || m.Tail != tail {
		t.Errorf("module shape wrong: %+v", m)
	}
}

func TestBuilderSharedInterner(t *testing.T) {
	interner := source.NewInterner()
	a := NewBuilder(Hints{}, interner)
	b := NewBuilder(Hints{}, interner)

	idA := a.Strings.Intern("shared")
	idB := b.Strings.Intern("shared")
	if idA != idB {
		t.Errorf("shared interner must dedup across builders: %d != %d", idA, idB)
	}
}

func TestPayloadGetterKindMismatch(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	lit := b.Exprs.NewLiteral(source.Span{}, LitInt, b.Strings.Intern("1"))

	if _, ok := b.Exprs.Binary(lit); ok {
		t.Errorf("Binary getter must reject a literal node")
	}
	if _, ok := b.Exprs.Literal(lit); !ok {
		t.Errorf("Literal getter must accept a literal node")
	}
}

func TestExprSpanLookup(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	want := source.Span{Start: 5, End: 9}
	id := b.Exprs.NewIdent(want, b.Strings.Intern("name"))

	if got := b.Exprs.Span(id); got != want {
		t.Errorf("Span: got %v, want %v", got, want)
	}
}
