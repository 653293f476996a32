package source

import "testing"

func TestSpanEmptyAndLen(t *testing.T) {
	s := Span{File: 1, Start: 5, End: 5}
	if !s.Empty() {
		t.Errorf("expected empty span")
	}
	if s.Len() != 0 {
		t.Errorf("expected zero length, got %d", s.Len())
	}

	s = Span{File: 1, Start: 5, End: 12}
	if s.Empty() {
		t.Errorf("expected non-empty span")
	}
	if s.Len() != 7 {
		t.Errorf("expected length 7, got %d", s.Len())
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 1, Start: 5, End: 15}

	got := a.Cover(b)
	want := Span{File: 1, Start: 5, End: 20}
	if got != want {
		t.Errorf("Cover: got %v, want %v", got, want)
	}

	// непересекающиеся спаны тоже накрываются одним
	c := Span{File: 1, Start: 30, End: 40}
	got = a.Cover(c)
	want = Span{File: 1, Start: 10, End: 40}
	if got != want {
		t.Errorf("Cover disjoint: got %v, want %v", got, want)
	}
}

func TestSpanCoverDifferentFiles(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 2, Start: 0, End: 100}

	// спаны из разных файлов не объединяются
	if got := a.Cover(b); got != a {
		t.Errorf("Cover across files: got %v, want %v", got, a)
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 1, Start: 0, End: 100}
	inner := Span{File: 1, Start: 10, End: 20}

	if !outer.Contains(inner) {
		t.Errorf("expected outer to contain inner")
	}
	if inner.Contains(outer) {
		t.Errorf("inner must not contain outer")
	}

	other := Span{File: 2, Start: 10, End: 20}
	if outer.Contains(other) {
		t.Errorf("spans from different files must not contain each other")
	}
}

func TestSpanZeroideToEnd(t *testing.T) {
	s := Span{File: 3, Start: 10, End: 25}
	got := s.ZeroideToEnd()
	want := Span{File: 3, Start: 25, End: 25}
	if got != want {
		t.Errorf("ZeroideToEnd: got %v, want %v", got, want)
	}
	if !got.Empty() {
		t.Errorf("result must be empty")
	}
}
