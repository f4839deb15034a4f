package source

import "testing"

func TestSpan_Cover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover = %+v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file Cover must keep receiver, got %+v", got)
	}
}

func TestSpan_ZeroideToEnd(t *testing.T) {
	s := Span{File: 3, Start: 7, End: 12}
	if got := s.ZeroideToEnd(); got != (Span{File: 3, Start: 12, End: 12}) {
		t.Errorf("ZeroideToEnd = %+v", got)
	}
	if s.Len() != 5 || s.ZeroideToEnd().Len() != 0 {
		t.Errorf("Len mismatch")
	}
}
