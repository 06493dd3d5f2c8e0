package token

import "testing"

func TestKindClasses(t *testing.T) {
	tests := []struct {
		kind     Kind
		boundary bool
		str      bool
	}{
		{Colon, true, false},
		{ModSep, true, false},
		{Comma, false, false},
		{String, false, true},
		{RawString, false, true},
		{EOF, false, false},
	}
	for _, tc := range tests {
		if got := tc.kind.IsBoundary(); got != tc.boundary {
			t.Errorf("%v.IsBoundary() = %v, want %v", tc.kind, got, tc.boundary)
		}
		if got := tc.kind.IsString(); got != tc.str {
			t.Errorf("%v.IsString() = %v, want %v", tc.kind, got, tc.str)
		}
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("unknown kind printed as %q", got)
	}
}

func TestPosString(t *testing.T) {
	tests := []struct {
		pos  Pos
		want string
	}{
		{Pos{}, "-"},
		{Pos{File: "a.rs"}, "a.rs"},
		{Pos{Line: 3, Col: 7}, "3:7"},
		{Pos{File: "a.rs", Line: 3, Col: 7}, "a.rs:3:7"},
	}
	for _, tc := range tests {
		if got := tc.pos.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.pos, got, tc.want)
		}
	}
}

func TestSpanJoin(t *testing.T) {
	a := Span{Start: Pos{Line: 1, Col: 1, Offset: 0}, End: Pos{Line: 1, Col: 4, Offset: 3}}
	b := Span{Start: Pos{Line: 1, Col: 6, Offset: 5}, End: Pos{Line: 1, Col: 9, Offset: 8}}

	j := a.Join(b)
	if j.Start.Offset != 0 || j.End.Offset != 8 {
		t.Fatalf("join = %d..%d, want 0..8", j.Start.Offset, j.End.Offset)
	}
	if j.Len() != 8 {
		t.Errorf("len = %d, want 8", j.Len())
	}
	if got := (Span{}).Join(b); got != b {
		t.Errorf("joining with an unknown span should return the other span")
	}
	if got := b.Join(Span{}); got != b {
		t.Errorf("joining an unknown span should keep the receiver")
	}
}
