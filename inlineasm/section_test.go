package inlineasm

import (
	"testing"

	"github.com/Urethramancer/inlineasm/token"
)

func TestSectionAdvance(t *testing.T) {
	tests := []struct {
		from Section
		by   int
		want Section
	}{
		{Template, 1, Outputs},
		{Template, 2, Inputs},
		{Outputs, 2, Clobbers},
		{Inputs, 2, Options},
		{Clobbers, 1, Options},
		{Clobbers, 2, Done},
		{Options, 1, Done},
		{Options, 2, Done},
		{Done, 1, Done},
		{Done, 2, Done},
		{Inputs, 0, Inputs},
		{Inputs, -3, Inputs},
	}
	for _, tc := range tests {
		if got := tc.from.Advance(tc.by); got != tc.want {
			t.Errorf("%v.Advance(%d) = %v, want %v", tc.from, tc.by, got, tc.want)
		}
	}
}

func TestSectionString(t *testing.T) {
	names := map[Section]string{
		Template:    "template",
		Outputs:     "outputs",
		Inputs:      "inputs",
		Clobbers:    "clobbers",
		Options:     "options",
		Done:        "done",
		Section(17): "Section(17)",
	}
	for s, want := range names {
		if got := s.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestStride(t *testing.T) {
	if stride(token.Colon) != 1 || stride(token.ModSep) != 2 {
		t.Error("boundaries must advance by one and two")
	}
	for _, k := range []token.Kind{token.EOF, token.Comma, token.String, token.Op} {
		if stride(k) != 0 {
			t.Errorf("stride(%v) = %d, want 0", k, stride(k))
		}
	}
}
