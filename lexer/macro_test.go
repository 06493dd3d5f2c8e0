package lexer

import (
	"errors"
	"testing"

	"github.com/Urethramancer/inlineasm/token"
)

func TestInvocations(t *testing.T) {
	src := `asm!("nop"); x = asm; asm!["a" : "=r"(f(x))]; other!("b"); asm!{"c" ::: "eax"} asm ! ("d")`
	toks, err := Tokenize("t.rs", src)
	if err != nil {
		t.Fatal(err)
	}
	calls, err := Invocations(toks, "asm")
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		first string
		n     int
	}{
		{`"nop"`, 1},
		{`"a"`, 9},
		{`"c"`, 4},
		{`"d"`, 1},
	}
	if len(calls) != len(want) {
		t.Fatalf("found %d invocations, want %d", len(calls), len(want))
	}
	for i, w := range want {
		rest := calls[i].Args.Rest()
		if len(rest) != w.n || rest[0].Text != w.first {
			t.Errorf("invocation %d args = %v, want %d tokens starting with %s", i, rest, w.n, w.first)
		}
		if calls[i].Name != "asm" {
			t.Errorf("invocation %d name = %q", i, calls[i].Name)
		}
	}

	site := calls[0].CallSite
	if site.Start.Col != 1 || site.End.Col != 12 {
		t.Errorf("first call site = %d..%d, want 1..12", site.Start.Col, site.End.Col)
	}
}

func TestInvocationsUnbalanced(t *testing.T) {
	toks, err := Tokenize("t.rs", `asm!("nop" : "=r"(x)`)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Invocations(toks, "asm")
	if !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("err = %v, want ErrUnbalanced", err)
	}
	var le *Error
	if !errors.As(err, &le) || le.Pos.Col != 5 {
		t.Errorf("error position = %v", err)
	}
}

func TestInvocationsIgnoreDelimitersInStrings(t *testing.T) {
	toks, _ := Tokenize("t.rs", `asm!(")" : "(")`)
	calls, err := Invocations(toks, "asm")
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != 1 || len(calls[0].Args.Rest()) != 3 {
		t.Fatalf("calls = %+v", calls)
	}
	if !calls[0].Args.Token().Is(token.String) {
		t.Error("args must start at the string")
	}
}
