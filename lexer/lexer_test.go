package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/Urethramancer/inlineasm/ast"
	"github.com/Urethramancer/inlineasm/token"
)

func kinds(toks []token.Token) string {
	var parts []string
	for _, t := range toks {
		parts = append(parts, t.Kind.String())
	}
	return strings.Join(parts, " ")
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		src  string
		want []token.Kind
	}{
		{`"nop"`, []token.Kind{token.String, token.EOF}},
		{`: :: :::`, []token.Kind{token.Colon, token.ModSep, token.ModSep, token.Colon, token.EOF}},
		{`"=r"(x), "+m"(y.z)`, []token.Kind{
			token.String, token.LParen, token.Ident, token.RParen, token.Comma,
			token.String, token.LParen, token.Ident, token.Dot, token.Ident, token.RParen, token.EOF,
		}},
		{`r"a" r#"b"# r##"c"d"##`, []token.Kind{token.RawString, token.RawString, token.RawString, token.EOF}},
		{`0x1f 10 1_000 a[0]`, []token.Kind{token.Int, token.Int, token.Int, token.Ident, token.LBracket, token.Int, token.RBracket, token.EOF}},
		{"a // comment\n/* block\n */ b", []token.Kind{token.Ident, token.Ident, token.EOF}},
		{`<< != & !`, []token.Kind{token.Op, token.Op, token.Op, token.Op, token.EOF}},
		{``, []token.Kind{token.EOF}},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			toks, err := Tokenize("t.rs", tc.src)
			if err != nil {
				t.Fatal(err)
			}
			want := make([]token.Token, len(tc.want))
			for i, k := range tc.want {
				want[i].Kind = k
			}
			if got, w := kinds(toks), kinds(want); got != w {
				t.Errorf("kinds = %s\nwant    %s", got, w)
			}
		})
	}
}

func TestTokenizeError(t *testing.T) {
	if _, err := Tokenize("t.rs", "\"unterminated"); err == nil {
		t.Fatal("expected an error for an unterminated string")
	}
}

func TestTokenSpans(t *testing.T) {
	toks, err := Tokenize("t.rs", "\"nop\"\n  : x")
	if err != nil {
		t.Fatal(err)
	}
	colon := toks[1]
	if colon.Span.Start.Line != 2 || colon.Span.Start.Col != 3 || colon.Span.Start.File != "t.rs" {
		t.Errorf("colon at %s, want t.rs:2:3", colon.Span.Start)
	}
	if colon.Span.Len() != 1 {
		t.Errorf("colon length = %d", colon.Span.Len())
	}
	if toks[0].Span.End.Col != 6 {
		t.Errorf("string ends at column %d, want 6", toks[0].Span.End.Col)
	}
}

func TestCursorBasics(t *testing.T) {
	c, err := New("t.rs", `"a" : ( x`)
	if err != nil {
		t.Fatal(err)
	}
	s, style, err := c.ParseStr()
	if err != nil || s != "a" || style != ast.Cooked {
		t.Fatalf("ParseStr() = %q, %v, %v", s, style, err)
	}
	if c.LastSpan().Start.Col != 1 {
		t.Errorf("LastSpan() = %s", c.LastSpan())
	}
	if c.Eat(token.Comma) {
		t.Error("Eat consumed a token of the wrong kind")
	}
	if !c.Eat(token.Colon) {
		t.Error("Eat(Colon) = false")
	}
	if err := c.Expect(token.LParen); err != nil {
		t.Fatal(err)
	}
	err = c.Expect(token.RParen)
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Fatalf("Expect(RParen) = %v", err)
	}
	if !strings.Contains(err.Error(), "expected ')', found 'x'") {
		t.Errorf("message = %q", err)
	}
	if c.Token().Text != "x" {
		t.Error("a failed Expect must not consume")
	}
	c.Bump()
	c.Bump()
	if !c.Token().Is(token.EOF) {
		t.Error("bumping past EOF must stay at EOF")
	}
}

func TestFromTokensAddsEOF(t *testing.T) {
	toks, _ := Tokenize("t.rs", `a b`)
	c := FromTokens(toks[:1])
	c.Bump()
	if !c.Token().Is(token.EOF) {
		t.Fatalf("token = %v, want EOF", c.Token())
	}
	if c.Token().Span.Start != toks[0].Span.End {
		t.Errorf("synthetic EOF at %s, want %s", c.Token().Span.Start, toks[0].Span.End)
	}
	if toks[1].Text != "b" {
		t.Error("FromTokens modified the caller's slice")
	}
	if len(FromTokens(nil).Rest()) != 0 {
		t.Error("empty cursor has tokens")
	}
}

func TestParseStr(t *testing.T) {
	tests := []struct {
		src   string
		want  string
		style ast.StrStyle
	}{
		{`"plain"`, "plain", ast.Cooked},
		{`"a\nb\t\"c\"\\"`, "a\nb\t\"c\"\\", ast.Cooked},
		{`"\x41\u{1F600}\0"`, "A\U0001F600\x00", ast.Cooked},
		{"\"line \\\n     continued\"", "line continued", ast.Cooked},
		{`r"C:\no\escapes"`, `C:\no\escapes`, ast.RawStyle(0)},
		{`r#"has "quotes""#`, `has "quotes"`, ast.RawStyle(1)},
		{`r##"a "# b"##`, `a "# b`, ast.RawStyle(2)},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			c, err := New("t.rs", tc.src)
			if err != nil {
				t.Fatal(err)
			}
			s, style, err := c.ParseStr()
			if err != nil {
				t.Fatal(err)
			}
			if s != tc.want || style != tc.style {
				t.Errorf("ParseStr() = %q (%v), want %q (%v)", s, style, tc.want, tc.style)
			}
		})
	}
}

func TestParseStrErrors(t *testing.T) {
	for _, src := range []string{`"\q"`, `"\x4"`, `"\xff"`, `"\u{zz}"`, `"\u1234"`} {
		c, err := New("t.rs", src)
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		if _, _, err := c.ParseStr(); !errors.Is(err, ErrBadEscape) {
			t.Errorf("%s: err = %v, want ErrBadEscape", src, err)
		}
	}

	c, _ := New("t.rs", `42`)
	if _, _, err := c.ParseStr(); !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf("ParseStr on an integer: %v", err)
	}
	if c.Token().Text != "42" {
		t.Error("failed ParseStr consumed a token")
	}
}
