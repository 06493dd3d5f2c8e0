// Package ast holds the expression nodes handed to the inline assembly
// parser by the expression sub-parser.
package ast

import (
	"strconv"
	"strings"

	"github.com/Urethramancer/inlineasm/token"
)

// Expr is any parsed sub-expression.
type Expr interface {
	Span() token.Span
	String() string
}

// Literal is an expression that reduces to string text.
type Literal interface {
	Expr
	Literal() (string, StrStyle)
}

// StrStyle records how a string literal was written.
type StrStyle struct {
	Raw    bool
	Hashes int // Number of '#' around a raw string.
}

// Cooked is the style of an ordinary escaped string.
var Cooked = StrStyle{}

// RawStyle returns the style of a raw string with n hashes.
func RawStyle(n int) StrStyle {
	return StrStyle{Raw: true, Hashes: n}
}

func (s StrStyle) String() string {
	if !s.Raw {
		return "cooked"
	}
	return "raw" + strconv.Itoa(s.Hashes)
}

// Quote renders text in this style.
func (s StrStyle) Quote(text string) string {
	if !s.Raw {
		return strconv.Quote(text)
	}
	h := strings.Repeat("#", s.Hashes)
	return "r" + h + `"` + text + `"` + h
}

// StrLit is a string literal.
type StrLit struct {
	Value string
	Style StrStyle
	Pos   token.Span
}

func (e *StrLit) Span() token.Span { return e.Pos }

func (e *StrLit) String() string { return e.Style.Quote(e.Value) }

// Literal returns the decoded text and its style.
func (e *StrLit) Literal() (string, StrStyle) { return e.Value, e.Style }

// IntLit is an integer literal, kept as written.
type IntLit struct {
	Text string
	Pos  token.Span
}

func (e *IntLit) Span() token.Span { return e.Pos }

func (e *IntLit) String() string { return e.Text }

// Value parses the literal. Underscores are ignored, 0x/0o/0b prefixes work.
func (e *IntLit) Value() (int64, error) {
	return strconv.ParseInt(strings.ReplaceAll(e.Text, "_", ""), 0, 64)
}

// Ident is a bare name.
type Ident struct {
	Name string
	Pos  token.Span
}

func (e *Ident) Span() token.Span { return e.Pos }

func (e *Ident) String() string { return e.Name }

// Path is a qualified name such as std::ptr::null.
type Path struct {
	Segments []string
	Pos      token.Span
}

func (e *Path) Span() token.Span { return e.Pos }

func (e *Path) String() string { return strings.Join(e.Segments, "::") }

// Unary is a prefix operator applied to X.
type Unary struct {
	Op  string
	X   Expr
	Pos token.Span
}

func (e *Unary) Span() token.Span { return e.Pos }

func (e *Unary) String() string { return e.Op + e.X.String() }

// Binary is X Op Y.
type Binary struct {
	Op string
	X  Expr
	Y  Expr
}

func (e *Binary) Span() token.Span { return e.X.Span().Join(e.Y.Span()) }

func (e *Binary) String() string { return e.X.String() + " " + e.Op + " " + e.Y.String() }

// Paren is a parenthesised expression.
type Paren struct {
	X   Expr
	Pos token.Span
}

func (e *Paren) Span() token.Span { return e.Pos }

func (e *Paren) String() string { return "(" + e.X.String() + ")" }

// Field is X.Name.
type Field struct {
	X    Expr
	Name string
	Pos  token.Span
}

func (e *Field) Span() token.Span { return e.Pos }

func (e *Field) String() string { return e.X.String() + "." + e.Name }

// Call is Fun(Args...).
type Call struct {
	Fun  Expr
	Args []Expr
	Pos  token.Span
}

func (e *Call) Span() token.Span { return e.Pos }

func (e *Call) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Fun.String() + "(" + strings.Join(args, ", ") + ")"
}

// Index is X[I].
type Index struct {
	X   Expr
	I   Expr
	Pos token.Span
}

func (e *Index) Span() token.Span { return e.Pos }

func (e *Index) String() string { return e.X.String() + "[" + e.I.String() + "]" }

// AsLiteral returns the text of e when it is a string literal.
func AsLiteral(e Expr) (string, StrStyle, bool) {
	lit, ok := e.(Literal)
	if !ok {
		return "", StrStyle{}, false
	}
	s, st := lit.Literal()
	return s, st, true
}
