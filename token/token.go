package token

import "fmt"

// Kind identifies the lexical class of a token.
type Kind int

const (
	// EOF marks the end of the argument stream.
	EOF Kind = iota
	// Colon is the single section boundary ':'.
	Colon
	// ModSep is the double section boundary '::' written without a space.
	ModSep
	// Comma separates list items.
	Comma
	// LParen opens a parenthesised group.
	LParen
	// RParen closes a parenthesised group.
	RParen
	// LBracket opens an index expression.
	LBracket
	// RBracket closes an index expression.
	RBracket
	// Dot is field access.
	Dot
	// String is a cooked string literal, "...".
	String
	// RawString is a raw string literal, r"..." or r#"..."#.
	RawString
	// Int is an integer literal.
	Int
	// Ident is an identifier or keyword.
	Ident
	// Op is any operator not listed above.
	Op
)

var kindNames = map[Kind]string{
	EOF:       "end of input",
	Colon:     "':'",
	ModSep:    "'::'",
	Comma:     "','",
	LParen:    "'('",
	RParen:    "')'",
	LBracket:  "'['",
	RBracket:  "']'",
	Dot:       "'.'",
	String:    "string literal",
	RawString: "raw string literal",
	Int:       "integer literal",
	Ident:     "identifier",
	Op:        "operator",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsBoundary reports whether k separates directive sections.
func (k Kind) IsBoundary() bool {
	return k == Colon || k == ModSep
}

// IsString reports whether k is either string literal form.
func (k Kind) IsString() bool {
	return k == String || k == RawString
}

// Token is one lexeme of the argument stream.
type Token struct {
	Kind Kind
	Text string // Source text, quotes and prefixes included.
	Span Span
}

// Is reports whether t has kind k.
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "<EOF>"
	}
	return t.Text
}
