package lexer

import (
	"github.com/Urethramancer/inlineasm/ast"
	"github.com/Urethramancer/inlineasm/token"
)

// Cursor walks a token slice. It is owned by a single parse and is not
// safe for concurrent use.
type Cursor struct {
	toks []token.Token
	pos  int
	last token.Span
}

// New tokenizes src and returns a Cursor positioned on its first token.
func New(filename, src string) (*Cursor, error) {
	toks, err := Tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	return FromTokens(toks), nil
}

// FromTokens wraps an existing token slice. A trailing EOF is added when
// the slice lacks one.
func FromTokens(toks []token.Token) *Cursor {
	if n := len(toks); n == 0 || toks[n-1].Kind != token.EOF {
		var at token.Pos
		if n > 0 {
			at = toks[n-1].Span.End
		}
		toks = append(toks[:n:n], token.Token{Kind: token.EOF, Span: token.Span{Start: at, End: at}})
	}
	return &Cursor{toks: toks}
}

// Token returns the current token without consuming it.
func (c *Cursor) Token() token.Token {
	return c.toks[c.pos]
}

// Peek returns the token n places after the current one, or EOF.
func (c *Cursor) Peek(n int) token.Token {
	if i := c.pos + n; i < len(c.toks) {
		return c.toks[i]
	}
	return c.toks[len(c.toks)-1]
}

// Bump consumes the current token. Bumping at EOF is a no-op.
func (c *Cursor) Bump() {
	t := c.toks[c.pos]
	c.last = t.Span
	if t.Kind != token.EOF {
		c.pos++
	}
}

// Eat consumes the current token if it has kind k.
func (c *Cursor) Eat(k token.Kind) bool {
	if c.Token().Kind != k {
		return false
	}
	c.Bump()
	return true
}

// Expect consumes a token of kind k or fails without consuming anything.
func (c *Cursor) Expect(k token.Kind) error {
	if !c.Eat(k) {
		return unexpected(c.Token(), k.String())
	}
	return nil
}

// LastSpan is the span of the most recently consumed token.
func (c *Cursor) LastSpan() token.Span {
	return c.last
}

// ParseStr consumes a string literal and returns its decoded text.
func (c *Cursor) ParseStr() (string, ast.StrStyle, error) {
	t := c.Token()
	if !t.Kind.IsString() {
		return "", ast.StrStyle{}, unexpected(t, "string literal")
	}
	s, style, err := decodeString(t)
	if err != nil {
		return "", ast.StrStyle{}, err
	}
	c.Bump()
	return s, style, nil
}

// ParseExpr consumes one full expression.
func (c *Cursor) ParseExpr() (ast.Expr, error) {
	return c.parseBinary(1)
}

// Rest returns the tokens not yet consumed, EOF excluded.
func (c *Cursor) Rest() []token.Token {
	return c.toks[c.pos : len(c.toks)-1]
}
