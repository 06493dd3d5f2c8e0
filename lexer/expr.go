package lexer

import (
	"github.com/Urethramancer/inlineasm/ast"
	"github.com/Urethramancer/inlineasm/token"
)

// binaryPrec returns the precedence of a binary operator, higher binds
// tighter, or 0 when op is not one.
func binaryPrec(op string) int {
	switch op {
	case "||":
		return 1
	case "&&":
		return 2
	case "==", "!=", "<", "<=", ">", ">=":
		return 3
	case "|":
		return 4
	case "^":
		return 5
	case "&":
		return 6
	case "<<", ">>":
		return 7
	case "+", "-":
		return 8
	case "*", "/", "%":
		return 9
	}
	return 0
}

var prefixOps = map[string]bool{"-": true, "!": true, "*": true, "&": true}

// parseBinary is operator precedence climbing over left-associative
// operators of at least minPrec.
func (c *Cursor) parseBinary(minPrec int) (ast.Expr, error) {
	x, err := c.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t := c.Token()
		prec := binaryPrec(t.Text)
		if t.Kind != token.Op || prec == 0 || prec < minPrec {
			return x, nil
		}
		c.Bump()
		y, err := c.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		x = &ast.Binary{Op: t.Text, X: x, Y: y}
	}
}

func (c *Cursor) parseUnary() (ast.Expr, error) {
	t := c.Token()
	if t.Kind == token.Op && prefixOps[t.Text] {
		c.Bump()
		x, err := c.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: t.Text, X: x, Pos: t.Span.Join(x.Span())}, nil
	}
	x, err := c.parsePrimary()
	if err != nil {
		return nil, err
	}
	return c.parsePostfix(x)
}

func (c *Cursor) parsePrimary() (ast.Expr, error) {
	t := c.Token()
	switch t.Kind {
	case token.String, token.RawString:
		s, style, err := c.ParseStr()
		if err != nil {
			return nil, err
		}
		return &ast.StrLit{Value: s, Style: style, Pos: t.Span}, nil

	case token.Int:
		c.Bump()
		return &ast.IntLit{Text: t.Text, Pos: t.Span}, nil

	case token.Ident:
		c.Bump()
		// Only treat '::' as a path separator when a name follows, so a
		// trailing '::' stays available as a section boundary.
		if c.Token().Kind != token.ModSep || c.Peek(1).Kind != token.Ident {
			return &ast.Ident{Name: t.Text, Pos: t.Span}, nil
		}
		p := &ast.Path{Segments: []string{t.Text}, Pos: t.Span}
		for c.Token().Kind == token.ModSep && c.Peek(1).Kind == token.Ident {
			c.Bump()
			seg := c.Token()
			c.Bump()
			p.Segments = append(p.Segments, seg.Text)
			p.Pos = p.Pos.Join(seg.Span)
		}
		return p, nil

	case token.LParen:
		c.Bump()
		x, err := c.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := c.Expect(token.RParen); err != nil {
			return nil, err
		}
		return &ast.Paren{X: x, Pos: t.Span.Join(c.LastSpan())}, nil
	}
	return nil, unexpected(t, "expression")
}

func (c *Cursor) parsePostfix(x ast.Expr) (ast.Expr, error) {
	for {
		switch c.Token().Kind {
		case token.Dot:
			c.Bump()
			name := c.Token()
			if name.Kind != token.Ident && name.Kind != token.Int {
				return nil, unexpected(name, "field name")
			}
			c.Bump()
			x = &ast.Field{X: x, Name: name.Text, Pos: x.Span().Join(name.Span)}

		case token.LParen:
			c.Bump()
			var args []ast.Expr
			for c.Token().Kind != token.RParen {
				if len(args) > 0 {
					if err := c.Expect(token.Comma); err != nil {
						return nil, err
					}
					if c.Token().Kind == token.RParen {
						break
					}
				}
				a, err := c.ParseExpr()
				if err != nil {
					return nil, err
				}
				args = append(args, a)
			}
			if err := c.Expect(token.RParen); err != nil {
				return nil, err
			}
			x = &ast.Call{Fun: x, Args: args, Pos: x.Span().Join(c.LastSpan())}

		case token.LBracket:
			c.Bump()
			i, err := c.ParseExpr()
			if err != nil {
				return nil, err
			}
			if err := c.Expect(token.RBracket); err != nil {
				return nil, err
			}
			x = &ast.Index{X: x, I: i, Pos: x.Span().Join(c.LastSpan())}

		default:
			return x, nil
		}
	}
}
