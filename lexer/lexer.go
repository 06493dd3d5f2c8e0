// Package lexer turns source text into the token stream consumed by the
// inline assembly parser, and provides the expression and string literal
// sub-parsers that run over it.
package lexer

import (
	"fmt"

	plex "github.com/alecthomas/participle/v2/lexer"

	"github.com/Urethramancer/inlineasm/token"
)

// Rules are tried in order; the first match wins. Lower-case rule names are
// dropped by the lexer.
var definition = plex.MustSimple([]plex.SimpleRule{
	{Name: "comment", Pattern: `//[^\n]*|/\*(?s:.*?)\*/`},
	{Name: "whitespace", Pattern: `\s+`},
	{Name: "RawString", Pattern: `r###"(?s:.*?)"###|r##"(?s:.*?)"##|r#"(?s:.*?)"#|r"[^"]*"`},
	{Name: "String", Pattern: `"(?:[^"\\]|\\(?s:.))*"`},
	{Name: "Int", Pattern: `0[xX][0-9a-fA-F_]+|0[oO][0-7_]+|0[bB][01_]+|[0-9][0-9_]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "ModSep", Pattern: `::`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Punct", Pattern: `<<|>>|<=|>=|==|!=|&&|\|\||[-+*/%&|^!<>=,()\[\]{}.#$@~?;]`},
})

var kindBySymbol = func() map[plex.TokenType]token.Kind {
	sym := definition.Symbols()
	return map[plex.TokenType]token.Kind{
		plex.EOF:         token.EOF,
		sym["RawString"]: token.RawString,
		sym["String"]:    token.String,
		sym["Int"]:       token.Int,
		sym["Ident"]:     token.Ident,
		sym["ModSep"]:    token.ModSep,
		sym["Colon"]:     token.Colon,
		sym["Punct"]:     token.Op,
	}
}()

var punctKinds = map[string]token.Kind{
	",": token.Comma,
	"(": token.LParen,
	")": token.RParen,
	"[": token.LBracket,
	"]": token.RBracket,
	".": token.Dot,
}

// Tokenize lexes src. The returned slice always ends with an EOF token.
func Tokenize(filename, src string) ([]token.Token, error) {
	lx, err := definition.LexString(filename, src)
	if err != nil {
		return nil, err
	}
	raw, err := plex.ConsumeAll(lx)
	if err != nil {
		return nil, fmt.Errorf("tokenizing %s: %w", displayName(filename), err)
	}

	toks := make([]token.Token, 0, len(raw))
	for _, t := range raw {
		toks = append(toks, convert(t))
	}
	return toks, nil
}

func convert(t plex.Token) token.Token {
	kind, ok := kindBySymbol[t.Type]
	if !ok {
		kind = token.Op
	}
	if kind == token.Op {
		if k, ok := punctKinds[t.Value]; ok {
			kind = k
		}
	}

	start := position(t.Pos)
	end := t.Pos
	end.Advance(t.Value)
	return token.Token{
		Kind: kind,
		Text: t.Value,
		Span: token.Span{Start: start, End: position(end)},
	}
}

func position(p plex.Position) token.Pos {
	return token.Pos{File: p.Filename, Line: p.Line, Col: p.Column, Offset: p.Offset}
}

func displayName(filename string) string {
	if filename == "" {
		return "input"
	}
	return filename
}
