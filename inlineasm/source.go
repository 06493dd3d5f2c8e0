package inlineasm

import (
	"github.com/Urethramancer/inlineasm/lexer"
	"github.com/Urethramancer/inlineasm/token"
)

// ParseString parses src as the argument stream of a single invocation,
// recording the expansion in a fresh table.
func ParseString(filename, src string) (*Result, error) {
	return New(nil).ParseString(filename, src)
}

// ParseString parses the whole of src as one invocation's arguments. The
// call site is the span of every token in src.
func (p *Parser) ParseString(filename, src string) (*Result, error) {
	toks, err := lexer.Tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	return p.Parse(lexer.FromTokens(toks), streamSpan(toks))
}

// ParseInvocations parses every asm!(...) call found in src with p.
// Parsing stops at the first structural error; results gathered before it
// are returned alongside the error.
func (p *Parser) ParseInvocations(filename, src string) ([]*Result, error) {
	toks, err := lexer.Tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	calls, err := lexer.Invocations(toks, MacroName)
	if err != nil {
		return nil, err
	}

	out := make([]*Result, 0, len(calls))
	for _, c := range calls {
		res, err := p.Parse(c.Args, c.CallSite)
		if err != nil {
			return append(out, res), err
		}
		out = append(out, res)
	}
	return out, nil
}

// streamSpan covers every token before EOF.
func streamSpan(toks []token.Token) token.Span {
	var sp token.Span
	for _, t := range toks {
		if t.Kind == token.EOF {
			break
		}
		sp = sp.Join(t.Span)
	}
	return sp
}
