package lexer

import (
	"fmt"

	"github.com/Urethramancer/inlineasm/token"
)

// Invocation is one name!(...) call found in a token stream.
type Invocation struct {
	Name     string
	CallSite token.Span // From the macro name to the closing delimiter.
	Args     *Cursor    // The tokens between the delimiters.
}

var closers = map[string]string{"(": ")", "[": "]", "{": "}"}

// Invocations finds every name!(...), name![...] and name!{...} in toks.
func Invocations(toks []token.Token, name string) ([]Invocation, error) {
	var out []Invocation
	for i := 0; i+2 < len(toks); i++ {
		if toks[i].Kind != token.Ident || toks[i].Text != name || toks[i+1].Text != "!" {
			continue
		}
		open := toks[i+2]
		if _, ok := closers[open.Text]; !ok {
			continue
		}

		end, err := matchDelim(toks, i+2)
		if err != nil {
			return nil, err
		}
		out = append(out, Invocation{
			Name:     name,
			CallSite: toks[i].Span.Join(toks[end].Span),
			Args:     FromTokens(toks[i+3 : end]),
		})
		i = end
	}
	return out, nil
}

// matchDelim returns the index of the token closing the delimiter at start.
func matchDelim(toks []token.Token, start int) (int, error) {
	var stack []string
	for i := start; i < len(toks); i++ {
		t := toks[i]
		if c, ok := closers[t.Text]; ok && t.Kind != token.String && t.Kind != token.RawString {
			stack = append(stack, c)
			continue
		}
		if len(stack) == 0 || t.Text != stack[len(stack)-1] {
			continue
		}
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return i, nil
		}
	}
	return 0, &Error{
		Pos: toks[start].Span.Start,
		Msg: fmt.Sprintf("%q is never closed", toks[start].Text),
		Err: ErrUnbalanced,
	}
}
