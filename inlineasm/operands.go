package inlineasm

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/inlineasm/ast"
	"github.com/Urethramancer/inlineasm/token"
)

// normalizeOutput returns the stored form of an output constraint. "=x" is
// kept, "+x" becomes "=x" with rw set, and anything else is returned as is
// with ok false.
func normalizeOutput(c string) (stored Constraint, rw, ok bool) {
	switch {
	case strings.HasPrefix(c, "="):
		return Constraint(c), false, true
	case strings.HasPrefix(c, "+"):
		return Constraint("=" + c[1:]), true, true
	}
	return Constraint(c), false, false
}

// checkInput returns the diagnostic for an input constraint that carries an
// output marker, or "" when it is fine.
func checkInput(c string) string {
	switch {
	case strings.HasPrefix(c, "="):
		return MsgInputHasEquals
	case strings.HasPrefix(c, "+"):
		return MsgInputHasPlus
	}
	return ""
}

// atSectionEnd reports whether the current token closes a list section.
func (st *state) atSectionEnd() bool {
	k := st.cur.Token().Kind
	return k == token.EOF || k.IsBoundary()
}

// operand parses one "constraint"(expr) pair, returning the span of the
// constraint string.
func (st *state) operand() (string, token.Span, ast.Expr, error) {
	constraint, _, err := st.cur.ParseStr()
	if err != nil {
		return "", token.Span{}, nil, fmt.Errorf("operand constraint: %w", err)
	}
	span := st.cur.LastSpan()

	if err := st.cur.Expect(token.LParen); err != nil {
		return "", span, nil, err
	}
	expr, err := st.cur.ParseExpr()
	if err != nil {
		return "", span, nil, fmt.Errorf("operand expression: %w", err)
	}
	if err := st.cur.Expect(token.RParen); err != nil {
		return "", span, nil, err
	}
	return constraint, span, expr, nil
}

func (st *state) parseOutputs() error {
	for !st.atSectionEnd() {
		if len(st.outputs) != 0 {
			st.cur.Eat(token.Comma)
		}

		constraint, span, expr, err := st.operand()
		if err != nil {
			return err
		}

		stored, rw, ok := normalizeOutput(constraint)
		if !ok {
			st.diags.errorAt(span, MsgOutputLacksWrite)
		}
		st.outputs = append(st.outputs, OutputOperand{Constraint: stored, Expr: expr, ReadWrite: rw})
	}
	return nil
}

func (st *state) parseInputs() error {
	for !st.atSectionEnd() {
		if len(st.inputs) != 0 {
			st.cur.Eat(token.Comma)
		}

		constraint, span, expr, err := st.operand()
		if err != nil {
			return err
		}

		if msg := checkInput(constraint); msg != "" {
			st.diags.errorAt(span, msg)
		}
		st.inputs = append(st.inputs, InputOperand{Constraint: Constraint(constraint), Expr: expr})
	}
	return nil
}
