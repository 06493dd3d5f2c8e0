// Package inlineasm parses the arguments of an asm!(...) invocation into a
// checked Directive, collecting diagnostics instead of stopping at the
// first problem.
package inlineasm

import (
	"fmt"
	"log"

	"github.com/Urethramancer/inlineasm/ast"
	"github.com/Urethramancer/inlineasm/codemap"
	"github.com/Urethramancer/inlineasm/token"
)

// MacroName is the callee recorded for every expansion.
const MacroName = "asm"

// Cursor is the token stream the parser pulls from, along with the
// expression and string literal sub-parsers that run over it.
type Cursor interface {
	Token() token.Token
	Bump()
	Eat(k token.Kind) bool
	Expect(k token.Kind) error
	ParseExpr() (ast.Expr, error)
	ParseStr() (string, ast.StrStyle, error)
	LastSpan() token.Span
}

// Expander records a macro expansion and returns its id.
type Expander interface {
	RecordExpansion(info codemap.ExpnInfo) codemap.ExpnID
}

// Result is the outcome of parsing one directive. Directive is nil when
// Placeholder is set, which happens when the template is not a string
// literal; the caller substitutes an error node and carries on.
type Result struct {
	Directive   *Directive
	Placeholder bool
	Diagnostics Diagnostics
}

// Parser turns argument streams into directives. A Parser may be reused
// for many invocations but not from several goroutines at once, since the
// Expander it records into is shared.
type Parser struct {
	exp    Expander
	sink   Sink
	logger *log.Logger
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithSink forwards every directive's diagnostics to sink once it is parsed.
func WithSink(sink Sink) ParserOption {
	return func(p *Parser) { p.sink = sink }
}

// WithLogger traces section transitions to l.
func WithLogger(l *log.Logger) ParserOption {
	return func(p *Parser) { p.logger = l }
}

// New creates a Parser recording expansions into exp. A nil exp gets a
// fresh codemap.Table.
func New(exp Expander, opts ...ParserOption) *Parser {
	if exp == nil {
		exp = codemap.NewTable()
	}
	p := &Parser{exp: exp}
	for _, o := range opts {
		o(p)
	}
	return p
}

// state is the scratch space of one Parse call.
type state struct {
	cur    Cursor
	logger *log.Logger
	diags  Diagnostics

	template *ast.StrLit
	outputs  []OutputOperand
	inputs   []InputOperand
	clobbers []string
	flags    OptionFlags
}

// Parse reads one directive from cur. call is the span of the whole
// invocation and is stamped on the recorded expansion.
//
// Non-fatal problems end up in Result.Diagnostics. A returned error means
// the cursor itself could not make sense of the input (a missing
// parenthesis, a non-string where a string is required); the result then
// holds the diagnostics gathered up to that point.
func (p *Parser) Parse(cur Cursor, call token.Span) (*Result, error) {
	st := &state{cur: cur, logger: p.logger}
	res := &Result{}

	ok, err := st.run()
	res.Diagnostics = st.diags
	if p.sink != nil {
		st.diags.Report(p.sink)
	}
	if err != nil {
		return res, fmt.Errorf("parsing inline assembly at %s: %w", call, err)
	}
	if !ok {
		res.Placeholder = true
		return res, nil
	}

	id := p.exp.RecordExpansion(codemap.ExpnInfo{
		CallSite: call,
		Callee:   codemap.Callee{Name: MacroName, Format: codemap.MacroBang},
	})
	res.Directive = &Directive{
		Template:      st.template.Value,
		TemplateStyle: st.template.Style,
		Outputs:       st.outputs,
		Inputs:        st.inputs,
		Clobbers:      st.clobbers,
		Flags:         st.flags,
		Provenance:    id,
	}
	return res, nil
}

// run drives the sections. It returns false without an error when the
// template was rejected.
func (st *state) run() (bool, error) {
	sec := Template
	for {
		st.tracef("parsing %s", sec)
		ok, err := st.parseSection(sec)
		if err != nil || !ok {
			return ok, err
		}

	boundaries:
		for {
			t := st.cur.Token()
			switch n := stride(t.Kind); {
			case t.Kind == token.EOF:
				st.tracef("end of input in %s", sec)
				return true, nil
			case n > 0 && sec.Advance(n) == Done:
				st.cur.Bump()
				st.tracef("%s closes %s", t.Kind, sec)
				return true, nil
			case n > 0:
				st.cur.Bump()
				st.tracef("%s: %s -> %s", t.Kind, sec, sec.Advance(n))
				sec = sec.Advance(n)
			default:
				// More content for the same section, such as the next
				// option keyword.
				break boundaries
			}
		}
	}
}

func (st *state) parseSection(sec Section) (bool, error) {
	switch sec {
	case Template:
		return st.parseTemplate()
	case Outputs:
		return true, st.parseOutputs()
	case Inputs:
		return true, st.parseInputs()
	case Clobbers:
		return true, st.parseClobbers()
	case Options:
		return true, st.parseOption()
	}
	return true, nil
}

func (st *state) parseTemplate() (bool, error) {
	expr, err := st.cur.ParseExpr()
	if err != nil {
		return false, fmt.Errorf("template: %w", err)
	}
	s, style, ok := ast.AsLiteral(expr)
	if !ok {
		st.diags.errorAt(expr.Span(), MsgTemplateNotLiteral)
		return false, nil
	}
	st.template = &ast.StrLit{Value: s, Style: style, Pos: expr.Span()}
	return true, nil
}

func (st *state) tracef(format string, args ...any) {
	if st.logger != nil {
		st.logger.Printf(format, args...)
	}
}
