package inlineasm

import (
	"strings"

	"github.com/Urethramancer/inlineasm/ast"
	"github.com/Urethramancer/inlineasm/codemap"
)

// Constraint is operand constraint text such as "r", "=r" or "=&m".
type Constraint string

// IsWrite reports whether c carries the '=' write marker.
func (c Constraint) IsWrite() bool {
	return strings.HasPrefix(string(c), "=")
}

// Dialect selects the assembly syntax of the template.
type Dialect int

const (
	// ATT is AT&T syntax, the default.
	ATT Dialect = iota
	// Intel syntax, selected by the "intel" option.
	Intel
)

func (d Dialect) String() string {
	if d == Intel {
		return "intel"
	}
	return "att"
}

// OutputOperand is a place written by the assembly. Constraint always has
// the '=' form once stored; ReadWrite records that it was written with '+'.
type OutputOperand struct {
	Constraint Constraint
	Expr       ast.Expr
	ReadWrite  bool
}

func (o OutputOperand) String() string {
	c := string(o.Constraint)
	if o.ReadWrite {
		c = "+" + strings.TrimPrefix(c, "=")
	}
	return ast.Cooked.Quote(c) + "(" + o.Expr.String() + ")"
}

// InputOperand is a value read by the assembly.
type InputOperand struct {
	Constraint Constraint
	Expr       ast.Expr
}

func (i InputOperand) String() string {
	return ast.Cooked.Quote(string(i.Constraint)) + "(" + i.Expr.String() + ")"
}

// OptionFlags holds the option keywords that were seen.
type OptionFlags struct {
	// Volatile means the assembly has side effects and must be kept and
	// not reordered even when its outputs are unused.
	Volatile   bool
	AlignStack bool
	Dialect    Dialect
}

// Keywords lists the set options in canonical order.
func (f OptionFlags) Keywords() []string {
	var out []string
	if f.Volatile {
		out = append(out, optVolatile)
	}
	if f.AlignStack {
		out = append(out, optAlignStack)
	}
	if f.Dialect == Intel {
		out = append(out, optIntel)
	}
	return out
}

// Directive is a fully parsed inline assembly invocation.
type Directive struct {
	Template      string
	TemplateStyle ast.StrStyle
	Outputs       []OutputOperand
	Inputs        []InputOperand
	Clobbers      []string
	Flags         OptionFlags
	Provenance    codemap.ExpnID
}

// String renders the directive's arguments in source form, leaving out
// trailing empty sections.
func (d *Directive) String() string {
	parts := make([]string, 0, 5)
	parts = append(parts, d.TemplateStyle.Quote(d.Template))

	var sec []string
	for _, o := range d.Outputs {
		sec = append(sec, o.String())
	}
	parts = append(parts, strings.Join(sec, ", "))

	sec = sec[:0]
	for _, i := range d.Inputs {
		sec = append(sec, i.String())
	}
	parts = append(parts, strings.Join(sec, ", "))

	sec = sec[:0]
	for _, c := range d.Clobbers {
		sec = append(sec, ast.Cooked.Quote(c))
	}
	parts = append(parts, strings.Join(sec, ", "))

	sec = sec[:0]
	for _, k := range d.Flags.Keywords() {
		sec = append(sec, ast.Cooked.Quote(k))
	}
	parts = append(parts, strings.Join(sec, ", "))

	last := len(parts) - 1
	for last > 0 && parts[last] == "" {
		last--
	}

	var b strings.Builder
	for i, p := range parts[:last+1] {
		if i > 0 {
			b.WriteString(" :")
			if p != "" {
				b.WriteByte(' ')
			}
		}
		b.WriteString(p)
	}
	return b.String()
}
