package inlineasm

import (
	"fmt"

	"github.com/Urethramancer/inlineasm/token"
)

// Section is one of the ordered parts of an inline assembly directive.
// Parsing only ever moves forward through them.
type Section int

const (
	// Template is the assembly text itself.
	Template Section = iota
	// Outputs lists "constraint"(place) operands written by the assembly.
	Outputs
	// Inputs lists "constraint"(expr) operands read by the assembly.
	Inputs
	// Clobbers lists registers and resources the assembly overwrites.
	Clobbers
	// Options lists option keywords.
	Options
	// Done is terminal.
	Done
)

var sectionNames = [...]string{"template", "outputs", "inputs", "clobbers", "options", "done"}

func (s Section) String() string {
	if s < Template || s > Done {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionNames[s]
}

// Advance moves by sections forward, saturating at Done.
func (s Section) Advance(by int) Section {
	if by < 0 {
		by = 0
	}
	if next := s + Section(by); next < Done {
		return next
	}
	return Done
}

// stride returns how far a boundary token moves the machine: one for ':'
// and two for '::'. Any other token does not advance it.
func stride(k token.Kind) int {
	switch k {
	case token.Colon:
		return 1
	case token.ModSep:
		return 2
	}
	return 0
}
