package inlineasm

import (
	"fmt"

	"github.com/Urethramancer/inlineasm/token"
)

const (
	optVolatile   = "volatile"
	optAlignStack = "alignstack"
	optIntel      = "intel"
)

// isOption reports whether s is a recognised option keyword. Matching is
// exact and case-sensitive.
func isOption(s string) bool {
	switch s {
	case optVolatile, optAlignStack, optIntel:
		return true
	}
	return false
}

func (st *state) parseClobbers() error {
	for !st.atSectionEnd() {
		if len(st.clobbers) != 0 {
			st.cur.Eat(token.Comma)
		}

		s, _, err := st.cur.ParseStr()
		if err != nil {
			return fmt.Errorf("clobber: %w", err)
		}
		if isOption(s) {
			st.diags.warnAt(st.cur.LastSpan(), MsgClobberIsOption)
		}
		st.clobbers = append(st.clobbers, s)
	}
	return nil
}

// parseOption handles one keyword. The state machine calls it again while
// more keywords follow.
func (st *state) parseOption() error {
	s, _, err := st.cur.ParseStr()
	if err != nil {
		return fmt.Errorf("option: %w", err)
	}

	switch s {
	case optVolatile:
		st.flags.Volatile = true
	case optAlignStack:
		st.flags.AlignStack = true
	case optIntel:
		st.flags.Dialect = Intel
	default:
		st.diags.warnAt(st.cur.LastSpan(), MsgUnknownOption)
	}

	if st.cur.Token().Kind == token.Comma {
		st.cur.Eat(token.Comma)
	}
	return nil
}
