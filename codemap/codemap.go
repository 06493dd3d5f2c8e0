// Package codemap records macro expansions so later diagnostics can be
// traced back to the invocation that produced them.
package codemap

import (
	"fmt"

	"github.com/Urethramancer/inlineasm/token"
)

// ExpnID identifies one recorded expansion. NoExpansion is never handed out.
type ExpnID uint32

// NoExpansion marks code that did not come from a macro.
const NoExpansion ExpnID = 0

func (id ExpnID) String() string {
	if id == NoExpansion {
		return "expn#none"
	}
	return fmt.Sprintf("expn#%d", uint32(id))
}

// Format is the kind of macro that was expanded.
type Format int

const (
	// MacroBang is a name!(...) invocation.
	MacroBang Format = iota
	// MacroAttribute is an #[name] attribute.
	MacroAttribute
)

func (f Format) String() string {
	switch f {
	case MacroBang:
		return "macro!"
	case MacroAttribute:
		return "#[macro]"
	default:
		return "unknown"
	}
}

// Callee names the macro and how it was invoked.
type Callee struct {
	Name   string
	Format Format
	Span   *token.Span // Definition site, nil for built-ins.
}

// ExpnInfo describes one expansion.
type ExpnInfo struct {
	CallSite token.Span
	Callee   Callee
}

// Table hands out expansion ids in order. It is not safe for concurrent
// use; each compilation thread owns its own table.
type Table struct {
	infos []ExpnInfo
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{}
}

// RecordExpansion stores info and returns its id.
func (t *Table) RecordExpansion(info ExpnInfo) ExpnID {
	t.infos = append(t.infos, info)
	return ExpnID(len(t.infos))
}

// Info looks up a recorded expansion.
func (t *Table) Info(id ExpnID) (ExpnInfo, bool) {
	if id == NoExpansion || int(id) > len(t.infos) {
		return ExpnInfo{}, false
	}
	return t.infos[id-1], true
}

// Len returns the number of recorded expansions.
func (t *Table) Len() int {
	return len(t.infos)
}
