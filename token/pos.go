package token

import "fmt"

// Pos is a location in source text. Line and Col are 1-based, Offset is a
// byte offset. The zero Pos is "unknown".
type Pos struct {
	File   string
	Line   int
	Col    int
	Offset int
}

// IsValid reports whether p carries a line number.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		if p.File == "" {
			return "-"
		}
		return p.File
	}
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Span covers the half-open source range [Start, End).
type Span struct {
	Start Pos
	End   Pos
}

// Join returns the smallest span covering both s and o.
func (s Span) Join(o Span) Span {
	if !s.Start.IsValid() {
		return o
	}
	if !o.Start.IsValid() {
		return s
	}
	out := s
	if o.Start.Offset < out.Start.Offset {
		out.Start = o.Start
	}
	if o.End.Offset > out.End.Offset {
		out.End = o.End
	}
	return out
}

// Len is the byte length of the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

func (s Span) String() string {
	return s.Start.String()
}
