package lexer

import (
	"errors"
	"fmt"

	"github.com/Urethramancer/inlineasm/token"
)

var (
	// ErrUnexpectedToken is wrapped by every "expected X, found Y" failure.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrBadEscape is wrapped when a cooked string holds an unknown escape.
	ErrBadEscape = errors.New("invalid escape sequence")
	// ErrUnbalanced is wrapped when a macro invocation never closes.
	ErrUnbalanced = errors.New("unbalanced delimiters")
)

// Error is a structural failure at a source position.
type Error struct {
	Pos token.Pos
	Msg string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func unexpected(tok token.Token, want string) *Error {
	return &Error{
		Pos: tok.Span.Start,
		Msg: fmt.Sprintf("expected %s, found %s", want, describe(tok)),
		Err: ErrUnexpectedToken,
	}
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of input"
	case token.String, token.RawString, token.Int:
		return tok.Kind.String() + " " + tok.Text
	default:
		return "'" + tok.Text + "'"
	}
}
