package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Urethramancer/inlineasm/ast"
	"github.com/Urethramancer/inlineasm/token"
)

// decodeString returns the value of a string token.
func decodeString(t token.Token) (string, ast.StrStyle, error) {
	if t.Kind == token.RawString {
		body := strings.TrimPrefix(t.Text, "r")
		hashes := len(body) - len(strings.TrimLeft(body, "#"))
		body = body[hashes+1 : len(body)-hashes-1]
		return body, ast.RawStyle(hashes), nil
	}

	s, err := unescape(t.Text[1 : len(t.Text)-1])
	if err != nil {
		return "", ast.StrStyle{}, &Error{Pos: t.Span.Start, Msg: err.Error(), Err: ErrBadEscape}
	}
	return s, ast.Cooked, nil
}

func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("trailing backslash")
		}
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		case '\\', '"', '\'':
			b.WriteByte(s[i])
		case '\n':
			// Line continuation: skip the newline and leading whitespace.
			for i+1 < len(s) && strings.IndexByte(" \t\r\n", s[i+1]) >= 0 {
				i++
			}
		case 'x':
			if i+2 >= len(s) {
				return "", fmt.Errorf("short \\x escape")
			}
			v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil || v > 0x7f {
				return "", fmt.Errorf("invalid \\x escape %q", s[i-1:i+3])
			}
			b.WriteByte(byte(v))
			i += 2
		case 'u':
			end := strings.IndexByte(s[i:], '}')
			if i+1 >= len(s) || s[i+1] != '{' || end < 0 {
				return "", fmt.Errorf("malformed \\u escape")
			}
			digits := strings.ReplaceAll(s[i+2:i+end], "_", "")
			v, err := strconv.ParseUint(digits, 16, 32)
			if err != nil || !utf8.ValidRune(rune(v)) {
				return "", fmt.Errorf("invalid unicode escape %q", s[i-1:i+end+1])
			}
			b.WriteRune(rune(v))
			i += end
		default:
			return "", fmt.Errorf("unknown escape \\%c", s[i])
		}
	}
	return b.String(), nil
}
