package token

import (
	"pronouner/internal/source"
)

// Flags carries scanner observations about a token.
type Flags uint8

const (
	// FlagUnterminated marks a Macro that reached EOF before its braces balanced.
	FlagUnterminated Flags = 1 << iota
)

// Token is a single dialog segment with its location.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Flags Flags
}

// Literal returns the text the token contributes verbatim to compiled output.
// Macros and errors contribute nothing here.
func (t Token) Literal() string {
	switch t.Kind {
	case Text:
		return t.Text
	case EscapedOpen:
		return "{"
	case EscapedClose:
		return "}"
	default:
		return ""
	}
}

// IsLiteral reports whether the token is copied to the output as text.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Text, EscapedOpen, EscapedClose:
		return true
	default:
		return false
	}
}

// Unterminated reports whether a macro ran into EOF.
func (t Token) Unterminated() bool { return t.Flags&FlagUnterminated != 0 }
