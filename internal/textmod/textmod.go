// Package textmod applies macro case modifiers to resolved text.
package textmod

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"pronouner/internal/macro"
)

// Casers keep state, so each call builds its own.

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Capitalize uppercases the first scalar (which may expand, ß -> SS) and
// leaves the rest of s untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return upper(s[:size]) + s[size:]
}

// Apply runs mods over s left to right.
func Apply(s string, mods []macro.Mod) string {
	for _, m := range mods {
		switch m {
		case macro.Capitalized:
			s = Capitalize(s)
		case macro.UpperCase:
			s = upper(s)
		case macro.LowerCase:
			s = lower(s)
		}
	}
	return s
}

// Normalization selects a Unicode normal form for compiled output.
type Normalization uint8

const (
	NormNone Normalization = iota
	NormNFC
)

// ParseNormalization accepts "none" and "nfc"; "" means none.
func ParseNormalization(s string) (Normalization, bool) {
	switch s {
	case "", "none":
		return NormNone, true
	case "nfc", "NFC":
		return NormNFC, true
	default:
		return NormNone, false
	}
}

func (n Normalization) String() string {
	if n == NormNFC {
		return "nfc"
	}
	return "none"
}

// Normalize applies n to s.
func Normalize(s string, n Normalization) string {
	if n == NormNFC {
		return norm.NFC.String(s)
	}
	return s
}
