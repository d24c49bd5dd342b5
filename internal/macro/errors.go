package macro

import (
	"errors"

	"pronouner/internal/diag"
)

// ErrMalformedMacroLiteral matches every *DecodeError via errors.Is.
var ErrMalformedMacroLiteral = errors.New("malformed macro literal")

// Reason classifies why a span failed to decode.
type Reason uint8

const (
	ReasonSyntax Reason = iota
	ReasonUnknownKind
	ReasonUnknownMod
	ReasonNullCharacter
	ReasonBadField
	ReasonUnterminated
)

// Code maps the reason to its diagnostic code.
func (r Reason) Code() diag.Code {
	switch r {
	case ReasonSyntax:
		return diag.MacMalformedLiteral
	case ReasonUnknownKind:
		return diag.MacUnknownKind
	case ReasonUnknownMod:
		return diag.MacUnknownMod
	case ReasonNullCharacter:
		return diag.MacNullCharacter
	case ReasonBadField:
		return diag.MacBadField
	case ReasonUnterminated:
		return diag.MacUnterminated
	default:
		return diag.MacMalformedLiteral
	}
}

// DecodeError describes a span that is not a valid macro.
type DecodeError struct {
	Reason Reason
	Detail string
	Err    error // underlying JSON error, if any
}

func (e *DecodeError) Error() string {
	msg := ErrMalformedMacroLiteral.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Is(target error) bool { return target == ErrMalformedMacroLiteral }

func (e *DecodeError) Unwrap() error { return e.Err }

// UnterminatedError is returned for spans that reached EOF unbalanced.
func UnterminatedError() *DecodeError {
	return &DecodeError{Reason: ReasonUnterminated, Detail: "macro is missing its closing '}'"}
}
