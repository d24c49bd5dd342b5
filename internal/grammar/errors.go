package grammar

import (
	"errors"

	"pronouner/internal/diag"
)

// Resolution failures. Returned errors wrap one of these with context.
var (
	ErrUnknownCharacter         = errors.New("unknown character")
	ErrMissingVerbArgument      = errors.New("missing verb argument")
	ErrUnknownVerbKey           = errors.New("unknown verb key")
	ErrUndefinedConjugationForm = errors.New("undefined conjugation form")
)

// ErrorCode maps a resolution error to its diagnostic code.
func ErrorCode(err error) (diag.Code, bool) {
	switch {
	case errors.Is(err, ErrUnknownCharacter):
		return diag.GrmUnknownCharacter, true
	case errors.Is(err, ErrMissingVerbArgument):
		return diag.GrmMissingVerbArgument, true
	case errors.Is(err, ErrUnknownVerbKey):
		return diag.GrmUnknownVerbKey, true
	case errors.Is(err, ErrUndefinedConjugationForm):
		return diag.GrmUndefinedConjugationForm, true
	default:
		return diag.UnknownCode, false
	}
}
