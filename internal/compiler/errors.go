package compiler

import (
	"fmt"

	"pronouner/internal/diag"
	"pronouner/internal/source"
)

// Error is a compile failure at a span of the input. Err wraps the cause:
// a *macro.DecodeError, one of the grammar sentinels or
// scanner.ErrUnmatchedClosingDelimiter.
type Error struct {
	Code diag.Code
	Span source.Span
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at bytes %d..%d: %v", e.Code.ID(), e.Span.Start, e.Span.End, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Diagnostic converts the error for rendering.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Span, e.Err.Error())
}
