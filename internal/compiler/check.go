package compiler

import (
	"errors"
	"strings"

	"pronouner/internal/diag"
	"pronouner/internal/scanner"
	"pronouner/internal/source"
	"pronouner/internal/textmod"
	"pronouner/internal/token"
)

// Check compiles file but reports every failure to r instead of stopping.
// Failed macros are left in the output as their source text. It returns the
// output and the number of errors reported.
func (c *Compiler) Check(file *source.File, r diag.Reporter) (string, int) {
	if len(file.Content) == 0 {
		return "", 0
	}

	errs := 0
	sc := scanner.New(file, scanner.Options{Reporter: r})
	var out strings.Builder
	out.Grow(len(file.Content))
	for {
		tok := sc.Next()
		switch tok.Kind {
		case token.EOF:
			return textmod.Normalize(out.String(), c.norm), errs
		case token.StrayClose:
			// сканер уже отчитался
			errs++
			out.WriteString(tok.Text)
		case token.Macro:
			text, err := c.expand(tok)
			if err != nil {
				errs++
				reportError(r, file, err)
				out.WriteString(tok.Text)
				continue
			}
			out.WriteString(text)
		default:
			out.WriteString(tok.Literal())
		}
	}
}

func reportError(r diag.Reporter, file *source.File, err error) {
	var ce *Error
	if !errors.As(err, &ce) {
		return
	}
	b := diag.ReportError(r, ce.Code, ce.Span, ce.Err.Error())
	if ce.Code == diag.MacUnterminated {
		open := source.Span{File: file.ID, Start: ce.Span.Start, End: ce.Span.Start + 1}
		b = b.WithNote(open, "macro opened here").
			WithFix("escape the brace", diag.FixEdit{Span: open, NewText: "{{"})
	}
	b.Emit()
}
