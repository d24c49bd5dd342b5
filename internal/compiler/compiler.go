// Package compiler expands the macros in dialog text.
//
// Compilation is one left-to-right pass: literal runs and delimiter escapes
// are copied, every macro span is decoded, resolved against the cast and
// dictionary, run through its modifiers and appended. The first failure
// aborts the call with no partial output. Check is the variant that keeps
// going and reports every failure.
package compiler

import (
	"errors"
	"strings"

	"pronouner/internal/diag"
	"pronouner/internal/grammar"
	"pronouner/internal/macro"
	"pronouner/internal/scanner"
	"pronouner/internal/source"
	"pronouner/internal/textmod"
	"pronouner/internal/token"
)

// Compiler is safe for concurrent use as long as its cast and dictionary are
// not modified.
type Compiler struct {
	resolver grammar.Resolver
	norm     textmod.Normalization
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithNormalization normalizes compiled output to n.
func WithNormalization(n textmod.Normalization) Option {
	return func(c *Compiler) { c.norm = n }
}

func New(cast *grammar.Cast, dict *grammar.Dictionary, opts ...Option) *Compiler {
	c := &Compiler{resolver: grammar.Resolver{Cast: cast, Dictionary: dict}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile expands src. Errors are *Error.
func (c *Compiler) Compile(src string) (string, error) {
	if src == "" {
		return "", nil
	}
	fs := source.NewFileSet()
	return c.CompileFile(fs.Get(fs.AddVirtual("<input>", []byte(src))))
}

// CompileFile expands file. Error spans point into file.
func (c *Compiler) CompileFile(file *source.File) (string, error) {
	if len(file.Content) == 0 {
		return "", nil
	}

	sc := scanner.New(file, scanner.Options{})
	var out strings.Builder
	out.Grow(len(file.Content))
	for {
		tok := sc.Next()
		switch tok.Kind {
		case token.EOF:
			return textmod.Normalize(out.String(), c.norm), nil
		case token.Macro:
			text, err := c.expand(tok)
			if err != nil {
				return "", err
			}
			out.WriteString(text)
		case token.StrayClose:
			return "", &Error{Code: diag.ScnUnmatchedClosingDelimiter, Span: tok.Span, Err: scanner.ErrUnmatchedClosingDelimiter}
		default:
			out.WriteString(tok.Literal())
		}
	}
}

// expand decodes, resolves and modifies one macro span.
func (c *Compiler) expand(tok token.Token) (string, error) {
	if tok.Unterminated() {
		de := macro.UnterminatedError()
		return "", &Error{Code: de.Reason.Code(), Span: tok.Span, Err: de}
	}

	d, err := macro.Decode(tok.Text)
	if err != nil {
		code := diag.MacMalformedLiteral
		var de *macro.DecodeError
		if errors.As(err, &de) {
			code = de.Reason.Code()
		}
		return "", &Error{Code: code, Span: tok.Span, Err: err}
	}

	raw, err := c.resolver.Resolve(d)
	if err != nil {
		code, _ := grammar.ErrorCode(err)
		return "", &Error{Code: code, Span: tok.Span, Err: err}
	}
	return textmod.Apply(raw, d.Mods), nil
}
