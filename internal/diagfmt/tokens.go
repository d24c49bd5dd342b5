package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"pronouner/internal/source"
	"pronouner/internal/token"
)

type TokenOutput struct {
	Kind         string      `json:"kind"`
	Text         string      `json:"text,omitempty"`
	Literal      string      `json:"literal,omitempty"`
	Span         source.Span `json:"span"`
	Unterminated bool        `json:"unterminated,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%3d: %-13s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if tok.Unterminated() {
			fmt.Fprint(w, " (unterminated)")
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:         tok.Kind.String(),
			Text:         tok.Text,
			Span:         tok.Span,
			Unterminated: tok.Unterminated(),
		}
		if tok.IsLiteral() {
			out.Literal = tok.Literal()
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
