// Package testkit holds checks shared by scanner tests and fuzz targets.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"pronouner/internal/source"
	"pronouner/internal/token"
)

// CheckTokenInvariants verifies a full scanner run over sf:
// 1) the stream ends with exactly one EOF, sitting at the end of the content
// 2) every other token is non-empty and belongs to sf
// 3) tokens tile the content with no gaps or overlaps
// 4) token text is the exact source slice
// 5) only a Macro may carry the unterminated flag, and only as the last segment
func CheckTokenInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(toks) == 0 {
		return fmt.Errorf("empty token stream")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	last := toks[len(toks)-1]
	if last.Kind != token.EOF {
		return fmt.Errorf("stream ends with %s, want EOF", last.Kind)
	}
	if !last.Span.Empty() || last.Span.Start != size {
		return fmt.Errorf("EOF span %v, want empty at %d", last.Span, size)
	}

	var next uint32
	body := toks[:len(toks)-1]
	for i, tok := range body {
		sp := tok.Span
		if tok.Kind == token.EOF {
			return fmt.Errorf("token %d: EOF before the end of the stream", i)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.Empty() {
			return fmt.Errorf("token %d (%s): empty span %v", i, tok.Kind, sp)
		}
		if sp.Start != next {
			return fmt.Errorf("token %d (%s): starts at %d, want %d", i, tok.Kind, sp.Start, next)
		}
		if sp.End > size {
			return fmt.Errorf("token %d (%s): span %v beyond content (%d bytes)", i, tok.Kind, sp, size)
		}
		if tok.Text != sf.Text(sp) {
			return fmt.Errorf("token %d (%s): text %q does not match source %q", i, tok.Kind, tok.Text, sf.Text(sp))
		}
		if tok.Unterminated() {
			if tok.Kind != token.Macro {
				return fmt.Errorf("token %d (%s): unterminated flag on a non-macro", i, tok.Kind)
			}
			if i != len(body)-1 {
				return fmt.Errorf("token %d: unterminated macro is not the last segment", i)
			}
		}
		next = sp.End
	}
	if next != size {
		return fmt.Errorf("tokens cover %d bytes of %d", next, size)
	}
	return nil
}
