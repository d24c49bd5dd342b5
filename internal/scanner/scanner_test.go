package scanner_test

import (
	"testing"

	"pronouner/internal/diag"
	"pronouner/internal/scanner"
	"pronouner/internal/source"
	"pronouner/internal/testkit"
	"pronouner/internal/token"
)

// testReporter собирает все диагностики, полученные от сканера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func scanAll(input string) ([]token.Token, *testReporter) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.xyr", []byte(input)))
	reporter := &testReporter{}
	toks := scanner.All(file, scanner.Options{Reporter: reporter})
	return toks[:len(toks)-1], reporter // без EOF
}

type want struct {
	kind token.Kind
	text string
}

func expectTokens(t *testing.T, input string, expected []want) {
	t.Helper()
	toks, _ := scanAll(input)
	if len(toks) != len(expected) {
		t.Fatalf("input %q: expected %d tokens, got %d: %v", input, len(expected), len(toks), toks)
	}
	for i, tok := range toks {
		if tok.Kind != expected[i].kind || tok.Text != expected[i].text {
			t.Errorf("token %d: got %v %q, want %v %q", i, tok.Kind, tok.Text, expected[i].kind, expected[i].text)
		}
	}
}

func TestPlainText(t *testing.T) {
	expectTokens(t, "Hello there, friend. Ünïcødé ✓", []want{
		{token.Text, "Hello there, friend. Ünïcødé ✓"},
	})
}

func TestEmptyInput(t *testing.T) {
	toks, _ := scanAll("")
	if len(toks) != 0 {
		t.Fatalf("expected no tokens, got %v", toks)
	}
}

func TestEscapes(t *testing.T) {
	expectTokens(t, "main(String[] args) {{}}?", []want{
		{token.Text, "main(String[] args) "},
		{token.EscapedOpen, "{{"},
		{token.EscapedClose, "}}"},
		{token.Text, "?"},
	})
}

func TestMacroBetweenEscapes(t *testing.T) {
	m := `{"character_id":"pidge","kind":"ObjectivePronoun","data":null,"mods":["UpperCase"]}`
	expectTokens(t, "{{"+m+"}}", []want{
		{token.EscapedOpen, "{{"},
		{token.Macro, m},
		{token.EscapedClose, "}}"},
	})
}

func TestMacroSpans(t *testing.T) {
	tests := []struct {
		name  string
		input string
		macro string
		rest  string
	}{
		{
			name:  "braces inside quoted data are not counted",
			input: `{"character_id":"a","kind":"VerbConjugate","data":"}{ }}","mods":[]} tail`,
			macro: `{"character_id":"a","kind":"VerbConjugate","data":"}{ }}","mods":[]}`,
			rest:  " tail",
		},
		{
			name:  "escaped quote keeps the string open",
			input: `{"data":"say \"}\" now"} x`,
			macro: `{"data":"say \"}\" now"}`,
			rest:  " x",
		},
		{
			name:  "escaped backslash closes before the quote",
			input: `{"data":"c:\\"} x`,
			macro: `{"data":"c:\\"}`,
			rest:  " x",
		},
		{
			name:  "nested object balances",
			input: `{"a":{"b":{}}}!`,
			macro: `{"a":{"b":{}}}`,
			rest:  "!",
		},
		{
			name:  "multibyte scalars inside macro",
			input: `{"data":"ÿ–漢"}é`,
			macro: `{"data":"ÿ–漢"}`,
			rest:  "é",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, _ := scanAll(tt.input)
			if len(toks) != 2 {
				t.Fatalf("expected macro + text, got %v", toks)
			}
			if toks[0].Kind != token.Macro || toks[0].Text != tt.macro {
				t.Errorf("macro = %v %q, want %q", toks[0].Kind, toks[0].Text, tt.macro)
			}
			if toks[0].Unterminated() {
				t.Error("macro must be terminated")
			}
			if toks[1].Text != tt.rest {
				t.Errorf("rest = %q, want %q", toks[1].Text, tt.rest)
			}
		})
	}
}

func TestUnterminatedMacro(t *testing.T) {
	toks, _ := scanAll(`hi {"data":"}`)
	if len(toks) != 2 {
		t.Fatalf("got %v", toks)
	}
	m := toks[1]
	if m.Kind != token.Macro || !m.Unterminated() {
		t.Fatalf("expected unterminated macro, got %+v", m)
	}
	if m.Text != `{"data":"}` {
		t.Errorf("unterminated macro should cover the rest of the file, got %q", m.Text)
	}
}

func TestStrayCloseReported(t *testing.T) {
	toks, rep := scanAll("Oh no! This closing } is not escaped D:")
	if len(toks) != 3 || toks[1].Kind != token.StrayClose {
		t.Fatalf("got %v", toks)
	}
	if len(rep.diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(rep.diagnostics))
	}
	d := rep.diagnostics[0]
	if d.Code != diag.ScnUnmatchedClosingDelimiter {
		t.Errorf("code = %v", d.Code)
	}
	if d.Primary.Start != 20 || d.Primary.End != 21 {
		t.Errorf("span = %+v", d.Primary)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].Edits[0].NewText != "}}" {
		t.Errorf("expected escape fix, got %+v", d.Fixes)
	}
}

func TestTripleOpen(t *testing.T) {
	expectTokens(t, `{{{"x":1}`, []want{
		{token.EscapedOpen, "{{"},
		{token.Macro, `{"x":1}`},
	})
}

func TestSpansAreContiguous(t *testing.T) {
	for _, input := range []string{
		`a {{ {"k":"}"} }} b } c`,
		"",
		`{"unterminated": {`,
		"}}}{{{",
	} {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("t.xyr", []byte(input)))
		toks := scanner.All(file, scanner.Options{})
		if err := testkit.CheckTokenInvariants(toks, file); err != nil {
			t.Errorf("%q: %v", input, err)
		}
	}
}

func TestNextAfterEOF(t *testing.T) {
	fs := source.NewFileSet()
	sc := scanner.New(fs.Get(fs.AddVirtual("t", []byte("x"))), scanner.Options{})
	sc.Next()
	for range 3 {
		if tok := sc.Next(); tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", tok.Kind)
		}
	}
	if sc.Offset() != 1 {
		t.Fatalf("Offset() = %d", sc.Offset())
	}
}
