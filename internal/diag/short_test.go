package diag

import (
	"testing"

	"pronouner/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSetWithBase("/workspace")
	file := fs.Add("/workspace/dialogs/intro.xyr", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     GrmUnknownVerbKey,
			Message:  "later",
			Primary:  source.Span{File: file, Start: 2, End: 3},
		},
		{
			Severity: SevError,
			Code:     ScnUnmatchedClosingDelimiter,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: file, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: file, Start: 2, End: 3}, Msg: "note line"},
			},
		},
	}

	expected := "error SCN1001 dialogs/intro.xyr:1:1 first line second\n" +
		"note SCN1001 dialogs/intro.xyr:2:1 note line\n" +
		"warning GRM3003 dialogs/intro.xyr:2:1 later"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		ScnUnmatchedClosingDelimiter: "SCN1001",
		MacUnknownMod:                "MAC2003",
		GrmUndefinedConjugationForm:  "GRM3004",
		IOLoadFileError:              "IO4001",
		PrjCastInvalid:               "PRJ5002",
		UnknownCode:                  "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if Code(9999).Title() != "Unknown error" {
		t.Errorf("unregistered code should fall back to unknown title")
	}
}
