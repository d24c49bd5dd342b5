package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"pronouner/internal/diag"
	"pronouner/internal/source"
)

const lanceLine = `Hi {"character_id":"lance","kind":"Name"}!`

func lanceBag(fileID source.FileID) *diag.Bag {
	bag := diag.NewBag(10)
	start := uint32(strings.Index(lanceLine, "{"))
	end := uint32(strings.Index(lanceLine, "}") + 1)
	bag.Add(diag.NewError(diag.GrmUnknownCharacter, source.Span{File: fileID, Start: start, End: end}, "unknown character \"lance\""))
	return bag
}

func TestPrettyHeaderAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("intro.xyr", []byte("first\n"+lanceLine+"\nlast\n"))
	bag := diag.NewBag(10)
	start := uint32(len("first\n") + strings.Index(lanceLine, "{"))
	end := uint32(len("first\n") + strings.Index(lanceLine, "}") + 1)
	bag.Add(diag.NewError(diag.GrmUnknownCharacter, source.Span{File: id, Start: start, End: end}, "unknown character"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})
	out := buf.String()

	macroLen := strings.Index(lanceLine, "}") + 1 - strings.Index(lanceLine, "{")
	want := strings.Join([]string{
		"intro.xyr:2:4: ERROR GRM3001: unknown character",
		" 1 | first",
		" 2 | " + lanceLine,
		"   |    ^" + strings.Repeat("~", macroLen-1),
		" 3 | last",
		"",
	}, "\n")
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestPrettyPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	id := fs.AddVirtual("/home/user/project/dialogs/test.xyr", []byte(lanceLine))
	bag := lanceBag(id)

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/dialogs/test.xyr:1:4"},
		{"relative", PathModeRelative, "dialogs/test.xyr:1:4"},
		{"basename", PathModeBasename, "test.xyr:1:4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			out := buf.String()
			if !strings.Contains(out, tt.contains) {
				t.Errorf("expected %q in:\n%s", tt.contains, out)
			}
			if !strings.Contains(out, "ERROR") || !strings.Contains(out, "GRM3001") {
				t.Errorf("missing severity or code:\n%s", out)
			}
		})
	}
}

func TestPrettyWideRunes(t *testing.T) {
	line := "日本 {x}"
	got := caretLine(line, source.LineCol{Line: 1, Col: uint32(len("日本 ") + 1)}, source.LineCol{Line: 1, Col: uint32(len(line) + 1)})
	if got != "     ^~~" {
		t.Fatalf("caret = %q", got)
	}
	got = caretLine("\tab", source.LineCol{Line: 1, Col: 2}, source.LineCol{Line: 1, Col: 2})
	if got != "\t^" {
		t.Fatalf("tab caret = %q", got)
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.xyr", []byte("a } b"))
	bag := diag.NewBag(10)
	sp := source.Span{File: id, Start: 2, End: 3}
	bag.Add(diag.NewError(diag.ScnUnmatchedClosingDelimiter, sp, "stray brace").
		WithNote(sp, "here").
		WithFix("escape the brace", diag.FixEdit{Span: sp, NewText: "}}"}))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true, ShowFixes: true})
	out := buf.String()
	for _, want := range []string{"note: x.xyr:1:3: here", "fix: escape the brace", "- a } b", "+ a }} b"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "note:") || strings.Contains(buf.String(), "fix:") {
		t.Errorf("notes and fixes should be hidden:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	bag := lanceBag(fs.AddVirtual("c.xyr", []byte(lanceLine)))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("plain output has escapes")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Error("colored output has no escapes")
	}
}

func TestParsePathMode(t *testing.T) {
	for _, s := range []string{"auto", "absolute", "relative", "basename"} {
		m, ok := ParsePathMode(s)
		if !ok || m.String() != s {
			t.Errorf("ParsePathMode(%q) = %v, %v", s, m, ok)
		}
	}
	if _, ok := ParsePathMode("nope"); ok {
		t.Error("unexpected ok")
	}
}
