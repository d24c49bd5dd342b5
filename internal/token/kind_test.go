package token_test

import (
	"testing"

	"pronouner/internal/source"
	"pronouner/internal/token"
)

func tok(k token.Kind, text string) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}, Text: text}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
		lit  bool
	}{
		{tok(token.Text, "hello"), "hello", true},
		{tok(token.EscapedOpen, "{{"), "{", true},
		{tok(token.EscapedClose, "}}"), "}", true},
		{tok(token.Macro, `{"character_id":"a"}`), "", false},
		{tok(token.StrayClose, "}"), "", false},
		{tok(token.EOF, ""), "", false},
	}
	for _, tt := range tests {
		if got := tt.tok.Literal(); got != tt.want {
			t.Errorf("%v.Literal() = %q, want %q", tt.tok.Kind, got, tt.want)
		}
		if got := tt.tok.IsLiteral(); got != tt.lit {
			t.Errorf("%v.IsLiteral() = %v, want %v", tt.tok.Kind, got, tt.lit)
		}
	}
}

func TestKindString(t *testing.T) {
	if token.Macro.String() != "Macro" {
		t.Fatalf("Macro.String() = %q", token.Macro.String())
	}
	if token.Kind(200).String() != "Unknown" {
		t.Fatalf("out of range kind should be Unknown")
	}
}

func TestUnterminatedFlag(t *testing.T) {
	tk := tok(token.Macro, "{")
	if tk.Unterminated() {
		t.Fatal("fresh token must not be unterminated")
	}
	tk.Flags |= token.FlagUnterminated
	if !tk.Unterminated() {
		t.Fatal("flag not observed")
	}
}
