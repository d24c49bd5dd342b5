// Package scanner splits dialog text into literal runs, delimiter escapes and
// macro spans. It never interprets macro bodies; see package macro.
package scanner

import (
	"errors"

	"pronouner/internal/diag"
	"pronouner/internal/source"
	"pronouner/internal/token"
)

const (
	openDelim  = '{'
	closeDelim = '}'
)

// ErrUnmatchedClosingDelimiter is the cause behind a StrayClose token.
var ErrUnmatchedClosingDelimiter = errors.New("unmatched closing delimiter")

// Options configures a Scanner.
type Options struct {
	Reporter diag.Reporter // может быть nil, тогда ошибки только в токенах
}

// Scanner walks one file left to right.
type Scanner struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Scanner {
	return &Scanner{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Offset returns the byte offset of the next unread byte.
func (s *Scanner) Offset() uint32 {
	return s.cursor.Off
}

// Next возвращает следующий сегмент. После EOF всегда возвращает EOF.
func (s *Scanner) Next() token.Token {
	if s.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: s.emptySpan()}
	}

	switch s.cursor.Peek() {
	case openDelim:
		if b0, b1, ok := s.cursor.Peek2(); ok && b0 == openDelim && b1 == openDelim {
			return s.scanEscape(token.EscapedOpen)
		}
		return s.scanMacro()
	case closeDelim:
		if b0, b1, ok := s.cursor.Peek2(); ok && b0 == closeDelim && b1 == closeDelim {
			return s.scanEscape(token.EscapedClose)
		}
		return s.scanStrayClose()
	default:
		return s.scanText()
	}
}

func (s *Scanner) scanText() token.Token {
	start := s.cursor.Mark()
	for !s.cursor.EOF() {
		b := s.cursor.Peek()
		if b == openDelim || b == closeDelim {
			break
		}
		s.cursor.BumpRune()
	}
	return s.makeToken(token.Text, start)
}

func (s *Scanner) scanEscape(kind token.Kind) token.Token {
	start := s.cursor.Mark()
	s.cursor.Bump()
	s.cursor.Bump()
	return s.makeToken(kind, start)
}

func (s *Scanner) scanStrayClose() token.Token {
	start := s.cursor.Mark()
	s.cursor.Bump()
	tok := s.makeToken(token.StrayClose, start)
	if s.opts.Reporter != nil {
		diag.ReportError(s.opts.Reporter, diag.ScnUnmatchedClosingDelimiter, tok.Span,
			"closing '}' has no matching macro; write '}}' for a literal brace").
			WithFix("escape the brace", diag.FixEdit{Span: tok.Span, NewText: "}}"}).
			Emit()
	}
	return tok
}

// scanMacro delimits a macro span by counting braces outside of quoted
// strings. Inside quotes a backslash toggles an escape flag that any other
// scalar clears; an escaped quote does not end the string.
func (s *Scanner) scanMacro() token.Token {
	start := s.cursor.Mark()

	depth := 0
	inString := false
	escape := false
	for !s.cursor.EOF() {
		r := s.cursor.BumpRune()
		switch {
		case r == openDelim && !inString:
			depth++
		case r == closeDelim && !inString:
			depth--
		case r == '\\' && inString:
			escape = !escape
		case r == '"' && !inString:
			inString = true
		case r == '"' && inString && !escape:
			inString = false
		default:
			escape = false
		}
		if depth == 0 {
			return s.makeToken(token.Macro, start)
		}
	}

	tok := s.makeToken(token.Macro, start)
	tok.Flags |= token.FlagUnterminated
	return tok
}

func (s *Scanner) makeToken(kind token.Kind, start Mark) token.Token {
	sp := s.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(s.file.Content[sp.Start:sp.End])}
}

func (s *Scanner) emptySpan() source.Span {
	return source.Span{File: s.file.ID, Start: s.cursor.Off, End: s.cursor.Off}
}

// All scans the whole file, EOF token included.
func All(file *source.File, opts Options) []token.Token {
	sc := New(file, opts)
	var toks []token.Token
	for {
		tok := sc.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}
