package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pronouner/internal/diag"
	"pronouner/internal/source"
)

type palette struct {
	enabled bool
	err     *color.Color
	warn    *color.Color
	info    *color.Color
	code    *color.Color
	path    *color.Color
	gutter  *color.Color
	caret   *color.Color
	note    *color.Color
	fix     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		enabled: enabled,
		err:     color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		info:    color.New(color.FgCyan, color.Bold),
		code:    color.New(color.Bold),
		path:    color.New(color.FgWhite, color.Bold),
		gutter:  color.New(color.FgBlue),
		caret:   color.New(color.FgRed, color.Bold),
		note:    color.New(color.FgCyan),
		fix:     color.New(color.FgGreen),
	}
	// опция важнее глобального color.NoColor
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.gutter, p.caret, p.note, p.fix} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строки контекста с подчёркиванием ^~~~ по Span, затем Notes и Fixes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	items := bag.Items()
	for i := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &items[i], fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	if !spanKnown(fs, d.Primary) {
		fmt.Fprintf(w, "%s %s: %s\n", pal.severity(d.Severity).Sprint(d.Severity.String()), pal.code.Sprint(d.Code.ID()), d.Message)
		return
	}
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.path.Sprintf("%s:%d:%d", formatPath(file, fs, opts.PathMode), start.Line, start.Col),
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.code.Sprint(d.Code.ID()),
		d.Message,
	)
	writeSnippet(w, file, start, end, opts.Context, pal)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			if !spanKnown(fs, note.Span) {
				fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("note:"), note.Msg)
				continue
			}
			nf := fs.Get(note.Span.File)
			ns, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"), formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col, note.Msg)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", pal.fix.Sprint("fix:"), fix.Title)
			for _, edit := range fix.Edits {
				preview, err := buildFixEditPreview(fs, edit)
				if err != nil {
					continue
				}
				for _, line := range preview.before {
					fmt.Fprintf(w, "    %s %s\n", pal.err.Sprint("-"), line)
				}
				for _, line := range preview.after {
					fmt.Fprintf(w, "    %s %s\n", pal.fix.Sprint("+"), line)
				}
			}
		}
	}
}

func spanKnown(fs *source.FileSet, sp source.Span) bool {
	return fs != nil && int(sp.File) < fs.Len()
}

// writeSnippet prints the primary line with context and a caret line under
// the span. Columns are measured in display cells, so wide runes line up.
func writeSnippet(w io.Writer, file *source.File, start, end source.LineCol, context int8, pal palette) {
	ctx := uint32(max(context, 0))
	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	last := start.Line + ctx
	total := uint32(len(file.LineIdx)) + 1 // #nosec G115 -- bounded by file size
	last = min(last, total)

	gutterWidth := len(fmt.Sprint(last))
	blank := strings.Repeat(" ", gutterWidth)
	for n := first; n <= last; n++ {
		line := file.GetLine(n)
		fmt.Fprintf(w, " %s %s %s\n", pal.gutter.Sprintf("%*d", gutterWidth, n), pal.gutter.Sprint("|"), line)
		if n == start.Line {
			fmt.Fprintf(w, " %s %s %s\n", blank, pal.gutter.Sprint("|"), pal.caret.Sprint(caretLine(line, start, end)))
		}
	}
}

// caretLine builds "    ^~~~" for the part of the span on start's line.
func caretLine(line string, start, end source.LineCol) string {
	from := min(int(start.Col-1), len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(int(end.Col-1), len(line))
	}
	to = max(to, from)

	var b strings.Builder
	for _, r := range line[:from] {
		// табы сохраняем, чтобы каретка совпала с терминалом
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	width := max(runewidth.StringWidth(line[from:to]), 1)
	b.WriteByte('^')
	b.WriteString(strings.Repeat("~", width-1))
	return b.String()
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
