package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lilc/internal/diag"
	"lilc/internal/source"
)

type palette struct {
	sev      map[diag.Severity]*color.Color
	location *color.Color
	gutter   *color.Color
	caret    *color.Color
	note     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		location: color.New(color.Bold),
		gutter:   color.New(color.FgBlue),
		caret:    color.New(color.FgGreen, color.Bold),
		note:     color.New(color.FgCyan),
	}
	all := []*color.Color{p.location, p.gutter, p.caret, p.note}
	for _, c := range p.sev {
		all = append(all, c)
	}
	// глобальный color.NoColor смотрит на stdout, а писать можем куда угодно
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	if c, ok := p.sev[sev]; ok {
		return c
	}
	return p.location
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.location.Sprintf("%s:%d:%d", formatPath(fs, f, opts.PathMode), start.Line, start.Col),
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.severity(d.Severity).Sprint(d.Code.ID()),
		d.Message)
	if f != nil && d.Code != diag.ObsTimings {
		writeSnippet(w, f, start, end, opts, p)
	}

	// заметки таймингов печатаем всегда, иначе диагностика пустая
	if !opts.ShowNotes && d.Code != diag.ObsTimings {
		return
	}
	for _, note := range d.Notes {
		nf := fs.Get(note.Span.File)
		ns, _ := fs.Resolve(note.Span)
		fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
			p.note.Sprint("note"), formatPath(fs, nf, opts.PathMode), ns.Line, ns.Col, note.Msg)
	}
}

func writeSnippet(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts, p palette) {
	if start.Line == 0 {
		return
	}
	ctx := uint32(max(opts.Context, 0))
	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	last := start.Line + ctx
	gutterWidth := len(fmt.Sprint(last))

	for line := first; line <= last; line++ {
		text, ok := lineText(f, line)
		if !ok {
			break
		}
		fmt.Fprintf(w, "%s %s\n",
			p.gutter.Sprintf("%*d |", gutterWidth, line),
			clip(expandTabs(text), opts.Width))
		if line != start.Line {
			continue
		}
		pad, width := caretGeometry(text, start, end)
		marker := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, "%s %s%s\n",
			p.gutter.Sprintf("%*s |", gutterWidth, ""),
			strings.Repeat(" ", pad),
			p.caret.Sprint(marker))
	}
}

// caretGeometry returns the display offset and width of the underline for a
// span starting on this line. Multi-line spans are underlined to end of line.
func caretGeometry(text string, start, end source.LineCol) (pad, width int) {
	from := min(int(start.Col-1), len(text))
	to := len(text)
	if end.Line == start.Line {
		to = min(int(end.Col-1), len(text))
	}
	pad = runewidth.StringWidth(expandTabs(text[:from]))
	width = runewidth.StringWidth(expandTabs(text[from:max(to, from)]))
	return pad, max(width, 1)
}

func lineText(f *source.File, line uint32) (string, bool) {
	if line == 0 || int(line) > len(f.LineIdx)+1 {
		return "", false
	}
	return f.GetLine(line), true
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

func clip(s string, width uint8) string {
	if width == 0 || runewidth.StringWidth(s) <= int(width) {
		return s
	}
	return runewidth.Truncate(s, int(width), "...")
}
