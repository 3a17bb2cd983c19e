package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"adaleph/internal/diag"
	"adaleph/internal/source"
)

// Pretty форматирует диагностики для человека:
// "<path>:<line>:<col>: <SEV> <CODE>: <Message>", затем строка исходника
// с подчёркиванием ^~~~ по Span, затем заметки.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		writeHeader(w, p, fs, opts, d)
		writeContext(w, p, fs, opts, d.Primary)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"), location(fs, n.Span, opts.PathMode), n.Msg)
		}
	}
}

type palette struct {
	err, warn, info, note, code, caret, gutter *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgBlue, color.Bold),
		note:   mk(color.FgCyan),
		code:   mk(color.Bold),
		caret:  mk(color.FgGreen, color.Bold),
		gutter: mk(color.FgBlue),
	}
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

func writeHeader(w io.Writer, p palette, fs *source.FileSet, opts PrettyOpts, d diag.Diagnostic) {
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		location(fs, d.Primary, opts.PathMode),
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Message,
	)
}

// location возвращает "path:line:col"; без FileSet позиция считается 1:1.
func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	if fs == nil || int(sp.File) >= fs.Len() {
		return "<input>:1:1"
	}
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", f.FormatPath(mode.mode(), fs.BaseDir()), start.Line, start.Col)
}

func writeContext(w io.Writer, p palette, fs *source.FileSet, opts PrettyOpts, sp source.Span) {
	if fs == nil || int(sp.File) >= fs.Len() {
		return
	}
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	ctx := uint32(max(opts.Context, 0))

	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	last := start.Line + ctx
	if n, err := safecast.Conv[uint32](len(f.LineIdx) + 1); err == nil {
		last = min(last, n)
	}
	gutterWidth := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		raw := f.GetLine(ln)
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, ln), expandTabs(raw))
		if ln != start.Line {
			continue
		}
		endCol := end.Col
		if end.Line != start.Line {
			endCol = uint32(len(raw)) + 1
		}
		pad, width := underline(raw, start.Col, endCol)
		marker := "^" + strings.Repeat("~", max(width-1, 0))
		fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), p.caret.Sprint(marker))
	}
}

// underline считает отступ и ширину подчёркивания в колонках терминала.
// startCol/endCol - байтовые колонки (1-based) в строке raw.
func underline(raw string, startCol, endCol uint32) (pad, width int) {
	s := clampCol(raw, startCol)
	e := max(clampCol(raw, endCol), s)
	pad = runewidth.StringWidth(expandTabs(raw[:s]))
	width = runewidth.StringWidth(raw[s:e])
	if width == 0 {
		width = 1
	}
	return pad, width
}

func clampCol(raw string, col uint32) int {
	if col == 0 {
		return 0
	}
	return min(int(col-1), len(raw))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
