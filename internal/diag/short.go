package diag

import (
	"fmt"
	"strings"

	"adaleph/internal/source"
)

// FormatShort renders diagnostics one per line as
// "<path>:<line>:<col>: <severity> <CODE>: <message>", followed by notes.
// Order follows the slice; callers sort the Bag first when they need stable output.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}
	var b strings.Builder
	for _, d := range diags {
		writeShortLine(&b, fs, d.Primary, severityLabel(d.Severity), d.Code, d.Message)
		if includeNotes {
			for _, n := range d.Notes {
				writeShortLine(&b, fs, n.Span, "note", d.Code, n.Msg)
			}
		}
	}
	return b.String()
}

func writeShortLine(b *strings.Builder, fs *source.FileSet, sp source.Span, sev string, code Code, msg string) {
	path, line, col := "<input>", uint32(1), uint32(1)
	if fs != nil && int(sp.File) < fs.Len() {
		path = fs.Get(sp.File).Path
		start, _ := fs.Resolve(sp)
		line, col = start.Line, start.Col
	}
	fmt.Fprintf(b, "%s:%d:%d: %s %s: %s\n", path, line, col, sev, code.ID(), sanitizeMessage(msg))
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
