// Package diagfmt renders diagnostics for humans.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"snag/internal/diag"
	"snag/internal/source"
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	// Context enables the offending source line with a caret underline.
	Context bool
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	posColor  = color.New(color.Bold)
)

// Pretty writes every diagnostic in the bag, one per finding:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a caret underline when
// opts.Context is set, and indented notes when opts.ShowNotes is set.
// The bag should be sorted beforehand for deterministic output.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	fmt.Fprintf(w, "%s: %s %s: %s\n",
		paint(opts.Color, posColor, fmt.Sprintf("%s:%d:%d", file.Path, start.Line, start.Col)),
		paint(opts.Color, severityColor(d.Severity), d.Severity.String()),
		d.Code.ID(),
		d.Message,
	)

	if opts.Context {
		writeContext(w, file, start, end, opts)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			nFile := fs.Get(n.Span.File)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", nFile.Path, nStart.Line, nStart.Col, n.Msg)
		}
	}
}

func writeContext(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts) {
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	underlineLen := 1
	switch {
	case end.Line == start.Line && end.Col > start.Col:
		underlineLen = int(end.Col - start.Col)
	case end.Line > start.Line:
		// Multi-line span: underline to the end of the first line.
		if rest := len(line) - int(start.Col-1); rest > underlineLen {
			underlineLen = rest
		}
	}
	marker := "^"
	if underlineLen > 1 {
		marker += strings.Repeat("~", underlineLen-1)
	}
	fmt.Fprintf(w, "  %s%s\n",
		strings.Repeat(" ", int(start.Col-1)),
		paint(opts.Color, errColor, marker),
	)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

func paint(enabled bool, c *color.Color, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}
