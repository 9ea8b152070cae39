package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"rustlex/internal/diag"
	"rustlex/internal/source"
)

var (
	sevErrorColor   = color.New(color.FgRed, color.Bold)
	sevWarningColor = color.New(color.FgYellow, color.Bold)
	sevInfoColor    = color.New(color.FgCyan)
	caretColor      = color.New(color.FgRed, color.Bold)
	gutterColor     = color.New(color.FgHiBlack)
)

// Pretty writes each diagnostic as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a caret underline covering the primary
// span. Positions are 1-based here; call bag.Sort() first for a deterministic
// order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		file.Path, start.Line, start.Col,
		severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)

	printContext(w, file, start, end, opts)

	for _, note := range d.Notes {
		noteStart, _ := fs.Resolve(note.Span)
		fmt.Fprintf(w, "%s:%d:%d: note: %s\n", file.Path, noteStart.Line, noteStart.Col, note.Msg)
	}
}

// printContext shows up to opts.Context lines above the primary line, then the
// primary line itself with a ^~~~ underline.
func printContext(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts) {
	first := int(start.Line)
	if opts.Context > 0 {
		first -= int(opts.Context)
	}
	if first < 1 {
		first = 1
	}

	for n := uint32(first); n <= start.Line; n++ {
		line := file.GetLine(n)
		gutter := fmt.Sprintf("%5d | ", n)
		if opts.Color {
			gutter = gutterColor.Sprint(gutter)
		}
		fmt.Fprintf(w, "%s%s\n", gutter, line)
	}

	line := file.GetLine(start.Line)
	underline := caretLine(line, start, end)
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "      | %s\n", underline)
}

// caretLine builds "^~~~" padding under the span, keeping tabs aligned with
// the source line above.
func caretLine(line string, start, end source.LineCol) string {
	var b strings.Builder
	col := start.Col
	if col == 0 {
		col = 1
	}
	for i := uint32(1); i < col; i++ {
		if int(i-1) < len(line) && line[i-1] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')

	width := uint32(1)
	if end.Line == start.Line && end.Col > start.Col {
		width = end.Col - start.Col
	}
	for i := uint32(1); i < width; i++ {
		b.WriteByte('~')
	}
	return b.String()
}

func severityLabel(sev diag.Severity, colorize bool) string {
	label := strings.ToUpper(sev.String())
	if !colorize {
		return label
	}
	switch {
	case sev >= diag.SevError:
		return sevErrorColor.Sprint(label)
	case sev >= diag.SevWarning:
		return sevWarningColor.Sprint(label)
	default:
		return sevInfoColor.Sprint(label)
	}
}
