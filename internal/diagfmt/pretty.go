package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"graviton/internal/diag"
	"graviton/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgRed, color.Bold)
	noteColor    = color.New(color.FgCyan)
	gutterColor  = color.New(color.FgBlue)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатается заголовок
// <path>:<line>:<col>: <SEV>[<CODE>]: <Message>,
// затем строка исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeader(w, d, fs, opts)
		printSourceContext(w, d.Primary, fs, opts)

		if opts.ShowNotes {
			for _, note := range d.Notes {
				printNote(w, note, fs, opts)
			}
		}
	}
}

func printHeader(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	path, line, col := resolveLocation(d.Primary, fs, opts.PathMode)

	sevLabel := severityLabel(d.Severity, opts.Color)
	fmt.Fprintf(w, "%s:%d:%d: %s[%s]: %s\n", path, line, col, sevLabel, d.Code.ID(), d.Message)
}

func printNote(w io.Writer, note diag.Note, fs *source.FileSet, opts PrettyOpts) {
	path, line, col := resolveLocation(note.Span, fs, opts.PathMode)

	label := "note"
	if opts.Color {
		label = noteColor.Sprint(label)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, line, col, label, note.Msg)
}

// printSourceContext печатает строку исходника и каретку под спаном.
// Для многострочных спанов подчёркивание тянется до конца первой строки.
func printSourceContext(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	if span.Empty() && span.Start == 0 {
		return // нет привязки к исходнику (например, ошибка I/O)
	}

	file := fs.Get(span.File)
	startPos, endPos := fs.Resolve(span)
	lineText := file.GetLine(startPos.Line)

	gutter := fmt.Sprintf("%5d | ", startPos.Line)
	if opts.Color {
		gutter = gutterColor.Sprint(gutter)
	}
	fmt.Fprintf(w, "%s%s\n", gutter, lineText)

	// смещение каретки считается в экранных колонках, не в байтах
	startByte := int(startPos.Col) - 1
	if startByte > len(lineText) {
		startByte = len(lineText)
	}
	pad := runewidth.StringWidth(lineText[:startByte])

	endByte := len(lineText)
	if endPos.Line == startPos.Line && int(endPos.Col)-1 < endByte {
		endByte = int(endPos.Col) - 1
	}
	width := runewidth.StringWidth(lineText[startByte:endByte])
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = caretColor.Sprint(marker)
	}
	fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", pad), marker)
}

func resolveLocation(span source.Span, fs *source.FileSet, mode PathMode) (string, uint32, uint32) {
	if int(span.File) >= fs.Len() {
		return "<unknown>", 0, 0
	}
	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return formatPath(file, fs, mode), start.Line, start.Col
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

func severityLabel(sev diag.Severity, useColor bool) string {
	label := strings.ToLower(sev.String())
	if !useColor {
		return label
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(label)
	case diag.SevWarning:
		return warningColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}
