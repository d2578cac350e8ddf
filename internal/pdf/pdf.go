// Package pdf renders markdown quiz sheets to PDF.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

var boldPattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)

// Options controls page layout and theme.
type Options struct {
	// Orientation is "P" (portrait) or "L" (landscape).
	Orientation string
	// PaperSize is a gofpdf paper size such as "A4" or "Letter".
	PaperSize string
	Dark      bool
}

// DefaultOptions prints on portrait A4 with the light theme.
var DefaultOptions = Options{Orientation: "P", PaperSize: "A4"}

// ConvertQuizSheet converts a markdown quiz sheet to a PDF next to it and returns the PDF path.
func ConvertQuizSheet(markdownPath string, opts Options) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}
	if opts.Orientation == "" {
		opts.Orientation = DefaultOptions.Orientation
	}
	if opts.PaperSize == "" {
		opts.PaperSize = DefaultOptions.PaperSize
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}
	content = plainAnswerLines(content)

	theme := mdtopdf.LIGHT
	if opts.Dark {
		theme = mdtopdf.DARK
	}
	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	renderer := mdtopdf.NewPdfRenderer(opts.Orientation, opts.PaperSize, pdfPath, "", nil, theme)
	renderer.UpdateBlockquoteStyler()
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

// plainAnswerLines strips **bold** markers from blockquote lines.
// mdtopdf renders blockquotes in italics and drops inline bold inside them.
func plainAnswerLines(content []byte) []byte {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "> ") {
			lines[i] = boldPattern.ReplaceAllString(line, "$1")
		}
	}
	return []byte(strings.Join(lines, "\n"))
}
