package md2html

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// utf8BOM is stripped from the start of documents saved by some editors.
const utf8BOM = "\uFEFF"

// markdownPreprocessor defines the contract for markdown preprocessing.
type markdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// lineEndingPreprocessor normalizes input so blank-line splitting sees
// "\n\n" regardless of the platform that wrote the file.
type lineEndingPreprocessor struct{}

// PreprocessMarkdown applies all transformations before block splitting.
func (p *lineEndingPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, utf8BOM)
	return normalizeLineEndings(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// NormalizeMarkdown strips a leading byte order mark and converts CRLF and
// CR line endings to LF, as Converter does before splitting blocks.
func NormalizeMarkdown(content string) string {
	return (&lineEndingPreprocessor{}).PreprocessMarkdown(context.Background(), content)
}
