// Package highlight renders fenced code blocks as syntax-highlighted HTML
// using chroma. Colors are written as inline styles so generated pages need
// no extra stylesheet.
package highlight

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownLanguage indicates no lexer is registered under the given name.
var ErrUnknownLanguage = errors.New("unknown highlight language")

// Chroma highlights code with a fixed style and an optional fixed lexer.
// Safe for concurrent use.
type Chroma struct {
	style     *chroma.Style
	lexer     chroma.Lexer // nil = detect per block
	formatter *chromahtml.Formatter
}

// New creates a highlighter. An unknown style falls back to chroma's
// default style (see KnownStyle). An empty language detects the lexer from
// each block's content; an unknown language returns ErrUnknownLanguage.
func New(style, language string) (*Chroma, error) {
	c := &Chroma{
		style:     styles.Get(style),
		formatter: chromahtml.New(chromahtml.WithClasses(false), chromahtml.TabWidth(4)),
	}
	if language != "" {
		c.lexer = lexers.Get(language)
		if c.lexer == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
		}
	}
	return c, nil
}

// Highlight returns code as a <pre> element with colored spans.
func (c *Chroma) Highlight(code string) (string, error) {
	lexer := c.lexer
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenising code: %w", err)
	}

	var sb strings.Builder
	if err := c.formatter.Format(&sb, c.style, iterator); err != nil {
		return "", fmt.Errorf("formatting code: %w", err)
	}
	return sb.String(), nil
}

// StyleName returns the name of the style in use.
func (c *Chroma) StyleName() string {
	return c.style.Name
}

// KnownStyle reports whether name is a registered chroma style.
func KnownStyle(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}

// Styles returns the registered style names, sorted.
func Styles() []string {
	return styles.Names()
}
