package md2html

import (
	"context"
	"fmt"
	"strings"
)

// Compile-time interface implementation check.
var _ markdownPreprocessor = (*lineEndingPreprocessor)(nil)

// CodeHighlighter renders the content of a fenced code block as HTML.
// The returned markup is inserted verbatim in place of <pre><code>.
type CodeHighlighter interface {
	Highlight(code string) (string, error)
}

// Input is one document to convert.
type Input struct {
	// Markdown is the whole document.
	Markdown string

	// Title, when set, is used as the document title and the first level-1
	// heading is not required.
	Title string
}

// Result holds the output of a conversion.
type Result struct {
	Title string
	HTML  string
	Root  *Parent
}

// Option configures a Converter.
type Option func(*Converter)

// WithWorkers builds blocks on up to n goroutines. Values below 2 build
// sequentially. Output order is the same either way.
func WithWorkers(n int) Option {
	return func(c *Converter) {
		c.workers = n
	}
}

// WithCodeHighlighter renders fenced code blocks through h instead of as
// plain <pre><code> elements.
func WithCodeHighlighter(h CodeHighlighter) Option {
	return func(c *Converter) {
		c.highlighter = h
	}
}

// Converter runs the markdown-to-HTML pipeline: preprocessing, block
// splitting, classification, tree building, serialization and title
// extraction. A Converter is safe for concurrent use.
type Converter struct {
	workers      int
	highlighter  CodeHighlighter
	preprocessor markdownPreprocessor
}

// NewConverter creates a Converter. With no options it renders exactly like
// MarkdownToNode.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		workers:      1,
		preprocessor: &lineEndingPreprocessor{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert converts one document and returns its title and HTML.
// The context is checked between stages and between blocks.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	content := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := c.ToNode(ctx, content)
	if err != nil {
		return nil, err
	}

	html, err := root.ToHTML()
	if err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}

	title := input.Title
	if title == "" {
		if title, err = ExtractTitle(content); err != nil {
			return nil, err
		}
	}

	return &Result{Title: title, HTML: html, Root: root}, nil
}

// ToNode builds the document tree using the converter's options.
func (c *Converter) ToNode(ctx context.Context, document string) (*Parent, error) {
	blocks := SplitBlocks(document)
	if len(blocks) == 0 {
		return nil, ErrEmptyDocument
	}

	children, err := buildBlocks(ctx, blocks, c.workers, c.blockNode)
	if err != nil {
		return nil, err
	}
	return NewParent(tagRoot, children)
}

func (c *Converter) blockNode(block string) (Node, error) {
	bt, err := ClassifyBlock(block)
	if err != nil {
		return nil, err
	}
	if bt.Kind == BlockCode && c.highlighter != nil {
		return c.highlightedCode(block)
	}
	return BlockToNode(block, bt)
}

// highlightedCode renders a code block through the highlighter as a raw leaf.
func (c *Converter) highlightedCode(block string) (Node, error) {
	code := CodeText(block)
	if code == "" {
		return codeBlockNode(block)
	}
	html, err := c.highlighter.Highlight(code)
	if err != nil {
		return nil, fmt.Errorf("highlighting code block: %w", err)
	}
	return NewLeaf("", html)
}
