package md2html

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Element tags used by the tree builder.
const (
	tagRoot          = "div"
	tagParagraph     = "p"
	tagQuote         = "blockquote"
	tagPre           = "pre"
	tagCode          = "code"
	tagUnorderedList = "ul"
	tagOrderedList   = "ol"
	tagListItem      = "li"
	tagBold          = "b"
	tagItalic        = "i"
	tagLink          = "a"
	tagImage         = "img"
)

// MarkdownToNode converts a whole document into a tree rooted at a div.
// Blocks keep their source order. A format error in any block aborts the
// conversion; no partial tree is returned.
func MarkdownToNode(document string) (*Parent, error) {
	blocks := SplitBlocks(document)
	if len(blocks) == 0 {
		return nil, ErrEmptyDocument
	}

	children, err := buildBlocks(context.Background(), blocks, 1, blockNode)
	if err != nil {
		return nil, err
	}
	return NewParent(tagRoot, children)
}

// blockNode classifies a block and builds its node.
func blockNode(block string) (Node, error) {
	bt, err := ClassifyBlock(block)
	if err != nil {
		return nil, err
	}
	return BlockToNode(block, bt)
}

// BlockToNode builds the node for one block of the given type, stripping the
// block markers and lexing the remaining inline text.
func BlockToNode(block string, bt BlockType) (Node, error) {
	switch bt.Kind {
	case BlockCode:
		return codeBlockNode(block)
	case BlockParagraph:
		return inlineParent(tagParagraph, joinLines(block))
	case BlockHeading:
		return headingNode(block, bt.Level)
	case BlockQuote:
		return quoteNode(block)
	case BlockUnorderedList:
		return listNode(block, tagUnorderedList, func(_ int, line string) string {
			return strings.TrimPrefix(line, unorderedPrefix)
		})
	case BlockOrderedList:
		return listNode(block, tagOrderedList, func(i int, line string) string {
			return strings.TrimPrefix(line, orderedPrefix(i+1))
		})
	default:
		return nil, fmt.Errorf("%w: unknown block type %s", ErrInvalidNode, bt)
	}
}

// CodeText returns the content of a fenced code block: the fences and one
// leading newline removed, everything else kept verbatim.
func CodeText(block string) string {
	text := strings.TrimPrefix(block, codeFence)
	text = strings.TrimSuffix(text, codeFence)
	return strings.TrimPrefix(text, "\n")
}

func codeBlockNode(block string) (Node, error) {
	code, err := NewLeaf(tagCode, CodeText(block))
	if err != nil {
		return nil, err
	}
	return NewParent(tagPre, []Node{code})
}

func headingNode(block string, level int) (Node, error) {
	if level < 1 || level > maxHeadingLevel {
		return nil, fmt.Errorf("%w: heading level %d", ErrInvalidNode, level)
	}
	return inlineParent("h"+strconv.Itoa(level), HeadingText(block, level))
}

// HeadingText strips the '#' run and one following space from a heading
// block and joins its lines with spaces.
func HeadingText(block string, level int) string {
	text := block[min(level, len(block)):]
	text = strings.TrimPrefix(text, string(headingTerminator))
	return joinLines(text)
}

func quoteNode(block string) (Node, error) {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		line = strings.TrimPrefix(line, quotePrefix)
		lines[i] = strings.TrimPrefix(line, " ")
	}
	return inlineParent(tagQuote, strings.Join(lines, "\n"))
}

// listNode builds one list item per line. Each line is lexed on its own.
func listNode(block, tag string, strip func(i int, line string) string) (Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]Node, 0, len(lines))
	for i, line := range lines {
		item, err := inlineParent(tagListItem, strip(i, line))
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return NewParent(tag, items)
}

// inlineParent lexes text and wraps the resulting leaves in a tag.
func inlineParent(tag, text string) (*Parent, error) {
	children, err := TextToChildren(text)
	if err != nil {
		return nil, err
	}
	return NewParent(tag, children)
}

// TextToChildren lexes inline markdown and maps every span to a leaf.
func TextToChildren(text string) ([]Node, error) {
	spans, err := TextToSpans(text)
	if err != nil {
		return nil, err
	}
	children := make([]Node, 0, len(spans))
	for _, s := range spans {
		leaf, err := SpanToNode(s)
		if err != nil {
			return nil, err
		}
		children = append(children, leaf)
	}
	return children, nil
}

// SpanToNode maps a span to its leaf element.
func SpanToNode(s Span) (*Leaf, error) {
	switch s.Kind {
	case SpanPlain:
		return NewLeaf("", s.Text)
	case SpanBold:
		return NewLeaf(tagBold, s.Text)
	case SpanItalic:
		return NewLeaf(tagItalic, s.Text)
	case SpanCode:
		return NewLeaf(tagCode, s.Text)
	case SpanLink:
		return NewLeaf(tagLink, s.Text, Attr{Key: "href", Value: s.URL})
	case SpanImage:
		return NewLeaf(tagImage, "", Attr{Key: "src", Value: s.URL}, Attr{Key: "alt", Value: s.Text})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSpan, s.Kind)
	}
}

// joinLines soft-wraps a multi-line block into one line.
func joinLines(text string) string {
	return strings.ReplaceAll(text, "\n", " ")
}
