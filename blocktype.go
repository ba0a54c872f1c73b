package md2html

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockKind is the structural kind of a block.
type BlockKind int

// Block kinds. Anything that fails a structural test is a paragraph.
const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockCode
	BlockQuote
	BlockUnorderedList
	BlockOrderedList
)

// Block syntax.
const (
	maxHeadingLevel   = 6
	codeFence         = "```"
	minCodeBlockLen   = 2 * len(codeFence)
	quotePrefix       = ">"
	unorderedPrefix   = "- "
	orderedSeparator  = ". "
	headingMarker     = '#'
	headingTerminator = ' '
)

var blockKindNames = [...]string{
	BlockParagraph:     "paragraph",
	BlockHeading:       "heading",
	BlockCode:          "code",
	BlockQuote:         "quote",
	BlockUnorderedList: "unordered_list",
	BlockOrderedList:   "ordered_list",
}

func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(blockKindNames) {
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
	return blockKindNames[k]
}

// BlockType is a classified block. Level is 1-6 for headings and 0 otherwise.
type BlockType struct {
	Kind  BlockKind
	Level int
}

// Block types without a level.
var (
	Paragraph     = BlockType{Kind: BlockParagraph}
	Code          = BlockType{Kind: BlockCode}
	Quote         = BlockType{Kind: BlockQuote}
	UnorderedList = BlockType{Kind: BlockUnorderedList}
	OrderedList   = BlockType{Kind: BlockOrderedList}
)

// Heading returns the heading block type of the given level.
func Heading(level int) BlockType {
	return BlockType{Kind: BlockHeading, Level: level}
}

func (t BlockType) String() string {
	if t.Kind == BlockHeading {
		return "heading" + strconv.Itoa(t.Level)
	}
	return t.Kind.String()
}

// ClassifyBlock returns the structural type of a normalized block.
// It looks only at the block itself; an empty block returns ErrEmptyBlock.
func ClassifyBlock(block string) (BlockType, error) {
	if block == "" {
		return BlockType{}, ErrEmptyBlock
	}

	switch block[0] {
	case headingMarker:
		return classifyHeading(block), nil
	case '`':
		if len(block) >= minCodeBlockLen &&
			strings.HasPrefix(block, codeFence) && strings.HasSuffix(block, codeFence) {
			return Code, nil
		}
	case '>':
		if everyLine(block, func(_ int, line string) bool {
			return strings.HasPrefix(line, quotePrefix)
		}) {
			return Quote, nil
		}
	case '-':
		if everyLine(block, func(_ int, line string) bool {
			return strings.HasPrefix(line, unorderedPrefix)
		}) {
			return UnorderedList, nil
		}
	case '1':
		if everyLine(block, func(i int, line string) bool {
			return strings.HasPrefix(line, orderedPrefix(i+1))
		}) {
			return OrderedList, nil
		}
	}
	return Paragraph, nil
}

// classifyHeading counts the leading '#' run. More than six, or a run not
// followed by a space, is a paragraph.
func classifyHeading(block string) BlockType {
	level := headingLevel(block)
	if level > maxHeadingLevel || level >= len(block) || block[level] != headingTerminator {
		return Paragraph
	}
	return Heading(level)
}

func headingLevel(block string) int {
	n := 0
	for n < len(block) && block[n] == headingMarker {
		n++
	}
	return n
}

// orderedPrefix returns the marker expected on line n (1-based) of an ordered list.
func orderedPrefix(n int) string {
	return strconv.Itoa(n) + orderedSeparator
}

func everyLine(block string, ok func(i int, line string) bool) bool {
	for i, line := range strings.Split(block, "\n") {
		if !ok(i, line) {
			return false
		}
	}
	return true
}
