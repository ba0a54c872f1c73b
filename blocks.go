package md2html

import "strings"

// blockSeparator is the blank line between two blocks.
const blockSeparator = "\n\n"

// SplitBlocks partitions a document into normalized blocks.
//
// The document is split on blank lines. Each chunk is trimmed, every line in
// it is trimmed, lines left empty are dropped, and the survivors are joined
// with single newlines. Blocks left empty are dropped. Order is preserved.
func SplitBlocks(document string) []string {
	chunks := strings.Split(document, blockSeparator)
	blocks := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if block := normalizeBlock(chunk); block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func normalizeBlock(chunk string) string {
	chunk = strings.TrimSpace(chunk)
	if chunk == "" {
		return ""
	}

	lines := strings.Split(chunk, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
