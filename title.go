package md2html

// ExtractTitle returns the text of the first level-1 heading in the document,
// with the marker and its following space removed. Other blocks are ignored.
// It returns ErrMissingTitle if the document has no level-1 heading.
func ExtractTitle(document string) (string, error) {
	for _, block := range SplitBlocks(document) {
		bt, err := ClassifyBlock(block)
		if err != nil {
			return "", err
		}
		if bt == Heading(1) {
			return HeadingText(block, 1), nil
		}
	}
	return "", ErrMissingTitle
}
