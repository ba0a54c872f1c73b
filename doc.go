// Package md2html converts Markdown documents to a tree of HTML nodes and
// serializes that tree to a dense HTML string.
//
// # Quick Start
//
// Convert a document and render it:
//
//	root, err := md2html.MarkdownToNode("# Hello\n\nWorld")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html, err := root.ToHTML()
//	// <div><h1>Hello</h1><p>World</p></div>
//
// Extract the page title (the first level-1 heading):
//
//	title, err := md2html.ExtractTitle(doc)
//	if errors.Is(err, md2html.ErrMissingTitle) {
//	    ...
//	}
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Block splitting on blank lines, with whitespace normalization (SplitBlocks)
//  2. Block classification from the first character and line shape (ClassifyBlock)
//  3. Inline lexing of bold, italic, code, images and links (TextToSpans)
//  4. Tree building, one node per block under a root div (BlockToNode)
//  5. Serialization (Node.ToHTML)
//
// # Supported Syntax
//
// Blocks: headings (# to ######), fenced code (```), quotes (>), unordered
// lists (- ), ordered lists (1. 2. 3. ... numbered from one without gaps) and
// paragraphs. Anything that fails a block's shape test is a paragraph.
//
// Inline: **bold**, _italic_, `code`, [text](url) and ![alt](url). Emphasis
// does not nest and inline markers are not processed inside code blocks.
//
// # Errors
//
// An unbalanced inline delimiter or an invalid node returns an error that
// matches ErrFormat. Conversion stops at the first error; there is no partial
// output. ExtractTitle returns ErrMissingTitle when no level-1 heading exists.
//
// # Converter
//
// Converter adds preprocessing (line endings, byte order mark), parallel
// block building, optional code highlighting and title extraction in one call:
//
//	conv := md2html.NewConverter(md2html.WithWorkers(4))
//	result, err := conv.Convert(ctx, md2html.Input{Markdown: content})
//	fmt.Println(result.Title, result.HTML)
package md2html
