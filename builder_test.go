package md2html

import (
	"errors"
	"strings"
	"testing"
)

func TestSpanToNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		span Span
		want string
	}{
		{"plain", Plain("text"), "text"},
		{"bold", Span{Kind: SpanBold, Text: "b"}, "<b>b</b>"},
		{"italic", Span{Kind: SpanItalic, Text: "i"}, "<i>i</i>"},
		{"code", Span{Kind: SpanCode, Text: "x := 1"}, "<code>x := 1</code>"},
		{"link", Span{Kind: SpanLink, Text: "boot", URL: "https://boot.dev"}, `<a href="https://boot.dev">boot</a>`},
		{"image", Span{Kind: SpanImage, Text: "alt text", URL: "/img.png"}, `<img src="/img.png" alt="alt text"></img>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			leaf, err := SpanToNode(tt.span)
			if err != nil {
				t.Fatalf("SpanToNode() unexpected error: %v", err)
			}
			got, err := leaf.ToHTML()
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SpanToNode(%s) renders %q, want %q", tt.span, got, tt.want)
			}
		})
	}
}

func TestSpanToNode_Unknown(t *testing.T) {
	t.Parallel()

	_, err := SpanToNode(Span{Kind: SpanKind(42), Text: "x"})
	if !errors.Is(err, ErrUnknownSpan) || !errors.Is(err, ErrFormat) {
		t.Errorf("SpanToNode(unknown) error = %v, want ErrUnknownSpan matching ErrFormat", err)
	}
}

func TestBlockToNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block string
		bt    BlockType
		want  string
	}{
		{
			name:  "paragraph soft wraps",
			block: "This is **bolded** paragraph\ntext in a p\ntag here",
			bt:    Paragraph,
			want:  "<p>This is <b>bolded</b> paragraph text in a p tag here</p>",
		},
		{
			name:  "heading",
			block: "## Sub _title_",
			bt:    Heading(2),
			want:  "<h2>Sub <i>title</i></h2>",
		},
		{
			name:  "heading keeps extra spaces after the first",
			block: "#  spaced",
			bt:    Heading(1),
			want:  "<h1> spaced</h1>",
		},
		{
			name:  "code block is literal",
			block: "```\nThis is text that _should_ remain\nthe **same** even with inline stuff\n```",
			bt:    Code,
			want:  "<pre><code>This is text that _should_ remain\nthe **same** even with inline stuff\n</code></pre>",
		},
		{
			name:  "inline fence",
			block: "```code```",
			bt:    Code,
			want:  "<pre><code>code</code></pre>",
		},
		{
			name:  "quote",
			block: "> quote one\n>quote **two**\n>  indented",
			bt:    Quote,
			want:  "<blockquote>quote one\nquote <b>two</b>\n indented</blockquote>",
		},
		{
			name:  "unordered list",
			block: "- a\n- **b**\n- c",
			bt:    UnorderedList,
			want:  "<ul><li>a</li><li><b>b</b></li><li>c</li></ul>",
		},
		{
			name:  "ordered list",
			block: "1. first\n2. `second`",
			bt:    OrderedList,
			want:  "<ol><li>first</li><li><code>second</code></li></ol>",
		},
		{
			name:  "links and images",
			block: "see [docs](https://x.dev/a_b) and ![alt](/i.png)",
			bt:    Paragraph,
			want:  `<p>see <a href="https://x.dev/a_b">docs</a> and <img src="/i.png" alt="alt"></img></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			node, err := BlockToNode(tt.block, tt.bt)
			if err != nil {
				t.Fatalf("BlockToNode() unexpected error: %v", err)
			}
			got, err := node.ToHTML()
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("BlockToNode(%q) = %q, want %q", tt.block, got, tt.want)
			}
		})
	}
}

func TestBlockToNode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		block   string
		bt      BlockType
		wantErr error
		wantMsg string
	}{
		{"unknown kind", "x", BlockType{Kind: BlockKind(99)}, ErrInvalidNode, ""},
		{"bad heading level", "x", Heading(7), ErrInvalidNode, ""},
		{"unterminated in paragraph", "a **b", Paragraph, ErrUnterminatedDelimiter, ""},
		{"unterminated in list item", "- a\n- _b", UnorderedList, ErrUnterminatedDelimiter, "item 2"},
		{"paragraph of only markers", "****", Paragraph, ErrInvalidNode, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := BlockToNode(tt.block, tt.bt)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("BlockToNode() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrFormat) {
				t.Errorf("BlockToNode() error = %v, want it to match ErrFormat", err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("BlockToNode() error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarkdownToNode - Whole documents
// ---------------------------------------------------------------------------

func TestMarkdownToNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		want     string
	}{
		{
			name:     "heading and inline formatting",
			document: "# Head\n\nThis is **bold** and _italic_ and `code`.",
			want:     "<div><h1>Head</h1><p>This is <b>bold</b> and <i>italic</i> and <code>code</code>.</p></div>",
		},
		{
			name:     "heading renders",
			document: "# Title",
			want:     "<div><h1>Title</h1></div>",
		},
		{
			name:     "unordered list",
			document: "- a\n- b\n- c",
			want:     "<div><ul><li>a</li><li>b</li><li>c</li></ul></div>",
		},
		{
			name:     "skipped numeral is a paragraph",
			document: "1. a\n3. b",
			want:     "<div><p>1. a 3. b</p></div>",
		},
		{
			name: "paragraphs",
			document: `
This is **bolded** paragraph
text in a p
tag here

This is another paragraph with _italic_ text and ` + "`code`" + ` here

`,
			want: "<div><p>This is <b>bolded</b> paragraph text in a p tag here</p>" +
				"<p>This is another paragraph with <i>italic</i> text and <code>code</code> here</p></div>",
		},
		{
			name:     "quote then paragraph",
			document: "> This is a\n> blockquote block\n\nthis is paragraph text",
			want:     "<div><blockquote>This is a\nblockquote block</blockquote><p>this is paragraph text</p></div>",
		},
		{
			name:     "code block",
			document: "```\nThis is text that _should_ remain\nthe **same** even with inline stuff\n```",
			want:     "<div><pre><code>This is text that _should_ remain\nthe **same** even with inline stuff\n</code></pre></div>",
		},
		{
			name:     "consecutive lists stay separate",
			document: "- a\n\n- b",
			want:     "<div><ul><li>a</li></ul><ul><li>b</li></ul></div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, err := MarkdownToNode(tt.document)
			if err != nil {
				t.Fatalf("MarkdownToNode() unexpected error: %v", err)
			}
			got, err := root.ToHTML()
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MarkdownToNode() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestMarkdownToNode_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		_, err := MarkdownToNode(" \n\n ")
		if !errors.Is(err, ErrEmptyDocument) {
			t.Errorf("MarkdownToNode() error = %v, want ErrEmptyDocument", err)
		}
	})

	t.Run("format error names the block", func(t *testing.T) {
		t.Parallel()

		root, err := MarkdownToNode("# fine\n\nbroken `code")
		if root != nil {
			t.Error("MarkdownToNode() returned a partial tree")
		}
		if !errors.Is(err, ErrFormat) {
			t.Fatalf("MarkdownToNode() error = %v, want ErrFormat", err)
		}
		if !strings.Contains(err.Error(), "block 2") {
			t.Errorf("MarkdownToNode() error = %q, want it to name block 2", err)
		}
	})
}

func TestCodeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		block string
		want  string
	}{
		{"```\nx\n```", "x\n"},
		{"```x```", "x"},
		{"```\n\nx```", "\nx"},
		{"``````", ""},
	}
	for _, tt := range tests {
		if got := CodeText(tt.block); got != tt.want {
			t.Errorf("CodeText(%q) = %q, want %q", tt.block, got, tt.want)
		}
	}
}
