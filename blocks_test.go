package md2html

import (
	"slices"
	"strings"
	"testing"
)

func TestSplitBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		want     []string
	}{
		{
			name: "paragraphs and list",
			document: `
This is **bolded** paragraph

This is another paragraph with _italic_ text and ` + "`code`" + ` here
This is the same paragraph on a new line

- This is a list
- with items
`,
			want: []string{
				"This is **bolded** paragraph",
				"This is another paragraph with _italic_ text and `code` here\nThis is the same paragraph on a new line",
				"- This is a list\n- with items",
			},
		},
		{
			name:     "extra blank lines",
			document: "a\n\n\n\nb\n\n\nc",
			want:     []string{"a", "b", "c"},
		},
		{
			name:     "lines are trimmed",
			document: "   # Title   \n\n\t- a \n  - b\t",
			want:     []string{"# Title", "- a\n- b"},
		},
		{
			name:     "whitespace-only line does not separate blocks",
			document: "  a  \n   \n  b ",
			want:     []string{"a\nb"},
		},
		{
			name:     "empty",
			document: "",
			want:     nil,
		},
		{
			name:     "only whitespace",
			document: " \n\n\t\n\n ",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SplitBlocks(tt.document)
			if !slices.Equal(got, tt.want) {
				t.Errorf("SplitBlocks() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitBlocks_Idempotent(t *testing.T) {
	t.Parallel()

	documents := []string{
		"# Head\n\nThis is **bold**.",
		"  a  \n  b  \n\n\n\n  - c\n  - d  ",
		"```\ncode\n\n\nmore\n```",
		"> q1\n>   q2\n\n1. x\n2. y",
	}
	for _, doc := range documents {
		first := SplitBlocks(doc)
		second := SplitBlocks(strings.Join(first, blockSeparator))
		if !slices.Equal(first, second) {
			t.Errorf("SplitBlocks not idempotent for %q:\n first %q\nsecond %q", doc, first, second)
		}
	}
}
