package md2html

import (
	"errors"
	"testing"
)

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		want     string
		wantErr  error
	}{
		{name: "simple", document: "# Hello", want: "Hello"},
		{name: "surrounded by blocks", document: "intro\n\n## sub\n\n# Real title\n\ntext\n\n# Second", want: "Real title"},
		{name: "trimmed", document: "   #   Spaced   ", want: "  Spaced"},
		{name: "multi-line heading", document: "# Multi\nline", want: "Multi line"},
		{name: "markdown kept raw", document: "# Title with **bold**", want: "Title with **bold**"},
		{name: "only level 2", document: "## Not a title", wantErr: ErrMissingTitle},
		{name: "no space after hash", document: "#Hello", wantErr: ErrMissingTitle},
		{name: "heading inside code", document: "```\n# not a title\n```", wantErr: ErrMissingTitle},
		{name: "empty", document: "", wantErr: ErrMissingTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractTitle(tt.document)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ExtractTitle() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractTitle() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractTitle_IgnoresFormatErrors(t *testing.T) {
	t.Parallel()

	// Title extraction does not lex inline text, so an unbalanced
	// delimiter elsewhere in the document does not matter.
	got, err := ExtractTitle("# Title\n\nbroken _italic")
	if err != nil {
		t.Fatalf("ExtractTitle() unexpected error: %v", err)
	}
	if got != "Title" {
		t.Errorf("ExtractTitle() = %q, want %q", got, "Title")
	}
}
