package main

import (
	"fmt"
	"io"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/frontmatter"
	"github.com/alnah/go-md2html/internal/highlight"
	"github.com/alnah/go-md2html/internal/hints"
)

// newConverter builds the converter described by cfg.
// Unknown highlight styles fall back to chroma's default with a warning.
func newConverter(cfg *config.Config, warn io.Writer) (*md2html.Converter, error) {
	opts := []md2html.Option{md2html.WithWorkers(cfg.Build.BlockWorkers)}

	if cfg.Highlight.Enabled {
		h, err := highlight.New(cfg.Highlight.Style, cfg.Highlight.Language)
		if err != nil {
			return nil, err
		}
		if !highlight.KnownStyle(cfg.Highlight.Style) {
			fmt.Fprintf(warn, "warning: unknown highlight style %q, using %q%s\n",
				cfg.Highlight.Style, h.StyleName(), hints.ForStyleNotFound(highlight.Styles()))
		}
		opts = append(opts, md2html.WithCodeHighlighter(h))
	}

	return md2html.NewConverter(opts...), nil
}

// loadTemplate loads the page template at path. The default template path
// falls back to the embedded page when no such file exists, so a site
// without a template.html still builds.
func loadTemplate(path string) (string, error) {
	if path == config.DefaultTemplate && !fileutil.FileExists(path) {
		return assets.DefaultTemplate(), nil
	}
	return assets.LoadTemplate(path)
}

// readDocument reads a markdown file and splits off its front matter.
func readDocument(path string) (frontmatter.Meta, string, error) {
	if !fileutil.IsMarkdown(path) {
		return frontmatter.Meta{}, "", fmt.Errorf("%w: %s", ErrInvalidExtension, path)
	}

	source, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return frontmatter.Meta{}, "", fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	meta, body, err := frontmatter.Parse(source)
	if err != nil {
		return frontmatter.Meta{}, "", fmt.Errorf("%s: %w", path, err)
	}
	return meta, string(body), nil
}
