package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/frontmatter"
)

// PageConverter converts one markdown document.
type PageConverter interface {
	Convert(ctx context.Context, input md2html.Input) (*md2html.Result, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*md2html.Converter)(nil)

// PageResult holds the outcome of a single page.
type PageResult struct {
	Page     Page
	Title    string
	Bytes    int
	Draft    bool // Skipped because the page is a draft
	Err      error
	Duration time.Duration
}

// Report summarizes a build.
type Report struct {
	Pages       []PageResult
	StaticFiles int
	Duration    time.Duration
}

// Failed returns the number of pages that could not be generated.
func (r *Report) Failed() int {
	n := 0
	for _, p := range r.Pages {
		if p.Err != nil {
			n++
		}
	}
	return n
}

// Written returns the number of pages written to the output directory.
func (r *Report) Written() int {
	n := 0
	for _, p := range r.Pages {
		if p.Err == nil && !p.Draft {
			n++
		}
	}
	return n
}

// Bytes returns the total size of the written pages.
func (r *Report) Bytes() int64 {
	var n int64
	for _, p := range r.Pages {
		if p.Err == nil {
			n += int64(p.Bytes)
		}
	}
	return n
}

// Generator builds a site from a configuration.
type Generator struct {
	cfg      *config.Config
	conv     PageConverter
	template string
}

// NewGenerator creates a Generator. template is the page template content,
// typically from assets.LoadTemplate.
func NewGenerator(cfg *config.Config, conv PageConverter, template string) *Generator {
	return &Generator{cfg: cfg, conv: conv, template: template}
}

// Build regenerates the output directory: it is removed, the static
// directory is copied into it (when present) and every page is rendered.
// Page failures are reported per page in the Report; the returned error
// covers failures that stop the whole build.
func (g *Generator) Build(ctx context.Context) (*Report, error) {
	start := time.Now()
	out := g.cfg.Output.Dir

	if err := g.checkOutputDir(); err != nil {
		return nil, err
	}

	pages, err := Discover(g.cfg.Content.Dir, out)
	if err != nil {
		return nil, err
	}

	if err := os.RemoveAll(out); err != nil {
		return nil, fmt.Errorf("removing output directory: %w", err)
	}
	if err := os.MkdirAll(out, fileutil.DirPermissions); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	report := &Report{}
	if g.cfg.Static.Dir != "" && fileutil.DirExists(g.cfg.Static.Dir) {
		n, err := fileutil.CopyDir(g.cfg.Static.Dir, out)
		if err != nil {
			return nil, fmt.Errorf("copying static files: %w", err)
		}
		report.StaticFiles = n
	}

	report.Pages = g.renderPages(ctx, pages)
	report.Duration = time.Since(start)
	return report, ctx.Err()
}

// renderPages processes pages concurrently, keeping their discovery order.
func (g *Generator) renderPages(ctx context.Context, pages []Page) []PageResult {
	if len(pages) == 0 {
		return nil
	}

	concurrency := min(md2html.ResolveWorkers(g.cfg.Build.Workers), len(pages))

	results := make([]PageResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = PageResult{Page: pages[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = g.renderPage(ctx, pages[idx])
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderPage converts a single page and writes it.
func (g *Generator) renderPage(ctx context.Context, p Page) (result PageResult) {
	start := time.Now()
	result.Page = p
	defer func() { result.Duration = time.Since(start) }()

	source, err := os.ReadFile(p.Source) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		return result
	}

	meta, body, err := frontmatter.Parse(source)
	if err != nil {
		result.Err = err
		return result
	}
	if meta.Draft && !g.cfg.Content.Drafts {
		result.Draft = true
		return result
	}

	conv, err := g.conv.Convert(ctx, md2html.Input{Markdown: string(body), Title: meta.Title})
	if err != nil {
		result.Err = err
		return result
	}
	result.Title = conv.Title

	page := RenderPage(g.template, conv.Title, conv.HTML)
	page, err = RewriteBasePath(page, g.cfg.Site.BasePath)
	if err != nil {
		result.Err = fmt.Errorf("rewriting paths: %w", err)
		return result
	}

	if err := fileutil.WriteFile(p.Output, []byte(page)); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		return result
	}
	result.Bytes = len(page)
	return result
}

// checkOutputDir refuses output directories whose removal would destroy
// more than generated files.
func (g *Generator) checkOutputDir() error {
	out, err := filepath.Abs(g.cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}

	if filepath.Dir(out) == out {
		return fmt.Errorf("%w: %s is the filesystem root", ErrUnsafeOutputDir, out)
	}
	if cwd, err := os.Getwd(); err == nil && out == cwd {
		return fmt.Errorf("%w: %s is the working directory", ErrUnsafeOutputDir, out)
	}

	sources := []struct {
		name string
		dir  string
	}{
		{"content", g.cfg.Content.Dir},
		{"static", g.cfg.Static.Dir},
	}
	for _, src := range sources {
		if src.dir == "" {
			continue
		}
		abs, err := filepath.Abs(src.dir)
		if err != nil {
			continue
		}
		if isWithin(abs, out) {
			return fmt.Errorf("%w: %s contains the %s directory", ErrUnsafeOutputDir, out, src.name)
		}
		if src.name == "static" && isWithin(out, abs) {
			return fmt.Errorf("%w: %s is inside the static directory", ErrUnsafeOutputDir, out)
		}
	}
	return nil
}

// isWithin reports whether path is dir or one of its descendants.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
