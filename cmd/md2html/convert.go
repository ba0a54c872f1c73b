package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/site"
)

// runConvert converts one markdown file to a page (or a bare fragment)
// on stdout or in a file.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stdout)
	if err != nil {
		return usageError(err)
	}
	if len(positional) != 1 {
		return usageError(fmt.Errorf("convert needs exactly one markdown file, got %d arguments", len(positional)))
	}
	input := positional[0]

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	if flags.basePath != "" {
		cfg.Site.BasePath = flags.basePath
	}
	if flags.template != "" {
		cfg.Site.Template = flags.template
	}
	mergeWorkerFlags(&flags.workers, flags.changed, cfg)
	mergeHighlightFlags(&flags.highlight, flags.changed, cfg)
	if err := config.ValidateBasePath(cfg.Site.BasePath); err != nil {
		return err
	}

	meta, body, err := readDocument(input)
	if err != nil {
		return err
	}

	conv, err := newConverter(cfg, env.Stderr)
	if err != nil {
		return err
	}

	title := meta.Title
	if flags.fragment && title == "" {
		// A fragment has no <title>, so a missing heading is not an error.
		title = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}

	result, err := conv.Convert(ctx, md2html.Input{Markdown: body, Title: title})
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	out := result.HTML
	if !flags.fragment {
		template, err := loadTemplate(cfg.Site.Template)
		if err != nil {
			return err
		}
		out = site.RenderPage(template, result.Title, result.HTML)
	}
	if out, err = site.RewriteBasePath(out, cfg.Site.BasePath); err != nil {
		return fmt.Errorf("rewriting paths: %w", err)
	}

	if flags.output == "" {
		fmt.Fprintln(env.Stdout, out)
		return nil
	}
	if err := fileutil.WriteFile(flags.output, []byte(out)); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "Created %s\n", flags.output)
	}
	return nil
}
