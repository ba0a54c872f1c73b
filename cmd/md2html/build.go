package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/alnah/go-md2html/internal/site"
)

// runBuild generates the site described by config, env and flags.
// An optional positional argument sets the base path.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stdout)
	if err != nil {
		return usageError(err)
	}
	if len(positional) > 1 {
		return usageError(fmt.Errorf("build takes at most one base path, got %d arguments", len(positional)))
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	if len(positional) == 1 {
		cfg.Site.BasePath = positional[0]
	}
	mergeSiteFlags(&flags.site, flags.changed, cfg)
	mergeWorkerFlags(&flags.workers, flags.changed, cfg)
	mergeHighlightFlags(&flags.highlight, flags.changed, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	template, err := loadTemplate(cfg.Site.Template)
	if err != nil {
		return err
	}

	conv, err := newConverter(cfg, env.Stderr)
	if err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Building %s -> %s (base path %s)\n", cfg.Content.Dir, cfg.Output.Dir, cfg.Site.BasePath)
	}

	report, err := site.NewGenerator(cfg, conv, template).Build(ctx)
	if err != nil {
		return err
	}

	if failed := printReport(report, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return fmt.Errorf("%d of %d page(s) failed: %w", failed, len(report.Pages), firstPageError(report))
	}
	return nil
}

// printReport outputs page results using the provided writers and
// returns the number of failed pages.
func printReport(report *site.Report, quiet, verbose bool, env *Environment) int {
	drafts := 0
	for _, r := range report.Pages {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Page.Source, r.Err)
			continue
		}
		if r.Draft {
			drafts++
			if verbose {
				fmt.Fprintf(env.Stdout, "Skipped draft %s\n", r.Page.Source)
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.Page.Source, r.Page.Output, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.Page.Output)
		}
	}

	failed := report.Failed()
	if !quiet {
		fmt.Fprintf(env.Stdout, "\n%d page(s), %s, %d static file(s), %d draft(s) skipped, %d failed in %v\n",
			report.Written(), humanize.Bytes(uint64(report.Bytes())), report.StaticFiles, drafts, failed,
			report.Duration.Round(time.Millisecond))
	}

	return failed
}

// firstPageError returns the error of the first failed page.
func firstPageError(report *site.Report) error {
	for _, r := range report.Pages {
		if r.Err != nil {
			return fmt.Errorf("%s: %w", r.Page.Source, r.Err)
		}
	}
	return nil
}
