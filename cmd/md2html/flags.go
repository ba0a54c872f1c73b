package main

import (
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2html/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds site layout flags.
type siteFlags struct {
	basePath string
	content  string
	static   string
	output   string
	template string
	drafts   bool
}

// buildWorkerFlags holds concurrency flags.
type buildWorkerFlags struct {
	workers      int
	blockWorkers int
}

// highlightFlags holds code highlighting flags.
type highlightFlags struct {
	enabled  bool
	style    string
	language string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common    commonFlags
	site      siteFlags
	workers   buildWorkerFlags
	highlight highlightFlags
	changed   func(name string) bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	output    string
	template  string
	basePath  string
	fragment  bool
	workers   buildWorkerFlags
	highlight highlightFlags
	changed   func(name string) bool
}

// treeFlags holds flags for the tree command.
type treeFlags struct {
	color bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addSiteFlags adds site layout flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVarP(&f.basePath, "base-path", "b", "", "prefix for root-relative links (e.g. /blog/)")
	fs.StringVar(&f.content, "content", "", "markdown source directory")
	fs.StringVar(&f.static, "static", "", "static asset directory")
	fs.StringVarP(&f.output, "output", "o", "", "generated site directory")
	fs.StringVarP(&f.template, "template", "t", "", "page template file")
	fs.BoolVar(&f.drafts, "drafts", false, "render pages marked draft")
}

// addWorkerFlags adds concurrency flags to a FlagSet.
func addWorkerFlags(fs *flag.FlagSet, f *buildWorkerFlags) {
	fs.IntVarP(&f.workers, "workers", "w", 0, "pages rendered in parallel (0 = auto)")
	fs.IntVar(&f.blockWorkers, "block-workers", 0, "blocks built in parallel per page (0 = sequential)")
}

// addHighlightFlags adds code highlighting flags to a FlagSet.
func addHighlightFlags(fs *flag.FlagSet, f *highlightFlags) {
	fs.BoolVar(&f.enabled, "highlight", false, "syntax-highlight fenced code blocks")
	fs.StringVar(&f.style, "highlight-style", "", "chroma style name")
	fs.StringVar(&f.language, "highlight-lang", "", "lexer for every code block (default: detect)")
}

// newBuildFlagSet registers every build flag into f.
// Also used by completion, so flag names have a single source.
func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addWorkerFlags(fs, &f.workers)
	addHighlightFlags(fs, &f.highlight)
	return fs
}

// newConvertFlagSet registers every convert flag into f.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVarP(&f.template, "template", "t", "", "page template file")
	fs.StringVarP(&f.basePath, "base-path", "b", "", "prefix for root-relative links")
	fs.BoolVar(&f.fragment, "fragment", false, "print the bare HTML tree, no page template")
	addWorkerFlags(fs, &f.workers)
	addHighlightFlags(fs, &f.highlight)
	return fs
}

// newTreeFlagSet registers the tree flags into f.
func newTreeFlagSet(f *treeFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	fs.BoolVar(&f.color, "color", false, "colorize output")
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, usage io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newBuildFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printBuildUsage(usage) }
	f.changed = fs.Changed

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printConvertUsage(usage) }
	f.changed = fs.Changed

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseTreeFlags parses tree command flags and returns positional args.
func parseTreeFlags(args []string, usage io.Writer) (*treeFlags, []string, error) {
	f := &treeFlags{}
	fs := newTreeFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printTreeUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseTitleFlags parses title command flags and returns positional args.
func parseTitleFlags(args []string, usage io.Writer) ([]string, error) {
	fs := flag.NewFlagSet("title", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.Usage = func() { printTitleUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// mergeSiteFlags merges CLI flags into config. CLI values override config values.
func mergeSiteFlags(f *siteFlags, changed func(string) bool, cfg *config.Config) {
	if f.basePath != "" {
		cfg.Site.BasePath = f.basePath
	}
	if f.content != "" {
		cfg.Content.Dir = f.content
	}
	if changed("static") {
		cfg.Static.Dir = f.static
	}
	if f.output != "" {
		cfg.Output.Dir = f.output
	}
	if f.template != "" {
		cfg.Site.Template = f.template
	}
	if changed("drafts") {
		cfg.Content.Drafts = f.drafts
	}
}

// mergeWorkerFlags merges concurrency flags into config.
func mergeWorkerFlags(f *buildWorkerFlags, changed func(string) bool, cfg *config.Config) {
	if changed("workers") {
		cfg.Build.Workers = f.workers
	}
	if changed("block-workers") {
		cfg.Build.BlockWorkers = f.blockWorkers
	}
}

// mergeHighlightFlags merges highlighting flags into config.
// Naming a style or language turns highlighting on.
func mergeHighlightFlags(f *highlightFlags, changed func(string) bool, cfg *config.Config) {
	if changed("highlight") {
		cfg.Highlight.Enabled = f.enabled
	}
	if f.style != "" {
		cfg.Highlight.Style = f.style
		cfg.Highlight.Enabled = true
	}
	if f.language != "" {
		cfg.Highlight.Language = f.language
		cfg.Highlight.Enabled = true
	}
}
