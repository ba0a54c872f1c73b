package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/site"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteOutput      = errors.New("failed to write output")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// run dispatches a command and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	warnUnknownEnvVars(env.Stderr)

	var err error
	switch args[0] {
	case "build":
		err = runBuild(ctx, args[1:], env)
	case "convert":
		err = runConvert(ctx, args[1:], env)
	case "title":
		err = runTitle(args[1:], env)
	case "tree":
		err = runTree(ctx, args[1:], env)
	case "completion":
		err = runCompletion(args[1:], env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
	case "help", "-h", "--help":
		return runHelp(args[1:], env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// usageError marks a flag or argument problem. ErrHelp stays detectable.
func usageError(err error) error {
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// hintFor returns an actionable hint for well-known errors, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, md2html.ErrMissingTitle):
		return hints.ForMissingTitle()
	case errors.Is(err, md2html.ErrUnterminatedDelimiter):
		return hints.ForUnterminatedDelimiter()
	case errors.Is(err, site.ErrUnsafeOutputDir):
		return hints.ForUnsafeOutputDir()
	case errors.Is(err, assets.ErrTemplateMissingContent):
		return hints.ForTemplate()
	case errors.Is(err, site.ErrWritePage),
		errors.Is(err, ErrWriteOutput) && errors.Is(err, os.ErrPermission):
		return hints.ForOutputDirectory()
	}
	return ""
}
