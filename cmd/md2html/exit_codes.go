package main

import (
	"errors"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/frontmatter"
	"github.com/alnah/go-md2html/internal/highlight"
	"github.com/alnah/go-md2html/internal/site"
)

// Exit codes for md2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitFormat  = 4 // Malformed markdown document
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Document errors (exit 4)
	if errors.Is(err, md2html.ErrFormat) ||
		errors.Is(err, md2html.ErrMissingTitle) ||
		errors.Is(err, md2html.ErrEmptyMarkdown) ||
		errors.Is(err, md2html.ErrEmptyDocument) ||
		errors.Is(err, md2html.ErrEmptyBlock) ||
		errors.Is(err, frontmatter.ErrFrontMatter) {
		return ExitFormat
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, site.ErrReadMarkdown) ||
		errors.Is(err, site.ErrWritePage) ||
		errors.Is(err, site.ErrContentDirNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidBasePath) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, config.ErrEmptyField) ||
		errors.Is(err, site.ErrUnsafeOutputDir) ||
		errors.Is(err, assets.ErrTemplateMissingContent) ||
		errors.Is(err, assets.ErrTemplateTooLarge) ||
		errors.Is(err, assets.ErrNotAFile) ||
		errors.Is(err, highlight.ErrUnknownLanguage) {
		return ExitUsage
	}

	return ExitGeneral
}
