package site

import "errors"

// Sentinel errors for site generation.
var (
	ErrUnsafeOutputDir      = errors.New("unsafe output directory")
	ErrContentDirNotFound   = errors.New("content directory not found")
	ErrReadMarkdown         = errors.New("failed to read markdown file")
	ErrWritePage            = errors.New("failed to write page")
)
