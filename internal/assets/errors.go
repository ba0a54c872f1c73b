package assets

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the template file does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateMissingContent indicates the template has no content placeholder,
	// so the converted document would be silently dropped.
	ErrTemplateMissingContent = errors.New("template missing {{ Content }} placeholder")

	// ErrTemplateTooLarge indicates the template file exceeds MaxTemplateSize.
	ErrTemplateTooLarge = errors.New("template too large")

	// ErrNotAFile indicates the template path is a directory.
	ErrNotAFile = errors.New("template path is not a file")

	// ErrAssetRead indicates an I/O error occurred while reading a template file.
	ErrAssetRead = errors.New("failed to read asset")
)
