package md2html

import "errors"

// Sentinel errors for library operations.
var (
	// ErrFormat is the umbrella for malformed input or malformed node trees.
	// The format errors below match it under errors.Is.
	ErrFormat = errors.New("format error")

	ErrUnterminatedDelimiter = newFormatError("unterminated inline delimiter")
	ErrInvalidNode           = newFormatError("invalid HTML node")
	ErrUnknownSpan           = newFormatError("unknown span kind")

	// Block errors.
	ErrEmptyBlock    = errors.New("empty block has no block type")
	ErrEmptyDocument = errors.New("document has no blocks")
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// ErrMissingTitle is returned by ExtractTitle when no level-1 heading exists.
	ErrMissingTitle = errors.New("missing title: no level-1 heading found")
)

// formatError is a sentinel that reports itself as an ErrFormat.
type formatError struct{ msg string }

func (e *formatError) Error() string        { return e.msg }
func (e *formatError) Is(target error) bool { return target == ErrFormat }

func newFormatError(msg string) error { return &formatError{msg: msg} }
