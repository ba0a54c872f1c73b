// Package frontmatter splits a YAML metadata header from a markdown page.
//
// A header is delimited by "---" lines at the very start of the file:
//
//	---
//	title: The Fellowship
//	draft: true
//	---
//	# Chapter One
//
// Documents without a header pass through unchanged.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// ErrFrontMatter wraps header decoding failures.
var ErrFrontMatter = errors.New("invalid front matter")

// Meta is the page metadata read from the header.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Draft       bool   `yaml:"draft"`
}

var yamlFormat = frontmatter.NewFormat("---", "---", unmarshal)

// unmarshal accepts an empty header, which yamlutil rejects.
func unmarshal(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yamlutil.Unmarshal(data, v)
}

// Parse returns the header metadata and the markdown body that follows it.
// Unknown header keys are ignored.
func Parse(source []byte) (Meta, []byte, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta, yamlFormat)
	if err != nil {
		return Meta{}, nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return meta, body, nil
}
