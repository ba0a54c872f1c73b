package site

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// Page is one markdown source and the HTML file it produces.
type Page struct {
	Source string // Path of the markdown file
	Output string // Path of the generated HTML file
	Rel    string // Source path relative to the content directory, slash separated
}

// Discover walks contentDir and maps every markdown file to an HTML file
// at the same relative location under outputDir. Pages are returned in
// lexical order. Hidden directories are skipped.
func Discover(contentDir, outputDir string) ([]Page, error) {
	if !fileutil.DirExists(contentDir) {
		return nil, fmt.Errorf("%w: %s", ErrContentDirNotFound, contentDir)
	}

	var pages []Page
	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != contentDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !fileutil.IsMarkdown(path) {
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		pages = append(pages, Page{
			Source: path,
			Output: filepath.Join(outputDir, htmlName(rel)),
			Rel:    filepath.ToSlash(rel),
		})
		return nil
	})
	if err != nil && !errors.Is(err, fs.SkipDir) {
		return nil, err
	}
	return pages, nil
}

// htmlName swaps the markdown extension for .html.
func htmlName(rel string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
}
