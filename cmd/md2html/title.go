package main

import (
	"fmt"

	md2html "github.com/alnah/go-md2html"
)

// runTitle prints the title a page would get: the front matter title,
// else the first level-1 heading.
func runTitle(args []string, env *Environment) error {
	positional, err := parseTitleFlags(args, env.Stdout)
	if err != nil {
		return usageError(err)
	}
	if len(positional) != 1 {
		return usageError(fmt.Errorf("title needs exactly one markdown file, got %d arguments", len(positional)))
	}

	meta, body, err := readDocument(positional[0])
	if err != nil {
		return err
	}

	title := meta.Title
	if title == "" {
		title, err = md2html.ExtractTitle(md2html.NormalizeMarkdown(body))
		if err != nil {
			return fmt.Errorf("%s: %w", positional[0], err)
		}
	}

	fmt.Fprintln(env.Stdout, title)
	return nil
}
