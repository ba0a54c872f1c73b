package main

import (
	"context"
	"fmt"

	"github.com/k0kubun/pp"

	md2html "github.com/alnah/go-md2html"
)

// runTree pretty-prints the node tree of a document for debugging.
func runTree(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseTreeFlags(args, env.Stdout)
	if err != nil {
		return usageError(err)
	}
	if len(positional) != 1 {
		return usageError(fmt.Errorf("tree needs exactly one markdown file, got %d arguments", len(positional)))
	}

	_, body, err := readDocument(positional[0])
	if err != nil {
		return err
	}

	root, err := md2html.NewConverter().ToNode(ctx, md2html.NormalizeMarkdown(body))
	if err != nil {
		return fmt.Errorf("%s: %w", positional[0], err)
	}

	pp.ColoringEnabled = flags.color
	_, err = pp.Fprintln(env.Stdout, root)
	return err
}
