package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate the site from the content directory")
	fmt.Fprintln(w, "  convert    Convert one markdown file to HTML")
	fmt.Fprintln(w, "  title      Print the title of a markdown file")
	fmt.Fprintln(w, "  tree       Print the HTML node tree of a markdown file")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html build [basepath] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate the site: the output directory is removed, the static directory")
	fmt.Fprintln(w, "is copied into it and every markdown page is rendered through the template.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  basepath  Prefix for root-relative links, e.g. /blog/ (default: /)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -b, --base-path <path>    Same as the basepath argument")
	fmt.Fprintln(w, "      --content <dir>       Markdown source directory (default: ./content)")
	fmt.Fprintln(w, "      --static <dir>        Static asset directory (default: ./static)")
	fmt.Fprintln(w, "  -o, --output <dir>        Generated site directory (default: ./docs)")
	fmt.Fprintln(w, "  -t, --template <file>     Page template (default: ./template.html or built-in)")
	fmt.Fprintln(w, "      --drafts              Render pages marked draft: true")
	fmt.Fprintln(w)
	printSharedUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG, MD2HTML_BASE_PATH, MD2HTML_CONTENT_DIR,")
	fmt.Fprintln(w, "  MD2HTML_OUTPUT_DIR, MD2HTML_WORKERS")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html convert <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert one markdown file to an HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <file>       Output file (default: stdout)")
	fmt.Fprintln(w, "      --fragment            Print the bare <div> tree, no page template")
	fmt.Fprintln(w, "  -t, --template <file>     Page template")
	fmt.Fprintln(w, "  -b, --base-path <path>    Prefix for root-relative links")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	printSharedUsage(w)
}

// printSharedUsage prints the flag groups common to build and convert.
func printSharedUsage(w io.Writer) {
	fmt.Fprintln(w, "Workers:")
	fmt.Fprintln(w, "  -w, --workers <n>         Pages rendered in parallel (0 = auto)")
	fmt.Fprintln(w, "      --block-workers <n>   Blocks built in parallel per page (0 = sequential)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlighting:")
	fmt.Fprintln(w, "      --highlight           Syntax-highlight fenced code blocks")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style (default: github)")
	fmt.Fprintln(w, "      --highlight-lang <s>  Lexer for every block (default: detect)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printTitleUsage prints usage for the title command.
func printTitleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html title <file.md>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the front matter title, else the first level-1 heading.")
}

// printTreeUsage prints usage for the tree command.
func printTreeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html tree <file.md> [--color]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the HTML node tree of a markdown file for debugging.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --color               Colorize output")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "convert":
		printConvertUsage(env.Stdout)
	case "title":
		printTitleUsage(env.Stdout)
	case "tree":
		printTreeUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
