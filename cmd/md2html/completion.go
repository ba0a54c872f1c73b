package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2html/internal/highlight"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed argument values (help topics, shells)
	FilePattern string   // glob for file arguments (e.g., "*.md"), empty if none
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   func() []string // enum values
	FileGlob string          // file glob pattern
	IsDir    bool            // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"highlight-style": {Values: highlight.Styles},

	// File flags with glob patterns
	"config":   {FileGlob: "*.yaml,*.yml"},
	"template": {FileGlob: "*.html"},

	// Directory flags. --output is left out: it names a directory for build
	// and a file for convert.
	"content": {IsDir: true},
	"static":  {IsDir: true},
}

const markdownGlob = "*.md,*.markdown"

var shells = []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.Values != nil:
				fd.Type = flagEnum
				fd.Values = meta.Values()
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:  "build",
			Desc:  "Generate the site from the content directory",
			Flags: extractFlagsFromFlagSet(newBuildFlagSet(&buildFlags{})),
		},
		{
			Name:        "convert",
			Desc:        "Convert one markdown file to HTML",
			Flags:       extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{})),
			FilePattern: markdownGlob,
		},
		{
			Name:        "title",
			Desc:        "Print the title of a markdown file",
			FilePattern: markdownGlob,
		},
		{
			Name:        "tree",
			Desc:        "Print the HTML node tree of a markdown file",
			Flags:       extractFlagsFromFlagSet(newTreeFlagSet(&treeFlags{})),
			FilePattern: markdownGlob,
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: []string{"build", "convert", "title", "tree", "version", "completion"},
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: shells,
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(getCommands())
	case ShellZsh:
		script = generateZsh(getCommands())
	case ShellFish:
		script = generateFish(getCommands())
	case ShellPowerShell:
		script = generatePowerShell(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(shells, ", "))
	}
	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if len(args) > 1 {
		return usageError(fmt.Errorf("completion takes one shell, got %d arguments", len(args)))
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(md2html completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(md2html completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    md2html completion fish > ~/.config/fish/completions/md2html.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    md2html completion powershell | Out-String | Invoke-Expression")
}

// ---------------------------------------------------------------------------
// Script generators
// ---------------------------------------------------------------------------

func commandNames(cmds []commandDef) string {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	return strings.Join(names, " ")
}

// flagWords lists "--long -s" words for every flag.
func flagWords(flags []flagDef) string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// flagPattern returns a bash case pattern matching the flag, e.g. "--output|-o".
func flagPattern(f flagDef) string {
	if f.Short == "" {
		return "--" + f.Long
	}
	return "--" + f.Long + "|-" + f.Short
}

// globExtensions turns "*.md,*.markdown" into ["md", "markdown"].
func globExtensions(glob string) []string {
	parts := strings.Split(glob, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		exts = append(exts, strings.TrimPrefix(strings.TrimSpace(p), "*."))
	}
	return exts
}

func generateBash(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# bash completion for md2html\n\n")
	b.WriteString("_md2html_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", commandNames(cmds))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "        %s)\n", c.Name)

		var valued []flagDef
		for _, f := range c.Flags {
			if f.Type != flagBool {
				valued = append(valued, f)
			}
		}
		if len(valued) > 0 {
			b.WriteString("            case \"$prev\" in\n")
			for _, f := range valued {
				fmt.Fprintf(&b, "                %s)\n", flagPattern(f))
				switch f.Type {
				case flagEnum:
					fmt.Fprintf(&b, "                    COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(f.Values, " "))
				case flagFile:
					fmt.Fprintf(&b, "                    COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"$cur\"))\n", strings.Join(globExtensions(f.FileGlob), "|"))
				case flagDir:
					b.WriteString("                    COMPREPLY=($(compgen -d -- \"$cur\"))\n")
				default:
					b.WriteString("                    COMPREPLY=()\n")
				}
				b.WriteString("                    return\n")
				b.WriteString("                    ;;\n")
			}
			b.WriteString("            esac\n")
		}

		if len(c.Flags) > 0 {
			b.WriteString("            if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(&b, "                COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", flagWords(c.Flags))
			b.WriteString("                return\n")
			b.WriteString("            fi\n")
		}

		switch {
		case c.FilePattern != "":
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"$cur\"))\n", strings.Join(globExtensions(c.FilePattern), "|"))
		case len(c.Args) > 0:
			b.WriteString("            if [[ ${COMP_CWORD} -eq 2 ]]; then\n")
			fmt.Fprintf(&b, "                COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(c.Args, " "))
			b.WriteString("            fi\n")
		}
		b.WriteString("            ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("shopt -s extglob\n")
	b.WriteString("complete -o filenames -F _md2html_completions md2html\n")
	return b.String()
}

// zshEscape escapes text for a single-quoted _arguments entry.
func zshEscape(s string) string {
	return strings.NewReplacer(
		"'", `'\''`,
		"[", `\[`,
		"]", `\]`,
		":", `\:`,
	).Replace(s)
}

// zshAction returns the _arguments action for a flag's value.
func zshAction(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagEnum:
		return ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		return ":file:_files -g \"*.(" + strings.Join(globExtensions(f.FileGlob), "|") + ")\""
	case flagDir:
		return ":directory:_files -/"
	case flagInt:
		return ":number:"
	default:
		return ":" + f.Long + ":"
	}
}

func generateZsh(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("#compdef md2html\n\n")
	b.WriteString("_md2html() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=\"${words[2]}\"\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		b.WriteString("            _arguments")
		for _, f := range c.Flags {
			desc := zshEscape(f.Desc)
			action := zshAction(f)
			if f.Short != "" {
				fmt.Fprintf(&b, " \\\n                '(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
			} else {
				fmt.Fprintf(&b, " \\\n                '--%s[%s]%s'", f.Long, desc, action)
			}
		}
		switch {
		case c.FilePattern != "":
			fmt.Fprintf(&b, " \\\n                '*:markdown file:_files -g \"*.(%s)\"'", strings.Join(globExtensions(c.FilePattern), "|"))
		case len(c.Args) > 0:
			fmt.Fprintf(&b, " \\\n                '1:%s:(%s)'", c.Name, strings.Join(c.Args, " "))
		}
		b.WriteString("\n            ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _md2html md2html\n")
	return b.String()
}

// fishEscape escapes text for a single-quoted fish string.
func fishEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

func generateFish(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# fish completion for md2html\n\n")
	b.WriteString("function __fish_md2html_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_md2html_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c md2html -f\n\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c md2html -n __fish_md2html_needs_command -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("'__fish_md2html_using_command %s'", c.Name)
		b.WriteString("\n")
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c md2html -n %s -l %s", cond, f.Long)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, " -r -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				fmt.Fprintf(&b, " -r -a '(__fish_complete_suffix .%s)'", globExtensions(f.FileGlob)[0])
			case flagDir:
				b.WriteString(" -r -a '(__fish_complete_directories)'")
			case flagInt, flagString:
				b.WriteString(" -r")
			}
			fmt.Fprintf(&b, " -d '%s'\n", fishEscape(f.Desc))
		}
		switch {
		case c.FilePattern != "":
			for _, ext := range globExtensions(c.FilePattern) {
				fmt.Fprintf(&b, "complete -c md2html -n %s -a '(__fish_complete_suffix .%s)'\n", cond, ext)
			}
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "complete -c md2html -n %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
	}
	return b.String()
}

func generatePowerShell(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# PowerShell completion for md2html\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName md2html -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $commands = [ordered]@{\n")
	for _, c := range cmds {
		words := strings.Fields(flagWords(c.Flags))
		words = append(words, c.Args...)
		quoted := make([]string, 0, len(words))
		for _, w := range words {
			quoted = append(quoted, "'"+w+"'")
		}
		fmt.Fprintf(&b, "        '%s' = @(%s)\n", c.Name, strings.Join(quoted, ", "))
	}
	b.WriteString("    }\n\n")
	b.WriteString("    $elements = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    if ($elements.Count -le 1 -or ($elements.Count -eq 2 -and $wordToComplete)) {\n")
	b.WriteString("        $commands.Keys | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $words = $commands[$elements[1]]\n")
	b.WriteString("    if ($words) {\n")
	b.WriteString("        $words | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String()
}
