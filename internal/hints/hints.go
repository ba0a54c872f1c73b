// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-md2html) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsafeOutputDir returns hints when the output directory would wipe sources.
func ForUnsafeOutputDir() string {
	return format("the output directory is deleted on every build; use a dedicated one such as ./docs")
}

// ForMissingTitle returns hints for documents without a level-1 heading.
func ForMissingTitle() string {
	return formatHints([]string{
		"start the document with a line like \"# Title\"",
		"or set title in the front matter",
	})
}

// ForUnterminatedDelimiter returns hints for unbalanced inline markers.
func ForUnterminatedDelimiter() string {
	return format("every **, _ and ` must be closed on the same block; emphasis does not nest")
}

// ForTemplate returns hints for unusable page templates.
func ForTemplate() string {
	return format("templates need a {{ Content }} placeholder; omit --template to use the built-in page")
}

// ForStyleNotFound returns hints for unknown highlight styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
