package assets

import _ "embed"

//go:embed templates/page.html
var defaultPage string

// DefaultTemplate returns the embedded page template.
func DefaultTemplate() string {
	return defaultPage
}
