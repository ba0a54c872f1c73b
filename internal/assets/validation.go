package assets

import (
	"fmt"
	"strings"
)

// Template placeholders.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ValidateTemplate checks that a template can receive page content.
// Returns ErrTemplateMissingContent if the content placeholder is absent.
func ValidateTemplate(name, content string) error {
	if !strings.Contains(content, ContentPlaceholder) {
		return fmt.Errorf("%w: %s", ErrTemplateMissingContent, name)
	}
	return nil
}
