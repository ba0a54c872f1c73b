package site

import (
	"strings"

	"github.com/alnah/go-md2html/internal/assets"
)

// RenderPage substitutes every title and content placeholder in template.
// Substitution is a single pass, so placeholder text inside the title or
// the content is left as is.
func RenderPage(template, title, content string) string {
	r := strings.NewReplacer(
		assets.TitlePlaceholder, title,
		assets.ContentPlaceholder, content,
	)
	return r.Replace(template)
}
