package site

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestRewriteBasePath_Fragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		basePath string
		want     string
	}{
		{
			name:     "root base path unchanged",
			html:     `<a href="/x">x</a>`,
			basePath: "/",
			want:     `<a href="/x">x</a>`,
		},
		{
			name:     "empty base path unchanged",
			html:     `<a href="/x">x</a>`,
			basePath: "",
			want:     `<a href="/x">x</a>`,
		},
		{
			name:     "root-relative link",
			html:     `<div><p><a href="/blog/first.html">first</a></p></div>`,
			basePath: "/site/",
			want:     `<div><p><a href="/site/blog/first.html">first</a></p></div>`,
		},
		{
			name:     "absolute url untouched",
			html:     `<a href="https://example.com/x">x</a>`,
			basePath: "/site/",
			want:     `<a href="https://example.com/x">x</a>`,
		},
		{
			name:     "protocol-relative untouched",
			html:     `<a href="//cdn.example.com/x">x</a>`,
			basePath: "/site/",
			want:     `<a href="//cdn.example.com/x">x</a>`,
		},
		{
			name:     "relative and anchor untouched",
			html:     `<a href="page.html">p</a><a href="#top">t</a>`,
			basePath: "/site/",
			want:     `<a href="page.html">p</a><a href="#top">t</a>`,
		},
		{
			name:     "text mentioning href untouched",
			html:     `<p>write href="/x" in markup</p>`,
			basePath: "/site/",
			want:     `<p>write href=&#34;/x&#34; in markup</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteBasePath(tt.html, tt.basePath)
			if err != nil {
				t.Fatalf("RewriteBasePath() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RewriteBasePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRewriteBasePath_Document(t *testing.T) {
	t.Parallel()

	page := `<!DOCTYPE html>
<html>
<head><link href="/index.css" rel="stylesheet"><script src="/app.js"></script></head>
<body><div><img src="/images/tolkien.png" alt="JRR"><a href="/">home</a></div></body>
</html>`

	got, err := RewriteBasePath(page, "/docs/")
	if err != nil {
		t.Fatalf("RewriteBasePath() unexpected error: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(got))
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}

	checks := []struct {
		selector string
		attr     string
		want     string
	}{
		{"link", "href", "/docs/index.css"},
		{"script", "src", "/docs/app.js"},
		{"img", "src", "/docs/images/tolkien.png"},
		{"img", "alt", "JRR"},
		{"a", "href", "/docs/"},
	}
	for _, c := range checks {
		if v := doc.Find(c.selector).AttrOr(c.attr, ""); v != c.want {
			t.Errorf("%s[%s] = %q, want %q", c.selector, c.attr, v, c.want)
		}
	}
	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Errorf("doctype lost: %q", got[:min(len(got), 40)])
	}
}
