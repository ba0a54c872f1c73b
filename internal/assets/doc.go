// Package assets provides the HTML page template that wraps generated content.
//
// # Templates
//
// A page template is a plain HTML file with two placeholders:
//
//	{{ Title }}    replaced by the page title (first level-1 heading)
//	{{ Content }}  replaced by the converted document
//
// Every occurrence of each placeholder is replaced. {{ Content }} is
// required; {{ Title }} is optional.
//
// # Loading
//
// LoadTemplate reads a template from disk. An empty path returns the
// embedded default page, which links /index.css so a static directory can
// style it. DefaultTemplate returns the embedded page directly.
package assets
