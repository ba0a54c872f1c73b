// Package site generates a static website from a tree of markdown pages.
//
// # Build
//
// A build mirrors the content directory into the output directory:
//
//	content/index.md        -> docs/index.html
//	content/blog/first.md   -> docs/blog/first.html
//	static/index.css        -> docs/index.css
//
// The output directory is removed before every build, so Build refuses to
// use the filesystem root, the working directory, or a directory holding
// the content or static sources.
//
// # Pages
//
// Each page is converted to HTML, placed into the page template through the
// {{ Title }} and {{ Content }} placeholders, and its root-relative href and
// src attributes are prefixed with the configured base path. Pages are
// rendered concurrently; one failing page does not stop the others.
package site
