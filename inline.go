package md2html

import (
	"fmt"
	"regexp"
	"strings"
)

// Inline delimiters, applied in this order by TextToSpans.
const (
	boldDelimiter   = "**"
	italicDelimiter = "_"
	codeDelimiter   = "`"
)

// Precompiled inline reference patterns.
var (
	// ![alt](url), no nested brackets or parens
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)

	// [text](url); the "not preceded by !" rule is applied in findLinks
	linkPattern = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)

	// Either of the above. Delimiter passes do not look inside these.
	referencePattern = regexp.MustCompile(`!?\[[^\[\]]*\]\([^\(\)]*\)`)
)

// Ref is one markdown reference extracted from text: a link's text or an
// image's alt text, plus its destination.
type Ref struct {
	Text string
	URL  string
}

// TextToSpans lexes inline markdown into a flat sequence of spans.
// Passes run in a fixed order: bold, italic, code, images, links.
// Each pass only rescans spans that are still plain.
func TextToSpans(text string) ([]Span, error) {
	spans := []Span{Plain(text)}

	var err error
	if spans, err = SplitDelimiter(spans, boldDelimiter, SpanBold); err != nil {
		return nil, err
	}
	if spans, err = SplitDelimiter(spans, italicDelimiter, SpanItalic); err != nil {
		return nil, err
	}
	if spans, err = SplitDelimiter(spans, codeDelimiter, SpanCode); err != nil {
		return nil, err
	}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)
	return spans, nil
}

// SplitDelimiter splits every plain span on delim. Text between the first and
// second occurrence becomes a span of the given kind, text between the second
// and third stays plain, and so on. Empty segments are dropped.
//
// Matching is positional and does not track nesting. An odd number of
// delimiters in one plain span returns ErrUnterminatedDelimiter.
// Complete link and image references are skipped when counting delimiters.
func SplitDelimiter(spans []Span, delim string, kind SpanKind) ([]Span, error) {
	if delim == "" {
		return nil, fmt.Errorf("%w: empty delimiter", ErrUnterminatedDelimiter)
	}

	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != SpanPlain {
			out = append(out, s)
			continue
		}

		positions := delimiterPositions(s.Text, delim)
		if len(positions) == 0 {
			out = append(out, s)
			continue
		}
		if len(positions)%2 != 0 {
			return nil, fmt.Errorf("%w: %q appears %d times in %q",
				ErrUnterminatedDelimiter, delim, len(positions), s.Text)
		}

		start := 0
		for i, at := range positions {
			segKind := SpanPlain
			if i%2 == 1 {
				segKind = kind
			}
			if seg := s.Text[start:at]; seg != "" {
				out = append(out, Span{Kind: segKind, Text: seg})
			}
			start = at + len(delim)
		}
		if tail := s.Text[start:]; tail != "" {
			out = append(out, Plain(tail))
		}
	}
	return out, nil
}

// delimiterPositions returns the byte offsets of non-overlapping occurrences
// of delim in text, outside any link or image reference.
func delimiterPositions(text, delim string) []int {
	if !strings.Contains(text, delim) {
		return nil
	}

	refs := referencePattern.FindAllStringIndex(text, -1)
	var positions []int
	r := 0
	for i := 0; i+len(delim) <= len(text); {
		for r < len(refs) && refs[r][1] <= i {
			r++
		}
		if r < len(refs) && i >= refs[r][0] {
			i = refs[r][1]
			continue
		}
		if strings.HasPrefix(text[i:], delim) {
			positions = append(positions, i)
			i += len(delim)
			continue
		}
		i++
	}
	return positions
}

// ExtractImages returns every ![alt](url) reference in text, in order.
func ExtractImages(text string) []Ref {
	return refsFromMatches(text, imagePattern.FindAllStringSubmatchIndex(text, -1))
}

// ExtractLinks returns every [text](url) reference in text that is not an
// image, in order.
func ExtractLinks(text string) []Ref {
	return refsFromMatches(text, findLinks(text))
}

func refsFromMatches(text string, matches [][]int) []Ref {
	if len(matches) == 0 {
		return nil
	}
	refs := make([]Ref, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, Ref{Text: text[m[2]:m[3]], URL: text[m[4]:m[5]]})
	}
	return refs
}

// findLinks returns submatch indexes for link references not preceded by '!'.
// RE2 has no lookbehind, so a rejected match restarts the scan one byte later.
func findLinks(text string) [][]int {
	var matches [][]int
	for pos := 0; pos < len(text); {
		loc := linkPattern.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += pos
			}
		}
		if loc[0] > 0 && text[loc[0]-1] == '!' {
			pos = loc[0] + 1
			continue
		}
		matches = append(matches, loc)
		pos = loc[1]
	}
	return matches
}

// SplitImages replaces image references in plain spans with image spans.
func SplitImages(spans []Span) []Span {
	return splitReferences(spans, SpanImage, func(text string) [][]int {
		return imagePattern.FindAllStringSubmatchIndex(text, -1)
	})
}

// SplitLinks replaces link references in plain spans with link spans.
// Run it after SplitImages so image syntax is already consumed.
func SplitLinks(spans []Span) []Span {
	return splitReferences(spans, SpanLink, findLinks)
}

func splitReferences(spans []Span, kind SpanKind, find func(string) [][]int) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != SpanPlain {
			out = append(out, s)
			continue
		}

		matches := find(s.Text)
		if len(matches) == 0 {
			out = append(out, s)
			continue
		}

		cursor := 0
		for _, m := range matches {
			if before := s.Text[cursor:m[0]]; before != "" {
				out = append(out, Plain(before))
			}
			out = append(out, Span{
				Kind: kind,
				Text: s.Text[m[2]:m[3]],
				URL:  s.Text[m[4]:m[5]],
			})
			cursor = m[1]
		}
		if tail := s.Text[cursor:]; tail != "" {
			out = append(out, Plain(tail))
		}
	}
	return out
}
