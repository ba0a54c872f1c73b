package md2html

import "fmt"

// SpanKind identifies the inline formatting of a Span.
type SpanKind int

// Span kinds produced by the inline lexer.
const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
	SpanImage
)

var spanKindNames = [...]string{
	SpanPlain:  "plain",
	SpanBold:   "bold",
	SpanItalic: "italic",
	SpanCode:   "code",
	SpanLink:   "link",
	SpanImage:  "image",
}

func (k SpanKind) String() string {
	if k < 0 || int(k) >= len(spanKindNames) {
		return fmt.Sprintf("SpanKind(%d)", int(k))
	}
	return spanKindNames[k]
}

// Span is a typed run of inline text.
// Link and Image spans carry a URL; for images Text is the alt text.
// Spans are comparable: two spans are equal when kind, text and URL match.
type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

// Plain returns a plain text span.
func Plain(text string) Span { return Span{Kind: SpanPlain, Text: text} }

func (s Span) String() string {
	if s.URL != "" {
		return fmt.Sprintf("%s(%q, %q)", s.Kind, s.Text, s.URL)
	}
	return fmt.Sprintf("%s(%q)", s.Kind, s.Text)
}
