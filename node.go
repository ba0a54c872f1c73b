package md2html

import (
	"fmt"
	"strings"
)

// Attr is one HTML attribute. Attributes render in the order they are given.
type Attr struct {
	Key   string
	Value string
}

// Node is an element of the output HTML tree: a *Leaf or a *Parent.
type Node interface {
	// ToHTML serializes the node and its descendants as one dense HTML string.
	ToHTML() (string, error)

	writeHTML(b *strings.Builder) error
}

// Compile-time interface implementation checks.
var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Parent)(nil)
)

// Leaf is a node without children. A leaf with no tag is raw inline text and
// renders as Text unchanged; it must carry non-empty text.
type Leaf struct {
	Tag   string
	Text  string
	Attrs []Attr
}

// Parent is a node that owns an ordered, non-empty list of children.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    []Attr
}

// NewLeaf creates a validated leaf node.
func NewLeaf(tag, text string, attrs ...Attr) (*Leaf, error) {
	l := &Leaf{Tag: tag, Text: text, Attrs: attrs}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// NewParent creates a validated parent node.
func NewParent(tag string, children []Node, attrs ...Attr) (*Parent, error) {
	p := &Parent{Tag: tag, Children: children, Attrs: attrs}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (l *Leaf) validate() error {
	if l.Tag == "" && l.Text == "" {
		return fmt.Errorf("%w: leaf without tag must have text", ErrInvalidNode)
	}
	return nil
}

func (p *Parent) validate() error {
	if p.Tag == "" {
		return fmt.Errorf("%w: parent must have a tag", ErrInvalidNode)
	}
	if len(p.Children) == 0 {
		return fmt.Errorf("%w: <%s> parent must have children", ErrInvalidNode, p.Tag)
	}
	return nil
}

// ToHTML renders the leaf.
func (l *Leaf) ToHTML() (string, error) {
	return render(l)
}

// ToHTML renders the parent and all of its descendants.
func (p *Parent) ToHTML() (string, error) {
	return render(p)
}

func render(n Node) (string, error) {
	var b strings.Builder
	if err := n.writeHTML(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (l *Leaf) writeHTML(b *strings.Builder) error {
	if err := l.validate(); err != nil {
		return err
	}
	if l.Tag == "" {
		b.WriteString(l.Text)
		return nil
	}
	openTag(b, l.Tag, l.Attrs)
	b.WriteString(l.Text)
	closeTag(b, l.Tag)
	return nil
}

func (p *Parent) writeHTML(b *strings.Builder) error {
	if err := p.validate(); err != nil {
		return err
	}
	openTag(b, p.Tag, p.Attrs)
	for i, child := range p.Children {
		if child == nil {
			return fmt.Errorf("%w: <%s> child %d is nil", ErrInvalidNode, p.Tag, i)
		}
		if err := child.writeHTML(b); err != nil {
			return err
		}
	}
	closeTag(b, p.Tag)
	return nil
}

func openTag(b *strings.Builder, tag string, attrs []Attr) {
	b.WriteByte('<')
	b.WriteString(tag)
	b.WriteString(attrsToHTML(attrs))
	b.WriteByte('>')
}

func closeTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

// attrsToHTML renders attributes as ` key="value"` pairs in order.
func attrsToHTML(attrs []Attr) string {
	if len(attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	return b.String()
}
