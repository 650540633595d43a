// Package node builds display trees (tag, attributes, children) and renders
// them as HTML. A Node is itself a templ.Component, so trees can be handed to
// anything that renders templ components.
package node

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Kind is the type of a Node.
type Kind uint8

const (
	// KindElement is an HTML element with attributes and children.
	KindElement Kind = iota
	// KindText is escaped text.
	KindText
	// KindSlot renders an opaque templ.Component in place.
	KindSlot
)

// Attribute is a single HTML attribute. Boolean attributes are written
// without a value when Bool is set.
type Attribute struct {
	Key   string
	Value string
	Bool  bool
}

// Node is an immutable display node.
type Node struct {
	Kind      Kind
	Tag       string
	Attrs     []Attribute
	Children  []Node
	Text      string
	Component templ.Component
}

var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// El creates an element node.
func El(tag string, attrs []Attribute, children ...Node) Node {
	return Node{Kind: KindElement, Tag: tag, Attrs: attrs, Children: children}
}

// Text creates a text node.
func Text(s string) Node {
	return Node{Kind: KindText, Text: s}
}

// Slot wraps an opaque component. A nil component renders nothing.
func Slot(c templ.Component) Node {
	return Node{Kind: KindSlot, Component: c}
}

// Attr builds a key/value attribute.
func Attr(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Flag builds a boolean attribute.
func Flag(key string) Attribute {
	return Attribute{Key: key, Bool: true}
}

// Attrs is shorthand for a list of key/value attributes given as pairs.
// A trailing odd key is dropped.
func Attrs(pairs ...string) []Attribute {
	out := make([]Attribute, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Attr(pairs[i], pairs[i+1]))
	}
	return out
}

// Render writes n as HTML.
func (n Node) Render(ctx context.Context, w io.Writer) error {
	var b strings.Builder
	if err := n.write(ctx, &b); err != nil {
		return err
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// HTML renders n to a string.
func (n Node) HTML(ctx context.Context) (string, error) {
	var b strings.Builder
	if err := n.write(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (n Node) write(ctx context.Context, b *strings.Builder) error {
	switch n.Kind {
	case KindText:
		b.WriteString(templ.EscapeString(n.Text))
		return nil
	case KindSlot:
		if n.Component == nil {
			return nil
		}
		return n.Component.Render(ctx, b)
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		if a.Bool {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if voidElements[n.Tag] {
		return nil
	}
	for _, child := range n.Children {
		if err := child.write(ctx, b); err != nil {
			return err
		}
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
	return nil
}
