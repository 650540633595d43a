package node

import "strings"

// Attr returns the value of the attribute key and whether it is present.
func (n Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// HasClass reports whether the class attribute contains name.
func (n Node) HasClass(name string) bool {
	class, ok := n.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(class) {
		if c == name {
			return true
		}
	}
	return false
}

// TextContent concatenates all text below n. Slots contribute nothing.
func (n Node) TextContent() string {
	if n.Kind == KindText {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// Find returns the first node in depth-first order matching pred.
func (n Node) Find(pred func(Node) bool) (Node, bool) {
	if pred(n) {
		return n, true
	}
	for _, c := range n.Children {
		if found, ok := c.Find(pred); ok {
			return found, true
		}
	}
	return Node{}, false
}

// FindAll returns every node in depth-first order matching pred.
func (n Node) FindAll(pred func(Node) bool) []Node {
	var out []Node
	if pred(n) {
		out = append(out, n)
	}
	for _, c := range n.Children {
		out = append(out, c.FindAll(pred)...)
	}
	return out
}

// ByTag matches elements with the given tag.
func ByTag(tag string) func(Node) bool {
	return func(n Node) bool {
		return n.Kind == KindElement && n.Tag == tag
	}
}

// ByClass matches elements carrying the given class.
func ByClass(class string) func(Node) bool {
	return func(n Node) bool {
		return n.Kind == KindElement && n.HasClass(class)
	}
}
