package views

import "github.com/eringen/pubshell/node"

// NotFound is the body shown for unknown paths.
func NotFound(root string) node.Node {
	return node.El("section", node.Attrs("class", "error-page"),
		node.El("h2", nil, node.Text("Page not found")),
		node.El("p", nil,
			node.Text("Nothing lives at this address. "),
			node.El("a", node.Attrs("href", root), node.Text("Back home")),
		),
	)
}

// ServerError is the body shown when rendering fails.
func ServerError(root string) node.Node {
	return node.El("section", node.Attrs("class", "error-page"),
		node.El("h2", nil, node.Text("Something went wrong")),
		node.El("p", nil,
			node.Text("Please try again in a moment. "),
			node.El("a", node.Attrs("href", root), node.Text("Back home")),
		),
	)
}
