// Package views builds the page chrome of the site as node trees: the layout
// shell with its header and footer, the theme switch and the HTML document
// around them.
package views

import (
	"fmt"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/pubshell/node"
	"github.com/eringen/pubshell/site"
	"github.com/eringen/pubshell/theme"
)

// LayoutProps is everything the layout needs for one render.
type LayoutProps struct {
	Path    string          // current request path
	Title   string          // site title shown in the header
	Content templ.Component // page body, rendered inside <main>
	Site    site.Metadata
	Theme   theme.Facility
	Toggle  ToggleOptions
	Year    int // copyright year; zero means the current year
}

// IsRootPath reports whether path is exactly the site root.
func IsRootPath(path, root string) bool {
	return path == root
}

// Layout wraps the content in the global header and footer.
func Layout(p LayoutProps) node.Node {
	isRoot := IsRootPath(p.Path, p.Site.RootPath())
	if p.Theme == nil {
		p.Theme = theme.NewState(theme.Light)
	}
	if p.Year == 0 {
		p.Year = time.Now().Year()
	}
	p.Toggle.Prefix = p.Site.PathPrefix

	return node.El("div", node.Attrs(
		"class", "global-wrapper",
		"data-is-root-path", strconv.FormatBool(isRoot),
	),
		node.El("header", node.Attrs("class", "global-header"),
			Header(p.Title, p.Site.RootPath(), isRoot),
			ThemeToggle(p.Theme, p.Toggle),
		),
		node.El("main", nil, node.Slot(p.Content)),
		Footer(p.Site, p.Year),
	)
}

// Header returns the title as a heading on the root page and as a plain
// link home everywhere else.
func Header(title, root string, isRoot bool) node.Node {
	if isRoot {
		return node.El("h1", node.Attrs("class", "main-heading"),
			node.El("a", node.Attrs("href", root), node.Text(title)),
		)
	}
	return node.El("a", node.Attrs("class", "header-link-home", "href", root), node.Text(title))
}

// Footer renders the copyright line and the outbound social links.
func Footer(meta site.Metadata, year int) node.Node {
	links := make([]node.Node, 0, 3)
	for _, l := range meta.Social.Links() {
		links = append(links, node.El("a", node.Attrs("href", l.Href, "aria-label", l.Name),
			Icon(meta.PathPrefix, l.Name, "2x"),
		))
	}
	return node.El("footer", nil,
		node.El("div", nil,
			node.Text(fmt.Sprintf("© %d %s ", year, meta.Author.Name)),
			node.El("br", nil),
		),
		node.El("div", node.Attrs("class", "social-links"), links...),
	)
}
