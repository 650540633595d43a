package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/pubshell/node"
	"github.com/eringen/pubshell/site"
	"github.com/eringen/pubshell/theme"
)

// DocumentProps carries the <head> metadata and the rendered body.
type DocumentProps struct {
	Title       string
	Description string
	Canonical   string
	JSONLD      string // schema.org block, written verbatim
	Site        site.Metadata
	Theme       theme.Theme
	Body        node.Node
}

// Document wraps body in html/head/body. The body class names the theme so
// stylesheets can switch palettes.
func Document(p DocumentProps) node.Node {
	prefix := p.Site.PathPrefix
	head := []node.Node{
		node.El("meta", node.Attrs("charset", "utf-8")),
		node.El("meta", node.Attrs("name", "viewport", "content", "width=device-width, initial-scale=1")),
		node.El("title", nil, node.Text(p.Title)),
	}
	if p.Description != "" {
		head = append(head, node.El("meta", node.Attrs("name", "description", "content", p.Description)))
	}
	if p.Canonical != "" {
		head = append(head, node.El("link", node.Attrs("rel", "canonical", "href", p.Canonical)))
	}
	if p.JSONLD != "" {
		head = append(head, node.El("script", node.Attrs("type", "application/ld+json"), node.Slot(templ.Raw(p.JSONLD))))
	}
	head = append(head,
		node.El("link", node.Attrs("rel", "stylesheet", "href", prefix+"/public/theme.css")),
		node.El("link", node.Attrs("rel", "icon", "type", "image/svg+xml", "href", prefix+"/favicon.svg")),
	)

	return node.El("html", node.Attrs("lang", "en"),
		node.El("head", nil, head...),
		node.El("body", node.Attrs("class", string(p.Theme)), p.Body),
	)
}

// Page renders a full HTML document including the doctype.
func Page(p DocumentProps) templ.Component {
	doc := Document(p)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
			return err
		}
		return doc.Render(ctx, w)
	})
}

// PageTitle joins a page title with the site title.
func PageTitle(page, siteTitle string) string {
	if page == "" || page == siteTitle {
		return siteTitle
	}
	return page + " | " + siteTitle
}
