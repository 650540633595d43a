package views

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/eringen/pubshell/node"
	"github.com/eringen/pubshell/site"
	"github.com/eringen/pubshell/theme"
)

var testSite = site.Metadata{
	Title:  "My Blog",
	Author: site.Author{Name: "Jane Doe"},
	Social: site.Social{GitHub: "tomek", LinkedIn: "tomekw", Email: "a@b.com"},
}

func render(t *testing.T, n node.Node) string {
	t.Helper()
	out, err := n.HTML(context.Background())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return out
}

func header(t *testing.T, tree node.Node) node.Node {
	t.Helper()
	h, ok := tree.Find(node.ByTag("header"))
	if !ok {
		t.Fatal("layout has no header")
	}
	return h
}

func TestLayoutRootHeader(t *testing.T) {
	tree := Layout(LayoutProps{Path: "/", Title: "My Blog", Site: testSite, Year: 2024})

	h1, ok := header(t, tree).Find(node.ByTag("h1"))
	if !ok {
		t.Fatal("root page should render an h1")
	}
	if !h1.HasClass("main-heading") {
		t.Error("h1 should carry main-heading")
	}
	link, ok := h1.Find(node.ByTag("a"))
	if !ok {
		t.Fatal("h1 should wrap a link")
	}
	if href, _ := link.Attr("href"); href != "/" {
		t.Errorf("href = %q, want /", href)
	}
	if got := link.TextContent(); got != "My Blog" {
		t.Errorf("text = %q, want My Blog", got)
	}
	if v, _ := tree.Attr("data-is-root-path"); v != "true" {
		t.Errorf("data-is-root-path = %q, want true", v)
	}
}

func TestLayoutNonRootHeader(t *testing.T) {
	paths := []string{"/posts/hello", "/about/", "", "//", "/index.html"}
	for _, path := range paths {
		tree := Layout(LayoutProps{Path: path, Title: "My Blog", Site: testSite, Year: 2024})
		h := header(t, tree)

		if _, ok := h.Find(node.ByTag("h1")); ok {
			t.Errorf("%q: non-root page must not render a heading", path)
		}
		link, ok := h.Find(node.ByClass("header-link-home"))
		if !ok {
			t.Fatalf("%q: expected header-link-home", path)
		}
		if link.Tag != "a" {
			t.Errorf("%q: header link tag = %q", path, link.Tag)
		}
		if href, _ := link.Attr("href"); href != "/" {
			t.Errorf("%q: href = %q, want /", path, href)
		}
		if got := link.TextContent(); got != "My Blog" {
			t.Errorf("%q: text = %q", path, got)
		}
		if v, _ := tree.Attr("data-is-root-path"); v != "false" {
			t.Errorf("%q: data-is-root-path = %q, want false", path, v)
		}
	}
}

func TestLayoutHonorsPathPrefix(t *testing.T) {
	meta := testSite
	meta.PathPrefix = "/blog"

	root := Layout(LayoutProps{Path: "/blog/", Title: "My Blog", Site: meta, Year: 2024})
	if _, ok := root.Find(node.ByTag("h1")); !ok {
		t.Error("prefixed root should render a heading")
	}
	plain := Layout(LayoutProps{Path: "/", Title: "My Blog", Site: meta, Year: 2024})
	link, ok := plain.Find(node.ByClass("header-link-home"))
	if !ok {
		t.Fatal("expected header-link-home")
	}
	if href, _ := link.Attr("href"); href != "/blog/" {
		t.Errorf("href = %q, want /blog/", href)
	}
}

func TestLayoutFooterLinks(t *testing.T) {
	tree := Layout(LayoutProps{Path: "/", Title: "My Blog", Site: testSite, Year: 2024})
	footer, ok := tree.Find(node.ByTag("footer"))
	if !ok {
		t.Fatal("layout has no footer")
	}

	links := footer.FindAll(node.ByTag("a"))
	want := []string{"mailto:a@b.com", "https://github.com/tomek", "https://www.linkedin.com/in/tomekw"}
	if len(links) != len(want) {
		t.Fatalf("footer links = %d, want %d", len(links), len(want))
	}
	for i, w := range want {
		if href, _ := links[i].Attr("href"); href != w {
			t.Errorf("link %d href = %q, want %q", i, href, w)
		}
		if _, ok := links[i].Find(node.ByTag("svg")); !ok {
			t.Errorf("link %d has no icon", i)
		}
	}
	if text := footer.TextContent(); !strings.Contains(text, "© 2024 Jane Doe") {
		t.Errorf("footer text = %q", text)
	}
}

func TestLayoutDegradesWithMissingSocials(t *testing.T) {
	tree := Layout(LayoutProps{Path: "/", Title: "", Site: site.Metadata{}, Year: 2024})
	footer, _ := tree.Find(node.ByTag("footer"))
	links := footer.FindAll(node.ByTag("a"))
	want := []string{"mailto:", "https://github.com/", "https://www.linkedin.com/in/"}
	for i, w := range want {
		if href, _ := links[i].Attr("href"); href != w {
			t.Errorf("link %d href = %q, want %q", i, href, w)
		}
	}
}

func TestLayoutRendersContentSlot(t *testing.T) {
	tree := Layout(LayoutProps{
		Path:    "/",
		Title:   "My Blog",
		Content: templ.Raw(`<article>Hello</article>`),
		Site:    testSite,
		Year:    2024,
	})
	out := render(t, tree)
	if !strings.Contains(out, `<main><article>Hello</article></main>`) {
		t.Errorf("content not rendered in main: %s", out)
	}
	if !strings.HasPrefix(out, `<div class="global-wrapper" data-is-root-path="true"><header class="global-header"><h1 class="main-heading"><a href="/">My Blog</a></h1><form class="theme-toggle"`) {
		t.Errorf("unexpected markup: %s", out)
	}
}

func TestLayoutEscapesTitle(t *testing.T) {
	out := render(t, Layout(LayoutProps{Path: "/x", Title: "<script>", Site: testSite, Year: 2024}))
	if strings.Contains(out, "<script>") {
		t.Errorf("title not escaped: %s", out)
	}
}

func TestLayoutToggleReflectsTheme(t *testing.T) {
	for _, th := range []theme.Theme{theme.Light, theme.Dark} {
		tree := Layout(LayoutProps{Path: "/", Title: "My Blog", Site: testSite, Theme: theme.NewState(th), Year: 2024})
		toggle, ok := header(t, tree).Find(node.ByClass("theme-toggle"))
		if !ok {
			t.Fatal("header has no theme toggle")
		}
		if got := SwitchChecked(toggle); got != (th == theme.Dark) {
			t.Errorf("%s: checked = %v", th, got)
		}
	}
}

func TestDocument(t *testing.T) {
	body := Layout(LayoutProps{Path: "/", Title: "My Blog", Site: testSite, Year: 2024})
	var b strings.Builder
	err := Page(DocumentProps{
		Title:       PageTitle("About", "My Blog"),
		Description: "Notes",
		Site:        testSite,
		Theme:       theme.Dark,
		Body:        body,
	}).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := b.String()
	for _, want := range []string{
		"<!DOCTYPE html><html lang=\"en\">",
		"<title>About | My Blog</title>",
		`<meta name="description" content="Notes">`,
		`<body class="dark"><div class="global-wrapper"`,
		`href="/public/theme.css"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestPageTitle(t *testing.T) {
	tests := []struct{ page, site, want string }{
		{"", "My Blog", "My Blog"},
		{"My Blog", "My Blog", "My Blog"},
		{"About", "My Blog", "About | My Blog"},
	}
	for _, tt := range tests {
		if got := PageTitle(tt.page, tt.site); got != tt.want {
			t.Errorf("PageTitle(%q, %q) = %q, want %q", tt.page, tt.site, got, tt.want)
		}
	}
}

func TestErrorPages(t *testing.T) {
	if out := render(t, NotFound("/")); !strings.Contains(out, "Page not found") {
		t.Errorf("NotFound = %s", out)
	}
	if out := render(t, ServerError("/")); !strings.Contains(out, "Something went wrong") {
		t.Errorf("ServerError = %s", out)
	}
}
