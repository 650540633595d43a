package pubshell

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/pubshell/markdown"
	"github.com/eringen/pubshell/site"
)

// ErrPageNotFound is returned when no page is registered for a route.
var ErrPageNotFound = errors.New("pubshell: page not found")

// Page is a content page ready to be wrapped by the layout.
type Page struct {
	Route       string // request path including the site prefix
	Title       string
	Description string // overrides the site description when set
	Content     templ.Component
}

// PageSet holds the pages of a site keyed by route, in declaration order.
type PageSet struct {
	byRoute map[string]Page
	order   []string
}

// LoadPages resolves every page in meta. Bodies come from the inline Body
// field or from File under content. Files ending in .md are rendered as
// markdown; anything else is an HTML fragment written as-is. The root page always exists; if the
// metadata does not declare one it renders an empty main slot.
func LoadPages(meta site.Metadata, content fs.FS) (*PageSet, error) {
	s := &PageSet{byRoute: make(map[string]Page)}
	for _, p := range meta.Pages {
		route := meta.Route(p)
		if _, dup := s.byRoute[route]; dup {
			return nil, fmt.Errorf("pubshell: duplicate page %s", route)
		}
		page := Page{Route: route, Title: p.Title, Content: templ.Raw(p.Body)}
		if p.File != "" {
			if content == nil {
				return nil, fmt.Errorf("pubshell: page %s: no content directory for %s", route, p.File)
			}
			data, err := fs.ReadFile(content, p.File)
			if err != nil {
				return nil, fmt.Errorf("pubshell: page %s: %w", route, err)
			}
			if isMarkdown(p.File) {
				if err := page.setMarkdown(string(data), meta.PathPrefix); err != nil {
					return nil, fmt.Errorf("pubshell: page %s: %w", route, err)
				}
			} else {
				page.Content = templ.Raw(string(data))
			}
		}
		s.add(page)
	}
	if _, ok := s.byRoute[meta.RootPath()]; !ok {
		s.add(Page{Route: meta.RootPath()})
	}
	return s, nil
}

func (s *PageSet) add(p Page) {
	s.byRoute[p.Route] = p
	s.order = append(s.order, p.Route)
}

// Lookup returns the page served at route.
func (s *PageSet) Lookup(route string) (Page, error) {
	p, ok := s.byRoute[route]
	if !ok {
		return Page{}, ErrPageNotFound
	}
	return p, nil
}

// All returns every page in declaration order.
func (s *PageSet) All() []Page {
	out := make([]Page, 0, len(s.order))
	for _, r := range s.order {
		out = append(out, s.byRoute[r])
	}
	return out
}

func isMarkdown(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".md" || ext == ".markdown"
}

// setMarkdown renders src as the page body. Front matter fills the title
// and description the metadata left empty.
func (p *Page) setMarkdown(src, prefix string) error {
	fm, body, err := markdown.Split(src)
	if err != nil {
		return err
	}
	if p.Title == "" {
		p.Title = fm.Title
	}
	p.Description = fm.Description
	p.Content = markdown.Markdown(body, prefix)
	return nil
}
