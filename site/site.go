// Package site holds the site metadata that the layout reads: the author,
// the social profile handles and the content pages. Metadata is loaded once
// from a YAML file and treated as read-only afterwards.
package site

import (
	"strings"
)

// Author describes the person the site belongs to.
type Author struct {
	Name string `yaml:"name" validate:"required"`
}

// Social holds the profile handles used to build the footer links.
type Social struct {
	GitHub   string `yaml:"github" validate:"required,handle"`
	LinkedIn string `yaml:"linkedin" validate:"required,handle"`
	Email    string `yaml:"email" validate:"required,email"`
}

// Page is a content page wrapped by the layout. Body is an inline HTML
// fragment; File names a fragment under the content directory.
type Page struct {
	Path  string `yaml:"path" validate:"required,startswith=/"`
	Title string `yaml:"title"`
	File  string `yaml:"file"`
	Body  string `yaml:"body"`
}

// Metadata is the site-wide configuration.
type Metadata struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	SiteURL     string `yaml:"siteUrl"`
	PathPrefix  string `yaml:"pathPrefix"`
	Author      Author `yaml:"author"`
	Social      Social `yaml:"social"`
	Pages       []Page `yaml:"pages" validate:"unique=Path,dive"`
}

// RootPath is the home-page route: the path prefix followed by "/".
func (m Metadata) RootPath() string {
	return strings.TrimRight(m.PathPrefix, "/") + "/"
}

// Link is an outbound footer link.
type Link struct {
	Name string // icon name: envelope, github, linkedin
	Href string
}

// ContactURL returns "mailto:" followed by the configured email.
func (s Social) ContactURL() string {
	return "mailto:" + s.Email
}

// GitHubURL returns the code-hosting profile URL for the configured handle.
func (s Social) GitHubURL() string {
	return "https://github.com/" + s.GitHub
}

// LinkedInURL returns the professional-network profile URL.
func (s Social) LinkedInURL() string {
	return "https://www.linkedin.com/in/" + s.LinkedIn
}

// Links returns the footer links in display order. Handles are concatenated
// as-is; empty values produce malformed links rather than an error.
func (s Social) Links() []Link {
	return []Link{
		{Name: "envelope", Href: s.ContactURL()},
		{Name: "github", Href: s.GitHubURL()},
		{Name: "linkedin", Href: s.LinkedInURL()},
	}
}

// Missing lists the author and social fields left empty.
func (m Metadata) Missing() []string {
	var out []string
	if strings.TrimSpace(m.Author.Name) == "" {
		out = append(out, "author.name")
	}
	if strings.TrimSpace(m.Social.GitHub) == "" {
		out = append(out, "social.github")
	}
	if strings.TrimSpace(m.Social.LinkedIn) == "" {
		out = append(out, "social.linkedin")
	}
	if strings.TrimSpace(m.Social.Email) == "" {
		out = append(out, "social.email")
	}
	return out
}

// Page returns the page registered for path.
func (m Metadata) Page(path string) (Page, bool) {
	path = CleanPath(path)
	for _, p := range m.Pages {
		if CleanPath(p.Path) == path {
			return p, true
		}
	}
	return Page{}, false
}

// Route returns the request path a page is served at, including the prefix.
func (m Metadata) Route(p Page) string {
	return strings.TrimRight(m.PathPrefix, "/") + CleanPath(p.Path)
}

// CleanPath turns a declared page path into its directory-style URL path:
// a leading slash, a single trailing slash, no surrounding space.
// "posts/hello" and "/posts/hello" both become "/posts/hello/".
func CleanPath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	return "/" + p + "/"
}
