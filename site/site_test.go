package site

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSocialLinks(t *testing.T) {
	s := Social{GitHub: "tomek", LinkedIn: "tomekw", Email: "a@b.com"}

	if got := s.GitHubURL(); got != "https://github.com/tomek" {
		t.Errorf("GitHubURL = %q", got)
	}
	if got := s.LinkedInURL(); got != "https://www.linkedin.com/in/tomekw" {
		t.Errorf("LinkedInURL = %q", got)
	}
	if got := s.ContactURL(); got != "mailto:a@b.com" {
		t.Errorf("ContactURL = %q", got)
	}

	links := s.Links()
	want := []Link{
		{Name: "envelope", Href: "mailto:a@b.com"},
		{Name: "github", Href: "https://github.com/tomek"},
		{Name: "linkedin", Href: "https://www.linkedin.com/in/tomekw"},
	}
	if len(links) != len(want) {
		t.Fatalf("len(Links) = %d, want %d", len(links), len(want))
	}
	for i := range want {
		if links[i] != want[i] {
			t.Errorf("Links[%d] = %+v, want %+v", i, links[i], want[i])
		}
	}
}

func TestSocialLinksAreConcatenation(t *testing.T) {
	tests := []Social{
		{},
		{GitHub: "a b", LinkedIn: "x/y", Email: "not-an-email"},
		{GitHub: "ünï", LinkedIn: "?", Email: "@"},
	}
	for _, s := range tests {
		if got := s.ContactURL(); got != "mailto:"+s.Email {
			t.Errorf("ContactURL(%q) = %q", s.Email, got)
		}
		if got := s.GitHubURL(); got != "https://github.com/"+s.GitHub {
			t.Errorf("GitHubURL(%q) = %q", s.GitHub, got)
		}
		if got := s.LinkedInURL(); got != "https://www.linkedin.com/in/"+s.LinkedIn {
			t.Errorf("LinkedInURL(%q) = %q", s.LinkedIn, got)
		}
	}
}

func TestRootPath(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"", "/"},
		{"/blog", "/blog/"},
		{"/blog/", "/blog/"},
	}
	for _, tt := range tests {
		m := Metadata{PathPrefix: tt.prefix}
		if got := m.RootPath(); got != tt.want {
			t.Errorf("RootPath(%q) = %q, want %q", tt.prefix, got, tt.want)
		}
	}
}

func TestRoute(t *testing.T) {
	m := Metadata{PathPrefix: "/blog"}
	if got := m.Route(Page{Path: "/about/"}); got != "/blog/about/" {
		t.Errorf("Route = %q", got)
	}
	if got := m.Route(Page{Path: "/"}); got != m.RootPath() {
		t.Errorf("Route(/) = %q, want %q", got, m.RootPath())
	}
}

func TestRouteAddsTrailingSlash(t *testing.T) {
	tests := []struct {
		prefix, path, want string
	}{
		{"", "/posts/hello", "/posts/hello/"},
		{"", "posts/hello", "/posts/hello/"},
		{"", "/posts/hello//", "/posts/hello/"},
		{"", "", "/"},
		{"/blog", "/about", "/blog/about/"},
		{"/blog", "/", "/blog/"},
	}
	for _, tt := range tests {
		m := Metadata{PathPrefix: tt.prefix}
		if got := m.Route(Page{Path: tt.path}); got != tt.want {
			t.Errorf("Route(%q, %q) = %q, want %q", tt.prefix, tt.path, got, tt.want)
		}
	}
}

func TestParseNormalizesPagePaths(t *testing.T) {
	m, err := Parse([]byte("pages:\n  - path: /posts/hello\n  - path: about\n  - path: /\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	var got []string
	for _, p := range m.Pages {
		got = append(got, p.Path)
	}
	if strings.Join(got, " ") != "/posts/hello/ /about/ /" {
		t.Errorf("paths = %v", got)
	}
	if _, ok := m.Page("/posts/hello"); !ok {
		t.Error("Page should match a path without the trailing slash")
	}
}

func TestParseRejectsDuplicateAfterNormalizing(t *testing.T) {
	m, err := Parse([]byte(sampleYAML + "  - path: /about\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := Validate(m); err == nil {
		t.Error("/about and /about/ are the same page and should fail validation")
	}
}

const sampleYAML = `
title: My Blog
description: Notes
siteUrl: https://example.com
pathPrefix: blog/
author:
  name: Jane Doe
social:
  github: tomek
  linkedin: tomekw
  email: a@b.com
pages:
  - path: /
    body: "<p>home</p>"
  - path: /about/
    title: About
    file: about.html
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Title != "My Blog" {
		t.Errorf("Title = %q", m.Title)
	}
	if m.PathPrefix != "/blog" {
		t.Errorf("PathPrefix = %q, want /blog", m.PathPrefix)
	}
	if m.Author.Name != "Jane Doe" {
		t.Errorf("Author.Name = %q", m.Author.Name)
	}
	if m.Social != (Social{GitHub: "tomek", LinkedIn: "tomekw", Email: "a@b.com"}) {
		t.Errorf("Social = %+v", m.Social)
	}
	if len(m.Pages) != 2 {
		t.Fatalf("len(Pages) = %d, want 2", len(m.Pages))
	}
	p, ok := m.Page("/about/")
	if !ok || p.File != "about.html" || p.Title != "About" {
		t.Errorf("Page(/about/) = %+v, %v", p, ok)
	}
	if _, ok := m.Page("/missing/"); ok {
		t.Error("Page(/missing/) should not be found")
	}
	if err := Validate(m); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
	if missing := m.Missing(); len(missing) != 0 {
		t.Errorf("Missing = %v, want none", missing)
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse([]byte("title: [unterminated\n"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Title != "My Blog" {
		t.Errorf("Title = %q", m.Title)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	var pe *ParseError
	if !errors.As(err, &pe) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v", err)
	}
}

func TestValidateRejectsIncompleteMetadata(t *testing.T) {
	tests := []struct {
		name string
		meta Metadata
		want string
	}{
		{"empty", Metadata{}, "Author.Name"},
		{"bad email", Metadata{Author: Author{Name: "J"}, Social: Social{GitHub: "a", LinkedIn: "b", Email: "nope"}}, "Email"},
		{"bad handle", Metadata{Author: Author{Name: "J"}, Social: Social{GitHub: "a b", LinkedIn: "b", Email: "a@b.com"}}, "GitHub"},
		{"duplicate pages", Metadata{
			Author: Author{Name: "J"},
			Social: Social{GitHub: "a", LinkedIn: "b", Email: "a@b.com"},
			Pages:  []Page{{Path: "/"}, {Path: "/"}},
		}, "Pages"},
		{"relative page", Metadata{
			Author: Author{Name: "J"},
			Social: Social{GitHub: "a", LinkedIn: "b", Email: "a@b.com"},
			Pages:  []Page{{Path: "about"}},
		}, "Path"},
	}
	for _, tt := range tests {
		err := Validate(tt.meta)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.want)
		}
	}
}

func TestMissing(t *testing.T) {
	m := Metadata{Social: Social{GitHub: "tomek"}}
	got := strings.Join(m.Missing(), ",")
	if got != "author.name,social.linkedin,social.email" {
		t.Errorf("Missing = %q", got)
	}
}
