package pubshell

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/eringen/pubshell/site"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema. The author's
// social profiles are listed under sameAs.
func WebsiteJsonLD(meta site.Metadata) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     meta.Title,
	}
	if meta.SiteURL != "" {
		data["url"] = BuildURL(meta.SiteURL, meta.RootPath())
	}
	if meta.Description != "" {
		data["description"] = meta.Description
	}
	if meta.Author.Name != "" {
		author := map[string]interface{}{
			"@type": "Person",
			"name":  meta.Author.Name,
		}
		var sameAs []string
		if meta.Social.GitHub != "" {
			sameAs = append(sameAs, meta.Social.GitHubURL())
		}
		if meta.Social.LinkedIn != "" {
			sameAs = append(sameAs, meta.Social.LinkedInURL())
		}
		if len(sameAs) > 0 {
			author["sameAs"] = sameAs
		}
		data["author"] = author
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
