package pubshell

import (
	"encoding/xml"
	"io"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// writeSitemap lists every page. Locations are absolute when the site URL
// is configured and root-relative otherwise.
func (a *App) writeSitemap(w io.Writer) error {
	urls := make([]sitemapURL, 0, len(a.Pages.All()))
	for _, p := range a.Pages.All() {
		loc := p.Route
		if a.Site.SiteURL != "" {
			loc = BuildURL(a.Site.SiteURL, p.Route)
		}
		urls = append(urls, sitemapURL{Loc: loc})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(sitemap)
}
