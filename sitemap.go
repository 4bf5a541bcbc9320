package stanza

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"github.com/evanlk/stanza/content"
)

const sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// sitemapXML builds the urlset document for the homepage plus the given
// posts. Callers must pass the production post set: draft URLs never belong
// in a sitemap, whatever mode the build ran in.
func sitemapXML(cfg SiteConfig, posts []content.Post) ([]byte, error) {
	urls := []sitemapURL{
		{Loc: BuildURL(cfg.URL), ChangeFreq: "daily", Priority: "1.0"},
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:        BuildURL(cfg.URL, "blog", p.Slug),
			LastMod:    p.PubDate.Format(time.RFC3339),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}
	set := sitemapURLSet{XMLNS: sitemapXMLNS, URLs: urls}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func writeSitemap(path string, cfg SiteConfig, posts []content.Post) error {
	data, err := sitemapXML(cfg, posts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
