package stanza

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"github.com/evanlk/stanza/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// feedXML builds the RSS 2.0 document for the given posts. Like the sitemap,
// the feed only ever carries the production post set.
func feedXML(cfg SiteConfig, posts []content.Post) ([]byte, error) {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := BuildURL(cfg.URL, "blog", p.Slug)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Description,
			PubDate:     p.PubDate.Format(time.RFC1123Z),
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Name,
			Link:        cfg.URL,
			Description: cfg.Description,
			Items:       items,
		},
	}

	body, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal feed: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func writeFeed(path string, cfg SiteConfig, posts []content.Post) error {
	data, err := feedXML(cfg, posts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
