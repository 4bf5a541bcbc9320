package stanza

import (
	"fmt"
	"os"
)

// robotsTxt allows everything and points crawlers at the sitemap.
func robotsTxt(cfg SiteConfig) []byte {
	return []byte(fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %ssitemap.xml\n", BuildURL(cfg.URL)))
}

func writeRobots(path string, cfg SiteConfig) error {
	return os.WriteFile(path, robotsTxt(cfg), 0o644)
}
