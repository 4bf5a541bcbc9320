// Package content implements the post collection pipeline: it loads markdown
// posts with YAML front matter from a content directory, validates them,
// rejects duplicate slugs, and exposes the result as a date-ordered collection
// for the build, sitemap, and feed steps.
package content

import (
	"html/template"
	"time"
)

// Post is a single blog post loaded from a content file. Posts are read-only
// after Load returns.
type Post struct {
	Slug        string
	Title       string
	Description string
	PubDate     time.Time
	Tags        []string
	Draft       bool
	Image       string

	Body       string        // markdown source after the front matter block
	HTML       template.HTML // filled in by the build step
	Link       string        // site-relative permalink, e.g. /blog/my-post/
	SourcePath string
}

// Mode selects which posts are visible in a listing.
type Mode int

const (
	// Production excludes drafts from every artifact.
	Production Mode = iota
	// Development includes drafts so they can be previewed locally.
	Development
)

func (m Mode) String() string {
	if m == Development {
		return "development"
	}
	return "production"
}
