package stanza

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> of a
// rendered page.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // absolute og:image URL, optional
	ImageWidth  int
	ImageHeight int
}

// Cover describes a post's cover image after the asset step has run: the
// original copied asset plus a width-capped JPEG thumbnail for listings and
// og:image. Width and Height describe Thumb.
type Cover struct {
	Path   string // site-relative URL of the original image
	Thumb  string // site-relative URL of the thumbnail (equals Path when no resize was needed)
	Width  int
	Height int
}
