package content

import (
	"iter"
	"slices"
	"sort"
)

// Collection is the immutable result of Load: every post in the content dir,
// sorted by publish date descending.
type Collection struct {
	posts []Post
}

// Len returns the number of loaded posts, drafts included.
func (c *Collection) Len() int {
	return len(c.posts)
}

// Published returns the posts visible in the given mode as a lazy,
// restartable sequence. In Production drafts are skipped; in Development
// everything is yielded. Order is publish date descending with load order
// breaking ties.
func (c *Collection) Published(mode Mode) iter.Seq[Post] {
	return func(yield func(Post) bool) {
		for _, p := range c.posts {
			if mode == Production && p.Draft {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// PublishedPosts collects Published into a slice for template use.
func (c *Collection) PublishedPosts(mode Mode) []Post {
	return slices.Collect(c.Published(mode))
}

// Get returns the post with the given slug.
func (c *Collection) Get(slug string) (Post, bool) {
	for _, p := range c.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}

// Tags returns the sorted, deduplicated tag set of the posts visible in mode.
func (c *Collection) Tags(mode Mode) []string {
	set := make(map[string]struct{})
	for p := range c.Published(mode) {
		for _, t := range p.Tags {
			set[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
