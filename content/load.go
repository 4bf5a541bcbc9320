package content

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// postMeta is the front matter schema of a content file. Draft is a pointer
// so an absent flag defaults to false while a malformed one fails decoding.
type postMeta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	PubDate     string   `yaml:"pubDate"`
	Tags        []string `yaml:"tags"`
	Draft       *bool    `yaml:"draft"`
	Slug        string   `yaml:"slug"`
	Image       string   `yaml:"image"`
}

var dateFormats = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// validate checks a decoded front matter block and returns every problem it
// finds. It is a pure function: the caller decides whether any result is
// fatal, which lets Load report all broken files in one pass.
func validate(path string, meta postMeta) []*SchemaError {
	var errs []*SchemaError
	if strings.TrimSpace(meta.Title) == "" {
		errs = append(errs, &SchemaError{File: path, Field: "title", Reason: "required"})
	}
	if strings.TrimSpace(meta.Description) == "" {
		errs = append(errs, &SchemaError{File: path, Field: "description", Reason: "required"})
	}
	if meta.PubDate == "" {
		errs = append(errs, &SchemaError{File: path, Field: "pubDate", Reason: "required"})
	} else if _, ok := parseDate(meta.PubDate); !ok {
		errs = append(errs, &SchemaError{
			File:   path,
			Field:  "pubDate",
			Reason: fmt.Sprintf("invalid date %q, want YYYY-MM-DD or RFC3339", meta.PubDate),
		})
	}
	for _, tag := range meta.Tags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, &SchemaError{File: path, Field: "tags", Reason: "empty tag"})
			break
		}
	}
	return errs
}

// normalizeTags lowercases and trims tags, dropping duplicates while keeping
// first-seen order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	var out []string
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Load walks dir, parses every .md file into a Post, and returns the
// collection sorted by publish date descending (ties keep walk order).
//
// Load validates each file with validate and rejects duplicate slugs. All
// failures across the whole tree are gathered into a single *LoadError so the
// author sees every broken file at once; any error means the build must not
// proceed. Loading an unchanged tree twice yields equal collections.
func Load(dir string) (*Collection, error) {
	var (
		posts   []Post
		errs    []error
		slugSrc = make(map[string]string)
	)

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}

		var meta postMeta
		body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
		if err != nil {
			errs = append(errs, &SchemaError{File: rel, Field: "front matter", Reason: err.Error()})
			return nil
		}

		if issues := validate(rel, meta); len(issues) > 0 {
			for _, issue := range issues {
				errs = append(errs, issue)
			}
			return nil
		}

		slug := meta.Slug
		if slug == "" {
			slug = slugFromPath(filepath.ToSlash(rel))
		} else {
			slug = Slugify(slug)
		}
		if slug == "" {
			errs = append(errs, &SchemaError{File: rel, Field: "slug", Reason: "resolves to an empty slug"})
			return nil
		}
		if other, ok := slugSrc[slug]; ok {
			errs = append(errs, &DuplicateSlugError{Slug: slug, File: rel, Other: other})
			return nil
		}
		slugSrc[slug] = rel

		pubDate, _ := parseDate(meta.PubDate)
		draft := meta.Draft != nil && *meta.Draft

		posts = append(posts, Post{
			Slug:        slug,
			Title:       meta.Title,
			Description: meta.Description,
			PubDate:     pubDate,
			Tags:        normalizeTags(meta.Tags),
			Draft:       draft,
			Image:       meta.Image,
			Body:        string(body),
			Link:        "/blog/" + slug + "/",
			SourcePath:  rel,
		})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk content dir %s: %w", dir, walkErr)
	}
	if len(errs) > 0 {
		return nil, &LoadError{Errs: errs}
	}

	// WalkDir visits files in lexical order, so the pre-sort order is stable
	// across runs and the stable sort makes it the tie-breaker.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PubDate.After(posts[j].PubDate)
	})

	return &Collection{posts: posts}, nil
}
