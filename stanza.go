// Package stanza is a static blog generator: it compiles a directory of
// markdown posts with YAML front matter into per-post pages, an index page,
// a sitemap, an RSS feed, and robots.txt, with static assets copied alongside.
//
// The post collection pipeline lives in the content package; this package
// orchestrates a build and serves the output locally during development.
package stanza

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/evanlk/stanza/content"
	"github.com/evanlk/stanza/markdown"
)

// Builder compiles a site once per call to Build. It holds no state between
// builds; every invocation re-reads the content tree.
type Builder struct {
	Config SiteConfig
	Log    *slog.Logger
}

// NewBuilder returns a Builder for cfg. A nil logger falls back to
// slog.Default.
func NewBuilder(cfg SiteConfig, log *slog.Logger) *Builder {
	cfg.setDefaults()
	if log == nil {
		log = slog.Default()
	}
	return &Builder{Config: cfg, Log: log}
}

// Build compiles the full site into Config.OutputDir. In Production mode
// draft posts are excluded from every artifact; in Development mode drafts
// get pages and appear on the index, but the sitemap and feed always carry
// the production set. Any content validation error is fatal and the output
// dir is left untouched.
func (b *Builder) Build(mode content.Mode) error {
	cfg := b.Config

	col, err := content.Load(cfg.ContentDir)
	if err != nil {
		return err
	}
	visible := col.PublishedPosts(mode)
	public := col.PublishedPosts(content.Production)
	b.Log.Info("content loaded", "posts", col.Len(), "visible", len(visible), "mode", mode.String())

	for i := range visible {
		html, err := markdown.Render([]byte(visible[i].Body))
		if err != nil {
			return fmt.Errorf("%s: %w", visible[i].SourcePath, err)
		}
		visible[i].HTML = html
	}

	renderer, err := newRenderer(cfg.LayoutsDir)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(cfg.OutputDir); err != nil {
		return fmt.Errorf("clean output dir %s: %w", cfg.OutputDir, err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", cfg.OutputDir, err)
	}

	if _, err := os.Stat(cfg.StaticDir); err == nil {
		if err := copyDirContents(cfg.StaticDir, cfg.OutputDir); err != nil {
			return fmt.Errorf("copy static assets: %w", err)
		}
	}

	covers := make(map[string]Cover)
	for _, p := range visible {
		if p.Image == "" {
			continue
		}
		cover, err := b.prepareCover(p)
		if err != nil {
			return err
		}
		covers[p.Slug] = cover
	}

	for i := range visible {
		p := &visible[i]
		data := pageData{
			Site:   cfg,
			Post:   p,
			Covers: covers,
			JSONLD: jsonLD(BlogPostingJsonLD(*p, cfg)),
			Meta: PageMeta{
				Title:       p.Title,
				Description: p.Description,
				URL:         BuildURL(cfg.URL, "blog", p.Slug),
				OGType:      "article",
			},
		}
		if cover, ok := covers[p.Slug]; ok {
			data.Cover = &cover
			data.Meta.Image = absURL(cfg.URL, cover.Thumb)
			data.Meta.ImageWidth = cover.Width
			data.Meta.ImageHeight = cover.Height
		}
		out := filepath.Join(cfg.OutputDir, "blog", p.Slug, "index.html")
		if err := renderer.renderToFile(out, postLayout, data); err != nil {
			return err
		}
	}

	indexData := pageData{
		Site:   cfg,
		Posts:  visible,
		Tags:   col.Tags(mode),
		Covers: covers,
		JSONLD: jsonLD(WebsiteJsonLD(cfg)),
		Meta: PageMeta{
			Title:       cfg.Name,
			Description: cfg.Description,
			URL:         BuildURL(cfg.URL),
			OGType:      "website",
		},
	}
	if err := renderer.renderToFile(filepath.Join(cfg.OutputDir, "index.html"), indexLayout, indexData); err != nil {
		return err
	}

	if err := writeSitemap(filepath.Join(cfg.OutputDir, "sitemap.xml"), cfg, public); err != nil {
		return err
	}
	if err := writeFeed(filepath.Join(cfg.OutputDir, "feed.xml"), cfg, public); err != nil {
		return err
	}
	if err := writeRobots(filepath.Join(cfg.OutputDir, "robots.txt"), cfg); err != nil {
		return err
	}

	b.Log.Info("site built", "output", cfg.OutputDir, "pages", len(visible)+1)
	return nil
}

// prepareCover copies nothing itself (static assets are already in the
// output) but probes the cover's dimensions and writes a width-capped JPEG
// thumbnail when the source is wider than CoverMaxWidth. Cover Width/Height
// describe Thumb, which is what og:image points at.
func (b *Builder) prepareCover(p content.Post) (Cover, error) {
	cfg := b.Config
	rel := strings.TrimPrefix(p.Image, "/")
	src := filepath.Join(cfg.StaticDir, filepath.FromSlash(rel))

	w, h, err := probeImage(src)
	if err != nil {
		return Cover{}, fmt.Errorf("post %s: cover image %q: %w", p.SourcePath, p.Image, err)
	}
	cover := Cover{Path: "/" + rel, Thumb: "/" + rel, Width: w, Height: h}

	if w > cfg.CoverMaxWidth {
		thumbRel := path.Join("thumbs", p.Slug+".jpg")
		tw, th, err := writeThumbnail(src, filepath.Join(cfg.OutputDir, filepath.FromSlash(thumbRel)), cfg.CoverMaxWidth)
		if err != nil {
			return Cover{}, fmt.Errorf("post %s: cover image %q: %w", p.SourcePath, p.Image, err)
		}
		cover.Thumb = "/" + thumbRel
		cover.Width = tw
		cover.Height = th
	}
	return cover, nil
}
