package stanza

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/evanlk/stanza/content"
	"github.com/evanlk/stanza/markdown"
)

// Layout names every site must provide in its layouts dir.
const (
	postLayout  = "post.html"
	indexLayout = "index.html"
)

// pageData is the data context passed to every layout.
type pageData struct {
	Site   SiteConfig
	Meta   PageMeta
	Post   *content.Post   // set on post pages
	Posts  []content.Post  // set on the index page
	Tags   []string        // set on the index page
	Cover  *Cover          // set on post pages with a cover image
	Covers map[string]Cover // by slug, for index cards
	JSONLD template.JS
}

// Renderer holds the parsed layout tree: every .html file under the layouts
// dir, addressable by base name, sharing one define namespace so partials
// work across files.
type Renderer struct {
	tpl *template.Template
}

// jsonLD marks a JSON-LD document as safe for inclusion inside a
// <script type="application/ld+json"> block. Inputs come only from the
// json.Marshal-backed builders in helpers.go.
func jsonLD(s string) template.JS {
	return template.JS(s)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"dateFormat": func(layout string, t time.Time) string { return t.Format(layout) },
		"joinTags":   JoinTags,
		"safeURL":    markdown.SafeURL,
		"buildURL":   BuildURL,
	}
}

func newRenderer(layoutsDir string) (*Renderer, error) {
	var files []string
	err := filepath.WalkDir(layoutsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find layouts in %s: %w", layoutsDir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .html layouts found in %s", layoutsDir)
	}

	tpl, err := template.New("").Funcs(templateFuncs()).ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}
	for _, required := range []string{postLayout, indexLayout} {
		if tpl.Lookup(required) == nil {
			return nil, fmt.Errorf("required layout %s not found in %s", required, layoutsDir)
		}
	}
	return &Renderer{tpl: tpl}, nil
}

func (r *Renderer) render(w io.Writer, layout string, data pageData) error {
	return r.tpl.ExecuteTemplate(w, layout, data)
}

// renderToFile writes one rendered page, creating parent directories.
func (r *Renderer) renderToFile(path, layout string, data pageData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := r.render(f, layout, data); err != nil {
		return fmt.Errorf("render %s with %s: %w", path, layout, err)
	}
	return f.Close()
}
