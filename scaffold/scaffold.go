// Package scaffold provides the embedded site skeleton used by `stanza new`.
package scaffold

import "embed"

// Templates contains the site skeleton: config, layouts, sample content, and
// static assets. Files with a .tmpl suffix use Go text/template syntax.
//
//go:embed all:templates
var Templates embed.FS
