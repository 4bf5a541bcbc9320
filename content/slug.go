package content

import (
	"path"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars    = regexp.MustCompile(`[^a-z0-9-]+`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify converts s to a URL-safe slug: accents are decomposed and stripped,
// the result lowercased, spaces become hyphens, and everything outside
// [a-z0-9-] is removed.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, _ := transform.String(t, s)

	out = strings.ToLower(out)
	out = strings.ReplaceAll(out, " ", "-")
	out = nonSlugChars.ReplaceAllString(out, "")
	out = multipleHyphens.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// slugFromPath derives the default slug for a content file from its path
// relative to the content dir: the extension is dropped and each path segment
// is slugified, with segments joined by hyphens so nested posts stay flat.
func slugFromPath(rel string) string {
	rel = strings.TrimSuffix(rel, path.Ext(rel))
	segments := strings.FieldsFunc(rel, func(r rune) bool { return r == '/' || r == '\\' })
	for i, seg := range segments {
		segments[i] = Slugify(seg)
	}
	return strings.Trim(strings.Join(segments, "-"), "-")
}
