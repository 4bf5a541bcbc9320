package content

import (
	"fmt"
	"strings"
)

// SchemaError reports a content file whose front matter is missing a required
// field or carries a malformed value. It is fatal at build time.
type SchemaError struct {
	File   string
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: field %q: %s", e.File, e.Field, e.Reason)
}

// DuplicateSlugError reports two content files resolving to the same slug.
// Accepting the second file would make the published URL depend on walk
// order, so the build refuses it.
type DuplicateSlugError struct {
	Slug  string
	File  string
	Other string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("%s: slug %q already used by %s", e.File, e.Slug, e.Other)
}

// LoadError aggregates every validation problem found across the content
// directory so a single build reports all broken files, not just the first.
type LoadError struct {
	Errs []error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d invalid content file(s):", len(e.Errs))
	for _, err := range e.Errs {
		b.WriteString("\n  ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes the individual errors to errors.Is/errors.As.
func (e *LoadError) Unwrap() []error {
	return e.Errs
}
