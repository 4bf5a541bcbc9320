package content

import (
	"reflect"
	"testing"
)

// setupCollection loads a fixture tree with two published posts and a draft.
// Post B is newer than post A; C shares A's date so load order breaks the tie.
func setupCollection(t *testing.T) *Collection {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "post-a.md", `---
title: Post A
description: Older post.
pubDate: 2026-01-05
tags: [go]
---
body a
`)
	writeFile(t, dir, "post-b.md", `---
title: Post B
description: Newer post.
pubDate: 2026-02-02
tags: [web]
---
body b
`)
	writeFile(t, dir, "post-c.md", `---
title: Post C
description: Same day as A, later in walk order.
pubDate: 2026-01-05
tags: [secret]
draft: true
---
body c
`)

	col, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return col
}

func slugs(posts []Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}

func TestPublishedProductionExcludesDrafts(t *testing.T) {
	col := setupCollection(t)

	got := slugs(col.PublishedPosts(Production))
	want := []string{"post-b", "post-a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Production posts = %v, want %v", got, want)
	}
}

func TestPublishedDevelopmentIncludesDrafts(t *testing.T) {
	col := setupCollection(t)

	got := slugs(col.PublishedPosts(Development))
	// Date descending; A and C tie on date, so walk order (a before c) holds.
	want := []string{"post-b", "post-a", "post-c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Development posts = %v, want %v", got, want)
	}
}

func TestPublishedOrderNonIncreasing(t *testing.T) {
	col := setupCollection(t)

	posts := col.PublishedPosts(Development)
	for i := 1; i < len(posts); i++ {
		if posts[i].PubDate.After(posts[i-1].PubDate) {
			t.Errorf("posts[%d] (%s) is newer than posts[%d] (%s)",
				i, posts[i].Slug, i-1, posts[i-1].Slug)
		}
	}
}

func TestPublishedRestartable(t *testing.T) {
	col := setupCollection(t)
	seq := col.Published(Production)

	var first, second []string
	for p := range seq {
		first = append(first, p.Slug)
	}
	for p := range seq {
		second = append(second, p.Slug)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second iteration %v differs from first %v", second, first)
	}

	// Early break must not panic or leak.
	for range seq {
		break
	}
}

func TestTags(t *testing.T) {
	col := setupCollection(t)

	if got, want := col.Tags(Production), []string{"go", "web"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Production tags = %v, want %v", got, want)
	}
	if got, want := col.Tags(Development), []string{"go", "secret", "web"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Development tags = %v, want %v", got, want)
	}
}

func TestGet(t *testing.T) {
	col := setupCollection(t)

	if p, ok := col.Get("post-b"); !ok || p.Title != "Post B" {
		t.Errorf("Get(post-b) = %+v, %v", p, ok)
	}
	if _, ok := col.Get("missing"); ok {
		t.Error("Get(missing) should report not found")
	}
}
