package stanza

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestProbeImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	writePNG(t, path, 64, 48)

	w, h, err := probeImage(path)
	if err != nil {
		t.Fatalf("probeImage failed: %v", err)
	}
	if w != 64 || h != 48 {
		t.Errorf("dimensions = %dx%d, want 64x48", w, h)
	}
}

func TestProbeImageMissing(t *testing.T) {
	if _, _, err := probeImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("probeImage should fail on a missing file")
	}
}

func TestWriteThumbnailDownscales(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "wide.png")
	dst := filepath.Join(dir, "out", "wide.jpg")
	writePNG(t, src, 400, 200)

	w, h, err := writeThumbnail(src, dst, 100)
	if err != nil {
		t.Fatalf("writeThumbnail failed: %v", err)
	}
	if w != 100 || h != 50 {
		t.Errorf("thumbnail = %dx%d, want 100x50", w, h)
	}

	gotW, gotH, err := probeImage(dst)
	if err != nil {
		t.Fatalf("probe thumbnail: %v", err)
	}
	if gotW != 100 || gotH != 50 {
		t.Errorf("written thumbnail = %dx%d, want 100x50", gotW, gotH)
	}
}

func TestWriteThumbnailKeepsSmallImages(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "small.png")
	dst := filepath.Join(dir, "small.jpg")
	writePNG(t, src, 50, 40)

	w, h, err := writeThumbnail(src, dst, 100)
	if err != nil {
		t.Fatalf("writeThumbnail failed: %v", err)
	}
	if w != 50 || h != 40 {
		t.Errorf("thumbnail = %dx%d, want 50x40", w, h)
	}
}
