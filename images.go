package stanza

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const jpegQuality = 80

// probeImage returns the pixel dimensions of the image at path without
// decoding the full pixel data.
func probeImage(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode image config %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// writeThumbnail decodes the image at src, downscales it to maxWidth if it is
// wider, and writes the result as a JPEG to dst. It returns the thumbnail
// dimensions.
func writeThumbnail(src, dst string, maxWidth int) (int, int, error) {
	f, err := os.Open(src)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode image %s: %w", src, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxWidth {
		newH := h * maxWidth / w
		scaled := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
		w, h = maxWidth, newH
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, 0, err
	}
	out, err := os.Create(dst)
	if err != nil {
		return 0, 0, err
	}
	defer out.Close()

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return 0, 0, fmt.Errorf("encode jpeg %s: %w", dst, err)
	}
	return w, h, nil
}
