package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return &buf
}

func TestNormalizeSmallImage(t *testing.T) {
	data, mime, err := Normalize(encodePNG(t, 100, 60))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if mime != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", mime)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 60 {
		t.Errorf("expected 100x60 output, got %v", img.Bounds())
	}
}

func TestNormalizeDownscalesLargeImage(t *testing.T) {
	data, _, err := Normalize(encodePNG(t, 1600, 400))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if img.Bounds().Dx() != MaxDimension {
		t.Errorf("expected width %d, got %d", MaxDimension, img.Bounds().Dx())
	}
	if img.Bounds().Dy() != 200 {
		t.Errorf("expected height 200, got %d", img.Bounds().Dy())
	}
}

func TestNormalizeRejectsNonImage(t *testing.T) {
	_, _, err := Normalize(strings.NewReader("definitely not an image"))
	if err == nil {
		t.Error("expected error for non-image input")
	}
}
