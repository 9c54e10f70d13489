package renderer

import (
	"image/color"
	"strings"
	"testing"
)

func TestImage_SetAndAt(t *testing.T) {
	img := NewImage(3, 2)

	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("Expected 3x2 image, got %dx%d", img.Width(), img.Height())
	}

	p := Pixel{R: 10, G: 20, B: 30}
	img.Set(2, 1, p)

	if got := img.At(2, 1); got != p {
		t.Errorf("Expected %v, got %v", p, got)
	}
	if got := img.At(0, 0); got != (Pixel{}) {
		t.Errorf("Expected untouched pixel to be black, got %v", got)
	}
}

func TestImage_WritePPMBlack(t *testing.T) {
	// Golden output for a 2x2 all-black image
	img := NewImage(2, 2)

	var sb strings.Builder
	if err := img.WritePPM(&sb); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n0 0 0\n0 0 0\n0 0 0\n0 0 0\n"
	if sb.String() != expected {
		t.Errorf("Expected %q, got %q", expected, sb.String())
	}
}

func TestImage_WritePPMRowMajorTopDown(t *testing.T) {
	// Row 0 is the top visual row and serializes first
	img := NewImage(2, 2)
	img.Set(0, 0, Pixel{R: 255})         // Top left, red
	img.Set(1, 1, Pixel{G: 128, B: 255}) // Bottom right

	var sb strings.Builder
	if err := img.WritePPM(&sb); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n255 0 0\n0 0 0\n0 0 0\n0 128 255\n"
	if sb.String() != expected {
		t.Errorf("Expected %q, got %q", expected, sb.String())
	}
}

func TestImage_ToRGBA(t *testing.T) {
	img := NewImage(2, 1)
	img.Set(1, 0, Pixel{R: 1, G: 2, B: 3})

	rgba := img.ToRGBA()

	if got := rgba.RGBAAt(1, 0); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("Expected RGBA {1 2 3 255}, got %v", got)
	}
	if got := rgba.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("Expected opaque black, got %v", got)
	}
}
