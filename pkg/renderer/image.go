package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// Pixel is a single RGB pixel with 8-bit channels
type Pixel struct {
	R, G, B uint8
}

// Image is a fixed-size row-major grid of pixels. Row 0 is the top visual
// row; the render loop flips y when writing so exports read top-down.
type Image struct {
	width  int
	height int
	pixels []Pixel
}

// NewImage creates a black image of the given dimensions
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]Pixel, width*height),
	}
}

// Width returns the image width in pixels
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels
func (img *Image) Height() int { return img.height }

// Set writes the pixel at column x, row y
func (img *Image) Set(x, y int, p Pixel) {
	img.pixels[y*img.width+x] = p
}

// At returns the pixel at column x, row y
func (img *Image) At(x, y int) Pixel {
	return img.pixels[y*img.width+x]
}

// WritePPM serializes the image as a plain-text P3 pixel map: the header
// line, dimensions, max channel value 255, then one "R G B" triple per
// pixel in row-major order starting from the top row.
func (img *Image) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.width, img.height); err != nil {
		return err
	}

	for _, p := range img.pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ToRGBA converts the image to a standard library RGBA image for encoders
// like image/png
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			p := img.At(x, y)
			rgba.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return rgba
}
