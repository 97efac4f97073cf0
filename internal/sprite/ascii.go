// Package sprite renders sprite images as fixed-width ASCII art.
package sprite

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"golang.org/x/image/draw"
)

const (
	// DefaultWidth is the art width used when the caller does not pick one.
	DefaultWidth = 60

	// Terminal cells are roughly twice as tall as wide.
	aspectCorrection = 0.5

	// Pixels below this alpha render as background.
	alphaThreshold = 128
)

// Brightness ramp, sparsest to densest.
const ramp = " .:-=+*#%@"

// Art is a rectangular character grid. Every line has exactly Width runes.
type Art struct {
	Lines  []string
	Width  int
	Height int
}

// DecodeError reports sprite bytes that could not be decoded as an image.
type DecodeError struct {
	Err error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("decode sprite: %v", e.Err)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}

// Render converts raw image bytes into an Art grid of the given width. The
// height follows the source aspect ratio corrected for terminal cell shape.
// Identical bytes and width always produce identical output.
func Render(data []byte, width int) (Art, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Art{}, DecodeError{Err: err}
	}
	return FromImage(src, width), nil
}

// FromImage renders an already decoded image.
func FromImage(src image.Image, width int) Art {
	if width <= 0 {
		width = DefaultWidth
	}
	bounds := src.Bounds()
	height := int(math.Round(float64(width) * float64(bounds.Dy()) / float64(bounds.Dx()) * aspectCorrection))
	if height < 1 {
		height = 1
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, bounds, draw.Src, nil)

	lines := make([]string, 0, height)
	row := make([]byte, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := scaled.NRGBAAt(x, y)
			row[x] = cell(px.R, px.G, px.B, px.A)
		}
		lines = append(lines, string(row))
	}
	return Art{Lines: lines, Width: width, Height: height}
}

func cell(r, g, b, a uint8) byte {
	if a < alphaThreshold {
		return ' '
	}
	lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	idx := int(lum / 256 * float64(len(ramp)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return ramp[idx]
}

// Blank returns a width×height grid of spaces, used as the placeholder when a
// sprite is missing or failed to decode.
func Blank(width, height int) Art {
	if width <= 0 {
		width = DefaultWidth
	}
	if height < 1 {
		height = 1
	}
	lines := make([]string, height)
	blank := string(bytes.Repeat([]byte{' '}, width))
	for i := range lines {
		lines[i] = blank
	}
	return Art{Lines: lines, Width: width, Height: height}
}
