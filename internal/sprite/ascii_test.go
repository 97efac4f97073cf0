package sprite_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbgaribay/PokeTerminal/internal/sprite"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestRenderDimensions(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		width      int
		wantH      int
	}{
		{"square sprite", 96, 96, 60, 30},
		{"wide sprite", 100, 50, 60, 15},
		{"tall sprite", 50, 100, 40, 40},
		{"tiny sprite keeps one row", 64, 1, 60, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encodePNG(t, solidImage(tt.srcW, tt.srcH, color.NRGBA{R: 120, G: 120, B: 120, A: 255}))
			art, err := sprite.Render(data, tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.width, art.Width)
			assert.Equal(t, tt.wantH, art.Height)
			require.Len(t, art.Lines, tt.wantH)
			for _, line := range art.Lines {
				assert.Len(t, []rune(line), tt.width)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 8), G: uint8(y * 8), B: 40, A: 255})
		}
	}
	data := encodePNG(t, img)

	first, err := sprite.Render(data, 48)
	require.NoError(t, err)
	second, err := sprite.Render(data, 48)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderFullyTransparent(t *testing.T) {
	data := encodePNG(t, solidImage(96, 96, color.NRGBA{}))
	art, err := sprite.Render(data, 60)
	require.NoError(t, err)
	require.Len(t, art.Lines, 30)
	for _, line := range art.Lines {
		assert.Equal(t, strings.Repeat(" ", 60), line)
	}
}

func TestRenderBrightness(t *testing.T) {
	white := encodePNG(t, solidImage(20, 20, color.NRGBA{R: 255, G: 255, B: 255, A: 255}))
	art, err := sprite.Render(white, 20)
	require.NoError(t, err)
	for _, line := range art.Lines {
		assert.Equal(t, strings.Repeat("@", 20), line)
	}

	// Opaque black sits in the sparsest bucket, same glyph as background.
	black := encodePNG(t, solidImage(20, 20, color.NRGBA{A: 255}))
	art, err = sprite.Render(black, 20)
	require.NoError(t, err)
	for _, line := range art.Lines {
		assert.Equal(t, strings.Repeat(" ", 20), line)
	}
}

func TestRenderBadBytes(t *testing.T) {
	_, err := sprite.Render([]byte("definitely not an image"), 60)
	var decodeErr sprite.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestBlank(t *testing.T) {
	art := sprite.Blank(10, 3)
	require.Len(t, art.Lines, 3)
	for _, line := range art.Lines {
		assert.Equal(t, "          ", line)
	}
}
