package sketchify

import (
	"testing"

	"github.com/esimov/sketchify/raster"
	"github.com/stretchr/testify/assert"
)

const (
	imgWidth  = 10
	imgHeight = 10
)

func uniformRGB(w, h int, r, g, b uint8) *raster.Image {
	img := raster.New(w, h, raster.RGB)
	for i := 0; i < len(img.Pix); i += raster.RGB {
		img.Pix[i+0], img.Pix[i+1], img.Pix[i+2] = r, g, b
	}
	return img
}

func TestGrayscale(t *testing.T) {
	assert := assert.New(t)

	gray := grayscale(uniformRGB(imgWidth, imgHeight, 177, 177, 177))
	assert.Len(gray, imgWidth*imgHeight)
	for _, v := range gray {
		assert.Equal(uint8(177), v)
	}

	testCases := []struct {
		name     string
		r, g, b  uint8
		expected uint8
	}{
		{name: "black", expected: 0},
		{name: "white", r: 255, g: 255, b: 255, expected: 255},
		{name: "red", r: 255, expected: 76},
		{name: "green", g: 255, expected: 150},
		{name: "blue", b: 255, expected: 29},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gray := grayscale(uniformRGB(1, 1, tc.r, tc.g, tc.b))
			assert.Equal(tc.expected, gray[0])
		})
	}
}

func TestInvert(t *testing.T) {
	assert.Equal(t, []uint8{255, 128, 0}, invert([]uint8{0, 127, 255}))
}
