package sketchify

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/esimov/sketchify/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 8), G: uint8(y * 8), B: 120, A: 255})
		}
	}
	return img
}

func TestImage_OutputFormat(t *testing.T) {
	testCases := []struct {
		name   string
		format imaging.Format
	}{
		{name: "out.png", format: imaging.PNG},
		{name: "out.JPG", format: imaging.JPEG},
		{name: "dir/out.jpeg", format: imaging.JPEG},
		{name: "out.bmp", format: imaging.BMP},
		{name: "out", format: imaging.PNG},
		{name: "out.xyz", format: imaging.PNG},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.format, outputFormat(tc.name))
		})
	}
}

func TestImage_SketchName(t *testing.T) {
	testCases := map[string]string{
		"photo.png":      "photo.png",
		"photo.JPG":      "photo.JPG",
		"photo.bmp":      "photo.bmp",
		"photo.webp":     "photo.png",
		"dir/photo.webp": "dir/photo.png",
		"photo":          "photo.png",
	}
	for in, want := range testCases {
		assert.Equal(t, want, sketchName(in), in)
	}
}

func TestImage_EncodeDecode(t *testing.T) {
	src := makeNRGBA(20, 10)

	for _, ext := range []string{".png", ".jpg", ".bmp"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "img"+ext)
			f, err := os.Create(path)
			require.NoError(t, err)
			require.NoError(t, encodeImg(f, src))
			require.NoError(t, f.Close())

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			img, err := decodeImg(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, src.Bounds(), img.Bounds())
		})
	}
}

func TestImage_EncodeStreamAsPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encodeImg(&buf, makeNRGBA(4, 4)))

	_, err := png.Decode(&buf)
	assert.NoError(t, err)
}

func TestImage_DecodeInvalid(t *testing.T) {
	_, err := decodeImg(bytes.NewReader([]byte("definitely not an image")))
	assert.True(t, errors.Is(err, raster.ErrDecode))
}

func TestImage_FitCanvas(t *testing.T) {
	assert := assert.New(t)

	img := raster.FromImage(makeNRGBA(30, 20))

	fit := fitCanvas(img, 50)
	assert.Equal(50, fit.Width)
	assert.Equal(50, fit.Height)
	assert.Equal(raster.RGB, fit.Channels)

	assert.Same(img, fitCanvas(img, 0))
}
