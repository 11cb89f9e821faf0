package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRaster_Validate(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		name string
		img  *Image
		err  error
	}{
		{name: "nil", img: nil, err: ErrDecode},
		{name: "zero width", img: &Image{Width: 0, Height: 4, Channels: RGB}, err: ErrDecode},
		{name: "short buffer", img: &Image{Width: 2, Height: 2, Channels: RGB, Pix: make([]uint8, 11)}, err: ErrDecode},
		{name: "two channels", img: &Image{Width: 2, Height: 2, Channels: 2, Pix: make([]uint8, 8)}, err: ErrChannel},
		{name: "valid rgb", img: New(3, 2, RGB)},
		{name: "valid gray", img: New(3, 2, Gray)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.img.Validate()
			if tc.err == nil {
				assert.NoError(err)
				return
			}
			assert.ErrorIs(err, tc.err)
		})
	}
}

func TestRaster_FromImageRoundTrip(t *testing.T) {
	assert := assert.New(t)

	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 60), B: 200, A: 255})
		}
	}

	img := FromImage(src)
	assert.NoError(img.Validate())
	assert.Equal(RGB, img.Channels)
	assert.Equal(src.Pix, img.NRGBA().Pix)

	// The conversion must not alias the source buffer.
	img.Pix[0] = 1
	assert.NotEqual(img.Pix[0], src.Pix[0])
}

func TestRaster_FromImageWithOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(-2, -2, 2, 2))
	src.Set(-2, -2, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	img := FromImage(src)
	assert.Equal(t, 4, img.Width)
	assert.Equal(t, []uint8{10, 20, 30}, img.Pix[:3])
}

func TestRaster_ToRGB(t *testing.T) {
	gray := New(2, 1, Gray)
	gray.Pix[0], gray.Pix[1] = 17, 240

	rgb := gray.ToRGB()
	assert.Equal(t, []uint8{17, 17, 17, 240, 240, 240}, rgb.Pix)
	assert.Equal(t, color.Gray{Y: 240}, gray.At(1, 0))
	assert.Equal(t, color.NRGBA{R: 240, G: 240, B: 240, A: 255}, rgb.At(1, 0))
}

func TestRaster_Clone(t *testing.T) {
	img := New(2, 2, RGB)
	cp := img.Clone()
	cp.Pix[0] = 0xff

	assert.Equal(t, uint8(0), img.Pix[0])
	assert.True(t, img.SameSize(cp))
}

func TestSequence(t *testing.T) {
	assert := assert.New(t)

	seq := NewSequence([]*Image{New(4, 2, RGB), New(4, 2, RGB), New(4, 2, RGB)})
	assert.Equal(3, seq.Len())

	for i, f := range seq.Frames() {
		assert.Equal(i, f.Index)
	}
	w, h := seq.Size()
	assert.Equal(4, w)
	assert.Equal(2, h)

	var empty *Sequence
	assert.Equal(0, empty.Len())
}
