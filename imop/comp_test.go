package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComp_Basic(t *testing.T) {
	assert := assert.New(t)

	op := InitOp()
	assert.Equal(SrcOver, op.Get())

	assert.NoError(op.Set(Copy))
	assert.Equal(Copy, op.Get())
	assert.Error(op.Set("xor"))
	assert.Equal(Copy, op.Get())

	assert.NoError(op.Set(SrcOver))
	assert.Equal(SrcOver, op.Get())
}

func TestComp_Ops(t *testing.T) {
	transparent := color.NRGBA{}
	cyan := color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	magenta := color.NRGBA{R: 233, G: 30, B: 99, A: 255}

	rect := image.Rect(0, 0, 10, 10)

	// Source covers the bottom-left, backdrop the top-right; they overlap in the center.
	newSource := func() *image.NRGBA {
		src := image.NewNRGBA(rect)
		draw.Draw(src, image.Rect(0, 4, 6, 10), &image.Uniform{cyan}, image.Point{}, draw.Src)
		return src
	}
	newBackdrop := func() *image.NRGBA {
		dst := image.NewNRGBA(rect)
		draw.Draw(dst, image.Rect(4, 0, 10, 6), &image.Uniform{magenta}, image.Point{}, draw.Src)
		return dst
	}

	testCases := []struct {
		op                          string
		topRight, bottomLeft, center color.NRGBA
	}{
		{op: Copy, topRight: transparent, bottomLeft: cyan, center: cyan},
		{op: SrcOver, topRight: magenta, bottomLeft: cyan, center: cyan},
	}

	for _, tc := range testCases {
		t.Run(tc.op, func(t *testing.T) {
			assert := assert.New(t)

			op := InitOp()
			assert.NoError(op.Set(tc.op))

			dst := newBackdrop()
			op.Draw(dst, newSource(), image.Point{})

			assert.Equal(tc.topRight, dst.NRGBAAt(9, 0))
			assert.Equal(tc.bottomLeft, dst.NRGBAAt(0, 9))
			assert.Equal(tc.center, dst.NRGBAAt(5, 5))
		})
	}
}

func TestComp_SrcOverHalfAlpha(t *testing.T) {
	op := InitOp()

	dst := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	dst.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 0, B: 200, A: 255})
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 0, B: 0, A: 127})

	op.Draw(dst, src, image.Point{})

	// 127/255 of the red source over the opaque blue backdrop
	assert.Equal(t, color.NRGBA{R: 100, G: 0, B: 100, A: 255}, dst.NRGBAAt(0, 0))
}

func TestComp_DrawWithOffset(t *testing.T) {
	assert := assert.New(t)

	red := color.NRGBA{R: 255, A: 255}
	black := color.NRGBA{A: 255}

	dst := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{black}, image.Point{}, draw.Src)
	src := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	draw.Draw(src, src.Bounds(), &image.Uniform{red}, image.Point{}, draw.Src)

	op := InitOp()

	// Shifted to the right: the first two columns keep the backdrop.
	op.Draw(dst, src, image.Pt(2, 0))
	assert.Equal(black, dst.NRGBAAt(1, 0))
	assert.Equal(red, dst.NRGBAAt(2, 3))
	assert.Equal(red, dst.NRGBAAt(5, 3))

	// Completely outside: nothing changes.
	dst2 := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	op.Draw(dst2, src, image.Pt(10, 10))
	assert.Equal(color.NRGBA{}, dst2.NRGBAAt(0, 0))

	// Negative offset clips the left part of the source.
	marker := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	marker.SetNRGBA(2, 0, color.NRGBA{G: 255, A: 255})
	marker.SetNRGBA(0, 0, red)
	marker.SetNRGBA(1, 0, red)
	dst3 := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	op.Draw(dst3, marker, image.Pt(-2, 0))
	assert.Equal(color.NRGBA{G: 255, A: 255}, dst3.NRGBAAt(0, 0))
	assert.Equal(color.NRGBA{}, dst3.NRGBAAt(1, 0))
}
