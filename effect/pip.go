package effect

import (
	"image"
	"math/rand/v2"

	"github.com/disintegration/imaging"
	"github.com/esimov/sketchify/imop"
	"github.com/esimov/sketchify/raster"
)

// insetMargin is the gap between the inset and the bottom right corner.
const insetMargin = 10

// pictureInPicture grows a square inset of from over the bottom right
// corner of to, starting at a tenth of the canvas width.
func pictureInPicture(from, to *raster.Image, p Params, _ *rand.Rand) (renderFunc, error) {
	var (
		inset = from.NRGBA()
		base  = to.NRGBA()
		w, h  = to.Width, to.Height
		n     = float64(p.FrameCount)
	)

	op := imop.InitOp()
	if err := op.Set(imop.Copy); err != nil {
		return nil, err
	}

	return func(i int) *raster.Image {
		size := max(1, insetSize(w, float64(i)/n))
		small := imaging.Resize(inset, size, size, imaging.Lanczos)

		dst := imaging.Clone(base)
		op.Draw(dst, small, image.Pt(w-size-insetMargin, h-size-insetMargin))

		return raster.FromImage(dst)
	}, nil
}

// insetSize returns the side of the picture in picture inset on a canvas of
// the given width once the animation progressed by t, with t in [0, 1).
// On a 500 pixel canvas it grows from 50 towards 500 pixels.
func insetSize(width int, t float64) int {
	w := float64(width)
	return int(0.1*w + t*0.9*w)
}
