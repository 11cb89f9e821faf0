package effect

import (
	"image"
	"math/rand/v2"

	"github.com/disintegration/imaging"
	"github.com/esimov/sketchify/raster"
)

// kenBurns slowly zooms into to while the crop window drifts from the top
// left towards the bottom right corner.
func kenBurns(_, to *raster.Image, p Params, _ *rand.Rand) (renderFunc, error) {
	var (
		src  = to.NRGBA()
		w, h = to.Width, to.Height
		n    = p.FrameCount
	)

	return func(i int) *raster.Image {
		window := cropWindow(w, h, i, n)
		zoomed := imaging.Resize(imaging.Crop(src, window), w, h, imaging.Lanczos)
		return raster.FromImage(zoomed)
	}, nil
}

// cropWindow returns the region of a width x height canvas shown by the
// i-th of n Ken Burns frames. Its area shrinks as i grows.
func cropWindow(width, height, i, n int) image.Rectangle {
	t := float64(i) / float64(n)
	scale := 1 + 0.3*t

	cw := max(1, int(float64(width)/scale))
	ch := max(1, int(float64(height)/scale))
	x := int(float64(width-cw) * t)
	y := int(float64(height-ch) * t)

	return image.Rect(x, y, x+cw, y+ch)
}
