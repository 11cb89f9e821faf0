package effect

import (
	"image"
	"math"
	"math/rand/v2"

	"github.com/disintegration/imaging"
	"github.com/esimov/sketchify/imop"
	"github.com/esimov/sketchify/raster"
)

// parallaxAmplitude is the maximum horizontal shift of the foreground layer.
const parallaxAmplitude = 20

// parallax sways from over the static to layer along a full sine period.
func parallax(from, to *raster.Image, p Params, _ *rand.Rand) (renderFunc, error) {
	var (
		fg = from.NRGBA()
		bg = to.NRGBA()
		n  = float64(p.FrameCount)
		op = imop.InitOp()
	)

	return func(i int) *raster.Image {
		dx := int(parallaxAmplitude * math.Sin(2*math.Pi*float64(i)/n))

		dst := imaging.Clone(bg)
		op.Draw(dst, fg, image.Pt(dx, 0))

		return raster.FromImage(dst)
	}, nil
}
