package effect

import (
	"math"
	"math/rand/v2"

	"github.com/esimov/sketchify/raster"
)

// smooth cross fades from into to. The last frame equals to.
func smooth(from, to *raster.Image, p Params, _ *rand.Rand) (renderFunc, error) {
	last := float64(p.FrameCount - 1)

	return func(i int) *raster.Image {
		alpha := float64(i) / last
		dst := raster.New(from.Width, from.Height, raster.RGB)
		for j := range dst.Pix {
			v := float64(from.Pix[j])*(1-alpha) + float64(to.Pix[j])*alpha
			dst.Pix[j] = uint8(math.Round(v))
		}
		return dst
	}, nil
}
