package effect

import (
	"math"
	"math/rand/v2"

	"github.com/esimov/sketchify/raster"
)

type particle struct {
	x, y   int
	tx, ty int
	color  [3]uint8
}

// at returns the particle position in the i-th of n frames. The first frame
// puts it at its source, the last one at its target.
func (p particle) at(i, n int) (x, y int) {
	t := float64(i) / float64(n-1)
	x = int(math.Round(float64(p.x) + float64(p.tx-p.x)*t))
	y = int(math.Round(float64(p.y) + float64(p.ty-p.y)*t))
	return x, y
}

// particles scatters pixels of to across a black canvas and moves each of
// them linearly from a random source to a random target position, where it
// takes its color from.
func particles(_, to *raster.Image, p Params, rng *rand.Rand) (renderFunc, error) {
	w, h := to.Width, to.Height

	set := make([]particle, p.ParticleCount)
	for k := range set {
		pt := particle{
			x:  rng.IntN(w),
			y:  rng.IntN(h),
			tx: rng.IntN(w),
			ty: rng.IntN(h),
		}
		o := to.Offset(pt.tx, pt.ty)
		copy(pt.color[:], to.Pix[o:o+raster.RGB])
		set[k] = pt
	}

	return func(i int) *raster.Image {
		dst := raster.New(w, h, raster.RGB)
		for _, pt := range set {
			x, y := pt.at(i, p.FrameCount)
			o := dst.Offset(x, y)
			copy(dst.Pix[o:o+raster.RGB], pt.color[:])
		}
		return dst
	}, nil
}
