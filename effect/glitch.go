package effect

import (
	"math/rand/v2"

	"github.com/esimov/sketchify/raster"
)

// glitchProbability is the chance of a frame being split.
const glitchProbability = 0.3

// glitch occasionally splits to at a random column and swaps the two
// halves. Frames without a split pass through unchanged.
func glitch(_, to *raster.Image, p Params, rng *rand.Rand) (renderFunc, error) {
	splits := make([]int, p.FrameCount)
	for i := range splits {
		splits[i] = -1
		if rng.Float64() < glitchProbability {
			splits[i] = rng.IntN(to.Width + 1)
		}
	}

	return func(i int) *raster.Image {
		if splits[i] < 0 {
			return to.Clone()
		}
		return splitSwap(to, splits[i])
	}, nil
}

// splitSwap rotates every row of img left by s pixels: the columns from s
// onwards are moved to the left edge and the first s columns follow them.
func splitSwap(img *raster.Image, s int) *raster.Image {
	dst := raster.New(img.Width, img.Height, img.Channels)
	stride := img.Width * img.Channels
	cut := s * img.Channels

	for y := 0; y < img.Height; y++ {
		row := img.Pix[y*stride : (y+1)*stride]
		out := dst.Pix[y*stride : (y+1)*stride]
		n := copy(out, row[cut:])
		copy(out[n:], row[:cut])
	}
	return dst
}
