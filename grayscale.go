package sketchify

import "github.com/esimov/sketchify/raster"

// grayscale converts an RGB raster to its luma plane using the
// ITU-R BT.601 weights 0.299, 0.587 and 0.114 in 16.16 fixed point.
func grayscale(src *raster.Image) []uint8 {
	n := src.Width * src.Height
	gray := make([]uint8, n)

	for i, j := 0, 0; i < n; i, j = i+1, j+src.Channels {
		r := uint32(src.Pix[j+0])
		g := uint32(src.Pix[j+1])
		b := uint32(src.Pix[j+2])
		gray[i] = uint8((19595*r + 38470*g + 7471*b + 1<<15) >> 16)
	}
	return gray
}

// invert returns the negative of a gray plane.
func invert(src []uint8) []uint8 {
	dst := make([]uint8, len(src))
	for i, v := range src {
		dst[i] = 255 - v
	}
	return dst
}
